package categorize

import (
	"strings"
	"sync"

	"github.com/jbrukh/bayesian"

	"kharcha/internal/models"
)

// CorpusEntry is one labeled training blob for the Bayes categorizer.
type CorpusEntry struct {
	Category models.Category
	Text     string
}

// seedCorpus holds one representative text blob per category. The corpus
// is fixed; changing it means constructing a new classifier.
var seedCorpus = []CorpusEntry{
	{models.CategoryFood, "lunch restaurant food dinner"},
	{models.CategoryTransport, "uber taxi bus transport"},
	{models.CategoryHousing, "rent apartment housing"},
	{models.CategoryUtilities, "electricity water utilities"},
	{models.CategoryEntertainment, "movie cinema entertainment"},
	{models.CategoryHealthcare, "doctor hospital healthcare"},
	{models.CategoryEducation, "books school education"},
	{models.CategoryShopping, "shopping mall clothes shopping"},
	{models.CategoryInsurance, "insurance policy insurance"},
	{models.CategoryOther, "miscellaneous"},
}

// BayesCategorizer is an immutable trained TF-IDF naive Bayes model.
// Construct it once and share it; training never happens at
// classification time.
type BayesCategorizer struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

// NewBayesCategorizer trains a classifier on the given corpus. A nil
// corpus trains on the built-in seed corpus.
func NewBayesCategorizer(corpus []CorpusEntry) *BayesCategorizer {
	if corpus == nil {
		corpus = seedCorpus
	}

	classes := make([]bayesian.Class, len(corpus))
	for i, entry := range corpus {
		classes[i] = bayesian.Class(entry.Category)
	}

	classifier := bayesian.NewClassifierTfIdf(classes...)
	for i, entry := range corpus {
		classifier.Learn(tokenize(entry.Text), classes[i])
	}
	// TF-IDF classifiers must be converted after learning, before scoring.
	classifier.ConvertTermsFreqToTfIdf()

	return &BayesCategorizer{classifier: classifier, classes: classes}
}

// Categorize implements Categorizer.
func (b *BayesCategorizer) Categorize(description string) models.Category {
	words := tokenize(description)
	if len(words) == 0 {
		return models.CategoryOther
	}

	_, inx, _ := b.classifier.LogScores(words)
	if inx < 0 || inx >= len(b.classes) {
		return models.CategoryOther
	}

	category := models.Category(b.classes[inx])
	if !category.Valid() {
		return models.CategoryOther
	}
	return category
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

var (
	sharedBayes     *BayesCategorizer
	sharedBayesOnce sync.Once
)

// SharedBayes returns the process-wide classifier trained on the seed
// corpus. Training cost is paid once; the returned model is immutable
// and safe for concurrent use.
func SharedBayes() *BayesCategorizer {
	sharedBayesOnce.Do(func() {
		sharedBayes = NewBayesCategorizer(nil)
	})
	return sharedBayes
}
