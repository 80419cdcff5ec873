package categorize

import (
	"testing"

	"kharcha/internal/models"
)

func TestBayesCategorize(t *testing.T) {
	b := NewBayesCategorizer(nil)

	t.Run("distinctive_words", func(t *testing.T) {
		cases := []struct {
			description string
			want        models.Category
		}{
			{"taxi ride", models.CategoryTransport},
			{"apartment rent", models.CategoryHousing},
			{"doctor visit hospital", models.CategoryHealthcare},
			{"school books", models.CategoryEducation},
		}
		for _, tc := range cases {
			if got := b.Categorize(tc.description); got != tc.want {
				t.Errorf("Categorize(%q) = %s, want %s", tc.description, got, tc.want)
			}
		}
	})

	t.Run("empty_returns_other", func(t *testing.T) {
		if got := b.Categorize(""); got != models.CategoryOther {
			t.Errorf("expected Other for empty input, got %s", got)
		}
		if got := b.Categorize("   "); got != models.CategoryOther {
			t.Errorf("expected Other for whitespace input, got %s", got)
		}
	})

	t.Run("always_valid", func(t *testing.T) {
		for _, desc := range []string{"zzz unknown tokens", "lunch", "insurance policy"} {
			if got := b.Categorize(desc); !got.Valid() {
				t.Errorf("Categorize(%q) returned invalid category %q", desc, got)
			}
		}
	})
}

func TestSharedBayes(t *testing.T) {
	if SharedBayes() != SharedBayes() {
		t.Error("expected SharedBayes to return the same instance")
	}
}

func TestForStrategy(t *testing.T) {
	t.Run("default_is_keyword", func(t *testing.T) {
		c, err := ForStrategy("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.(KeywordCategorizer); !ok {
			t.Errorf("expected KeywordCategorizer, got %T", c)
		}
	})

	t.Run("bayes", func(t *testing.T) {
		c, err := ForStrategy(StrategyBayes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.(*BayesCategorizer); !ok {
			t.Errorf("expected BayesCategorizer, got %T", c)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := ForStrategy("neural"); err == nil {
			t.Fatal("expected error for unknown strategy")
		}
	})
}
