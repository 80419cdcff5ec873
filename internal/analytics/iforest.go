package analytics

import (
	"math"
	"math/rand"
	"sort"
)

// One-dimensional isolation forest. Anomalous points are isolated by
// fewer random splits than dense points, giving them shorter average
// path lengths and higher anomaly scores. The decision threshold is set
// so that the contamination fraction of the training data scores as
// anomalous.
const (
	iforestTrees         = 100
	iforestSampleSize    = 256
	iforestContamination = 0.05
	// Fixed seed keeps classification deterministic across runs.
	iforestSeed = 0
)

type isoNode struct {
	split       float64
	left, right *isoNode
	size        int
}

type isolationForest struct {
	trees      []*isoNode
	sampleSize int
	threshold  float64
}

func fitIsolationForest(data []float64) *isolationForest {
	rng := rand.New(rand.NewSource(iforestSeed))

	sampleSize := iforestSampleSize
	if len(data) < sampleSize {
		sampleSize = len(data)
	}
	depthLimit := int(math.Ceil(math.Log2(float64(sampleSize)))) + 1

	forest := &isolationForest{sampleSize: sampleSize}
	for i := 0; i < iforestTrees; i++ {
		sample := make([]float64, sampleSize)
		for j := range sample {
			sample[j] = data[rng.Intn(len(data))]
		}
		forest.trees = append(forest.trees, buildIsoTree(sample, rng, 0, depthLimit))
	}

	// Threshold at the (1 - contamination) quantile of training scores.
	scores := make([]float64, len(data))
	for i, x := range data {
		scores[i] = forest.score(x)
	}
	sort.Float64s(scores)
	forest.threshold = quantile(scores, 1-iforestContamination)
	return forest
}

// Anomalous classifies a point against the trained forest.
func (f *isolationForest) Anomalous(x float64) bool {
	return f.score(x) > f.threshold
}

func (f *isolationForest) score(x float64) float64 {
	var total float64
	for _, tree := range f.trees {
		total += pathLength(tree, x, 0)
	}
	avg := total / float64(len(f.trees))
	return math.Pow(2, -avg/avgPathLength(f.sampleSize))
}

func buildIsoTree(sample []float64, rng *rand.Rand, depth, limit int) *isoNode {
	min, max := minMax(sample)
	if len(sample) <= 1 || depth >= limit || min == max {
		return &isoNode{size: len(sample)}
	}

	split := min + rng.Float64()*(max-min)
	var left, right []float64
	for _, v := range sample {
		if v < split {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	return &isoNode{
		split: split,
		left:  buildIsoTree(left, rng, depth+1, limit),
		right: buildIsoTree(right, rng, depth+1, limit),
	}
}

func pathLength(node *isoNode, x float64, depth int) float64 {
	if node.left == nil {
		return float64(depth) + avgPathLength(node.size)
	}
	if x < node.split {
		return pathLength(node.left, x, depth+1)
	}
	return pathLength(node.right, x, depth+1)
}

// avgPathLength is c(n), the average path length of an unsuccessful
// binary search tree lookup, used to normalize isolation depths.
func avgPathLength(n int) float64 {
	if n <= 1 {
		return 0
	}
	const eulerMascheroni = 0.5772156649
	h := math.Log(float64(n-1)) + eulerMascheroni
	return 2*h - 2*float64(n-1)/float64(n)
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func minMax(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
