package ranking

import (
	"fmt"
	"sort"
)

// flatIndex is an exact inner-product search index, rebuilt from scratch for
// every ranking call. Brute force is deterministic and fast enough for
// per-request candidate sets in the tens to low hundreds; approximate
// indexing would only add nondeterminism at this scale.
type flatIndex struct {
	dim     int
	vectors [][]float64
}

func newFlatIndex(dim int) *flatIndex {
	return &flatIndex{dim: dim}
}

// Add appends a vector to the index. All vectors must share the index
// dimension; a mismatch is a precondition violation, not a skippable row.
func (ix *flatIndex) Add(v []float64) error {
	if len(v) != ix.dim {
		return fmt.Errorf("embedding dimension mismatch: index is %d, vector is %d", ix.dim, len(v))
	}
	ix.vectors = append(ix.vectors, v)
	return nil
}

func (ix *flatIndex) Len() int {
	return len(ix.vectors)
}

// Search returns the positions and inner-product scores of the k nearest
// vectors to q, ordered by descending score. Ties keep insertion order.
func (ix *flatIndex) Search(q []float64, k int) ([]int, []float64, error) {
	if len(q) != ix.dim {
		return nil, nil, fmt.Errorf("query dimension mismatch: index is %d, query is %d", ix.dim, len(q))
	}
	if k > len(ix.vectors) {
		k = len(ix.vectors)
	}
	if k <= 0 {
		return nil, nil, nil
	}

	scores := make([]float64, len(ix.vectors))
	order := make([]int, len(ix.vectors))
	for i, v := range ix.vectors {
		scores[i] = Dot(q, v)
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	topIndices := make([]int, k)
	topScores := make([]float64, k)
	for i := 0; i < k; i++ {
		topIndices[i] = order[i]
		topScores[i] = scores[order[i]]
	}
	return topIndices, topScores, nil
}
