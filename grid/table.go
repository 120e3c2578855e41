package grid

import "github.com/sparsegrid/kronbatch/internal/assert"

// Rule selects which combinations of per-dimension 1-D elements the table
// keeps.
type Rule int

const (
	// FullGrid keeps every combination (tensor-product grid).
	FullGrid Rule = iota

	// SparseGrid keeps combinations whose per-dimension levels sum to at
	// most the max level.
	SparseGrid
)

// Table is the element enumeration: one coordinate vector per element, in a
// fixed deterministic order. It is immutable after construction.
type Table struct {
	numDims int
	coords  [][]int // per element: [level_0..level_d-1, cell_0..cell_d-1]
}

// NewTable enumerates the elements for the given max level and dimension
// count under the selection rule.
//
// Complexity: O(size × numDims) time and memory, where size is 2^(level ×
// numDims) for FullGrid.
func NewTable(level, numDims int, rule Rule) (*Table, error) {
	if level < 0 {
		return nil, ErrBadLevel
	}
	if numDims < 1 {
		return nil, ErrBadDims
	}

	// per-dimension 1-D elements, in Index1D order
	pairs := levelCellPairs(level)

	t := &Table{numDims: numDims}
	idx := make([]int, numDims)
	for {
		levels := 0
		for _, i := range idx {
			levels += pairs[i][0]
		}
		if rule == FullGrid || levels <= level {
			coord := make([]int, 2*numDims)
			for d, i := range idx {
				coord[d] = pairs[i][0]
				coord[numDims+d] = pairs[i][1]
			}
			t.coords = append(t.coords, coord)
		}

		// odometer increment over the per-dimension 1-D element lists
		d := numDims - 1
		for d >= 0 {
			idx[d]++
			if idx[d] < len(pairs) {
				break
			}
			idx[d] = 0
			d--
		}
		if d < 0 {
			return t, nil
		}
	}
}

// levelCellPairs lists the (level, cell) pairs of one dimension in Index1D
// order: level 0 holds a single cell, level l > 0 holds 2^(l-1) cells.
func levelCellPairs(level int) [][2]int {
	pairs := [][2]int{{0, 0}}
	for l := 1; l <= level; l++ {
		for c := 0; c < 1<<(l-1); c++ {
			pairs = append(pairs, [2]int{l, c})
		}
	}
	return pairs
}

// Size returns the number of elements. Complexity: O(1).
func (t *Table) Size() int { return len(t.coords) }

// NumDims returns the dimension count. Complexity: O(1).
func (t *Table) NumDims() int { return t.numDims }

// Coords returns element i's coordinate vector: numDims levels followed by
// numDims cells. The slice is owned by the table; callers must not mutate
// it. Complexity: O(1).
func (t *Table) Coords(element int) []int {
	assert.Index(element, len(t.coords), "grid: element")
	return t.coords[element]
}

// Index1D returns the flat ordinal of a (level, cell) pair within one
// dimension's hierarchy.
func Index1D(level, cell int) int {
	assert.Thatf(level >= 0, "grid: negative level %d", level)
	assert.Thatf(cell >= 0, "grid: negative cell %d", cell)
	if level == 0 {
		return 0
	}
	assert.Thatf(cell < 1<<(level-1), "grid: cell %d out of range at level %d", cell, level)
	return 1<<(level-1) + cell
}

// Linearize maps a coordinate vector to its per-dimension 1-D indices.
func Linearize(coords []int) []int {
	assert.Thatf(len(coords)%2 == 0, "grid: coordinate vector of odd length %d", len(coords))
	numDims := len(coords) / 2
	indices := make([]int, numDims)
	for d := 0; d < numDims; d++ {
		indices[d] = Index1D(coords[d], coords[numDims+d])
	}
	return indices
}
