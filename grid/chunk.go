package grid

// Limits is an inclusive range of connected element indices.
type Limits struct {
	Start int
	Stop  int
}

// Count returns the number of elements in the range.
func (l Limits) Count() int { return l.Stop - l.Start + 1 }

// Row pairs one element with its connected range. Full connectivity is
// assumed within the range.
type Row struct {
	Element   int
	Connected Limits
}

// Chunk is an ordered, contiguous run of element rows processed by one
// sweep. The order is load-bearing: the sweep driver derives workspace and
// batch-slot offsets from each row's position and the cumulative connected
// counts before it.
type Chunk []Row

// NumElements returns the total number of (element, connected) pairs in the
// chunk, which is the worst-case work item count per term.
// Complexity: O(rows).
func (c Chunk) NumElements() int {
	total := 0
	for _, r := range c {
		total += r.Connected.Count()
	}
	return total
}

// MaxConnected returns the largest connected-range size of any row.
// Complexity: O(rows).
func (c Chunk) MaxConnected() int {
	most := 0
	for _, r := range c {
		if n := r.Connected.Count(); n > most {
			most = n
		}
	}
	return most
}

// Split partitions the table's elements into numChunks contiguous chunks of
// near-equal row counts, each row fully connected to the whole table.
// Complexity: O(size).
func Split(t *Table, numChunks int) ([]Chunk, error) {
	size := t.Size()
	if numChunks < 1 || numChunks > size {
		return nil, ErrBadChunkCount
	}

	chunks := make([]Chunk, 0, numChunks)
	base, extra := size/numChunks, size%numChunks
	next := 0
	for i := 0; i < numChunks; i++ {
		rows := base
		if i < extra {
			rows++
		}
		chunk := make(Chunk, 0, rows)
		for r := 0; r < rows; r++ {
			chunk = append(chunk, Row{
				Element:   next,
				Connected: Limits{Start: 0, Stop: size - 1},
			})
			next++
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
