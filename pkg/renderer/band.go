package renderer

import "fmt"

// Band is a contiguous run of image rows rendered by a single worker.
// Rows are numbered from the top of the image.
type Band struct {
	Index    int // Position of the band in the final image
	StartRow int // First row, inclusive
	EndRow   int // Last row, exclusive
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.EndRow - b.StartRow
}

func (b Band) String() string {
	return fmt.Sprintf("band %d [%d,%d)", b.Index, b.StartRow, b.EndRow)
}

// NewBandGrid splits height rows into k equal bands. The last band absorbs
// the remainder. k is clamped to [1, height].
func NewBandGrid(height, k int) []Band {
	if height <= 0 {
		return nil
	}
	k = max(1, min(k, height))

	rowsPerBand := height / k
	bands := make([]Band, k)
	for i := range bands {
		start := i * rowsPerBand
		end := start + rowsPerBand
		if i == k-1 {
			end = height
		}
		bands[i] = Band{Index: i, StartRow: start, EndRow: end}
	}
	return bands
}
