package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markSet(indices ...int) map[int]bool {
	m := make(map[int]bool, len(indices))
	for _, i := range indices {
		m[i] = true
	}
	return m
}

func TestWinningLinesCoverEveryCellExactly(t *testing.T) {
	t.Parallel()

	counts := make(map[int]int)
	for _, line := range WinningLines {
		for _, cell := range line {
			require.True(t, ValidCell(cell))
			counts[cell]++
		}
	}

	// Every cell sits on at least a row and a column; the center and
	// corners additionally sit on a diagonal.
	assert.Len(t, counts, TotalCells)
	assert.Equal(t, 4, counts[CenterIndex])
	for _, corner := range []int{0, 4, 20, 24} {
		assert.Equal(t, 3, counts[corner])
	}
}

func TestIsWinningFullRow(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWinning(markSet(0, 1, 2, 3, 4)))
}

func TestIsWinningIncompleteRow(t *testing.T) {
	t.Parallel()

	assert.False(t, IsWinning(markSet(0, 1, 3, 4)))
}

func TestIsWinningDiagonalCountsCenterAutomatically(t *testing.T) {
	t.Parallel()

	// Only four explicit marks; the free center completes the diagonal.
	assert.True(t, IsWinning(markSet(0, 6, 18, 24)))
	assert.True(t, IsWinning(markSet(4, 8, 16, 20)))
}

func TestIsWinningMiddleRowThroughCenter(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWinning(markSet(10, 11, 13, 14)))
}

func TestIsWinningColumn(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWinning(markSet(1, 6, 11, 16, 21)))
	assert.False(t, IsWinning(markSet(1, 6, 11, 16)))
}

func TestIsWinningEmptyBoard(t *testing.T) {
	t.Parallel()

	assert.False(t, IsWinning(markSet()))
	assert.False(t, IsWinning(nil))
}

func TestDataIndexSkipsCenter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, DataIndex(0))
	assert.Equal(t, 11, DataIndex(11))
	assert.Equal(t, 12, DataIndex(13))
	assert.Equal(t, 23, DataIndex(24))
}

func TestCellIndexRoundTrip(t *testing.T) {
	t.Parallel()

	for data := 0; data < ItemCount; data++ {
		cell := CellIndex(data)
		require.True(t, ValidCell(cell))
		require.NotEqual(t, CenterIndex, cell)
		assert.Equal(t, data, DataIndex(cell))
	}
}
