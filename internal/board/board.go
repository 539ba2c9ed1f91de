package board

// GridSize is the number of cells per row and column.
const GridSize = 5

// TotalCells is the number of cells on a card.
const TotalCells = GridSize * GridSize

// CenterIndex is the free cell. It is always treated as marked during play
// and carries no item text.
const CenterIndex = 12

// ItemCount is the number of editable squares on a card (every cell except
// the center).
const ItemCount = TotalCells - 1

// WinningLines enumerates every 5-cell line that completes a bingo:
// 5 rows, 5 columns and both diagonals.
var WinningLines = [12][GridSize]int{
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},
	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},
	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// ValidCell reports whether index refers to a cell on the grid.
func ValidCell(index int) bool {
	return index >= 0 && index < TotalCells
}

// DataIndex maps a grid cell index to its position in a card's 24-item
// sequence, which skips the center cell. The center itself has no data
// index; callers must not pass it.
func DataIndex(cell int) int {
	if cell < CenterIndex {
		return cell
	}
	return cell - 1
}

// CellIndex is the inverse of DataIndex.
func CellIndex(data int) int {
	if data < CenterIndex {
		return data
	}
	return data + 1
}

// IsWinning reports whether any winning line is fully covered by the marked
// set plus the always-free center. It evaluates from scratch on every call;
// the board is small enough that incremental bookkeeping buys nothing.
func IsWinning(marked map[int]bool) bool {
	for _, line := range WinningLines {
		complete := true
		for _, cell := range line {
			if cell == CenterIndex {
				continue
			}
			if !marked[cell] {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}
