package domain

// Grid is a 9x9 Sudoku grid. Zero means empty.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CountGivens returns the number of non-zero cells.
func (g *Grid) CountGivens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// EmptyCells returns the coordinates of all zero cells in row-major order.
func (g *Grid) EmptyCells() []CellCoord {
	cells := make([]CellCoord, 0, 81-g.CountGivens())
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				cells = append(cells, CellCoord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Timing configures the reveal animation: output frame rate, target
// duration in seconds, and hold length at either end.
type Timing struct {
	FPS            int
	TargetDuration float64
	HoldFrames     int
}

// RevealStep records one fill action of the solving animation and how many
// frames hold the grid state after it.
type RevealStep struct {
	Cell   CellCoord `json:"cell"`
	Frames int       `json:"frames"`
}

// Frame is one emitted animation state with at most one highlighted cell.
type Frame struct {
	Grid      Grid
	Highlight *CellCoord
}

// TaskPair is one generated sample: a puzzle, its solution, and metadata.
// Immutable once generated.
type TaskPair struct {
	ID         string       `json:"id"`
	Domain     string       `json:"domain"`
	Seed       int64        `json:"seed"`
	Difficulty Difficulty   `json:"difficulty"`
	Prompt     string       `json:"prompt"`
	Puzzle     Grid         `json:"puzzle"`
	Solution   Grid         `json:"solution"`
	Steps      []RevealStep `json:"steps,omitempty"`
	CreatedAt  int64        `json:"createdAt"`
}

// TaskMeta is a lightweight dataset index entry.
type TaskMeta struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Givens     int        `json:"givens"`
	CreatedAt  int64      `json:"createdAt"`
}
