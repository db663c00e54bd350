package rules

// Neighbor counts for the standard B3/S23 rule
const (
	BirthNeighbors   = 3
	SurviveMinimum   = 2
	SurviveMaximum   = 3
	MaxNeighborSlots = 8
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with 2 or 3 live neighbors survives, a dead cell with exactly 3
is born, and every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMinimum && neighbors <= SurviveMaximum
	}
	return neighbors == BirthNeighbors
}
