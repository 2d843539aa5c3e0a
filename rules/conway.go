package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with two or three live neighbors. A dead cell becomes
alive with exactly three. Every other cell is dead in the next generation.
*/
func ApplyConwayRules(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
