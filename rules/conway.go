package rules

import "iter"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// CountAlive returns the number of occupied values in the neighbors sequence
func CountAlive[T any](neighbors iter.Seq2[T, bool]) (count int) {
	for _, ok := range neighbors {
		if ok {
			count++
		}
	}
	return
}

/*
NextCell returns the value a position holds in the next generation.

A live cell with fewer than two or more than three live neighbors dies, an empty position with
exactly three live neighbors is populated with regenerate(), anything else keeps its current value.
*/
func NextCell[T any](current T, alive bool, neighbors iter.Seq2[T, bool], regenerate func() T) (next T, ok bool) {
	n := CountAlive(neighbors)
	switch {
	case alive && !ApplyConwayRules(n, alive):
		return next, false
	case !alive && ApplyConwayRules(n, alive):
		return regenerate(), true
	}
	return current, alive
}
