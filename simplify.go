package cubie

// SimplifyMoves merges consecutive turns of the same face and drops turns
// that cancel out, so "R R" becomes "R2" and "U R R' U'" becomes empty.
// The result leaves any state in the same place as moves does.
func SimplifyMoves(moves []Move) []Move {
	result := make([]Move, 0, len(moves))

	for _, m := range moves {
		if len(result) == 0 || result[len(result)-1].Face != m.Face {
			result = append(result, m)
			continue
		}

		last := &result[len(result)-1]
		quarter := (int(last.Turn) + int(m.Turn)) % 4
		if quarter == 0 {
			// Full cancellation; the move before may now merge with the next.
			result = result[:len(result)-1]
			continue
		}
		last.Turn = Turn(quarter)
	}

	return result
}
