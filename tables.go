package cubie

// Move tables for one clockwise quarter turn of each face, in "replaced by"
// form: after the turn, slot i holds whatever was in slot src[i], and the
// delta for slot i is added to that piece's orientation (mod 3 for corners,
// mod 2 for edges). Rows are indexed by Face.
//
// Slot order:
//
//	corners: URF UFL ULB UBR DFR DLF DBL DRB
//	edges:   UR UF UL UB DR DF DL DB FR FL BL BR
var (
	cornerSrc = [6][NumCorners]uint8{
		FaceU: {3, 0, 1, 2, 4, 5, 6, 7},
		FaceR: {4, 1, 2, 0, 7, 5, 6, 3},
		FaceF: {1, 5, 2, 3, 0, 4, 6, 7},
		FaceD: {0, 1, 2, 3, 5, 6, 7, 4},
		FaceL: {0, 2, 6, 3, 4, 1, 5, 7},
		FaceB: {0, 1, 3, 7, 4, 5, 2, 6},
	}

	cornerTwist = [6][NumCorners]uint8{
		FaceU: {0, 0, 0, 0, 0, 0, 0, 0},
		FaceR: {2, 0, 0, 1, 1, 0, 0, 2},
		FaceF: {1, 2, 0, 0, 2, 1, 0, 0},
		FaceD: {0, 0, 0, 0, 0, 0, 0, 0},
		FaceL: {0, 1, 2, 0, 0, 2, 1, 0},
		FaceB: {0, 0, 1, 2, 0, 0, 2, 1},
	}

	edgeSrc = [6][NumEdges]uint8{
		FaceU: {3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		FaceR: {8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
		FaceF: {0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		FaceD: {0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
		FaceL: {0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
		FaceB: {0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
	}

	// Only F and B flip edges; U, R, D and L keep edge orientation.
	edgeFlip = [6][NumEdges]uint8{
		FaceU: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		FaceR: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		FaceF: {0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
		FaceD: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		FaceL: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		FaceB: {0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
)
