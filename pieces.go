package cubie

// Corner names a corner slot or corner piece by the faces meeting there.
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corner slots and pieces.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if int(c) >= NumCorners {
		return "?"
	}
	return cornerNames[c]
}

// Edge names an edge slot or edge piece by the two faces meeting there.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edge slots and pieces.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if int(e) >= NumEdges {
		return "?"
	}
	return edgeNames[e]
}

// CornerSlotFaces lists, for each corner slot, the faces it touches in
// canonical rotation order. Orientation 0 means the first sticker of the
// piece sits on the first face listed here.
var CornerSlotFaces = [NumCorners][3]Face{
	{FaceU, FaceR, FaceF}, {FaceU, FaceF, FaceL}, {FaceU, FaceL, FaceB}, {FaceU, FaceB, FaceR},
	{FaceD, FaceF, FaceR}, {FaceD, FaceL, FaceF}, {FaceD, FaceB, FaceL}, {FaceD, FaceR, FaceB},
}

// EdgeSlotFaces lists, for each edge slot, the two faces it touches.
var EdgeSlotFaces = [NumEdges][2]Face{
	{FaceU, FaceR}, {FaceU, FaceF}, {FaceU, FaceL}, {FaceU, FaceB},
	{FaceD, FaceR}, {FaceD, FaceF}, {FaceD, FaceL}, {FaceD, FaceB},
	{FaceF, FaceR}, {FaceF, FaceL}, {FaceB, FaceL}, {FaceB, FaceR},
}

// CornerColors lists the sticker colors of each corner piece in canonical
// rotation order. A piece shows these colors on CornerSlotFaces of its home
// slot when solved.
var CornerColors = [NumCorners][3]Color{
	{White, Red, Green}, {White, Green, Orange}, {White, Orange, Blue}, {White, Blue, Red},
	{Yellow, Green, Red}, {Yellow, Orange, Green}, {Yellow, Blue, Orange}, {Yellow, Red, Blue},
}

// EdgeColors lists the two sticker colors of each edge piece.
var EdgeColors = [NumEdges][2]Color{
	{White, Red}, {White, Green}, {White, Orange}, {White, Blue},
	{Yellow, Red}, {Yellow, Green}, {Yellow, Orange}, {Yellow, Blue},
	{Green, Red}, {Green, Orange}, {Blue, Orange}, {Blue, Red},
}
