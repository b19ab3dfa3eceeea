// Package piece defines the finite taxonomy of piece kinds used by the
// 5D chess legality engine: color, royalty, sliding category, and the
// "unmoved" bit that castling and double pawn/brawn steps depend on.
package piece

// Color is White or Black.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return 1 - c
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Kind is a tagged piece identity. Uppercase letters in the wire grammar
// are White, lowercase are Black; a Kind carries both
// the piece family and the color, plus a distinct "unmoved" variant for
// King, Rook, Pawn and Brawn, since those four are the only families whose
// legal-move set depends on having moved before (castling, en passant
// exposure, double step).
type Kind uint8

const (
	Empty Kind = iota
	Wall

	WhiteKing
	WhiteKingUnmoved
	WhiteQueen
	WhiteRook
	WhiteRookUnmoved
	WhiteBishop
	WhiteKnight
	WhitePawn
	WhitePawnUnmoved
	WhiteUnicorn
	WhiteDragon
	WhiteBrawn
	WhiteBrawnUnmoved
	WhitePrincess
	WhiteRoyalQueen
	WhiteCommonKing

	BlackKing
	BlackKingUnmoved
	BlackQueen
	BlackRook
	BlackRookUnmoved
	BlackBishop
	BlackKnight
	BlackPawn
	BlackPawnUnmoved
	BlackUnicorn
	BlackDragon
	BlackBrawn
	BlackBrawnUnmoved
	BlackPrincess
	BlackRoyalQueen
	BlackCommonKing

	numKinds
)

// NumKinds is the size of the Kind enumeration, for callers that need to
// size a [piece.NumKinds]T table.
const NumKinds = int(numKinds)

// Family is the colorless, unmoved-agnostic piece family.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyKing
	FamilyQueen
	FamilyRook
	FamilyBishop
	FamilyKnight
	FamilyPawn
	FamilyUnicorn
	FamilyDragon
	FamilyBrawn
	FamilyPrincess
	FamilyRoyalQueen
	FamilyCommonKing
)

type kindInfo struct {
	family  Family
	color   Color
	royal   bool
	slider  bool // purely-physical sliding family (rook/bishop/queen/princess/royal-queen)
	unmoved bool
	letter  byte // uppercase letter used in FEN/PGN grammar, 0 for Empty/Wall
}

var info = [numKinds]kindInfo{
	Empty: {family: FamilyNone},
	Wall:  {family: FamilyNone},

	WhiteKing:        {family: FamilyKing, color: White, royal: true, letter: 'K'},
	WhiteKingUnmoved:  {family: FamilyKing, color: White, royal: true, unmoved: true, letter: 'K'},
	WhiteQueen:       {family: FamilyQueen, color: White, slider: true, letter: 'Q'},
	WhiteRook:        {family: FamilyRook, color: White, slider: true, letter: 'R'},
	WhiteRookUnmoved:  {family: FamilyRook, color: White, slider: true, unmoved: true, letter: 'R'},
	WhiteBishop:      {family: FamilyBishop, color: White, slider: true, letter: 'B'},
	WhiteKnight:      {family: FamilyKnight, color: White, letter: 'N'},
	WhitePawn:        {family: FamilyPawn, color: White, letter: 'P'},
	WhitePawnUnmoved:  {family: FamilyPawn, color: White, unmoved: true, letter: 'P'},
	WhiteUnicorn:     {family: FamilyUnicorn, color: White, letter: 'U'},
	WhiteDragon:      {family: FamilyDragon, color: White, letter: 'D'},
	WhiteBrawn:       {family: FamilyBrawn, color: White, letter: 'X'},
	WhiteBrawnUnmoved: {family: FamilyBrawn, color: White, unmoved: true, letter: 'X'},
	WhitePrincess:    {family: FamilyPrincess, color: White, slider: true, letter: 'S'},
	WhiteRoyalQueen:  {family: FamilyRoyalQueen, color: White, royal: true, slider: true, letter: 'Y'},
	WhiteCommonKing:  {family: FamilyCommonKing, color: White, letter: 'C'},

	BlackKing:        {family: FamilyKing, color: Black, royal: true, letter: 'K'},
	BlackKingUnmoved:  {family: FamilyKing, color: Black, royal: true, unmoved: true, letter: 'K'},
	BlackQueen:       {family: FamilyQueen, color: Black, slider: true, letter: 'Q'},
	BlackRook:        {family: FamilyRook, color: Black, slider: true, letter: 'R'},
	BlackRookUnmoved:  {family: FamilyRook, color: Black, slider: true, unmoved: true, letter: 'R'},
	BlackBishop:      {family: FamilyBishop, color: Black, slider: true, letter: 'B'},
	BlackKnight:      {family: FamilyKnight, color: Black, letter: 'N'},
	BlackPawn:        {family: FamilyPawn, color: Black, letter: 'P'},
	BlackPawnUnmoved:  {family: FamilyPawn, color: Black, unmoved: true, letter: 'P'},
	BlackUnicorn:     {family: FamilyUnicorn, color: Black, letter: 'U'},
	BlackDragon:      {family: FamilyDragon, color: Black, letter: 'D'},
	BlackBrawn:       {family: FamilyBrawn, color: Black, letter: 'X'},
	BlackBrawnUnmoved: {family: FamilyBrawn, color: Black, unmoved: true, letter: 'X'},
	BlackPrincess:    {family: FamilyPrincess, color: Black, slider: true, letter: 'S'},
	BlackRoyalQueen:  {family: FamilyRoyalQueen, color: Black, royal: true, slider: true, letter: 'Y'},
	BlackCommonKing:  {family: FamilyCommonKing, color: Black, letter: 'C'},
}

// Family returns the colorless piece family.
func (k Kind) Family() Family { return info[k].family }

// Color returns the owning color. Meaningless for Empty/Wall.
func (k Kind) Color() Color { return info[k].color }

// IsRoyal reports whether losing this piece to capture ends the game
// (King, Royal-Queen).
func (k Kind) IsRoyal() bool { return info[k].royal }

// IsSlider reports whether the family slides along physical rook/bishop/
// queen-like rays (Queen, Rook, Bishop, Princess, Royal-Queen).
func (k Kind) IsSlider() bool { return info[k].slider }

// IsUnmoved reports whether this is the "has never moved" variant.
func (k Kind) IsUnmoved() bool { return info[k].unmoved }

// IsEmpty reports whether the square holds no piece.
func (k Kind) IsEmpty() bool { return k == Empty }

// IsWall reports whether the square is a permanently blocked wall.
func (k Kind) IsWall() bool { return k == Wall }

// Moved returns the same family/color with the unmoved flag cleared. A
// piece that can never carry an unmoved flag returns itself.
func (k Kind) Moved() Kind {
	switch k {
	case WhiteKingUnmoved:
		return WhiteKing
	case WhiteRookUnmoved:
		return WhiteRook
	case WhitePawnUnmoved:
		return WhitePawn
	case WhiteBrawnUnmoved:
		return WhiteBrawn
	case BlackKingUnmoved:
		return BlackKing
	case BlackRookUnmoved:
		return BlackRook
	case BlackPawnUnmoved:
		return BlackPawn
	case BlackBrawnUnmoved:
		return BlackBrawn
	default:
		return k
	}
}

// Letter returns the FEN/PGN uppercase letter for the family, 0 for
// Empty/Wall.
func (k Kind) Letter() byte { return info[k].letter }

// FromLetter resolves a FEN/PGN letter (case gives color) plus an unmoved
// flag to a Kind. ok is false for unrecognized letters.
func FromLetter(letter byte, unmoved bool) (Kind, bool) {
	color := White
	up := letter
	if letter >= 'a' && letter <= 'z' {
		color = Black
		up = letter - 'a' + 'A'
	}
	fam, ok := familyFromUpperLetter(up)
	if !ok {
		return Empty, false
	}
	return FromFamily(fam, color, unmoved), true
}

func familyFromUpperLetter(up byte) (Family, bool) {
	switch up {
	case 'K':
		return FamilyKing, true
	case 'Q':
		return FamilyQueen, true
	case 'R':
		return FamilyRook, true
	case 'B':
		return FamilyBishop, true
	case 'N':
		return FamilyKnight, true
	case 'P':
		return FamilyPawn, true
	case 'U':
		return FamilyUnicorn, true
	case 'D':
		return FamilyDragon, true
	case 'X':
		return FamilyBrawn, true
	case 'S':
		return FamilyPrincess, true
	case 'Y':
		return FamilyRoyalQueen, true
	case 'C':
		return FamilyCommonKing, true
	default:
		return FamilyNone, false
	}
}

// FromFamily builds a Kind from a colorless family, a color, and whether
// the unmoved variant is wanted (ignored for families with no unmoved
// variant).
func FromFamily(fam Family, color Color, unmoved bool) Kind {
	for k := Kind(0); k < numKinds; k++ {
		if info[k].family == fam && info[k].color == color && info[k].unmoved == unmoved {
			return k
		}
	}
	// Families without an unmoved variant: fall back to the moved form.
	if unmoved {
		return FromFamily(fam, color, false)
	}
	return Empty
}

// All returns every concrete piece Kind (excluding Empty/Wall), in a
// stable order, for table-initialization loops.
func All() []Kind {
	out := make([]Kind, 0, int(numKinds)-2)
	for k := Kind(WhiteKing); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}
