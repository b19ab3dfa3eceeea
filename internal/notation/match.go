package notation

// Matches reports whether a user-typed notation (possibly short-form, with many optional fields
// left unset) matches a generated long-form candidate iff every field
// set in the user notation equals the candidate's corresponding field.
// An unset field (nil pointer, or a zero-value enum whose zero means
// "not specified": NoCastle, NoJump) always matches, regardless of the
// candidate's value there. Castling written as O-O/O-O-O is the one
// exception: candidates are never formatted as castle tokens, so
// matchPhysical recognizes the equivalent king two-square physical move
// by its shape (isCastleShaped) instead of comparing Castle fields.
func Matches(user, candidate Move) bool {
	switch {
	case user.Physical != nil && candidate.Physical != nil:
		return matchPhysical(user.Physical, candidate.Physical)
	case user.Superphysical != nil && candidate.Superphysical != nil:
		return matchSuperphysical(user.Superphysical, candidate.Superphysical)
	default:
		return false
	}
}

func matchPhysical(u, c *PhysicalMove) bool {
	if !matchAbsBoard(u.Board, c.Board) {
		return false
	}
	if u.Castle != NoCastle {
		// A candidate is always formatted in plain algebraic form (see
		// FormatLong), never as a literal castle token, so recognize the
		// equivalence by shape instead of by comparing Castle fields.
		return isCastleShaped(c, u.Castle)
	}
	if !matchByte(u.PieceName, c.PieceName) {
		return false
	}
	if !matchByte(u.FromFile, c.FromFile) {
		return false
	}
	if !matchByte(u.FromRank, c.FromRank) {
		return false
	}
	if u.Capture && !c.Capture {
		return false
	}
	if u.ToFile != 0 && u.ToFile != c.ToFile {
		return false
	}
	if u.ToRank != 0 && u.ToRank != c.ToRank {
		return false
	}
	return matchByte(u.PromoteTo, c.PromoteTo)
}

// isCastleShaped reports whether a fully-qualified candidate physical
// move is a king's two-square step in the direction `want` names.
func isCastleShaped(c *PhysicalMove, want Castle) bool {
	if c.PieceName == nil || *c.PieceName != 'K' {
		return false
	}
	if c.FromFile == nil || c.FromRank == nil {
		return false
	}
	if *c.FromRank != c.ToRank {
		return false
	}
	d := int(c.ToFile) - int(*c.FromFile)
	switch want {
	case Kingside:
		return d == 2
	case Queenside:
		return d == -2
	default:
		return false
	}
}

func matchSuperphysical(u, c *SuperphysicalMove) bool {
	if u.Jump != NoJump && u.Jump != c.Jump {
		return false
	}
	if !matchAbsBoard(u.FromBoard, c.FromBoard) {
		return false
	}
	if !matchByte(u.PieceName, c.PieceName) {
		return false
	}
	if !matchByte(u.FromFile, c.FromFile) {
		return false
	}
	if !matchByte(u.FromRank, c.FromRank) {
		return false
	}
	if u.Capture && !c.Capture {
		return false
	}
	if !matchToBoard(u, c) {
		return false
	}
	if u.ToFile != 0 && u.ToFile != c.ToFile {
		return false
	}
	if u.ToRank != 0 && u.ToRank != c.ToRank {
		return false
	}
	return matchByte(u.PromoteTo, c.PromoteTo)
}

// matchToBoard resolves a user-given relative to-board against the
// candidate's own from-board before comparing, since every generated
// candidate's to-board is formatted in absolute form; a user is still
// free to type the destination relatively.
func matchToBoard(u, c *SuperphysicalMove) bool {
	switch {
	case u.ToAbs != nil:
		return matchAbsBoard(u.ToAbs, c.ToAbs)
	case u.ToRel != nil:
		resolved := resolveRelBoard(u.ToRel, c.FromBoard)
		return matchAbsBoard(resolved, c.ToAbs)
	default:
		return true
	}
}

func resolveRelBoard(rel *RelBoard, from *AbsBoard) *AbsBoard {
	out := &AbsBoard{}
	if from != nil && from.Line != nil {
		line := *from.Line
		if !rel.LineSame && rel.LineDelta != nil {
			line += *rel.LineDelta
		}
		out.Line = &line
	}
	if rel.HasTime && from != nil && from.Time != nil {
		t := *from.Time
		if !rel.TimeSame && rel.TimeDelta != nil {
			t += *rel.TimeDelta
		}
		out.Time = &t
	}
	return out
}

func matchAbsBoard(u, c *AbsBoard) bool {
	if u == nil {
		return true
	}
	if c == nil {
		return false
	}
	if u.Line != nil && (c.Line == nil || *u.Line != *c.Line) {
		return false
	}
	if u.Time != nil && (c.Time == nil || *u.Time != *c.Time) {
		return false
	}
	return true
}

func matchByte(u, c *byte) bool {
	if u == nil {
		return true
	}
	return c != nil && *u == *c
}
