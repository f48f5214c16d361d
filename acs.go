package curses

// Alternate-character-set slots, named by the VT100 line-drawing
// convention. What actually displays for a slot is the terminal's
// decision, negotiated at session start; each accessor resolves its slot
// through the display layer once and caches the glyph for the life of
// the session.

func (s *Session) acsGlyph(slot byte) Glyph {
	s.mustActive()
	if g, ok := s.acs[slot]; ok {
		return g
	}
	g := Glyph{Ch: s.surf.ACS(slot), Attr: AltCharSet}
	s.acs[slot] = g
	return g
}

// AcsBlock is a solid square block, but sometimes a hash.
func (s *Session) AcsBlock() Glyph { return s.acsGlyph('0') }

// AcsBoard is a board of squares, often just a hash.
func (s *Session) AcsBoard() Glyph { return s.acsGlyph('h') }

// AcsBTee is a bottom T.
func (s *Session) AcsBTee() Glyph { return s.acsGlyph('v') }

// AcsBullet is a bullet point.
func (s *Session) AcsBullet() Glyph { return s.acsGlyph('~') }

// AcsCkBoard is a checkerboard, usually like a 50% stipple.
func (s *Session) AcsCkBoard() Glyph { return s.acsGlyph('a') }

// AcsDArrow is a down arrow.
func (s *Session) AcsDArrow() Glyph { return s.acsGlyph('.') }

// AcsDegree is a degree symbol.
func (s *Session) AcsDegree() Glyph { return s.acsGlyph('f') }

// AcsDiamond is a diamond.
func (s *Session) AcsDiamond() Glyph { return s.acsGlyph('`') }

// AcsGEqual is greater-than or equal to.
func (s *Session) AcsGEqual() Glyph { return s.acsGlyph('z') }

// AcsHLine is a horizontal line.
func (s *Session) AcsHLine() Glyph { return s.acsGlyph('q') }

// AcsLantern is a lantern symbol.
func (s *Session) AcsLantern() Glyph { return s.acsGlyph('i') }

// AcsLArrow is a left arrow.
func (s *Session) AcsLArrow() Glyph { return s.acsGlyph(',') }

// AcsLEqual is less-than or equal to.
func (s *Session) AcsLEqual() Glyph { return s.acsGlyph('y') }

// AcsLLCorner is the lower left corner of a box.
func (s *Session) AcsLLCorner() Glyph { return s.acsGlyph('m') }

// AcsLRCorner is the lower right corner of a box.
func (s *Session) AcsLRCorner() Glyph { return s.acsGlyph('j') }

// AcsLTee is a left T.
func (s *Session) AcsLTee() Glyph { return s.acsGlyph('t') }

// AcsNEqual is not-equal to.
func (s *Session) AcsNEqual() Glyph { return s.acsGlyph('|') }

// AcsPi is pi.
func (s *Session) AcsPi() Glyph { return s.acsGlyph('{') }

// AcsPlMinus is plus/minus.
func (s *Session) AcsPlMinus() Glyph { return s.acsGlyph('g') }

// AcsPlus is a plus-shaped line meeting in all four directions.
func (s *Session) AcsPlus() Glyph { return s.acsGlyph('n') }

// AcsRArrow is a right arrow.
func (s *Session) AcsRArrow() Glyph { return s.acsGlyph('+') }

// AcsRTee is a right T.
func (s *Session) AcsRTee() Glyph { return s.acsGlyph('u') }

// AcsS1 is horizontal scanline 1.
func (s *Session) AcsS1() Glyph { return s.acsGlyph('o') }

// AcsS3 is horizontal scanline 3.
func (s *Session) AcsS3() Glyph { return s.acsGlyph('p') }

// AcsS7 is horizontal scanline 7.
func (s *Session) AcsS7() Glyph { return s.acsGlyph('r') }

// AcsS9 is horizontal scanline 9.
func (s *Session) AcsS9() Glyph { return s.acsGlyph('s') }

// AcsSterling is British pounds sterling.
func (s *Session) AcsSterling() Glyph { return s.acsGlyph('}') }

// AcsTTee is a top T.
func (s *Session) AcsTTee() Glyph { return s.acsGlyph('w') }

// AcsUArrow is an up arrow.
func (s *Session) AcsUArrow() Glyph { return s.acsGlyph('-') }

// AcsULCorner is the upper left corner of a box.
func (s *Session) AcsULCorner() Glyph { return s.acsGlyph('l') }

// AcsURCorner is the upper right corner of a box.
func (s *Session) AcsURCorner() Glyph { return s.acsGlyph('k') }

// AcsVLine is a vertical line.
func (s *Session) AcsVLine() Glyph { return s.acsGlyph('x') }
