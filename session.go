package curses

import (
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/curses/native"
)

// sessionActive guards the process-wide singleton. The display layer has
// one implicit global screen; two live sessions would fight over it.
var sessionActive atomic.Bool

// ErrSessionActive is returned by New while another Session is live.
var ErrSessionActive = errors.New("curses: a session is already active")

// ErrInitFailed is returned by New when the display layer rejects
// initialization; no usable handle exists in that case.
var ErrInitFailed = errors.New("curses: display initialization failed")

// Session is the owning handle over the terminal's managed display mode.
// At most one Session is live per process. All drawing, attribute, and
// input operations go through it, and it restores the terminal when
// ended.
//
// A Session is single-owner and not safe for concurrent use; the display
// layer underneath is a global, serialized resource. PollEvent is the
// only blocking operation.
//
// End the session with End, typically deferred right after New so
// restoration runs on every exit path. Calling any other method after
// End panics: that is a contract violation, not a runtime condition.
type Session struct {
	surf      native.Surface
	acs       map[byte]Glyph
	timeoutMS int
	ended     bool
}

// New opens the terminal session on the process terminal.
//
// Input echo starts enabled and the keypad keys (arrows, function keys)
// are decoded from the start. Construction fails rather than returning a
// half-initialized handle: ErrSessionActive if a session is already
// live, ErrInitFailed if the display layer cannot start.
func New() (*Session, error) {
	return NewWith(native.NewTcell())
}

// NewWith opens the session over an explicit display surface. The
// singleton guard still applies; surfaces share the one terminal even
// when they pretend not to.
func NewWith(surf native.Surface) (*Session, error) {
	if !sessionActive.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}
	if surf.Init() == native.Err {
		sessionActive.Store(false)
		return nil, ErrInitFailed
	}
	return &Session{
		surf:      surf,
		acs:       make(map[byte]Glyph),
		timeoutMS: -1,
	}, nil
}

// End leaves managed display mode and restores the terminal. It is
// idempotent: the native teardown runs exactly once no matter how often
// End is called. Teardown is best-effort and never panics, since it
// commonly runs during unwind.
func (s *Session) End() {
	if s.ended {
		return
	}
	s.ended = true
	s.surf.End()
	sessionActive.Store(false)
}

// mustActive panics on use after End. The lifecycle is Uninitialized ->
// Active -> Ended; there is no way back, and a call in Ended state is a
// bug in the caller.
func (s *Session) mustActive() {
	if s.ended {
		panic("curses: Session used after End")
	}
}

// TerminalSize reports the current screen extent.
func (s *Session) TerminalSize() Size {
	s.mustActive()
	rows, cols := s.surf.Size()
	return Size{Cols: cols, Rows: rows}
}

// CursorPosition reports the logical write cursor.
func (s *Session) CursorPosition() Position {
	s.mustActive()
	y, x := s.surf.Cursor()
	return Position{X: x, Y: y}
}

// MoveCursor repositions the logical write cursor. A position outside
// the current screen extent fails with ErrOutOfBounds and leaves the
// cursor where it was. The move is not visible until the next Refresh.
func (s *Session) MoveCursor(p Position) error {
	s.mustActive()
	size := s.TerminalSize()
	if p.X < 0 || p.Y < 0 || p.X >= size.Cols || p.Y >= size.Rows {
		return opError("move", KindOutOfBounds)
	}
	if s.surf.Move(p.Y, p.X) == native.Err {
		return opError("move", KindOutOfBounds)
	}
	return nil
}

// PrintString writes text at the cursor, advancing it and wrapping at
// line ends. The write lands in the off-screen buffer; nothing shows
// until Refresh. A rejected write (for example the bottom-right corner
// with scrolling off) fails with ErrWriteFailed; glyphs written before
// the rejection remain.
func (s *Session) PrintString(text string) error {
	s.mustActive()
	for _, ch := range text {
		if s.surf.AddCh(ch, 0, 0) == native.Err {
			return opError("print", KindWrite)
		}
	}
	return nil
}

// PrintChar writes one character at the cursor with ambient rendering.
func (s *Session) PrintChar(ch rune) error {
	s.mustActive()
	if s.surf.AddCh(ch, 0, 0) == native.Err {
		return opError("print", KindWrite)
	}
	return nil
}

// PrintGlyph writes one glyph, combining its attributes and pair with
// the ambient rendering for that cell only.
func (s *Session) PrintGlyph(g Glyph) error {
	s.mustActive()
	if s.surf.AddCh(g.Ch, g.Attr.nativeBits(), int16(g.Pair)) == native.Err {
		return opError("print", KindWrite)
	}
	return nil
}

// CopyGlyphs writes glyphs starting at the cursor without moving it and
// without wrapping; glyphs past the line end are dropped, matching the
// copy semantics of the display layer.
func (s *Session) CopyGlyphs(glyphs []Glyph) error {
	s.mustActive()
	pos := s.CursorPosition()
	size := s.TerminalSize()
	n := len(glyphs)
	if room := size.Cols - pos.X; n > room {
		n = room
	}
	for _, g := range glyphs[:n] {
		if s.surf.AddCh(g.Ch, g.Attr.nativeBits(), int16(g.Pair)) == native.Err {
			s.surf.Move(pos.Y, pos.X)
			return opError("copy", KindWrite)
		}
	}
	if s.surf.Move(pos.Y, pos.X) == native.Err {
		return opError("copy", KindWrite)
	}
	return nil
}

// InsertChar inserts a character under the cursor, pushing the rest of
// the line right. The cursor does not move.
func (s *Session) InsertChar(ch rune) error {
	s.mustActive()
	if s.surf.InsCh(ch) == native.Err {
		return opError("insert", KindWrite)
	}
	return nil
}

// DeleteChar deletes the character under the cursor, pulling the rest of
// the line left. The cursor does not move.
func (s *Session) DeleteChar() error {
	s.mustActive()
	if s.surf.DelCh() == native.Err {
		return opError("delete", KindWrite)
	}
	return nil
}

// Clear fills the off-screen buffer with the background glyph and homes
// the cursor.
func (s *Session) Clear() error {
	s.mustActive()
	if s.surf.Clear() == native.Err {
		return opError("clear", KindWrite)
	}
	return nil
}

// Refresh flushes the off-screen buffer to the physical terminal.
func (s *Session) Refresh() error {
	s.mustActive()
	if s.surf.Refresh() == native.Err {
		return opError("refresh", KindRefresh)
	}
	return nil
}

// SetAttributes turns the given attribute set on or off in the ambient
// rendering state. The whole set toggles with one native call; enabling
// then disabling the same set restores the prior state, and disjoint
// sets toggle independently in any order.
func (s *Session) SetAttributes(a Attributes, on bool) error {
	s.mustActive()
	bits := a.nativeBits()
	var rc int
	if on {
		rc = s.surf.AttrOn(bits)
	} else {
		rc = s.surf.AttrOff(bits)
	}
	if rc == native.Err {
		return opError("attributes", KindAttribute)
	}
	return nil
}

// SetEcho controls whether input echoes to the screen. Echo starts
// enabled.
func (s *Session) SetEcho(on bool) error {
	s.mustActive()
	if s.surf.Echo(on) == native.Err {
		return opError("echo", KindAttribute)
	}
	return nil
}

// SetCursorVisibility sets how the hardware cursor renders and reports
// the previous setting. Terminals that cannot comply reject the call
// with ErrUnsupported.
func (s *Session) SetCursorVisibility(vis CursorVisibility) (CursorVisibility, error) {
	s.mustActive()
	old := s.surf.CursSet(int(vis))
	if old == native.Err {
		return CursorInvisible, opError("cursor", KindUnsupported)
	}
	return CursorVisibility(old), nil
}

// SetBackground sets the glyph used for cleared and erased cells. Cells
// currently showing the old background are repainted.
func (s *Session) SetBackground(g Glyph) error {
	s.mustActive()
	if s.surf.Bkgd(g.Ch) == native.Err {
		return opError("background", KindWrite)
	}
	return nil
}

// Background reports the current background glyph.
func (s *Session) Background() Glyph {
	s.mustActive()
	return GlyphOf(s.surf.Background())
}

// SetTimeout configures PollEvent: negative blocks indefinitely (the
// default), zero returns immediately when no input is pending, positive
// waits up to that many milliseconds.
func (s *Session) SetTimeout(ms int) {
	s.mustActive()
	s.timeoutMS = ms
	s.surf.Timeout(ms)
}

// PollEvent reads the next input event, decoding the raw code into a
// Key. With no timeout configured it blocks until input arrives and a
// failed read reports ErrReadFailed. With a timeout configured, expiry
// returns the zero Key (KeyNone) with no error.
//
// PollEvent occupies the calling goroutine; there is no hidden
// concurrency behind it.
func (s *Session) PollEvent() (Key, error) {
	s.mustActive()
	code := s.surf.GetCh()
	if code == native.Err {
		if s.timeoutMS >= 0 {
			return Key{}, nil
		}
		return Key{}, opError("poll", KindRead)
	}
	return Decode(code), nil
}

// UnGetKey pushes a key back so the next PollEvent returns it.
func (s *Session) UnGetKey(k Key) error {
	s.mustActive()
	if s.surf.UngetCh(Encode(k)) == native.Err {
		return opError("unget", KindRead)
	}
	return nil
}

// FlushInput discards all pending input events.
func (s *Session) FlushInput() error {
	s.mustActive()
	if s.surf.FlushInput() == native.Err {
		return opError("flush", KindRead)
	}
	return nil
}

// HasColors reports whether the terminal renders color at all.
func (s *Session) HasColors() bool {
	s.mustActive()
	return s.surf.HasColors()
}

// CanChangeColors reports whether palette slots can be redefined.
func (s *Session) CanChangeColors() bool {
	s.mustActive()
	return s.surf.CanChangeColor()
}

// MaxColorID reports the highest usable palette slot, or false when the
// terminal has no color support.
func (s *Session) MaxColorID() (ColorID, bool) {
	s.mustActive()
	n := s.surf.Colors()
	if n <= 0 {
		return 0, false
	}
	if n > 256 {
		n = 256
	}
	return ColorID(n - 1), true
}

// MaxColorPair reports the highest registerable pair, or false when the
// terminal has no color support.
func (s *Session) MaxColorPair() (ColorPair, bool) {
	s.mustActive()
	n := s.surf.Pairs()
	if n <= 1 {
		return 0, false
	}
	if n > 256 {
		n = 256
	}
	return ColorPair(n - 1), true
}

// SetColorRGB redefines a palette slot to the closest approximation of
// the given channels, each clamped to 0.0..1.0. Fails with
// ErrUnsupported on terminals that cannot redefine colors.
func (s *Session) SetColorRGB(id ColorID, r, g, b float64) error {
	s.mustActive()
	if !s.surf.CanChangeColor() {
		return opError("color", KindUnsupported)
	}
	if s.surf.InitColor(int16(id), scale(r), scale(g), scale(b)) == native.Err {
		return opError("color", KindUnsupported)
	}
	return nil
}

// scale maps 0.0..1.0 to the display layer's 0..1000 channel range.
func scale(v float64) int16 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int16(v * 1000)
}

// ColorRGB reads back the channels of a palette slot, each 0.0..1.0,
// the inverse of SetColorRGB. Fails with ErrUnsupported on terminals
// that cannot report palette contents and ErrOutOfBounds for slots
// past MaxColorID.
func (s *Session) ColorRGB(id ColorID) (r, g, b float64, err error) {
	s.mustActive()
	if !s.surf.HasColors() {
		return 0, 0, 0, opError("color", KindUnsupported)
	}
	if top, ok := s.MaxColorID(); !ok || id > top {
		return 0, 0, 0, opError("color", KindOutOfBounds)
	}
	cr, cg, cb, rc := s.surf.ColorContent(int16(id))
	if rc == native.Err {
		return 0, 0, 0, opError("color", KindUnsupported)
	}
	return float64(cr) / 1000, float64(cg) / 1000, float64(cb) / 1000, nil
}

// SetPairColors registers the foreground and background for a color
// pair. Cells already rendered with the pair change immediately on
// terminals that work that way. Pair 0 is reserved and rejected.
func (s *Session) SetPairColors(p ColorPair, fg, bg ColorID) error {
	s.mustActive()
	if !s.surf.HasColors() {
		return opError("pair", KindUnsupported)
	}
	if p == 0 {
		return opError("pair", KindOutOfBounds)
	}
	if s.surf.InitPair(int16(p), int16(fg), int16(bg)) == native.Err {
		return opError("pair", KindOutOfBounds)
	}
	return nil
}

// PairColors reads back the foreground and background a pair was
// registered with. Pair 0 reports the terminal's default coloring;
// unregistered pairs fail with ErrOutOfBounds.
func (s *Session) PairColors(p ColorPair) (fg, bg ColorID, err error) {
	s.mustActive()
	if !s.surf.HasColors() {
		return 0, 0, opError("pair", KindUnsupported)
	}
	f, b, rc := s.surf.PairContent(int16(p))
	if rc == native.Err {
		return 0, 0, opError("pair", KindOutOfBounds)
	}
	return ColorID(f), ColorID(b), nil
}

// SetActivePair selects the ambient color pair for subsequent writes.
// Pair 0 restores the terminal's default coloring.
func (s *Session) SetActivePair(p ColorPair) error {
	s.mustActive()
	if s.surf.SetPair(int16(p)) == native.Err {
		return opError("pair", KindAttribute)
	}
	return nil
}

// SetScrollable controls whether writes past the bottom line scroll the
// screen. Off by default.
func (s *Session) SetScrollable(on bool) error {
	s.mustActive()
	if s.surf.ScrollOk(on) == native.Err {
		return opError("scroll", KindAttribute)
	}
	return nil
}

// SetScrollRegion bounds scrolling to rows top..bottom inclusive.
func (s *Session) SetScrollRegion(top, bottom int) error {
	s.mustActive()
	if s.surf.SetScrollRegion(top, bottom) == native.Err {
		return opError("scroll", KindOutOfBounds)
	}
	return nil
}

// Scroll shifts the scroll region by n lines: positive moves text up,
// negative down, zero does nothing.
func (s *Session) Scroll(n int) error {
	s.mustActive()
	if s.surf.Scroll(n) == native.Err {
		return opError("scroll", KindWrite)
	}
	return nil
}

// Beep sounds the terminal bell.
func (s *Session) Beep() error {
	s.mustActive()
	if s.surf.Beep() == native.Err {
		return opError("beep", KindWrite)
	}
	return nil
}

// Suspend returns the terminal to shell mode so normal stdout works.
// The session stays Active; call Resume to re-enter managed mode and
// repaint.
func (s *Session) Suspend() error {
	s.mustActive()
	if s.surf.Suspend() == native.Err {
		return opError("suspend", KindRefresh)
	}
	return nil
}

// Resume re-enters managed display mode after Suspend.
func (s *Session) Resume() error {
	s.mustActive()
	if s.surf.Resume() == native.Err {
		return opError("resume", KindRefresh)
	}
	if s.surf.Refresh() == native.Err {
		return opError("resume", KindRefresh)
	}
	return nil
}
