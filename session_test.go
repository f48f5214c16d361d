package curses

import (
	"errors"
	"testing"

	"github.com/lixenwraith/curses/native"
)

// newTestSession opens a session over a simulated 80x24 surface and
// arranges teardown.
func newTestSession(t *testing.T) (*Session, *native.Sim) {
	t.Helper()
	sim := native.NewSim(80, 24)
	s, err := NewWith(sim)
	if err != nil {
		t.Fatalf("NewWith: %v", err)
	}
	t.Cleanup(s.End)
	return s, sim
}

func TestSessionSingleton(t *testing.T) {
	s, _ := newTestSession(t)

	if _, err := NewWith(native.NewSim(10, 10)); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("second session: got %v, want ErrSessionActive", err)
	}

	// Ending the first session makes room for another.
	s.End()
	s2, err := NewWith(native.NewSim(10, 10))
	if err != nil {
		t.Fatalf("session after End: %v", err)
	}
	s2.End()
}

func TestSessionEndIdempotent(t *testing.T) {
	s, _ := newTestSession(t)
	s.End()
	s.End() // must not panic or re-run native teardown
}

func TestSessionUseAfterEndPanics(t *testing.T) {
	s, _ := newTestSession(t)
	s.End()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on use after End")
		}
	}()
	s.Refresh()
}

// The canonical smoke scenario: move, print, refresh, and find the text
// in the right place with no error anywhere.
func TestHelloWorld(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.MoveCursor(Position{X: 3, Y: 2}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	if err := s.PrintString("Hello world!"); err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if got, want := sim.Row(2), "   Hello world!"; got != want {
		t.Errorf("row 2 = %q, want %q", got, want)
	}
	if got, want := sim.DisplayedRow(2), "   Hello world!"; got != want {
		t.Errorf("displayed row 2 = %q, want %q", got, want)
	}
}

func TestPrintBeforeRefreshStaysOffScreen(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.PrintString("pending"); err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if got := sim.DisplayedRow(0); got != "" {
		t.Errorf("displayed row 0 = %q before refresh, want empty", got)
	}
	if got := sim.Row(0); got != "pending" {
		t.Errorf("off-screen row 0 = %q, want %q", got, "pending")
	}
}

func TestMoveCursorOutOfBounds(t *testing.T) {
	s, _ := newTestSession(t)

	if err := s.MoveCursor(Position{X: 5, Y: 5}); err != nil {
		t.Fatalf("in-bounds move: %v", err)
	}

	tests := []struct {
		name string
		pos  Position
	}{
		{"Column past right edge", Position{X: 80, Y: 0}},
		{"Row past bottom edge", Position{X: 0, Y: 24}},
		{"Both past", Position{X: 500, Y: 500}},
		{"Negative column", Position{X: -1, Y: 0}},
		{"Negative row", Position{X: 0, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.MoveCursor(tt.pos)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("MoveCursor(%+v) = %v, want ErrOutOfBounds", tt.pos, err)
			}
			// The cursor must not have moved.
			if got := s.CursorPosition(); got != (Position{X: 5, Y: 5}) {
				t.Errorf("cursor moved to %+v after rejected move", got)
			}
		})
	}
}

func TestPrintAdvancesAndWraps(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.MoveCursor(Position{X: 78, Y: 0}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	if err := s.PrintString("abcd"); err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if got := sim.Row(0)[78:]; got != "ab" {
		t.Errorf("end of row 0 = %q, want %q", got, "ab")
	}
	if got := sim.Row(1); got != "cd" {
		t.Errorf("row 1 = %q, want %q", got, "cd")
	}
	if got := s.CursorPosition(); got != (Position{X: 2, Y: 1}) {
		t.Errorf("cursor = %+v, want {2 1}", got)
	}
}

func TestPrintBottomRightFails(t *testing.T) {
	s, _ := newTestSession(t)

	if err := s.MoveCursor(Position{X: 79, Y: 23}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	if err := s.PrintChar('x'); !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("bottom-right print = %v, want ErrWriteFailed", err)
	}

	// With scrolling enabled the same write succeeds.
	if err := s.SetScrollable(true); err != nil {
		t.Fatalf("SetScrollable: %v", err)
	}
	if err := s.MoveCursor(Position{X: 79, Y: 23}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	if err := s.PrintChar('y'); err != nil {
		t.Fatalf("scrolling bottom-right print: %v", err)
	}
}

func TestWriteFailureSurfaces(t *testing.T) {
	s, sim := newTestSession(t)

	sim.FailWrite = true
	if err := s.PrintString("doomed"); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("PrintString = %v, want ErrWriteFailed", err)
	}
	if err := s.InsertChar('x'); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("InsertChar = %v, want ErrWriteFailed", err)
	}
}

func TestRefreshFailureSurfaces(t *testing.T) {
	s, sim := newTestSession(t)

	sim.FailRefresh = true
	if err := s.Refresh(); !errors.Is(err, ErrRefreshFailed) {
		t.Errorf("Refresh = %v, want ErrRefreshFailed", err)
	}
}

func TestPollEventDecodes(t *testing.T) {
	s, sim := newTestSession(t)

	sim.QueueInput(10, 112, native.KeyCodeUp, 99999)
	want := []Key{
		{Kind: KeyEnter, Raw: 10},
		{Kind: KeyByte, Byte: 112, Raw: 112},
		{Kind: KeyUp, Raw: native.KeyCodeUp},
		{Kind: KeyUnknown, Raw: 99999},
	}
	for i, w := range want {
		got, err := s.PollEvent()
		if err != nil {
			t.Fatalf("PollEvent %d: %v", i, err)
		}
		if got != w {
			t.Errorf("PollEvent %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestPollEventReadFailure(t *testing.T) {
	s, _ := newTestSession(t)

	// Blocking poll against a dead input device.
	if _, err := s.PollEvent(); !errors.Is(err, ErrReadFailed) {
		t.Fatalf("PollEvent = %v, want ErrReadFailed", err)
	}
}

func TestPollEventTimeoutExpiry(t *testing.T) {
	s, _ := newTestSession(t)

	s.SetTimeout(0)
	k, err := s.PollEvent()
	if err != nil {
		t.Fatalf("PollEvent: %v", err)
	}
	if k.Kind != KeyNone {
		t.Errorf("expired poll = %+v, want KeyNone", k)
	}
}

func TestUnGetKey(t *testing.T) {
	s, _ := newTestSession(t)

	pushed := Decode(native.KeyCodePageDown)
	if err := s.UnGetKey(pushed); err != nil {
		t.Fatalf("UnGetKey: %v", err)
	}
	got, err := s.PollEvent()
	if err != nil {
		t.Fatalf("PollEvent: %v", err)
	}
	if got != pushed {
		t.Errorf("PollEvent after UnGetKey = %+v, want %+v", got, pushed)
	}
}

func TestFlushInput(t *testing.T) {
	s, sim := newTestSession(t)

	sim.QueueInput('a', 'b', 'c')
	if err := s.FlushInput(); err != nil {
		t.Fatalf("FlushInput: %v", err)
	}
	s.SetTimeout(0)
	if k, _ := s.PollEvent(); k.Kind != KeyNone {
		t.Errorf("poll after flush = %+v, want KeyNone", k)
	}
}

func TestEchoAndCursorVisibility(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.SetEcho(false); err != nil {
		t.Fatalf("SetEcho: %v", err)
	}
	if sim.EchoEnabled() {
		t.Errorf("echo still enabled")
	}

	old, err := s.SetCursorVisibility(CursorInvisible)
	if err != nil {
		t.Fatalf("SetCursorVisibility: %v", err)
	}
	if old != CursorVisible {
		t.Errorf("previous visibility = %v, want CursorVisible", old)
	}
	if sim.CursorVisibility() != native.CursorInvisible {
		t.Errorf("cursor still visible")
	}

	if _, err := s.SetCursorVisibility(CursorVisibility(9)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("bogus visibility = %v, want ErrUnsupported", err)
	}
}

func TestSetBackground(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.PrintString("keep"); err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if err := s.SetBackground(GlyphOf('!')); err != nil {
		t.Fatalf("SetBackground: %v", err)
	}
	if got := s.Background().Ch; got != '!' {
		t.Errorf("Background = %q, want '!'", got)
	}

	// Blank cells repaint, written cells stay.
	if ch, _, _ := sim.CellAt(10, 10); ch != '!' {
		t.Errorf("blank cell = %q, want '!'", ch)
	}
	if ch, _, _ := sim.CellAt(0, 0); ch != 'k' {
		t.Errorf("written cell = %q, want 'k'", ch)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if ch, _, _ := sim.CellAt(0, 0); ch != '!' {
		t.Errorf("cleared cell = %q, want '!'", ch)
	}
	if got := s.CursorPosition(); got != (Position{}) {
		t.Errorf("cursor = %+v after Clear, want origin", got)
	}
}

func TestCopyGlyphs(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.MoveCursor(Position{X: 75, Y: 8}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	glyphs := make([]Glyph, 10)
	for i := range glyphs {
		glyphs[i] = GlyphOf('@')
	}
	if err := s.CopyGlyphs(glyphs); err != nil {
		t.Fatalf("CopyGlyphs: %v", err)
	}

	// No wrap: only the 5 columns to the right edge are written.
	if got := sim.Row(8)[75:]; got != "@@@@@" {
		t.Errorf("row 8 tail = %q, want %q", got, "@@@@@")
	}
	if got := sim.Row(9); got != "" {
		t.Errorf("row 9 = %q, want empty", got)
	}
	// No cursor advance.
	if got := s.CursorPosition(); got != (Position{X: 75, Y: 8}) {
		t.Errorf("cursor = %+v, want {75 8}", got)
	}
}

func TestInsertAndDelete(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.PrintString("abc"); err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if err := s.MoveCursor(Position{X: 0, Y: 0}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	if err := s.InsertChar('X'); err != nil {
		t.Fatalf("InsertChar: %v", err)
	}
	if got := sim.Row(0); got != "Xabc" {
		t.Errorf("row 0 = %q after insert, want %q", got, "Xabc")
	}
	if err := s.DeleteChar(); err != nil {
		t.Fatalf("DeleteChar: %v", err)
	}
	if got := sim.Row(0); got != "abc" {
		t.Errorf("row 0 = %q after delete, want %q", got, "abc")
	}
}

func TestScrolling(t *testing.T) {
	s, sim := newTestSession(t)

	if err := s.MoveCursor(Position{X: 0, Y: 0}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	if err := s.PrintString("top"); err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if err := s.MoveCursor(Position{X: 0, Y: 1}); err != nil {
		t.Fatalf("MoveCursor: %v", err)
	}
	if err := s.PrintString("below"); err != nil {
		t.Fatalf("PrintString: %v", err)
	}

	if err := s.Scroll(1); err != nil {
		t.Fatalf("Scroll: %v", err)
	}
	if got := sim.Row(0); got != "below" {
		t.Errorf("row 0 = %q after scroll, want %q", got, "below")
	}

	if err := s.SetScrollRegion(-1, 99); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("bad scroll region = %v, want ErrOutOfBounds", err)
	}
}

func TestColorRegistration(t *testing.T) {
	s, sim := newTestSession(t)

	if !s.HasColors() {
		t.Fatalf("simulated surface should report color")
	}
	if err := s.SetPairColors(1, White, Blue); err != nil {
		t.Fatalf("SetPairColors: %v", err)
	}
	fg, bg, ok := sim.PairColors(1)
	if !ok || fg != int16(White) || bg != int16(Blue) {
		t.Errorf("pair 1 = (%d,%d,%v), want (white,blue,true)", fg, bg, ok)
	}

	if err := s.SetPairColors(0, White, Blue); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("pair 0 registration = %v, want ErrOutOfBounds", err)
	}

	if err := s.SetColorRGB(Red, 1.0, 0.25, -3.0); err != nil {
		t.Fatalf("SetColorRGB: %v", err)
	}
	r, g, b, ok := sim.ColorRGB(int16(Red))
	if !ok || r != 1000 || g != 250 || b != 0 {
		t.Errorf("color rgb = (%d,%d,%d,%v), want (1000,250,0,true)", r, g, b, ok)
	}

	if err := s.SetActivePair(1); err != nil {
		t.Fatalf("SetActivePair: %v", err)
	}
	if err := s.PrintChar('c'); err != nil {
		t.Fatalf("PrintChar: %v", err)
	}
	if _, _, pair := sim.CellAt(0, 0); pair != 1 {
		t.Errorf("cell pair = %d, want 1", pair)
	}

	if err := s.SetActivePair(77); !errors.Is(err, ErrAttributeFailed) {
		t.Errorf("unregistered active pair = %v, want ErrAttributeFailed", err)
	}
}

func TestColorReadback(t *testing.T) {
	s, _ := newTestSession(t)

	if err := s.SetPairColors(2, Green, Black); err != nil {
		t.Fatalf("SetPairColors: %v", err)
	}
	fg, bg, err := s.PairColors(2)
	if err != nil || fg != Green || bg != Black {
		t.Errorf("PairColors(2) = (%d,%d,%v), want (green,black,nil)", fg, bg, err)
	}
	if fg, bg, err := s.PairColors(0); err != nil || fg != White || bg != Black {
		t.Errorf("pair 0 = (%d,%d,%v), want the default coloring", fg, bg, err)
	}
	if _, _, err := s.PairColors(9); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("unregistered pair = %v, want ErrOutOfBounds", err)
	}

	if err := s.SetColorRGB(Cyan, 0.0, 0.5, 1.0); err != nil {
		t.Fatalf("SetColorRGB: %v", err)
	}
	r, g, b, err := s.ColorRGB(Cyan)
	if err != nil || r != 0 || g != 0.5 || b != 1.0 {
		t.Errorf("ColorRGB = (%v,%v,%v,%v), want (0,0.5,1,nil)", r, g, b, err)
	}
	if _, _, _, err := s.ColorRGB(999); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of range color = %v, want ErrOutOfBounds", err)
	}
}

func TestMaxColorQueries(t *testing.T) {
	s, _ := newTestSession(t)

	id, ok := s.MaxColorID()
	if !ok || id != 255 {
		t.Errorf("MaxColorID = (%d,%v), want (255,true)", id, ok)
	}
	pair, ok := s.MaxColorPair()
	if !ok || pair != 255 {
		t.Errorf("MaxColorPair = (%d,%v), want (255,true)", pair, ok)
	}
}
