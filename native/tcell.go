package native

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// acsRunes maps alternate-character-set slot bytes to display glyphs.
// Slots follow the VT100 line-drawing assignments; the glyphs are the
// Unicode forms tcell renders them with.
var acsRunes = map[byte]rune{
	'0': tcell.RuneBlock,
	'h': tcell.RuneBoard,
	'v': tcell.RuneBTee,
	'~': tcell.RuneBullet,
	'a': tcell.RuneCkBoard,
	'.': tcell.RuneDArrow,
	'f': tcell.RuneDegree,
	'`': tcell.RuneDiamond,
	'z': tcell.RuneGEqual,
	'q': tcell.RuneHLine,
	'i': tcell.RuneLantern,
	',': tcell.RuneLArrow,
	'y': tcell.RuneLEqual,
	'm': tcell.RuneLLCorner,
	'j': tcell.RuneLRCorner,
	't': tcell.RuneLTee,
	'|': tcell.RuneNEqual,
	'{': tcell.RunePi,
	'g': tcell.RunePlMinus,
	'n': tcell.RunePlus,
	'+': tcell.RuneRArrow,
	'u': tcell.RuneRTee,
	'o': tcell.RuneS1,
	'p': tcell.RuneS3,
	'r': tcell.RuneS7,
	's': tcell.RuneS9,
	'}': tcell.RuneSterling,
	'w': tcell.RuneTTee,
	'-': tcell.RuneUArrow,
	'l': tcell.RuneULCorner,
	'k': tcell.RuneURCorner,
	'x': tcell.RuneVLine,
}

// Tcell is a Surface backed by a tcell screen. tcell owns terminfo
// negotiation, raw mode, and resize detection; this adapter supplies the
// curses call shape on top: implicit cursor, ambient attributes, and
// sentinel-coded results.
type Tcell struct {
	screen tcell.Screen

	y, x int
	bg   rune

	attrs   Attr
	pair    int16
	pairs   map[int16][2]tcell.Color
	pairIDs map[int16][2]int16
	style   tcell.Style

	echo      bool
	visible   int
	timeoutMS int

	scroll   bool
	scrlTop  int
	scrlBot  int
	pushback []int

	events chan tcell.Event
	quit   chan struct{}

	// tcell synthesizes a resize event on Init; callers expect a
	// resize code only on actual size changes.
	sawInitialResize bool
}

// NewTcell returns an uninitialized surface over the process terminal.
// The tcell screen is created during Init.
func NewTcell() *Tcell {
	return &Tcell{timeoutMS: -1, visible: CursorNormal, echo: true, bg: ' '}
}

// NewTcellWith returns a surface over an existing tcell screen, which
// must not be initialized yet. Used with tcell's simulation screen in
// tests.
func NewTcellWith(screen tcell.Screen) *Tcell {
	t := NewTcell()
	t.screen = screen
	return t
}

func (t *Tcell) Init() int {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return Err
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return Err
	}
	t.pairs = make(map[int16][2]tcell.Color)
	t.pairIDs = make(map[int16][2]int16)
	t.scrlBot = -1
	t.rebuildStyle()

	t.events = make(chan tcell.Event, 16)
	t.quit = make(chan struct{})
	go t.screen.ChannelEvents(t.events, t.quit)
	return OK
}

func (t *Tcell) End() int {
	if t.quit != nil {
		close(t.quit)
		t.quit = nil
	}
	t.screen.Fini()
	return OK
}

func (t *Tcell) Refresh() int {
	if t.visible > CursorInvisible {
		t.screen.ShowCursor(t.x, t.y)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return OK
}

func (t *Tcell) Clear() int {
	rows, cols := t.Size()
	st := t.style
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			t.screen.SetContent(x, y, t.bg, nil, st)
		}
	}
	t.y, t.x = 0, 0
	return OK
}

func (t *Tcell) Size() (rows, cols int) {
	w, h := t.screen.Size()
	return h, w
}

func (t *Tcell) Cursor() (y, x int) {
	return t.y, t.x
}

func (t *Tcell) Move(y, x int) int {
	rows, cols := t.Size()
	if y < 0 || x < 0 || y >= rows || x >= cols {
		return Err
	}
	t.y, t.x = y, x
	return OK
}

func (t *Tcell) AddCh(ch rune, attrs Attr, pair int16) int {
	rows, cols := t.Size()
	if t.y >= rows {
		if !t.scroll {
			return Err
		}
		t.Scroll(1)
		t.y = rows - 1
	}

	switch ch {
	case '\n':
		// Erase to end of line, then line feed.
		for x := t.x; x < cols; x++ {
			t.screen.SetContent(x, t.y, t.bg, nil, t.style)
		}
		t.x = 0
		t.y++
		return t.postAdvance(rows)
	case '\r':
		t.x = 0
		return OK
	case '\t':
		next := (t.x/8 + 1) * 8
		for t.x < next && t.x < cols {
			t.screen.SetContent(t.x, t.y, ' ', nil, t.style)
			t.x++
		}
	default:
		st := t.style
		if attrs != 0 || pair != 0 {
			st = t.styleFor(t.attrs|attrs, t.pickPair(pair))
		}
		t.screen.SetContent(t.x, t.y, ch, nil, st)
		t.x++
	}

	if t.x >= cols {
		t.x = 0
		t.y++
		return t.postAdvance(rows)
	}
	return OK
}

// postAdvance resolves a cursor that fell off the bottom edge. With
// scrolling off the glyph was drawn but the cursor is stuck, which is a
// failed write in curses terms.
func (t *Tcell) postAdvance(rows int) int {
	if t.y < rows {
		return OK
	}
	if t.scroll {
		t.Scroll(1)
		t.y = rows - 1
		return OK
	}
	t.y = rows - 1
	t.x = 0
	return Err
}

func (t *Tcell) InsCh(ch rune) int {
	rows, cols := t.Size()
	if t.y >= rows || t.x >= cols {
		return Err
	}
	for x := cols - 1; x > t.x; x-- {
		r, _, st, _ := t.screen.GetContent(x-1, t.y)
		t.screen.SetContent(x, t.y, r, nil, st)
	}
	t.screen.SetContent(t.x, t.y, ch, nil, t.style)
	return OK
}

func (t *Tcell) DelCh() int {
	rows, cols := t.Size()
	if t.y >= rows || t.x >= cols {
		return Err
	}
	for x := t.x; x < cols-1; x++ {
		r, _, st, _ := t.screen.GetContent(x+1, t.y)
		t.screen.SetContent(x, t.y, r, nil, st)
	}
	t.screen.SetContent(cols-1, t.y, t.bg, nil, t.style)
	return OK
}

func (t *Tcell) AttrOn(attrs Attr) int {
	t.attrs |= attrs
	t.rebuildStyle()
	return OK
}

func (t *Tcell) AttrOff(attrs Attr) int {
	t.attrs &^= attrs
	t.rebuildStyle()
	return OK
}

func (t *Tcell) SetPair(pair int16) int {
	if pair != 0 {
		if _, ok := t.pairs[pair]; !ok {
			return Err
		}
	}
	t.pair = pair
	t.rebuildStyle()
	return OK
}

// styleFor builds a tcell style from an attribute word and a registered
// pair. Invisible has no tcell rendering and drops out here, which is the
// usual fate of unsupported attribute bits.
func (t *Tcell) styleFor(attrs Attr, pair int16) tcell.Style {
	st := tcell.StyleDefault
	if fgbg, ok := t.pairs[pair]; ok && pair != 0 {
		st = st.Foreground(fgbg[0]).Background(fgbg[1])
	}
	st = st.Bold(attrs&AttrBold != 0).
		Underline(attrs&AttrUnderline != 0).
		Reverse(attrs&(AttrReverse|AttrStandout) != 0).
		Blink(attrs&AttrBlink != 0).
		Dim(attrs&AttrDim != 0).
		Italic(attrs&AttrItalic != 0)
	return st
}

func (t *Tcell) pickPair(pair int16) int16 {
	if pair != 0 {
		return pair
	}
	return t.pair
}

func (t *Tcell) rebuildStyle() {
	t.style = t.styleFor(t.attrs, t.pair)
}

func (t *Tcell) Echo(on bool) int {
	// tcell reads in raw mode and never echoes; the flag is tracked so
	// the setting round-trips, matching displays that accept the call
	// without any visible effect.
	t.echo = on
	return OK
}

func (t *Tcell) CursSet(vis int) int {
	if vis < CursorInvisible || vis > CursorVeryVisible {
		return Err
	}
	old := t.visible
	t.visible = vis
	if vis > CursorInvisible {
		t.screen.ShowCursor(t.x, t.y)
	} else {
		t.screen.HideCursor()
	}
	return old
}

func (t *Tcell) Bkgd(ch rune) int {
	old := t.bg
	t.bg = ch
	rows, cols := t.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, _, st, _ := t.screen.GetContent(x, y)
			if r == old {
				t.screen.SetContent(x, y, ch, nil, st)
			}
		}
	}
	return OK
}

func (t *Tcell) Background() rune {
	return t.bg
}

func (t *Tcell) Timeout(ms int) {
	t.timeoutMS = ms
}

func (t *Tcell) GetCh() int {
	if n := len(t.pushback); n > 0 {
		code := t.pushback[n-1]
		t.pushback = t.pushback[:n-1]
		return code
	}

	var timer <-chan time.Time
	if t.timeoutMS > 0 {
		timer = time.After(time.Duration(t.timeoutMS) * time.Millisecond)
	}

	for {
		if t.timeoutMS == 0 {
			select {
			case ev, ok := <-t.events:
				if !ok {
					return Err
				}
				if code, ok := t.translate(ev); ok {
					return code
				}
			default:
				return Err
			}
			continue
		}

		select {
		case ev, ok := <-t.events:
			if !ok {
				return Err
			}
			if code, ok := t.translate(ev); ok {
				return code
			}
		case <-timer:
			return Err
		}
	}
}

// translate converts a tcell event to a raw key code. Events with no raw
// representation are dropped.
func (t *Tcell) translate(ev tcell.Event) (int, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if !t.sawInitialResize {
			t.sawInitialResize = true
			return 0, false
		}
		return KeyCodeResize, true
	case *tcell.EventKey:
		return keyCode(ev)
	case *tcell.EventError:
		return Err, true
	}
	return 0, false
}

// keyCode maps a tcell key event to the raw code a curses read would
// produce for the same keystroke.
func keyCode(ev *tcell.EventKey) (int, bool) {
	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		return int(ev.Rune()), true
	case tcell.KeyEnter:
		return '\n', true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyCodeBackspace, true
	case tcell.KeyUp:
		return KeyCodeUp, true
	case tcell.KeyDown:
		return KeyCodeDown, true
	case tcell.KeyLeft:
		return KeyCodeLeft, true
	case tcell.KeyRight:
		return KeyCodeRight, true
	case tcell.KeyHome:
		return KeyCodeHome, true
	case tcell.KeyEnd:
		return KeyCodeEnd, true
	case tcell.KeyPgUp:
		return KeyCodePageUp, true
	case tcell.KeyPgDn:
		return KeyCodePageDown, true
	case tcell.KeyInsert:
		return KeyCodeInsert, true
	case tcell.KeyDelete:
		return KeyCodeDelete, true
	case tcell.KeyCenter:
		return KeyCodeCenter, true
	case tcell.KeyEsc:
		return 0x1b, true
	case tcell.KeyTab:
		return '\t', true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
		return KeyCodeF0 + 1 + int(k-tcell.KeyF1), true
	}
	// Control keystrokes arrive two ways: the terminal parser delivers
	// the C0 byte itself, while constructed events carry the virtual
	// codes offset from KeyCtrlSpace. Both read back as the control byte.
	if k < 0x20 || k == 0x7f {
		return int(k), true
	}
	if k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore {
		return int(k - tcell.KeyCtrlSpace), true
	}
	// Specials with no raw code equivalent are dropped rather than leaked
	// into the named-code range.
	return 0, false
}

func (t *Tcell) UngetCh(code int) int {
	t.pushback = append(t.pushback, code)
	return OK
}

func (t *Tcell) FlushInput() int {
	t.pushback = t.pushback[:0]
	for {
		select {
		case _, ok := <-t.events:
			if !ok {
				return Err
			}
		default:
			return OK
		}
	}
}

func (t *Tcell) HasColors() bool {
	return t.screen.Colors() > 0
}

// CanChangeColor reports palette redefinition support. tcell exposes no
// palette write path, so registered colors cannot be redefined.
func (t *Tcell) CanChangeColor() bool {
	return false
}

func (t *Tcell) Colors() int {
	return t.screen.Colors()
}

func (t *Tcell) Pairs() int {
	if !t.HasColors() {
		return 0
	}
	return 256
}

func (t *Tcell) InitPair(pair, fg, bg int16) int {
	if pair <= 0 || int(pair) >= t.Pairs() {
		return Err
	}
	t.pairs[pair] = [2]tcell.Color{tcell.PaletteColor(int(fg)), tcell.PaletteColor(int(bg))}
	t.pairIDs[pair] = [2]int16{fg, bg}
	if pair == t.pair {
		t.rebuildStyle()
	}
	return OK
}

func (t *Tcell) InitColor(color, r, g, b int16) int {
	return Err
}

// ColorContent cannot be answered here: tcell exposes no palette read
// path, matching the missing write path in InitColor.
func (t *Tcell) ColorContent(color int16) (r, g, b int16, rc int) {
	return 0, 0, 0, Err
}

func (t *Tcell) PairContent(pair int16) (fg, bg int16, rc int) {
	if pair == 0 {
		return ColorWhite, ColorBlack, OK
	}
	fgbg, ok := t.pairIDs[pair]
	if !ok {
		return 0, 0, Err
	}
	return fgbg[0], fgbg[1], OK
}

func (t *Tcell) ACS(slot byte) rune {
	if r, ok := acsRunes[slot]; ok {
		return r
	}
	return rune(slot)
}

func (t *Tcell) ScrollOk(on bool) int {
	t.scroll = on
	return OK
}

func (t *Tcell) SetScrollRegion(top, bottom int) int {
	rows, _ := t.Size()
	if top < 0 || bottom < top || bottom >= rows {
		return Err
	}
	t.scrlTop, t.scrlBot = top, bottom
	return OK
}

func (t *Tcell) Scroll(n int) int {
	rows, cols := t.Size()
	top, bot := t.scrlTop, t.scrlBot
	if bot < 0 || bot >= rows {
		bot = rows - 1
	}
	if n == 0 || top > bot {
		return OK
	}

	shift := func() {
		for y := top; y < bot; y++ {
			for x := 0; x < cols; x++ {
				r, _, st, _ := t.screen.GetContent(x, y+1)
				t.screen.SetContent(x, y, r, nil, st)
			}
		}
		for x := 0; x < cols; x++ {
			t.screen.SetContent(x, bot, t.bg, nil, t.style)
		}
	}
	shiftDown := func() {
		for y := bot; y > top; y-- {
			for x := 0; x < cols; x++ {
				r, _, st, _ := t.screen.GetContent(x, y-1)
				t.screen.SetContent(x, y, r, nil, st)
			}
		}
		for x := 0; x < cols; x++ {
			t.screen.SetContent(x, top, t.bg, nil, t.style)
		}
	}

	if n > 0 {
		for i := 0; i < n; i++ {
			shift()
		}
	} else {
		for i := 0; i < -n; i++ {
			shiftDown()
		}
	}
	return OK
}

func (t *Tcell) Beep() int {
	if err := t.screen.Beep(); err != nil {
		return Err
	}
	return OK
}

func (t *Tcell) Suspend() int {
	if err := t.screen.Suspend(); err != nil {
		return Err
	}
	return OK
}

func (t *Tcell) Resume() int {
	if err := t.screen.Resume(); err != nil {
		return Err
	}
	return OK
}
