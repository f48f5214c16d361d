package native

// Sentinel results for Surface calls, following curses conventions:
// a call either worked or it returns Err. No further detail is available
// from the display layer.
const (
	OK  = 0
	Err = -1
)

// Attr is the attribute word attached to the display surface's rendering
// state. Bit positions follow the curses attribute layout (character bits
// below, attribute bits from 16 up).
type Attr uint32

const (
	AttrStandout Attr = 1 << (16 + iota)
	AttrUnderline
	AttrReverse
	AttrBlink
	AttrDim
	AttrBold
	AttrAltCharSet
	AttrInvisible
)

// AttrItalic sits in the extension bit, outside the classic attribute block.
const AttrItalic Attr = 1 << 31

// Raw key codes delivered by GetCh. Values 0-255 are literal input bytes;
// these named sentinels occupy the range above, matching the conventions
// of classic character-display libraries. Decoding always goes through
// these names, never through bare literals.
const (
	KeyCodeDown      = 258
	KeyCodeUp        = 259
	KeyCodeLeft      = 260
	KeyCodeRight     = 261
	KeyCodeHome      = 262
	KeyCodeBackspace = 263
	KeyCodeF0        = 264 // function key n is KeyCodeF0+n, up to F64
	KeyCodeDelete    = 330
	KeyCodeInsert    = 331
	KeyCodePageDown  = 338
	KeyCodePageUp    = 339
	KeyCodeCenter    = 350 // keypad 5 with numlock off
	KeyCodeEnd       = 360
	KeyCodeEnter     = 0x157 // keypad enter; the main enter key arrives as '\n'
	KeyCodeResize    = 410
)

// MaxFunctionKey is the highest function key index GetCh can report.
const MaxFunctionKey = 64

// Palette slots that terminals agree on when color is supported at all.
const (
	ColorBlack int16 = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Cursor visibility arguments for CursSet.
const (
	CursorInvisible   = 0
	CursorNormal      = 1
	CursorVeryVisible = 2
)

// Surface is the primitive character-cell display a session drives. It
// mirrors the C curses call set: implicit cursor state, ambient rendering
// attributes, an off-screen buffer flushed by Refresh, and sentinel-coded
// failure on every fallible call. Implementations are not safe for
// concurrent use; the owning session serializes access.
//
// Call ordering matters: Init must come first, End last, and nothing may
// be called after End. Enforcing that contract is the session's job, not
// the surface's.
type Surface interface {
	// Init acquires the terminal and enters managed display mode.
	Init() int
	// End leaves managed display mode and restores the terminal.
	End() int

	// Refresh flushes the off-screen buffer to the physical display.
	Refresh() int
	// Clear fills the off-screen buffer with the background glyph and
	// homes the cursor.
	Clear() int

	// Size reports the screen extent in rows and columns.
	Size() (rows, cols int)
	// Cursor reports the current cursor position.
	Cursor() (y, x int)
	// Move repositions the cursor; Err if the position is off-screen.
	Move(y, x int) int

	// AddCh writes one glyph at the cursor and advances it, wrapping at
	// the line end. attrs and pair are combined with the ambient
	// rendering state for this glyph only. Writing the bottom-right
	// corner with scrolling disabled draws the glyph but returns Err,
	// as the cursor cannot advance.
	AddCh(ch rune, attrs Attr, pair int16) int
	// InsCh inserts a glyph under the cursor, pushing the remainder of
	// the line right. The cursor does not move.
	InsCh(ch rune) int
	// DelCh deletes the glyph under the cursor, pulling the remainder
	// of the line left. The cursor does not move.
	DelCh() int

	// AttrOn and AttrOff toggle ambient attribute bits for subsequent
	// writes. Bits a given display cannot render are silent no-ops.
	AttrOn(attrs Attr) int
	AttrOff(attrs Attr) int
	// SetPair selects the ambient color pair; pair 0 is the terminal
	// default coloring.
	SetPair(pair int16) int

	// Echo controls input echo.
	Echo(on bool) int
	// CursSet sets cursor visibility and returns the previous setting,
	// or Err if the display cannot comply.
	CursSet(vis int) int
	// Bkgd sets the background glyph used for cleared cells. Cells
	// currently showing the old background are repainted.
	Bkgd(ch rune) int
	// Background reports the current background glyph.
	Background() rune

	// Timeout configures GetCh: negative blocks, zero returns
	// immediately when no input is pending, positive waits up to that
	// many milliseconds.
	Timeout(ms int)
	// GetCh reads the next raw key code, honoring Timeout. Err means
	// no input within the timeout, or read failure when blocking.
	GetCh() int
	// UngetCh pushes a raw code back so the next GetCh returns it.
	UngetCh(code int) int
	// FlushInput discards all pending input.
	FlushInput() int

	// Color capability and registration. Registration calls return Err
	// when the display cannot comply.
	HasColors() bool
	CanChangeColor() bool
	Colors() int
	Pairs() int
	InitPair(pair, fg, bg int16) int
	InitColor(color, r, g, b int16) int
	// ColorContent reports the component intensities of a palette
	// color, 0-1000 per channel; PairContent reports the colors a
	// pair was registered with. rc is Err when the display cannot
	// report the slot.
	ColorContent(color int16) (r, g, b int16, rc int)
	PairContent(pair int16) (fg, bg int16, rc int)

	// ACS resolves an alternate-character-set slot to the display
	// glyph for that slot. Unknown slots resolve to the slot byte
	// itself, the classic fallback.
	ACS(slot byte) rune

	// Scrolling control. Scroll shifts the scroll region by n lines,
	// positive moving text up.
	ScrollOk(on bool) int
	SetScrollRegion(top, bottom int) int
	Scroll(n int) int

	// Beep sounds the terminal bell.
	Beep() int

	// Suspend drops back to the shell screen; Resume re-enters managed
	// mode and repaints.
	Suspend() int
	Resume() int
}
