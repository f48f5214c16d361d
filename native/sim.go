package native

// simCell is one character cell of the simulated display.
type simCell struct {
	ch   rune
	attr Attr
	pair int16
}

// Sim is an in-memory Surface with deterministic behavior: a fixed size,
// a scriptable input queue, and separate off-screen and displayed
// buffers so tests can observe exactly what Refresh would flush. Fault
// flags force sentinel failures on the matching calls.
type Sim struct {
	rows, cols int
	back       []simCell
	front      []simCell

	y, x int
	bg   rune

	attrs Attr
	pair  int16

	echo    bool
	visible int

	timeoutMS int
	input     []int

	scroll  bool
	scrlTop int
	scrlBot int

	colorPairs map[int16][2]int16
	colorRGB   map[int16][3]int16

	// Fault injection: when set, the corresponding calls return Err.
	FailWrite   bool
	FailRefresh bool
	FailRead    bool
	FailAttr    bool
}

// NewSim returns a simulated surface of the given extent.
func NewSim(cols, rows int) *Sim {
	return &Sim{
		rows:      rows,
		cols:      cols,
		bg:        ' ',
		echo:      true,
		visible:   CursorNormal,
		timeoutMS: -1,
		scrlBot:   rows - 1,
	}
}

// QueueInput appends raw key codes for GetCh to deliver in order.
func (s *Sim) QueueInput(codes ...int) {
	s.input = append(s.input, codes...)
}

// Row returns the off-screen buffer contents of row y with trailing
// background cells trimmed.
func (s *Sim) Row(y int) string {
	return renderRow(s.back, s.cols, y, s.bg)
}

// DisplayedRow is Row against the displayed buffer, which only changes
// on Refresh.
func (s *Sim) DisplayedRow(y int) string {
	return renderRow(s.front, s.cols, y, s.bg)
}

func renderRow(cells []simCell, cols, y int, bg rune) string {
	if cells == nil {
		return ""
	}
	row := cells[y*cols : (y+1)*cols]
	end := cols
	for end > 0 && (row[end-1].ch == bg || row[end-1].ch == 0) {
		end--
	}
	out := make([]rune, end)
	for i := 0; i < end; i++ {
		out[i] = row[i].ch
	}
	return string(out)
}

// CellAt reports the off-screen glyph, attribute word, and pair at (x, y).
func (s *Sim) CellAt(x, y int) (rune, Attr, int16) {
	c := s.back[y*s.cols+x]
	return c.ch, c.attr, c.pair
}

// ActiveAttrs reports the ambient attribute word.
func (s *Sim) ActiveAttrs() Attr {
	return s.attrs
}

// CursorVisibility reports the last CursSet value.
func (s *Sim) CursorVisibility() int {
	return s.visible
}

// EchoEnabled reports the last Echo value.
func (s *Sim) EchoEnabled() bool {
	return s.echo
}

func (s *Sim) Init() int {
	n := s.rows * s.cols
	s.back = make([]simCell, n)
	s.front = make([]simCell, n)
	for i := range s.back {
		s.back[i] = simCell{ch: s.bg}
		s.front[i] = simCell{ch: s.bg}
	}
	return OK
}

func (s *Sim) End() int {
	return OK
}

func (s *Sim) Refresh() int {
	if s.FailRefresh {
		return Err
	}
	copy(s.front, s.back)
	return OK
}

func (s *Sim) Clear() int {
	for i := range s.back {
		s.back[i] = simCell{ch: s.bg}
	}
	s.y, s.x = 0, 0
	return OK
}

func (s *Sim) Size() (rows, cols int) {
	return s.rows, s.cols
}

func (s *Sim) Cursor() (y, x int) {
	return s.y, s.x
}

func (s *Sim) Move(y, x int) int {
	if y < 0 || x < 0 || y >= s.rows || x >= s.cols {
		return Err
	}
	s.y, s.x = y, x
	return OK
}

func (s *Sim) AddCh(ch rune, attrs Attr, pair int16) int {
	if s.FailWrite {
		return Err
	}
	if s.y >= s.rows {
		if !s.scroll {
			return Err
		}
		s.Scroll(1)
		s.y = s.rows - 1
	}

	switch ch {
	case '\n':
		for x := s.x; x < s.cols; x++ {
			s.back[s.y*s.cols+x] = simCell{ch: s.bg}
		}
		s.x = 0
		s.y++
		return s.postAdvance()
	case '\r':
		s.x = 0
		return OK
	case '\t':
		next := (s.x/8 + 1) * 8
		for s.x < next && s.x < s.cols {
			s.back[s.y*s.cols+s.x] = simCell{ch: ' ', attr: s.attrs, pair: s.pair}
			s.x++
		}
	default:
		if pair == 0 {
			pair = s.pair
		}
		s.back[s.y*s.cols+s.x] = simCell{ch: ch, attr: s.attrs | attrs, pair: pair}
		s.x++
	}

	if s.x >= s.cols {
		s.x = 0
		s.y++
		return s.postAdvance()
	}
	return OK
}

func (s *Sim) postAdvance() int {
	if s.y < s.rows {
		return OK
	}
	if s.scroll {
		s.Scroll(1)
		s.y = s.rows - 1
		return OK
	}
	s.y = s.rows - 1
	s.x = 0
	return Err
}

func (s *Sim) InsCh(ch rune) int {
	if s.FailWrite {
		return Err
	}
	row := s.back[s.y*s.cols : (s.y+1)*s.cols]
	copy(row[s.x+1:], row[s.x:s.cols-1])
	row[s.x] = simCell{ch: ch, attr: s.attrs, pair: s.pair}
	return OK
}

func (s *Sim) DelCh() int {
	if s.FailWrite {
		return Err
	}
	row := s.back[s.y*s.cols : (s.y+1)*s.cols]
	copy(row[s.x:], row[s.x+1:])
	row[s.cols-1] = simCell{ch: s.bg}
	return OK
}

func (s *Sim) AttrOn(attrs Attr) int {
	if s.FailAttr {
		return Err
	}
	s.attrs |= attrs
	return OK
}

func (s *Sim) AttrOff(attrs Attr) int {
	if s.FailAttr {
		return Err
	}
	s.attrs &^= attrs
	return OK
}

func (s *Sim) SetPair(pair int16) int {
	if pair != 0 {
		if _, ok := s.colorPairs[pair]; !ok {
			return Err
		}
	}
	s.pair = pair
	return OK
}

func (s *Sim) Echo(on bool) int {
	s.echo = on
	return OK
}

func (s *Sim) CursSet(vis int) int {
	if vis < CursorInvisible || vis > CursorVeryVisible {
		return Err
	}
	old := s.visible
	s.visible = vis
	return old
}

func (s *Sim) Bkgd(ch rune) int {
	old := s.bg
	s.bg = ch
	for i := range s.back {
		if s.back[i].ch == old {
			s.back[i].ch = ch
		}
	}
	return OK
}

func (s *Sim) Background() rune {
	return s.bg
}

func (s *Sim) Timeout(ms int) {
	s.timeoutMS = ms
}

// GetCh pops the next scripted code. An empty queue reads as Err: no
// input within the timeout when one is set, a dead input device when
// blocking. Tests script both paths this way.
func (s *Sim) GetCh() int {
	if s.FailRead {
		return Err
	}
	if len(s.input) == 0 {
		return Err
	}
	code := s.input[0]
	s.input = s.input[1:]
	return code
}

func (s *Sim) UngetCh(code int) int {
	s.input = append([]int{code}, s.input...)
	return OK
}

func (s *Sim) FlushInput() int {
	s.input = s.input[:0]
	return OK
}

func (s *Sim) HasColors() bool {
	return true
}

func (s *Sim) CanChangeColor() bool {
	return true
}

func (s *Sim) Colors() int {
	return 256
}

func (s *Sim) Pairs() int {
	return 256
}

func (s *Sim) InitPair(pair, fg, bg int16) int {
	if pair <= 0 || int(pair) >= s.Pairs() {
		return Err
	}
	if s.colorPairs == nil {
		s.colorPairs = make(map[int16][2]int16)
	}
	s.colorPairs[pair] = [2]int16{fg, bg}
	return OK
}

func (s *Sim) InitColor(color, r, g, b int16) int {
	if color < 0 || int(color) >= s.Colors() {
		return Err
	}
	if s.colorRGB == nil {
		s.colorRGB = make(map[int16][3]int16)
	}
	s.colorRGB[color] = [3]int16{r, g, b}
	return OK
}

func (s *Sim) ColorContent(color int16) (r, g, b int16, rc int) {
	if color < 0 || int(color) >= s.Colors() {
		return 0, 0, 0, Err
	}
	if rgb, ok := s.colorRGB[color]; ok {
		return rgb[0], rgb[1], rgb[2], OK
	}
	// Colors never redefined read back as the standard palette: full
	// intensity per RGB bit in the first eight slots, black beyond.
	if color < 8 {
		return int16(color&1) * 1000, int16(color>>1&1) * 1000, int16(color>>2&1) * 1000, OK
	}
	return 0, 0, 0, OK
}

func (s *Sim) PairContent(pair int16) (fg, bg int16, rc int) {
	if pair == 0 {
		return ColorWhite, ColorBlack, OK
	}
	fgbg, ok := s.colorPairs[pair]
	if !ok {
		return 0, 0, Err
	}
	return fgbg[0], fgbg[1], OK
}

// PairColors reports a registered pair, for test assertions.
func (s *Sim) PairColors(pair int16) (fg, bg int16, ok bool) {
	fgbg, ok := s.colorPairs[pair]
	return fgbg[0], fgbg[1], ok
}

// ColorRGB reports a redefined color, for test assertions.
func (s *Sim) ColorRGB(color int16) (r, g, b int16, ok bool) {
	rgb, ok := s.colorRGB[color]
	return rgb[0], rgb[1], rgb[2], ok
}

func (s *Sim) ACS(slot byte) rune {
	if r, ok := acsRunes[slot]; ok {
		return r
	}
	return rune(slot)
}

func (s *Sim) ScrollOk(on bool) int {
	s.scroll = on
	return OK
}

func (s *Sim) SetScrollRegion(top, bottom int) int {
	if top < 0 || bottom < top || bottom >= s.rows {
		return Err
	}
	s.scrlTop, s.scrlBot = top, bottom
	return OK
}

func (s *Sim) Scroll(n int) int {
	top, bot := s.scrlTop, s.scrlBot
	if bot >= s.rows {
		bot = s.rows - 1
	}
	if n == 0 || top > bot {
		return OK
	}

	up := func() {
		for y := top; y < bot; y++ {
			copy(s.back[y*s.cols:(y+1)*s.cols], s.back[(y+1)*s.cols:(y+2)*s.cols])
		}
		for x := 0; x < s.cols; x++ {
			s.back[bot*s.cols+x] = simCell{ch: s.bg}
		}
	}
	down := func() {
		for y := bot; y > top; y-- {
			copy(s.back[y*s.cols:(y+1)*s.cols], s.back[(y-1)*s.cols:y*s.cols])
		}
		for x := 0; x < s.cols; x++ {
			s.back[top*s.cols+x] = simCell{ch: s.bg}
		}
	}

	if n > 0 {
		for i := 0; i < n; i++ {
			up()
		}
	} else {
		for i := 0; i < -n; i++ {
			down()
		}
	}
	return OK
}

func (s *Sim) Beep() int {
	return OK
}

func (s *Sim) Suspend() int {
	return OK
}

func (s *Sim) Resume() int {
	return OK
}
