package curses

import "io"

// Terminal reset sequences for crash paths: show cursor, leave the
// alternate screen, drop attributes, re-enable auto-wrap.
var restoreSeq = []byte("\x1b[?25h\x1b[?1049l\x1b[0m\x1b[?7h")

// Restore writes a best-effort terminal reset to w. Call it from panic
// recovery when End cannot run normally; it needs no Session and never
// fails loudly. It cannot restore the tty's input modes, only the
// screen state.
func Restore(w io.Writer) {
	w.Write(restoreSeq)
}
