// Package native defines the primitive character-cell display surface a
// curses session drives, in the call shape of the classic C libraries:
// implicit cursor and attribute state, an off-screen buffer flushed on
// refresh, and sentinel-coded failure (Err) on every fallible call.
//
// Two surfaces ship with the package:
//   - Tcell: the production surface, delegating terminfo, raw mode, and
//     input events to tcell.
//   - Sim: a deterministic in-memory surface with a scriptable input
//     queue, for tests and headless use.
//
// Surfaces are not safe for concurrent use. The owning session is
// responsible for call ordering and serialization.
package native
