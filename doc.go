// Package curses is a safe session layer over a character-cell display
// surface with curses semantics.
//
// Features:
//   - Single owning Session handle with a strict lifecycle: the display
//     is only ever touched between New and End, and End restores the
//     terminal exactly once
//   - Batched text attributes (bold, underline, reverse, blink, ...)
//     applied as one native toggle per set
//   - Total key decoding: every raw input code maps to exactly one value
//     of a closed Key vocabulary, with an Unknown fallback
//   - Lazily resolved, cached alternate-character-set glyphs for line
//     drawing
//   - Typed errors for every sentinel the display layer can return
//
// The display surface itself lives in the native subpackage: tcell in
// production, a deterministic simulator for tests. Sessions are
// single-owner and not safe for concurrent use; PollEvent is the only
// blocking call.
package curses
