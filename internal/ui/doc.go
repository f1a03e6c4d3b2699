// Package ui contains the event loop of the shell and the adapters that
// connect it to a terminal.
//
// Control flow:
//   - Loop.Run draws one frame, then blocks on an EventSource. Each key
//     press is resolved through command.Keymap; recognised commands mutate
//     the state.AppState (navigation.go) and trigger exactly one redraw.
//     Releases, repeats, non-key events and unbound keys change nothing and
//     draw nothing. The quit command terminates the loop without drawing.
//   - Loop.Render hands the state to render.Dispatcher, which draws the
//     chrome and then the renderer of the active view onto a render.Frame.
//
// Adapters:
//   - Model runs the loop inside Bubble Tea. Bubble Tea is the event source
//     and the frame sink, and it acquires and restores the terminal session.
//   - ScriptSource and FramePrinter replay a text script and print frames,
//     for non-interactive use and tests.
//   - Harness feeds messages to a Model without a terminal.
//
// Errors from the event source or the drawer are fatal: Run returns them
// wrapped and never retries.
package ui
