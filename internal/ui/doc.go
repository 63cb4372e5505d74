// Package ui contains the Bubble Tea program that fronts the narrator
// demo. The model is a thin shell: it translates terminal key presses
// into key.Event values, hands them to the assembled handler chain, and
// renders the announcement caption, the running transcript, and the map
// position.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses are translated by translateKey (input.go) and routed
//     through app.HandleKey; everything the handler chain announces lands
//     in the shared history log, which the view reads directly.
//   - Timer callbacks in the app layer (speech pacing, the idle hint)
//     post app.Event values on a channel; a pending Bubble Tea command
//     waits on it and re-delivers each one as an appEventMsg so the
//     handler state only ever mutates on the program goroutine.
//
// The Harness drives the same model programmatically so integration
// tests can walk the full stack without a terminal.
package ui
