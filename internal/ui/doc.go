// Package ui hosts floating-label inputs in a Bubble Tea form.
//
// Core abstractions:
//   - View: a region with its own Init/Update/View (Elm-style)
//   - Field: a View around one floatlabel.Input
//   - Layout: stacks field panels and defines tab order
//   - FocusManager: tracks and rotates focus across fields
//   - Overlays: modal views drawn over the form (the submit summary)
package ui
