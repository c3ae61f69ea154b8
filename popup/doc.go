// Package popup implements a completion popup that floats over a Bubble Tea
// text editor.
//
// The package is split the same way an embedding editor uses it: pure
// geometry (ComputeSize, ComputePosition), a list renderer (BuildTree), a
// scroll tracker that keeps the selected row visible, and a Surface whose
// Create/Render/Destroy lifecycle the editor drives on every completion state
// change.
package popup
