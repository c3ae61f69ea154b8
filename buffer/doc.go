// Package buffer implements the document model behind the completion editor.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Offsets address the whole document in clusters, with each line break
// counted as one.
package buffer
