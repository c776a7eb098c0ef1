// Package render turns computed point sets into pictures: braille canvases
// for the terminal, PNG scatter and line plots, standalone HTML charts,
// and SVG exports of terminal canvases.
//
// The computations never depend on this package; it is a pure sink for
// finished numeric results.
package render
