// Package freeman encodes 2D 4-connected paths as Freeman chain codes.
//
// Codes: 0 = +x, 1 = +y, 2 = -x, 3 = -y.
//
// A Chain is a start point and a code sequence. FromPoints builds one from a
// 4-connected point sequence, typically a pointel contour extracted by
// boundary.ExtractAllPointContours4C; String and Parse use the text form
// "x0 y0 codes".
package freeman
