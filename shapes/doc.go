// Package shapes digitizes continuous implicit shapes on a regular grid.
//
// A Shape answers whether a point of R^D lies inside it. Shapes come from
// sdfx signed distance functions (FromSDF2, FromSDF3) or from any implicit
// function (ImplicitFunc), negative inside in both cases.
//
// GaussDigitizer samples a Shape at grid step h: the digital point p is in
// the digitization iff the shape contains p·h. Its domain covers the
// continuous bounds, floor(lower/h) .. ceil(upper/h) per axis.
package shapes
