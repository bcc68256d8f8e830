// Package canvas draws straight lines into an off-screen RGBA pixel buffer.
//
// A [Canvas] uses a centered coordinate system: (0,0) is the middle of the
// buffer, x grows to the right and y grows upwards.  Lines are rasterized
// without anti-aliasing by stepping along the longer axis one pixel at a
// time and linearly interpolating the other coordinate.  All lines are
// drawn in opaque black.
//
// Finished frames are handed to a [Surface] with [Canvas.Present].
// [ImageSurface] copies the frame into an image, [EncoderSurface] writes it
// to an image file.
//
// Pixels which fall outside the buffer are skipped and logged, see
// [SetLogger].
package canvas

//go:generate go run ./testcases/export
