// Package imagegrid turns decoded images into symbol grids so that
// rabinkarp can locate exact sub-images (sprites, icons, tiles) inside a
// larger image.
//
// Each pixel becomes one uint32 symbol holding its non-premultiplied RGBA
// bytes (R<<24 | G<<16 | B<<8 | A). Grayscale mode first converts the image
// to luminance, so pixels that differ only in hue but share a gray level
// compare equal.
//
// Supported formats are those of github.com/disintegration/imaging:
// PNG, JPEG, GIF, TIFF and BMP.
package imagegrid
