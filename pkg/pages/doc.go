// Package pages finds comic page images and reads their pixel sizes.
//
// Only image headers are decoded ([image.DecodeConfig]); pixel data is never
// loaded. Sizes are cached through package cache keyed by path, file size
// and modification time.
//
// Supported formats are JPEG, PNG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image.
//
// Directory listings follow an [Order]: natural or literal name order, file
// size or modification time, either way round. [Spreads] groups the pages
// into what double page mode shows at once.
package pages
