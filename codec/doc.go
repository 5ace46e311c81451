// Package codec adapts the pix data model to on-disk image formats. It
// decodes files into pix images and encodes them back, negotiating pixel
// format at the boundary: encoders that cannot represent a model receive an
// RGB-reduced copy. The core never performs I/O itself; all format handling
// lives here.
package codec
