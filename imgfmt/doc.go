// Package imgfmt serializes pixel grids to image files.
//
// Encoders accept any [Source] (a *polyclip.Buffer satisfies it) and write to
// an io.Writer. Three formats are supported:
//   - PPM: plain-text "P3", one image row per text line
//   - BMP: 24-bit uncompressed, top-down rows padded to 4 bytes
//   - PNG: via image/png
//
// Save and Load pick the format from the file extension. Writes are not
// transactional: if encoding fails partway the file is left incomplete and
// the error is returned to the caller.
package imgfmt
