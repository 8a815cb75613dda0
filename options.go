package polyclip

// BufferOption configures a Buffer during creation.
// Use functional options to customize Buffer behavior.
//
// Example:
//
//	// Default dark gray background
//	buf, _ := polyclip.NewBuffer(800, 600)
//
//	// Custom background
//	buf, _ := polyclip.NewBuffer(800, 600, polyclip.WithBackground(polyclip.Black))
type BufferOption func(*bufferOptions)

// bufferOptions holds optional configuration for Buffer creation.
type bufferOptions struct {
	background Color
}

// defaultOptions returns the default buffer options.
func defaultOptions() bufferOptions {
	return bufferOptions{
		background: DarkGray,
	}
}

// WithBackground sets the color the buffer starts with and returns to on
// [Buffer.Reset].
func WithBackground(c Color) BufferOption {
	return func(o *bufferOptions) {
		o.background = c
	}
}
