package scene

import "golang.org/x/text/language"

// Option configures a Scene during creation.
type Option func(*options)

type options struct {
	palette  Palette
	caption  bool
	language language.Tag
}

func defaultOptions() options {
	return options{
		palette:  DefaultPalette(),
		language: language.English,
	}
}

// WithPalette replaces the default colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithCaption draws the summary text into the bottom-left corner of the
// rendered picture.
func WithCaption(enabled bool) Option {
	return func(o *options) {
		o.caption = enabled
	}
}

// WithLanguage selects the language used by Summary. English and Russian
// are translated; other tags fall back to English labels with locale
// number formatting. The rendered caption is always English.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.language = tag
	}
}
