package encode

type Option func(*EncState)

// Indent enables pretty printing with n spaces per level.
func Indent(n int) Option {
	return func(es *EncState) {
		es.pretty = true
		es.indent = n
	}
}

// RawStrings emits string values between quotes without any escaping.
// The output is not valid JSON for strings containing quotes, backslashes
// or control characters; this exists for compatibility with consumers of
// the historical unescaped output.
func RawStrings(v bool) Option {
	return func(es *EncState) { es.raw = v }
}

// WithColors enables ANSI colorization for terminal display.
// Colorized output is not machine-readable JSON.
func WithColors(c *Colors) Option {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
