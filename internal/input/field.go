package input

// Field is one raw input after normalization, parsing and validation.
// Value is only meaningful when OK is true.
type Field struct {
	Raw   string
	Value int
	OK    bool
	Err   Error
}

// Threshold normalizes, parses and validates the HP threshold field.
func Threshold(raw string) Field {
	n, ok := ParseLeadingInt(Normalize(raw))
	return Field{Raw: raw, Value: n, OK: ok, Err: ValidateThreshold(n, ok)}
}

// Count normalizes, parses and validates a category count field.
func Count(raw string) Field {
	n, ok := ParseLeadingInt(Normalize(raw))
	return Field{Raw: raw, Value: n, OK: ok, Err: ValidateCount(n, ok)}
}
