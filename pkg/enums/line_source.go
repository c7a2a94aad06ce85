package enums

import "fmt"

// LineSource records which screen a cart line originated from.
type LineSource string

const (
	LineSourceGroceries LineSource = "groceries"
	LineSourceAgriInput LineSource = "agri-input"
	// LineSourceUnspecified is the zero value; persisted payloads omit it.
	LineSourceUnspecified LineSource = ""
)

var validLineSources = []LineSource{
	LineSourceGroceries,
	LineSourceAgriInput,
	LineSourceUnspecified,
}

// String implements fmt.Stringer.
func (s LineSource) String() string {
	return string(s)
}

// IsValid reports whether the value is a known LineSource.
func (s LineSource) IsValid() bool {
	for _, candidate := range validLineSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLineSource converts raw input into a LineSource.
func ParseLineSource(value string) (LineSource, error) {
	for _, candidate := range validLineSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid line source %q", value)
}
