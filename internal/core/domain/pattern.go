package domain

import (
	"fmt"
	"regexp"
)

// CompilePattern compiles the user-supplied expression case-insensitively.
// A malformed expression wraps ErrInvalidPattern so the CLI can map it to
// its dedicated exit code.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}
