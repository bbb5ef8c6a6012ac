// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// labelRegex matches a single node label.
var labelRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// isValidLabelName checks for undesirable but technically valid names.
func isValidLabelName(name string) bool {
	if name == "." || name == ".." || name == "-" {
		return false
	}
	return true
}

// ValidateLabel reports whether label can name a node.
func ValidateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if !labelRegex.MatchString(label) {
		return fmt.Errorf("invalid label format: %q", label)
	}
	if !isValidLabelName(label) {
		return fmt.Errorf("invalid label name: %q", label)
	}
	return nil
}

// Parse creates an ID from its canonical string representation.
func Parse(raw string) (ID, error) {
	if raw == "" {
		return None, fmt.Errorf("identifier cannot be empty")
	}
	digits, ok := strings.CutPrefix(raw, "#")
	if !ok {
		return None, fmt.Errorf("identifier %q must start with '#'", raw)
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return None, fmt.Errorf("invalid identifier index %q: %w", raw, err)
	}
	id := ID(n)
	if id == None {
		return None, fmt.Errorf("identifier %q is reserved", raw)
	}
	return id, nil
}
