package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier for safety and correctness.
// It rejects IDs that could break the JSON graph format or DOT export.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "node ID too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node ID contains invalid control characters")
		}
	}

	return nil
}

// layoutNames is the set of layout algorithms the render pipeline accepts.
var layoutNames = map[string]bool{
	"circular":    true,
	"kamadakawai": true,
	"planar":      true,
	"random":      true,
	"shell":       true,
	"spectral":    true,
	"spring":      true,
}

// LayoutNames returns the accepted layout names, sorted.
func LayoutNames() []string {
	return []string{"circular", "kamadakawai", "planar", "random", "shell", "spectral", "spring"}
}

// ValidateLayout validates a layout algorithm name.
func ValidateLayout(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLayout, "layout cannot be empty")
	}
	if !layoutNames[strings.ToLower(name)] {
		return New(ErrCodeInvalidLayout, "unknown layout %q (valid: %s)",
			name, strings.Join(LayoutNames(), ", "))
	}
	return nil
}

// formatNames is the set of output formats the render pipeline accepts.
var formatNames = map[string]bool{
	"png": true,
	"svg": true,
	"dot": true,
}

// ValidateFormat validates an output format name.
func ValidateFormat(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !formatNames[strings.ToLower(name)] {
		return New(ErrCodeInvalidFormat, "unknown format %q (valid: png, svg, dot)", name)
	}
	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// colorNameRegex matches palette color names and hex color strings as
// accepted by the style package, without importing it.
var colorNameRegex = regexp.MustCompile(`^([a-zA-Z]+|#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?)$`)

// ValidateColorString validates the shape of a color argument: a palette
// name or "#rrggbb"/"#rrggbbaa" hex. Whether a name exists in the palette
// is checked where the color is resolved.
func ValidateColorString(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !colorNameRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "malformed color %q", s)
	}
	return nil
}
