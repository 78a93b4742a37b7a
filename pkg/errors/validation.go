package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateSize checks that every component of a size is strictly positive.
// Callers pass page and viewport sizes through this before handing them to
// the geometry packages, which do not check sizes themselves.
func ValidateSize(what string, size []int32) error {
	if len(size) == 0 {
		return New(ErrCodeInvalidSize, "%s must not be empty", what)
	}
	for i, s := range size {
		if s <= 0 {
			return New(ErrCodeInvalidSize, "%s has non-positive component %d at axis %d", what, s, i)
		}
	}
	return nil
}

// ValidateOrientation checks that every component is either 1 or -1.
func ValidateOrientation(orientation []int32) error {
	for i, o := range orientation {
		if o != 1 && o != -1 {
			return New(ErrCodeInvalidInput, "orientation at axis %d must be 1 or -1, got %d", i, o)
		}
	}
	return nil
}

// ValidateAxis checks that axis indexes one of dims dimensions.
func ValidateAxis(axis, dims int) error {
	if axis < 0 || axis >= dims {
		return New(ErrCodeInvalidAxis, "axis %d out of range [0, %d)", axis, dims)
	}
	return nil
}

// ValidatePath validates a page path given on the command line or in a
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(filepath.Base(path)) == "" {
		return New(ErrCodeInvalidInput, "path has no file name")
	}

	return nil
}
