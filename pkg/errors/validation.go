package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxElementIDLength bounds element ids accepted from layout documents.
const MaxElementIDLength = 256

// ValidateElementID validates an element id from a layout document or request.
//
// Validation rules:
//   - Id cannot be empty
//   - Maximum length of MaxElementIDLength characters
//   - No control characters or null bytes
//   - No surrounding whitespace
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLayout, "element id cannot be empty")
	}

	if len(id) > MaxElementIDLength {
		return New(ErrCodeInvalidLayout, "element id too long (max %d characters)", MaxElementIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayout, "element id contains invalid control characters")
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidLayout, "element id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidateBox validates the geometry of a laid-out element.
// Coordinates must be finite and width and height non-negative.
func ValidateBox(id string, x, y, width, height float64) error {
	for _, v := range []float64{x, y, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidLayout, "element %q has non-finite geometry", id)
		}
	}

	if width < 0 {
		return New(ErrCodeInvalidLayout, "element %q has negative width %g", id, width)
	}
	if height < 0 {
		return New(ErrCodeInvalidLayout, "element %q has negative height %g", id, height)
	}

	return nil
}

// validDirections lists the accepted direction names, including vi keys.
var validDirections = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"above": true, "below": true, "before": true, "after": true,
	"k": true, "j": true, "h": true, "l": true,
}

// ValidateDirection validates a caret direction name.
func ValidateDirection(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidDirection, "direction cannot be empty")
	}

	if !validDirections[strings.ToLower(strings.TrimSpace(dir))] {
		return New(ErrCodeInvalidDirection, "unknown direction %q (want up, down, left or right)", dir)
	}

	return nil
}
