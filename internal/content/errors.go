package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotFound signals that an id did not resolve to a live document.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a rejected write against a singleton that exists.
	ErrConflict = errors.New("already exists")
)

// FieldError is one violated constraint on a write payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations aggregates every violated constraint of a payload. Validation is
// evaluated fully before any mutation so the caller sees all failures at once.
type Violations []FieldError

func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *Violations) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Check records a violation when ok is false.
func (v *Violations) Check(ok bool, field, message string) {
	if !ok {
		v.Add(field, message)
	}
}

func (v Violations) OK() bool { return len(v) == 0 }

var (
	emailRe    = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidHexColor reports whether s is a #RRGGBB color.
func ValidHexColor(s string) bool { return hexColorRe.MatchString(s) }

// OneOf reports membership of v in the allowed set.
func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
