// Package validation defines the request schemas for auth, tag and task
// payloads. A schema is an ordered list of fields, each carrying an ordered
// list of rules; evaluation stops at the first violated rule and surfaces
// its message. Defaults are applied only after a clean pass.
package validation

import (
	"encoding/json"
	"regexp"
	"time"
	"unicode/utf8"
)

// Error is a single field-level validation failure.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Rule pairs a predicate with the message reported when it fails.
type Rule struct {
	OK      func() bool
	Message string
}

// Field is a named, ordered rule set.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is evaluated in declaration order.
type Schema []Field

// Validate returns the first violated rule as an *Error, or nil.
func (s Schema) Validate() error {
	for _, f := range s {
		for _, r := range f.Rules {
			if !r.OK() {
				return &Error{Field: f.Name, Message: r.Message}
			}
		}
	}
	return nil
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func email(v string, msg string) Rule {
	return Rule{func() bool { return emailRe.MatchString(v) }, msg}
}

// length rules count runes, not bytes

func minLen(v string, n int, msg string) Rule {
	return Rule{func() bool { return utf8.RuneCountInString(v) >= n }, msg}
}

func maxLen(v string, n int, msg string) Rule {
	return Rule{func() bool { return utf8.RuneCountInString(v) <= n }, msg}
}

// optional-field variants: a nil pointer always passes.

func optMinLen(v *string, n int, msg string) Rule {
	return Rule{func() bool { return v == nil || utf8.RuneCountInString(*v) >= n }, msg}
}

func optMaxLen(v *string, n int, msg string) Rule {
	return Rule{func() bool { return v == nil || utf8.RuneCountInString(*v) <= n }, msg}
}

func optMatch(v *string, re *regexp.Regexp, msg string) Rule {
	return Rule{func() bool { return v == nil || re.MatchString(*v) }, msg}
}

func optOneOf(v *string, allowed []string, msg string) Rule {
	return Rule{func() bool {
		if v == nil {
			return true
		}
		for _, a := range allowed {
			if *v == a {
				return true
			}
		}
		return false
	}, msg}
}

// nullOneOf is the enum rule for non-nullable optional fields: absent
// passes, an explicit null or a value outside allowed fails.
func nullOneOf(v Nullable[string], allowed []string, msg string) Rule {
	return Rule{func() bool {
		if !v.Set {
			return true
		}
		if !v.Valid {
			return false
		}
		for _, a := range allowed {
			if v.Value == a {
				return true
			}
		}
		return false
	}, msg}
}

func optInstant(v *string, msg string) Rule {
	return Rule{func() bool {
		if v == nil {
			return true
		}
		_, err := time.Parse(time.RFC3339, *v)
		return err == nil
	}, msg}
}

// parseInstant converts an already-validated RFC 3339 string.
func parseInstant(v *string) *time.Time {
	if v == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil
	}
	return &t
}

// Nullable distinguishes an absent JSON field from an explicit null,
// which partial updates need for clearable columns.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// NullableOf wraps a present, non-null value.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}
