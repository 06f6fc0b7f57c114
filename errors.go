package pompub

import (
	"fmt"
	"strings"
)

// LoadWarning reports a recoverable problem while loading one source: an
// unparseable entry, an unreadable file, a failed detector. Warnings never
// abort resolution; the affected field is simply left unset.
type LoadWarning struct {
	Source  Source
	Path    string // file path, when file-backed
	Key     string // offending key or field path, when known
	Message string
}

func (w LoadWarning) String() string {
	var b strings.Builder
	b.WriteString(w.Source.String())
	if w.Path != "" {
		fmt.Fprintf(&b, " %s", w.Path)
	}
	if w.Key != "" {
		fmt.Fprintf(&b, " [%s]", w.Key)
	}
	b.WriteString(": ")
	b.WriteString(w.Message)
	return b.String()
}

// Validation error codes.
const (
	CodeRequired   = "required"
	CodeInvalidURL = "format.url"
)

// ValidationError reports one invariant the final configuration violates.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AggregatedConfigurationError wraps every validation failure of one config
// into a single error for callers that need a hard stop. The engine itself
// only reports violations; callers decide whether to fail.
type AggregatedConfigurationError struct {
	Violations []ValidationError
}

func (e *AggregatedConfigurationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("invalid publishing configuration: %s", strings.Join(msgs, "; "))
}

// AggregateValidationErrors wraps violations into a single error, or returns
// nil when there are none.
func AggregateValidationErrors(violations []ValidationError) error {
	if len(violations) == 0 {
		return nil
	}
	return &AggregatedConfigurationError{Violations: append([]ValidationError(nil), violations...)}
}
