package importer

import (
	"errors"
	"strings"
)

type ErrorKind string

const (
	KindUsageMissing    ErrorKind = "usage_missing"
	KindAppOpens        ErrorKind = "app_opens"
	KindMessagesInvalid ErrorKind = "messages_invalid"
	KindUserMissing     ErrorKind = "user_missing"
	KindUserBirthDate   ErrorKind = "user_birth_date"
	KindUserCreateDate  ErrorKind = "user_create_date"
	KindBirthDate       ErrorKind = "birth_date"
	KindCreateDate      ErrorKind = "create_date"
	KindNoData          ErrorKind = "no_data"
)

// FieldError is one validation failure. Kind is stable and meant for
// programmatic branching; Diagnostics carries free-form context for the
// user-facing message.
type FieldError struct {
	Kind        ErrorKind              `json:"kind"`
	Message     string                 `json:"message"`
	Diagnostics map[string]interface{} `json:"diagnostics,omitempty"`
}

// ValidationError aggregates every hard validation failure of an export.
// Soft warnings are logged, never collected here.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any collected error carries the given kind.
func (e *ValidationError) Has(kind ErrorKind) bool {
	for _, fe := range e.Errors {
		if fe.Kind == kind {
			return true
		}
	}
	return false
}

// ErrExtractionFailed wraps every non-validation failure of the pipeline,
// so callers get a uniform failure mode for unexpected conditions.
var ErrExtractionFailed = errors.New("extraction failed")
