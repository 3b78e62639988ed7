package discount

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrUnknownVariant marks a programming error: callers must route each screen
// to one of the four variants before invoking the engine.
var ErrUnknownVariant = errors.New("unknown discount variant")

// InvalidNumericFieldError reports a numeric-semantic field whose value could
// not be parsed as a number. Upstream form validation should make this
// unreachable; when it fires the submission is abandoned, not retried.
type InvalidNumericFieldError struct {
	Field Field
	Value string
}

func (e *InvalidNumericFieldError) Error() string {
	return fmt.Sprintf("invalid numeric value %q for field %s", e.Value, e.Field)
}

// RemoteError carries a failed API call's server-side detail. FieldErrors
// maps a field name to its messages, mirroring the `code[0]`-style shape the
// backend returns for per-field validation failures.
type RemoteError struct {
	Status      int
	Message     string
	FieldErrors map[string][]string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// fields checked first when picking the most specific remote message.
var fieldErrorPrecedence = []string{"code", "name"}

// ErrorMessage extracts the most specific user-facing message from err: a
// named-field error wins over the server message, which wins over fallback.
func ErrorMessage(err error, fallback string) string {
	var remote *RemoteError
	if !errors.As(err, &remote) {
		if err != nil && err.Error() != "" {
			return err.Error()
		}
		return fallback
	}
	for _, name := range fieldErrorPrecedence {
		if msgs := remote.FieldErrors[name]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	names := make([]string, 0, len(remote.FieldErrors))
	for name := range remote.FieldErrors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if msgs := remote.FieldErrors[name]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	if remote.Message != "" {
		return remote.Message
	}
	return fallback
}
