package translator

import "fmt"

// ErrorKind discriminates the failure modes of AddMessage and Translate.
type ErrorKind int

const (
	// ErrDuplicatedKey reports a message key registered twice, or a
	// language supplied twice within one AddMessage call.
	ErrDuplicatedKey ErrorKind = iota
	// ErrDuplicatedArgument reports a placeholder name repeated among
	// the declared placeholders or among the bindings of one call.
	ErrDuplicatedArgument
	// ErrUnknownLanguage reports a language outside the fixed set the
	// Translator was constructed with.
	ErrUnknownLanguage
	// ErrUnknownArgument reports a binding for a placeholder the
	// message never declared.
	ErrUnknownArgument
	// ErrMissingKey reports a Translate call for an unregistered key.
	ErrMissingKey
	// ErrMissingLanguage reports an AddMessage call that left at least
	// one supported language without a template.
	ErrMissingLanguage
	// ErrSubstitutionEngine reports a failure building or applying the
	// multi-pattern matcher. Not reachable through normal use.
	ErrSubstitutionEngine
)

// Error is the error type returned by Translator operations. Value holds
// the offending key, language, or placeholder name.
//
// Errors compare structurally: errors.Is(err, &Error{Kind: ErrUnknownLanguage,
// Value: "cz"}) matches exactly that failure, and a target with an empty
// Value matches any error of the same kind.
type Error struct {
	Kind  ErrorKind
	Value string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrDuplicatedKey:
		return fmt.Sprintf("duplicated key %q", e.Value)
	case ErrDuplicatedArgument:
		return fmt.Sprintf("duplicated argument %q", e.Value)
	case ErrUnknownLanguage:
		return fmt.Sprintf("unknown language key: %q", e.Value)
	case ErrUnknownArgument:
		return fmt.Sprintf("unknown argument: %q", e.Value)
	case ErrMissingKey:
		return fmt.Sprintf("key not found: %q", e.Value)
	case ErrMissingLanguage:
		return fmt.Sprintf("language not found: %q", e.Value)
	case ErrSubstitutionEngine:
		return fmt.Sprintf("replacement error: %s", e.Value)
	default:
		return fmt.Sprintf("translator error %d: %q", int(e.Kind), e.Value)
	}
}

// Is reports whether target is an *Error of the same kind. A target with
// an empty Value acts as a kind-only match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Value == "" || e.Value == t.Value)
}

func newError(kind ErrorKind, value string) *Error {
	return &Error{Kind: kind, Value: value}
}
