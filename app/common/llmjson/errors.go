package llmjson

// Kind classifies a recovery failure.
type Kind int

const (
	// NoJSONFound means the text was empty or held no opening brace.
	NoJSONFound Kind = iota + 1
	// MalformedJSON means a candidate region was found but did not parse,
	// or its opening brace was never closed.
	MalformedJSON
)

func (k Kind) String() string {
	switch k {
	case NoJSONFound:
		return "no json found"
	case MalformedJSON:
		return "malformed json"
	default:
		return "unknown"
	}
}

var (
	ErrNoJSONFound   error = &Error{Kind: NoJSONFound}
	ErrMalformedJSON error = &Error{Kind: MalformedJSON}
)

// Error is returned by Extract and Unmarshal when no object can be recovered.
type Error struct {
	Kind Kind
	Err  error
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "llmjson: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "llmjson: " + e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind, so the package
// sentinels match any failure of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
