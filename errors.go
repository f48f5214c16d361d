package curses

// ErrorKind classifies the ways the display layer can reject a session
// operation. The display reports failure as a bare sentinel, so the kind
// is assigned at the call site that observed it.
type ErrorKind uint8

const (
	KindWrite ErrorKind = iota + 1
	KindRefresh
	KindOutOfBounds
	KindAttribute
	KindRead
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindWrite:
		return "write rejected"
	case KindRefresh:
		return "refresh rejected"
	case KindOutOfBounds:
		return "position out of bounds"
	case KindAttribute:
		return "attribute change rejected"
	case KindRead:
		return "input read failed"
	case KindUnsupported:
		return "capability not supported"
	}
	return "unknown error"
}

// Error is the failure type returned by Session operations. Op names the
// operation that observed the failure, Kind the failure class.
type Error struct {
	Op   string
	Kind ErrorKind
}

func (e *Error) Error() string {
	if e.Op == "" {
		return "curses: " + e.Kind.String()
	}
	return "curses: " + e.Op + ": " + e.Kind.String()
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrOutOfBounds)
// works regardless of which operation produced err.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// Sentinel values for errors.Is. Each matches every error of its kind.
var (
	ErrWriteFailed     = &Error{Kind: KindWrite}
	ErrRefreshFailed   = &Error{Kind: KindRefresh}
	ErrOutOfBounds     = &Error{Kind: KindOutOfBounds}
	ErrAttributeFailed = &Error{Kind: KindAttribute}
	ErrReadFailed      = &Error{Kind: KindRead}
	ErrUnsupported     = &Error{Kind: KindUnsupported}
)

func opError(op string, kind ErrorKind) *Error {
	return &Error{Op: op, Kind: kind}
}
