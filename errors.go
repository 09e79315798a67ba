package daffodil

import "strconv"

// ErrorCode is the closed set of fatal error tags the runtime can raise.
// Validation failures are not part of this set — they are soft
// diagnostics (see Diagnostic) and never set PState.Error/UState.Error.
type ErrorCode uint8

const (
	// ErrStreamEOF reports that the stream ran out of bytes mid-primitive.
	ErrStreamEOF ErrorCode = iota + 1
	// ErrStreamError reports an underlying I/O error from the stream.
	ErrStreamError
	// ErrHexBinaryAlloc reports that alloc_hexBinary failed to obtain a
	// buffer of the requested size.
	ErrHexBinaryAlloc
	// ErrChoiceKey reports that a choice discriminator matched no branch.
	ErrChoiceKey
	// ErrArrayBounds reports an array occurrence count outside
	// [minOccurs, maxOccurs].
	ErrArrayBounds
	// ErrParseBool reports an integer value that matched neither the
	// true nor the false representation of a boolean.
	ErrParseBool
	// ErrLeftoverData reports unconsumed bits or bytes after a root parse.
	ErrLeftoverData
	// ErrMaxDepth reports that nested parseSelf/unparseSelf recursion
	// exceeded the configured guard (see SPEC_FULL §3).
	ErrMaxDepth
)

func (c ErrorCode) String() string {
	switch c {
	case ErrStreamEOF:
		return "StreamEOF"
	case ErrStreamError:
		return "StreamError"
	case ErrHexBinaryAlloc:
		return "HexBinaryAlloc"
	case ErrChoiceKey:
		return "ChoiceKey"
	case ErrArrayBounds:
		return "ArrayBounds"
	case ErrParseBool:
		return "ParseBool"
	case ErrLeftoverData:
		return "LeftoverData"
	case ErrMaxDepth:
		return "MaxDepth"
	default:
		return "Unknown(" + strconv.Itoa(int(c)) + ")"
	}
}

// argKind distinguishes which field of Error.arg is populated, so Error
// never has to allocate an interface-boxed value for the common cases.
type argKind uint8

const (
	argNone argKind = iota
	argChar
	argInt
	argString
)

// Error is a tagged error value with one formatted-argument slot. The
// runtime never owns the storage behind an argString argument — it is
// always a slice into caller- or schema-owned memory, or a literal.
type Error struct {
	Code ErrorCode

	kind argKind
	ch   rune
	i    int64
	s    string
}

// NewErrorChar builds an Error carrying a single character argument.
func NewErrorChar(code ErrorCode, ch rune) *Error {
	return &Error{Code: code, kind: argChar, ch: ch}
}

// NewErrorInt builds an Error carrying a 64-bit integer argument.
func NewErrorInt(code ErrorCode, v int64) *Error {
	return &Error{Code: code, kind: argInt, i: v}
}

// NewErrorString builds an Error carrying a borrowed string argument.
func NewErrorString(code ErrorCode, s string) *Error {
	return &Error{Code: code, kind: argString, s: s}
}

// NewError builds an Error with no argument.
func NewError(code ErrorCode) *Error {
	return &Error{Code: code}
}

// errorFormats is the table-driven format lookup mentioned in spec §7:
// one format string per code, matched against the argument actually
// carried by the Error. Mirrors the teacher's WireType.String() switch
// in shape: a single place that knows how to render every tag.
var errorFormats = map[ErrorCode]string{
	ErrStreamEOF:      "unexpected end of stream",
	ErrStreamError:    "stream I/O error",
	ErrHexBinaryAlloc: "failed to allocate %d bytes for hexBinary",
	ErrChoiceKey:      "no choice branch matches discriminator %d",
	ErrArrayBounds:    "array occurrence count %d is outside [minOccurs, maxOccurs]",
	ErrParseBool:      "boolean value %d matched neither true_rep nor false_rep",
	ErrLeftoverData:   "%d leftover bits after root parse",
	ErrMaxDepth:       "max parse/unparse recursion depth exceeded",
}

// Error renders the error using the table in errorFormats, substituting
// whichever argument kind this Error actually carries. It allocates (via
// strconv/string concatenation) and so must only be called at the CLI
// boundary or in tests, never from inside the hot parse/unparse path.
func (e *Error) Error() string {
	format, ok := errorFormats[e.Code]
	if !ok {
		format = e.Code.String()
	}

	switch e.kind {
	case argChar:
		return replacePlaceholder(format, strconv.QuoteRune(e.ch))
	case argInt:
		return replacePlaceholder(format, strconv.FormatInt(e.i, 10))
	case argString:
		return replacePlaceholder(format, e.s)
	default:
		return format
	}
}

// replacePlaceholder substitutes the first "%d"/"%c"/"%s"-shaped verb in
// format with value. The formats above only ever carry at most one verb,
// so a single scan suffices and keeps this out of fmt's reflection-driven
// path.
func replacePlaceholder(format, value string) string {
	for i := 0; i+1 < len(format); i++ {
		if format[i] == '%' {
			switch format[i+1] {
			case 'd', 'c', 's':
				return format[:i] + value + format[i+2:]
			}
		}
	}
	return format
}

// ErrorCode reports the error's tag.
func (e *Error) ErrorCode() ErrorCode { return e.Code }
