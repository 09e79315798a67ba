package daffodil

// MaxDiagnostics bounds the number of diagnostics a single parse or
// unparse run will retain. Additional diagnostics past this limit are
// silently dropped, per spec §3's Diagnostics invariant.
const MaxDiagnostics = 64

// DiagnosticKind distinguishes the soft-validation families from spec
// §4.2 and §7.
type DiagnosticKind uint8

const (
	DiagFixedAttribute DiagnosticKind = iota
	DiagEnumeration
	DiagRange
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagFixedAttribute:
		return "FixedAttribute"
	case DiagEnumeration:
		return "Enumeration"
	case DiagRange:
		return "Range"
	default:
		return "Unknown"
	}
}

// Diagnostic is one accumulated soft-validation failure: a named field,
// the kind of check that failed, and a short human-readable detail set
// by the validator that recorded it (a fixed string, never formatted).
type Diagnostic struct {
	Kind  DiagnosticKind
	Field string
	Detail string
}

// Diagnostics is the bounded sequence of validation failures accumulated
// during a single parse or unparse run.
type Diagnostics struct {
	entries []Diagnostic
	dropped int
}

// Add appends d, silently dropping it (and counting the drop) once the
// sequence has reached MaxDiagnostics.
func (d *Diagnostics) Add(diag Diagnostic) {
	if len(d.entries) >= MaxDiagnostics {
		d.dropped++
		return
	}
	d.entries = append(d.entries, diag)
}

// Entries returns the accumulated diagnostics in production order.
func (d *Diagnostics) Entries() []Diagnostic { return d.entries }

// Dropped reports how many diagnostics were discarded past the bound.
func (d *Diagnostics) Dropped() int { return d.dropped }

// Len reports how many diagnostics are currently held.
func (d *Diagnostics) Len() int { return len(d.entries) }

// Reset clears the diagnostics buffer for reuse across runs, matching
// the "must be consulted and either cleared or discarded between runs"
// requirement in spec §5.
func (d *Diagnostics) Reset() {
	d.entries = d.entries[:0]
	d.dropped = 0
}
