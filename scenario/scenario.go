// Package scenario loads the seed test scenarios from spec §8 from an
// external YAML description and runs them against the root package's
// exported example schemas, supplementing the hand-written Go tests
// with a data-driven runner. cmd/daffodil's "selftest" subcommand
// drives this package directly.
package scenario

import (
	"bytes"
	"embed"
	"encoding/hex"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	daffodil "github.com/dfdl-go/runtime"
)

//go:embed testdata/seeds.yaml
var builtinSeedsYAML embed.FS

// LoadBuiltinSeeds loads the seed suite bundled into the binary, so
// callers like cmd/daffodil's "selftest" subcommand can self-check
// without needing the source tree's testdata directory on disk.
func LoadBuiltinSeeds() (*Suite, error) {
	f, err := builtinSeedsYAML.Open("testdata/seeds.yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario: open builtin seeds: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Case is one scenario entry: a named schema to exercise, the wire
// bytes (hex-encoded in the YAML source) to parse, and the expected
// outcome.
type Case struct {
	Name             string `yaml:"name"`
	Schema           string `yaml:"schema"`
	WireHex          string `yaml:"wire_hex"`
	ExpectErrorCode  string `yaml:"expect_error_code,omitempty"`
	ExpectDiagnostic int    `yaml:"expect_diagnostic_count"`
}

// Suite is a loaded collection of Cases.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Load parses a YAML document into a Suite.
func Load(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode suite: %w", err)
	}
	return &s, nil
}

// Result is the outcome of running one Case.
type Result struct {
	Case    Case
	Pass    bool
	Detail  string
	GotCode string
}

// Run executes every Case in s against the schema registry built into
// this package and reports each outcome. It never
// returns an error itself — a malformed or unknown-schema Case is
// reported as a failing Result so one bad fixture doesn't abort a
// whole suite.
func (s *Suite) Run() []Result {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, runCase(c))
	}
	return results
}

func runCase(c Case) Result {
	wire, hexErr := hex.DecodeString(c.WireHex)
	if hexErr != nil {
		return Result{Case: c, Pass: false, Detail: "invalid wire_hex: " + hexErr.Error()}
	}

	runFn, ok := schemaRegistry[c.Schema]
	if !ok {
		return Result{Case: c, Pass: false, Detail: "unknown schema: " + c.Schema}
	}

	diags, err := runFn(wire)

	if c.ExpectErrorCode != "" {
		if err == nil {
			return Result{Case: c, Pass: false, Detail: "expected error " + c.ExpectErrorCode + ", got none"}
		}
		got := err.ErrorCode().String()
		if got != c.ExpectErrorCode {
			return Result{Case: c, Pass: false, Detail: "error code mismatch", GotCode: got}
		}
		return Result{Case: c, Pass: true, GotCode: got}
	}

	if err != nil {
		return Result{Case: c, Pass: false, Detail: "unexpected error: " + err.Error()}
	}
	if diags.Len() != c.ExpectDiagnostic {
		return Result{Case: c, Pass: false, Detail: fmt.Sprintf("diagnostic count = %d, want %d", diags.Len(), c.ExpectDiagnostic)}
	}
	return Result{Case: c, Pass: true}
}

// schemaRunner parses wire against one named seed schema and returns
// its diagnostics (never nil) and any fatal error.
type schemaRunner func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error)

var schemaRegistry = map[string]schemaRunner{
	"simple-byte": func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error) {
		var r daffodil.SimpleByte
		return daffodil.ParseData(bytes.NewReader(wire), &r)
	},
	"mixed-endian": func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error) {
		var r daffodil.MixedEndian
		return daffodil.ParseData(bytes.NewReader(wire), &r)
	},
	"signed-17": func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error) {
		var r daffodil.Signed17
		return daffodil.ParseData(bytes.NewReader(wire), &r)
	},
	"var-array": func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error) {
		var r daffodil.VarArray
		return daffodil.ParseData(bytes.NewReader(wire), &r)
	},
	"choice": func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error) {
		var r daffodil.ChoiceRecord
		return daffodil.ParseData(bytes.NewReader(wire), &r)
	},
	"fixed-value": func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error) {
		var r daffodil.FixedValueRecord
		return daffodil.ParseData(bytes.NewReader(wire), &r)
	},
	"payload": func(wire []byte) (*daffodil.Diagnostics, *daffodil.Error) {
		var r daffodil.Payload
		return daffodil.ParseData(bytes.NewReader(wire), &r)
	},
}
