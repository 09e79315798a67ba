package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	daffodil "github.com/dfdl-go/runtime"
)

// schema bundles everything the parse/unparse subcommands need for
// one of the built-in seed record types: how to build a fresh zero
// value, and how to build one from an ordered list of field text: the
// leaf values flattened from an XML infoset (for unparse), in the same
// order the ERD writes them.
type schema struct {
	name       string
	newRecord  func() daffodil.InfosetNode
	fromFields func(fields []string) (daffodil.Unparseable, error)
	fieldHelp  string
}

var schemas = map[string]schema{
	"simple-byte": {
		name:      "simple-byte",
		newRecord: func() daffodil.InfosetNode { return &daffodil.SimpleByte{} },
		fieldHelp: "value",
		fromFields: func(f []string) (daffodil.Unparseable, error) {
			v, err := parseUint8(f, 0)
			if err != nil {
				return nil, err
			}
			return &daffodil.SimpleByte{Value: v}, nil
		},
	},
	"mixed-endian": {
		name:      "mixed-endian",
		newRecord: func() daffodil.InfosetNode { return &daffodil.MixedEndian{} },
		fieldHelp: "a,b",
		fromFields: func(f []string) (daffodil.Unparseable, error) {
			if len(f) != 2 {
				return nil, fmt.Errorf("mixed-endian needs 2 fields: %s", "a,b")
			}
			a, err := strconv.ParseInt(f[0], 10, 32)
			if err != nil {
				return nil, err
			}
			b, err := strconv.ParseUint(f[1], 10, 16)
			if err != nil {
				return nil, err
			}
			return &daffodil.MixedEndian{A: int32(a), B: uint16(b)}, nil
		},
	},
	"signed-17": {
		name:      "signed-17",
		newRecord: func() daffodil.InfosetNode { return &daffodil.Signed17{} },
		fieldHelp: "value",
		fromFields: func(f []string) (daffodil.Unparseable, error) {
			if len(f) != 1 {
				return nil, fmt.Errorf("signed-17 needs 1 field: value")
			}
			v, err := strconv.ParseInt(f[0], 10, 64)
			if err != nil {
				return nil, err
			}
			return &daffodil.Signed17{Value: v}, nil
		},
	},
	"var-array": {
		name:      "var-array",
		newRecord: func() daffodil.InfosetNode { return &daffodil.VarArray{} },
		fieldHelp: "count,item1,item2,...",
		fromFields: func(f []string) (daffodil.Unparseable, error) {
			if len(f) < 1 {
				return nil, fmt.Errorf("var-array needs at least 1 field: count,item1,item2,...")
			}
			count, err := strconv.ParseUint(f[0], 10, 8)
			if err != nil {
				return nil, err
			}
			if int(count) != len(f)-1 {
				return nil, fmt.Errorf("var-array: count %d does not match %d items", count, len(f)-1)
			}
			items := make([]uint8, len(f)-1)
			for i, s := range f[1:] {
				v, err := strconv.ParseUint(s, 10, 8)
				if err != nil {
					return nil, err
				}
				items[i] = uint8(v)
			}
			return &daffodil.VarArray{Items: items}, nil
		},
	},
	"choice": {
		name:      "choice",
		newRecord: func() daffodil.InfosetNode { return &daffodil.ChoiceRecord{} },
		fieldHelp: "tag,value... (foo: tag,int32; bar: tag,x,y,z)",
		fromFields: func(f []string) (daffodil.Unparseable, error) {
			if len(f) < 2 {
				return nil, fmt.Errorf("choice needs at least 2 fields: tag,value...")
			}
			tag, err := strconv.ParseUint(f[0], 10, 8)
			if err != nil {
				return nil, err
			}
			r := &daffodil.ChoiceRecord{Tag: uint8(tag)}
			switch r.Tag {
			case daffodil.ChoiceTagFooA, daffodil.ChoiceTagFooB:
				v, err := strconv.ParseInt(f[1], 10, 32)
				if err != nil {
					return nil, err
				}
				r.Foo = int32(v)
			case daffodil.ChoiceTagBarA, daffodil.ChoiceTagBarB:
				if len(f) != 4 {
					return nil, fmt.Errorf("bar tag needs 4 fields: tag,x,y,z")
				}
				x, err := strconv.ParseFloat(f[1], 64)
				if err != nil {
					return nil, err
				}
				y, err := strconv.ParseFloat(f[2], 64)
				if err != nil {
					return nil, err
				}
				z, err := strconv.ParseFloat(f[3], 64)
				if err != nil {
					return nil, err
				}
				r.Bar.X, r.Bar.Y, r.Bar.Z = x, y, z
			}
			return r, nil
		},
	},
	"fixed-value": {
		name:      "fixed-value",
		newRecord: func() daffodil.InfosetNode { return &daffodil.FixedValueRecord{} },
		fieldHelp: "version",
		fromFields: func(f []string) (daffodil.Unparseable, error) {
			v, err := parseUint8(f, 0)
			if err != nil {
				return nil, err
			}
			return &daffodil.FixedValueRecord{Version: v}, nil
		},
	},
	"payload": {
		name:      "payload",
		newRecord: func() daffodil.InfosetNode { return &daffodil.Payload{} },
		fieldHelp: "length,hex-bytes",
		fromFields: func(f []string) (daffodil.Unparseable, error) {
			if len(f) != 2 {
				return nil, fmt.Errorf("payload needs 2 fields: length,hex-bytes")
			}
			length, err := strconv.ParseUint(f[0], 10, 8)
			if err != nil {
				return nil, err
			}
			data, err := hex.DecodeString(f[1])
			if err != nil {
				return nil, err
			}
			if len(data) > daffodil.MaxPayloadLen {
				return nil, fmt.Errorf("payload: %d bytes exceeds max %d", len(data), daffodil.MaxPayloadLen)
			}
			if int(length) != len(data) {
				return nil, fmt.Errorf("payload: length %d does not match %d body bytes", length, len(data))
			}
			return &daffodil.Payload{Length: uint8(len(data)), Body: daffodil.HexBinary{Data: data, Dynamic: true}}, nil
		},
	},
}

func parseUint8(fields []string, idx int) (uint8, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("missing field %d", idx)
	}
	v, err := strconv.ParseUint(fields[idx], 10, 8)
	return uint8(v), err
}

func listSchemaNames() string {
	names := make([]string, 0, len(schemas))
	for n := range schemas {
		names = append(names, n)
	}
	return strings.Join(names, ", ")
}

// newParseable adapts a schema's newRecord (which only needs to
// satisfy Base() for the registry's shared shape) to the narrower
// Parseable interface parse.go actually requires.
func newParseable(s schema) daffodil.Parseable {
	return s.newRecord().(daffodil.Parseable)
}
