package xmlio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	daffodil "github.com/dfdl-go/runtime"
	"github.com/dfdl-go/runtime/xmlio"
)

type leaf struct {
	daffodil.InfosetBase
	A int32
	B uint8
}

func (l *leaf) Base() *daffodil.InfosetBase { return &l.InfosetBase }

func newLeafRecord(a int32, b uint8) *leaf {
	r := &leaf{A: a, B: b}
	aERD := &daffodil.ERD{Name: daffodil.NewNamedQName("", "a", "")}
	bERD := &daffodil.ERD{Name: daffodil.NewNamedQName("", "b", "")}
	r.ERD = &daffodil.ERD{
		Name:     daffodil.NewNamedQName("", "record", "urn:example"),
		TypeCode: daffodil.COMPLEX,
		Children: []daffodil.ChildField{
			{ERD: aERD, Get: func(p daffodil.InfosetNode) interface{} { return p.(*leaf).A }},
			{ERD: bERD, Get: func(p daffodil.InfosetNode) interface{} { return p.(*leaf).B }},
		},
	}
	return r
}

func TestWriteInfosetRootCarriesNamespace(t *testing.T) {
	r := newLeafRecord(7, 9)
	var buf bytes.Buffer
	require.NoError(t, xmlio.WriteInfoset(&buf, r))

	out := buf.String()
	assert.Contains(t, out, `<record xmlns="urn:example">`)
	assert.Contains(t, out, "<a>7</a>")
	assert.Contains(t, out, "<b>9</b>")
	assert.Contains(t, out, "</record>")
}

func TestWriteThenReadRoundTripsShape(t *testing.T) {
	r := newLeafRecord(-3, 255)
	var buf bytes.Buffer
	require.NoError(t, xmlio.WriteInfoset(&buf, r))

	el, err := xmlio.ReadInfoset(&buf)
	require.NoError(t, err)
	require.Equal(t, "record", el.Name)
	require.Len(t, el.Children, 2)
	assert.Equal(t, "a", el.Children[0].Name)
	assert.Equal(t, "-3", el.Children[0].Text)
	assert.Equal(t, "b", el.Children[1].Name)
	assert.Equal(t, "255", el.Children[1].Text)
}
