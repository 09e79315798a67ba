// Package xmlio is the reference XML reader/writer consumer that spec
// §8's testable properties need in order to assert concrete output:
// an infoset only becomes checkable once something renders it. It
// talks to the root package exclusively through daffodil.Visitor and
// daffodil.InfosetNode, never reaching into unexported runtime state.
package xmlio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dfdl-go/runtime"
)

// indentWidth matches the two-space-per-level convention the original
// xml_writer.c uses.
const indentWidth = 2

// Writer renders a walked infoset as indented XML text, writing the
// xmlns attribute only on the document's root element — the original
// C writer never repeats it on descendants, since they inherit the
// root's default namespace.
type Writer struct {
	w        io.Writer
	depth    int
	rootDone bool
	err      error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteInfoset walks root and writes it as a complete XML document,
// including the "<?xml?>" prolog.
func WriteInfoset(w io.Writer, root daffodil.InfosetNode) error {
	writer := NewWriter(w)
	if err := daffodil.Walk(root, writer); err != nil {
		return err
	}
	return writer.err
}

func (w *Writer) indent() {
	for i := 0; i < w.depth*indentWidth; i++ {
		io.WriteString(w.w, " ")
	}
}

func (w *Writer) writeOpenTag(erd *daffodil.ERD) {
	w.indent()
	if !w.rootDone {
		w.rootDone = true
		if ns := erd.Name.NamespaceURI; ns != "" {
			fmt.Fprintf(w.w, "<%s xmlns=%q>\n", erd.Name.String(), ns)
			w.depth++
			return
		}
	}
	fmt.Fprintf(w.w, "<%s>\n", erd.Name.String())
	w.depth++
}

func (w *Writer) writeCloseTag(erd *daffodil.ERD) {
	w.depth--
	w.indent()
	fmt.Fprintf(w.w, "</%s>\n", erd.Name.String())
}

// VisitStartDocument implements daffodil.Visitor, writing the XML
// prolog before any element content.
func (w *Writer) VisitStartDocument() error {
	_, err := io.WriteString(w.w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	return err
}

// VisitEndDocument implements daffodil.Visitor. The writer has no
// document-level trailer to emit; this exists so Writer satisfies the
// full Visitor interface per spec §6.1.
func (w *Writer) VisitEndDocument() error { return nil }

// VisitComplexStart implements daffodil.Visitor.
func (w *Writer) VisitComplexStart(erd *daffodil.ERD) error {
	w.writeOpenTag(erd)
	return nil
}

// VisitComplexEnd implements daffodil.Visitor.
func (w *Writer) VisitComplexEnd(erd *daffodil.ERD) error {
	w.writeCloseTag(erd)
	return nil
}

// VisitChoiceStart implements daffodil.Visitor. A choice group has no
// element of its own in the infoset — only the active branch does —
// so this is a no-op; the branch's own Visit* calls do the writing.
func (w *Writer) VisitChoiceStart(erd, branch *daffodil.ERD) error { return nil }

// VisitChoiceEnd implements daffodil.Visitor.
func (w *Writer) VisitChoiceEnd(erd *daffodil.ERD) error { return nil }

// VisitArrayStart implements daffodil.Visitor. Array occurrences are
// written as repeated sibling elements, not wrapped in a container
// tag, matching DFDL's infoset model.
func (w *Writer) VisitArrayStart(erd *daffodil.ERD, count int) error { return nil }

// VisitArrayEnd implements daffodil.Visitor.
func (w *Writer) VisitArrayEnd(erd *daffodil.ERD) error { return nil }

// VisitSimple implements daffodil.Visitor, writing a single leaf
// element with its rendered scalar value as text content.
func (w *Writer) VisitSimple(erd *daffodil.ERD, value interface{}) error {
	w.indent()
	fmt.Fprintf(w.w, "<%s>%s</%s>\n", erd.Name.String(), renderScalar(erd, value), erd.Name.String())
	return nil
}

// renderScalar formats value the way the original writer's
// per-primitive-type switch does: decimal for integers, Go's default
// float formatting, "true"/"false" for booleans, and upper-case hex
// for hexBinary.
func renderScalar(erd *daffodil.ERD, value interface{}) string {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case []byte:
		return fmt.Sprintf("%X", v)
	case string:
		return xmlEscape(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func xmlEscape(s string) string {
	var buf []byte
	xmlEscapeTo(&buf, s)
	return string(buf)
}

func xmlEscapeTo(buf *[]byte, s string) {
	for _, r := range s {
		switch r {
		case '<':
			*buf = append(*buf, "&lt;"...)
		case '>':
			*buf = append(*buf, "&gt;"...)
		case '&':
			*buf = append(*buf, "&amp;"...)
		default:
			*buf = append(*buf, string(r)...)
		}
	}
}
