package jsondoc

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const indentStep = 4

// Print writes n to w with four spaces of indentation per nesting level.
func Print(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	printNode(bw, n, 0)
	return bw.Flush()
}

// Sprint returns the printed form of n.
func Sprint(n Node) string {
	var sb strings.Builder
	printNode(&sb, n, 0)
	return sb.String()
}

type stringWriter interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

func writeIndent(w stringWriter, indent int) {
	for i := 0; i < indent; i++ {
		_ = w.WriteByte(' ')
	}
}

func printNode(w stringWriter, n Node, indent int) {
	switch n.kind {
	case KindNull:
		_, _ = w.WriteString("null")
	case KindBool:
		_, _ = w.WriteString(strconv.FormatBool(n.b))
	case KindInt:
		_, _ = w.WriteString(strconv.Itoa(n.i))
	case KindFloat:
		_, _ = w.WriteString(formatFloat(n.f))
	case KindString:
		writeString(w, n.s)
	case KindArray:
		if len(n.arr) == 0 {
			_, _ = w.WriteString("[]")
			return
		}
		_, _ = w.WriteString("[\n")
		for i, item := range n.arr {
			if i > 0 {
				_, _ = w.WriteString(",\n")
			}
			writeIndent(w, indent+indentStep)
			printNode(w, item, indent+indentStep)
		}
		_ = w.WriteByte('\n')
		writeIndent(w, indent)
		_ = w.WriteByte(']')
	case KindObject:
		if len(n.obj) == 0 {
			_, _ = w.WriteString("{}")
			return
		}
		keys := make([]string, 0, len(n.obj))
		for k := range n.obj {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		_, _ = w.WriteString("{\n")
		for i, k := range keys {
			if i > 0 {
				_, _ = w.WriteString(",\n")
			}
			writeIndent(w, indent+indentStep)
			writeString(w, k)
			_, _ = w.WriteString(": ")
			printNode(w, n.obj[k], indent+indentStep)
		}
		_ = w.WriteByte('\n')
		writeIndent(w, indent)
		_ = w.WriteByte('}')
	}
}

// formatFloat keeps a fraction or exponent in the output so the value is
// read back as a Float. Non-finite values have no literal and print as null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func writeString(w stringWriter, s string) {
	_ = w.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\r':
			_, _ = w.WriteString(`\r`)
		case '\n':
			_, _ = w.WriteString(`\n`)
		case '\t':
			_, _ = w.WriteString(`\t`)
		case '"':
			_, _ = w.WriteString(`\"`)
		case '\\':
			_, _ = w.WriteString(`\\`)
		default:
			_ = w.WriteByte(c)
		}
	}
	_ = w.WriteByte('"')
}
