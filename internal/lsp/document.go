package lsp

import (
	"strings"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solattr/internal/ast"
	"solattr/internal/driver"
	"solattr/internal/errors"
	"solattr/internal/parser"
	"solattr/token"
)

// line is the parse result of one attribute list. Spans inside are relative
// to the line: Line is always 1.
type line struct {
	nodes []ast.Node
	diags []errors.CompilerError
}

type document struct {
	path  string
	lines []line
}

func analyze(path, text string) *document {
	doc := &document{path: path}
	for _, src := range strings.Split(text, "\n") {
		nodes, parseErrors, scanErrors := parser.ParseSource(path, strings.TrimSuffix(src, "\r"))

		l := line{nodes: nodes}
		switch {
		case len(scanErrors) > 0:
			l.diags = append(l.diags, scanErrors[0].Diagnostic())
		case len(parseErrors) > 0:
			l.diags = append(l.diags, parseErrors[0].Diagnostic())
		default:
			for _, r := range driver.Dedupe(nodes) {
				l.diags = append(l.diags, errors.RepeatedAttribute(r.Node.String(), r.Node.Span(), r.First.Span()))
			}
		}
		doc.lines = append(doc.lines, l)
	}
	return doc
}

func (d *document) diagnostics() []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0)
	for i, l := range d.lines {
		for _, e := range l.diags {
			severity := protocol.DiagnosticSeverityError
			if e.Level == errors.Warning {
				severity = protocol.DiagnosticSeverityWarning
			}
			message := e.Message
			for _, note := range e.Notes {
				message += "\n" + note
			}
			if e.HelpText != "" {
				message += "\n" + e.HelpText
			}

			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    toRange(i, e.Span),
				Severity: &severity,
				Code:     &protocol.IntegerOrString{Value: e.Code},
				Source:   ptrString("solattr"),
				Message:  message,
			})
		}
	}
	return diagnostics
}

func toRange(lineIndex int, span token.Span) protocol.Range {
	start := column(span.Start)
	end := column(span.End)
	if end <= start {
		end = start + 1
	}
	l := u32(lineIndex)
	return protocol.Range{
		Start: protocol.Position{Line: l, Character: start},
		End:   protocol.Position{Line: l, Character: end},
	}
}

// column converts a 1-based column to a 0-based LSP character offset.
func column(pos token.Position) uint32 {
	return u32(pos.Column - 1)
}

// u32 clamps out-of-range values to zero.
func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return v
}

func ptrString(s string) *string {
	return &s
}
