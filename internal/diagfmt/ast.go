package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mcfn/internal/ast"
	"mcfn/internal/source"
)

// FormatProgramTree writes an indented tree of the syntax tree with
// one node per line and its span.
func FormatProgramTree(w io.Writer, prog *ast.Program) error {
	fmt.Fprintf(w, "Program %s\n", prog.Span())
	for _, stmt := range prog.Stmts {
		writeNode(w, 1, stmt)
	}
	return nil
}

func writeNode(w io.Writer, depth int, n ast.Node) {
	indent := strings.Repeat("  ", depth)

	switch node := n.(type) {
	case *ast.Comment:
		fmt.Fprintf(w, "%sComment %q %s\n", indent, node.Text, node.Span())

	case *ast.Command:
		fmt.Fprintf(w, "%sCommand %q %s\n", indent, node.Name.Value, node.Span())
		for _, arg := range node.Args {
			writeNode(w, depth+1, arg)
		}

	case *ast.IntLit:
		fmt.Fprintf(w, "%sInt %d %s\n", indent, node.Value, node.Span())

	case *ast.FloatLit:
		fmt.Fprintf(w, "%sFloat %g %s\n", indent, node.Value, node.Span())

	case *ast.StringLit:
		fmt.Fprintf(w, "%sString %q %s\n", indent, node.Value, node.Span())

	case *ast.BoolLit:
		fmt.Fprintf(w, "%sBool %t %s\n", indent, node.Value, node.Span())

	case *ast.PathLit:
		fmt.Fprintf(w, "%sPath %q %s\n", indent, node.Value, node.Span())

	case *ast.Unary:
		fmt.Fprintf(w, "%sUnary %q %s\n", indent, node.Op.Text, node.Span())
		if node.X != nil {
			writeNode(w, depth+1, node.X)
		}

	case *ast.Range:
		fmt.Fprintf(w, "%sRange %s %s\n", indent, rangeLabel(node), node.Span())

	case *ast.Map:
		fmt.Fprintf(w, "%sMap %s\n", indent, node.Span())
		for i := range node.Fields {
			field := &node.Fields[i]
			fmt.Fprintf(w, "%s  Field %q %s\n", indent, field.Key.Value, field.Span())
			writeNode(w, depth+2, field.Value)
		}

	case *ast.Target:
		fmt.Fprintf(w, "%sTarget @%s %s\n", indent, node.Class.Value, node.Span())
		if node.Params != nil {
			for i := range node.Params.Fields {
				field := &node.Params.Fields[i]
				fmt.Fprintf(w, "%s  Field %q %s\n", indent, field.Key.Value, field.Span())
				if field.Value != nil {
					writeNode(w, depth+2, field.Value)
				}
			}
		}

	default:
		fmt.Fprintf(w, "%s%T %s\n", indent, n, n.Span())
	}
}

func rangeLabel(r *ast.Range) string {
	var sb strings.Builder
	if r.Lo != nil {
		fmt.Fprintf(&sb, "%d", r.Lo.Value)
	}
	sb.WriteString("..")
	if r.Hi != nil {
		fmt.Fprintf(&sb, "%d", r.Hi.Value)
	}
	return sb.String()
}

// FormatProgramJSON writes the syntax tree as JSON. Every node object
// carries a "kind" tag and its "span".
func FormatProgramJSON(w io.Writer, prog *ast.Program) error {
	stmts := make([]any, 0, len(prog.Stmts))
	for _, stmt := range prog.Stmts {
		stmts = append(stmts, nodeJSON(stmt))
	}
	root := map[string]any{
		"kind":       "program",
		"span":       prog.Span(),
		"statements": stmts,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(root)
}

func nodeJSON(n ast.Node) any {
	switch node := n.(type) {
	case *ast.Comment:
		return obj("comment", node.Span(), "text", node.Text)

	case *ast.Command:
		args := make([]any, 0, len(node.Args))
		for _, arg := range node.Args {
			args = append(args, nodeJSON(arg))
		}
		out := obj("command", node.Span(), "name", node.Name.Value)
		out["slash"] = node.Slash != nil
		if len(args) > 0 {
			out["args"] = args
		}
		return out

	case *ast.IntLit:
		return obj("int", node.Span(), "value", node.Value)

	case *ast.FloatLit:
		return obj("float", node.Span(), "value", node.Value)

	case *ast.StringLit:
		return obj("string", node.Span(), "value", node.Value)

	case *ast.BoolLit:
		return obj("bool", node.Span(), "value", node.Value)

	case *ast.PathLit:
		return obj("path", node.Span(), "value", node.Value)

	case *ast.Unary:
		out := obj("unary", node.Span(), "op", node.Op.Text)
		if node.X != nil {
			out["expr"] = nodeJSON(node.X)
		}
		return out

	case *ast.Range:
		out := obj("range", node.Span(), "", nil)
		if node.Lo != nil {
			out["start"] = node.Lo.Value
		}
		if node.Hi != nil {
			out["end"] = node.Hi.Value
		}
		return out

	case *ast.Map:
		fields := make([]any, 0, len(node.Fields))
		for i := range node.Fields {
			field := &node.Fields[i]
			fields = append(fields, map[string]any{
				"key":   field.Key.Value,
				"span":  field.Span(),
				"value": nodeJSON(field.Value),
			})
		}
		return obj("map", node.Span(), "fields", fields)

	case *ast.Target:
		out := obj("target", node.Span(), "class", node.Class.Value)
		if node.Params != nil {
			fields := make([]any, 0, len(node.Params.Fields))
			for i := range node.Params.Fields {
				field := &node.Params.Fields[i]
				fj := map[string]any{
					"key":  field.Key.Value,
					"span": field.Span(),
				}
				if field.Value != nil {
					fj["value"] = nodeJSON(field.Value)
				}
				fields = append(fields, fj)
			}
			out["params"] = fields
		}
		return out

	default:
		return obj("node", n.Span(), "", nil)
	}
}

func obj(kind string, span source.Span, key string, value any) map[string]any {
	out := map[string]any{
		"kind": kind,
		"span": span,
	}
	if key != "" {
		out[key] = value
	}
	return out
}
