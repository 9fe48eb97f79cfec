package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mcfn/internal/ast"
	"mcfn/internal/lexer"
	"mcfn/internal/source"
)

func parseSrc(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	return Parse(fs.Get(id))
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

// parseExprSrc parses src as a single expression, bypassing the
// statement layer.
func parseExprSrc(t *testing.T, src string) (ast.Expr, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	return New(lexer.New(fs.Get(id))).parseExpr()
}

func mustParseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parseExprSrc(t, src)
	if err != nil {
		t.Fatalf("parse expr %q: %v", src, err)
	}
	return expr
}

func TestParse_Empty(t *testing.T) {
	prog := mustParse(t, "")
	if len(prog.Stmts) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Stmts))
	}
	if !prog.Span().Empty() {
		t.Errorf("empty program span = %v, want zero width", prog.Span())
	}
}

func TestParse_Comment(t *testing.T) {
	prog := mustParse(t, "# hello")
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}
	c, ok := prog.Stmts[0].(*ast.Comment)
	if !ok {
		t.Fatalf("statement is %T, want *ast.Comment", prog.Stmts[0])
	}
	if c.Text != "hello" {
		t.Errorf("Text = %q, want %q", c.Text, "hello")
	}
}

func TestParse_Command(t *testing.T) {
	t.Run("bare name with slash", func(t *testing.T) {
		prog := mustParse(t, "/kill")
		cmd, ok := prog.Stmts[0].(*ast.Command)
		if !ok {
			t.Fatalf("statement is %T, want *ast.Command", prog.Stmts[0])
		}
		if cmd.Slash == nil {
			t.Error("expected leading slash token")
		}
		if cmd.Name.Value != "kill" {
			t.Errorf("Name = %q, want %q", cmd.Name.Value, "kill")
		}
		if len(cmd.Args) != 0 {
			t.Errorf("got %d args, want 0", len(cmd.Args))
		}
	})

	t.Run("slash is optional", func(t *testing.T) {
		prog := mustParse(t, "kill @a")
		cmd := prog.Stmts[0].(*ast.Command)
		if cmd.Slash != nil {
			t.Error("expected no slash token")
		}
		if cmd.Name.Value != "kill" {
			t.Errorf("Name = %q, want %q", cmd.Name.Value, "kill")
		}
	})

	t.Run("integer arguments", func(t *testing.T) {
		prog := mustParse(t, "/fill 1 2")
		cmd := prog.Stmts[0].(*ast.Command)
		if len(cmd.Args) != 2 {
			t.Fatalf("got %d args, want 2", len(cmd.Args))
		}
		for i, want := range []int32{1, 2} {
			lit, ok := cmd.Args[i].(*ast.IntLit)
			if !ok {
				t.Fatalf("arg %d is %T, want *ast.IntLit", i, cmd.Args[i])
			}
			if lit.Value != want {
				t.Errorf("arg %d = %d, want %d", i, lit.Value, want)
			}
		}
	})

	t.Run("mixed literal arguments", func(t *testing.T) {
		prog := mustParse(t, `/give "sword" 3.5 true minecraft:block/stone`)
		cmd := prog.Stmts[0].(*ast.Command)
		if len(cmd.Args) != 4 {
			t.Fatalf("got %d args, want 4", len(cmd.Args))
		}
		if s := cmd.Args[0].(*ast.StringLit); s.Value != "sword" {
			t.Errorf("string arg = %q, want %q", s.Value, "sword")
		}
		if f := cmd.Args[1].(*ast.FloatLit); f.Value != 3.5 {
			t.Errorf("float arg = %g, want 3.5", f.Value)
		}
		if b := cmd.Args[2].(*ast.BoolLit); !b.Value {
			t.Error("bool arg = false, want true")
		}
		if pth := cmd.Args[3].(*ast.PathLit); pth.Value != "minecraft:block/stone" {
			t.Errorf("path arg = %q", pth.Value)
		}
	})
}

func TestParse_MultiLine(t *testing.T) {
	src := "/kill\n# note\n\n/say \"hi\"\n"
	prog := mustParse(t, src)
	if len(prog.Stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*ast.Command); !ok {
		t.Errorf("statement 0 is %T, want *ast.Command", prog.Stmts[0])
	}
	if _, ok := prog.Stmts[1].(*ast.Comment); !ok {
		t.Errorf("statement 1 is %T, want *ast.Comment", prog.Stmts[1])
	}
	if _, ok := prog.Stmts[2].(*ast.Command); !ok {
		t.Errorf("statement 2 is %T, want *ast.Command", prog.Stmts[2])
	}
}

func TestParseExpr_Range(t *testing.T) {
	tests := []struct {
		input  string
		lo, hi *int32
	}{
		{"0..10", ptr(int32(0)), ptr(int32(10))},
		{"5..", ptr(int32(5)), nil},
		{"..7", nil, ptr(int32(7))},
		{"..", nil, nil},
		{"-3..3", ptr(int32(-3)), ptr(int32(3))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := mustParseExpr(t, tt.input).(*ast.Range)
			if !ok {
				t.Fatalf("expression is not *ast.Range")
			}
			checkBound(t, "lo", r.Lo, tt.lo)
			checkBound(t, "hi", r.Hi, tt.hi)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func checkBound(t *testing.T, name string, got *ast.IntLit, want *int32) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %d, want absent", name, got.Value)
	case want != nil && got == nil:
		t.Errorf("%s absent, want %d", name, *want)
	case want != nil && got.Value != *want:
		t.Errorf("%s = %d, want %d", name, got.Value, *want)
	}
}

func TestParseExpr_Target(t *testing.T) {
	t.Run("without parameters", func(t *testing.T) {
		tgt, ok := mustParseExpr(t, "@a").(*ast.Target)
		if !ok {
			t.Fatal("expression is not *ast.Target")
		}
		if tgt.Class.Value != "a" {
			t.Errorf("Class = %q, want %q", tgt.Class.Value, "a")
		}
		if tgt.Params != nil {
			t.Error("expected nil Params")
		}
	})

	t.Run("with parameters", func(t *testing.T) {
		tgt := mustParseExpr(t, `@e[type="zombie",limit=1]`).(*ast.Target)
		if tgt.Class.Value != "e" {
			t.Errorf("Class = %q, want %q", tgt.Class.Value, "e")
		}
		if tgt.Params == nil || len(tgt.Params.Fields) != 2 {
			t.Fatalf("Params = %+v, want 2 fields", tgt.Params)
		}

		f0 := tgt.Params.Fields[0]
		if f0.Key.Value != "type" {
			t.Errorf("field 0 key = %q", f0.Key.Value)
		}
		if s, ok := f0.Value.(*ast.StringLit); !ok || s.Value != "zombie" {
			t.Errorf("field 0 value = %#v, want StringLit zombie", f0.Value)
		}
		if f0.Comma == nil {
			t.Error("field 0 should record its trailing comma")
		}

		f1 := tgt.Params.Fields[1]
		if f1.Key.Value != "limit" {
			t.Errorf("field 1 key = %q", f1.Key.Value)
		}
		if n, ok := f1.Value.(*ast.IntLit); !ok || n.Value != 1 {
			t.Errorf("field 1 value = %#v, want IntLit 1", f1.Value)
		}
		if f1.Comma != nil {
			t.Error("field 1 has no trailing comma")
		}
	})

	t.Run("comma between fields is optional", func(t *testing.T) {
		tgt := mustParseExpr(t, "@e[a=1 b=2]").(*ast.Target)
		if len(tgt.Params.Fields) != 2 {
			t.Fatalf("got %d fields, want 2", len(tgt.Params.Fields))
		}
	})

	t.Run("range parameter", func(t *testing.T) {
		tgt := mustParseExpr(t, "@e[distance=0..10]").(*ast.Target)
		r, ok := tgt.Params.Fields[0].Value.(*ast.Range)
		if !ok {
			t.Fatalf("value is %T, want *ast.Range", tgt.Params.Fields[0].Value)
		}
		if r.Lo.Value != 0 || r.Hi.Value != 10 {
			t.Errorf("range = %d..%d, want 0..10", r.Lo.Value, r.Hi.Value)
		}
	})
}

func TestParseExpr_TableFlagFields(t *testing.T) {
	t.Run("value absent before closing bracket", func(t *testing.T) {
		tgt := mustParseExpr(t, "@e[tag=]").(*ast.Target)
		if v := tgt.Params.Fields[0].Value; v != nil {
			t.Errorf("value = %#v, want nil", v)
		}
	})

	t.Run("value absent before comma", func(t *testing.T) {
		tgt := mustParseExpr(t, "@e[tag=,limit=1]").(*ast.Target)
		if len(tgt.Params.Fields) != 2 {
			t.Fatalf("got %d fields, want 2", len(tgt.Params.Fields))
		}
		if v := tgt.Params.Fields[0].Value; v != nil {
			t.Errorf("field 0 value = %#v, want nil", v)
		}
	})

	t.Run("bare negation", func(t *testing.T) {
		tgt := mustParseExpr(t, "@e[tag=!]").(*ast.Target)
		u, ok := tgt.Params.Fields[0].Value.(*ast.Unary)
		if !ok {
			t.Fatalf("value is %T, want *ast.Unary", tgt.Params.Fields[0].Value)
		}
		if u.X != nil {
			t.Errorf("operand = %#v, want nil", u.X)
		}
	})

	t.Run("negated value", func(t *testing.T) {
		tgt := mustParseExpr(t, "@e[tag=!5]").(*ast.Target)
		u := tgt.Params.Fields[0].Value.(*ast.Unary)
		n, ok := u.X.(*ast.IntLit)
		if !ok || n.Value != 5 {
			t.Errorf("operand = %#v, want IntLit 5", u.X)
		}
	})
}

func TestParseExpr_Map(t *testing.T) {
	m, ok := mustParseExpr(t, `{"a": 1, "b": {"c": 2}}`).(*ast.Map)
	if !ok {
		t.Fatal("expression is not *ast.Map")
	}
	if len(m.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(m.Fields))
	}
	if m.Fields[0].Key.Value != "a" {
		t.Errorf("field 0 key = %q", m.Fields[0].Key.Value)
	}
	inner, ok := m.Fields[1].Value.(*ast.Map)
	if !ok {
		t.Fatalf("field 1 value is %T, want nested *ast.Map", m.Fields[1].Value)
	}
	if inner.Fields[0].Key.Value != "c" {
		t.Errorf("nested key = %q", inner.Fields[0].Key.Value)
	}

	// A map's span runs from the opening to the closing brace.
	if m.Span() != m.LBrace.Span.Cover(m.RBrace.Span) {
		t.Errorf("map span = %v", m.Span())
	}
}

func TestParseExpr_Unary(t *testing.T) {
	tests := []struct {
		input string
		op    string
	}{
		{"~1", "~"},
		{"^-3", "^"},
		{"!true", "!"},
		{"~1.5", "~"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, ok := mustParseExpr(t, tt.input).(*ast.Unary)
			if !ok {
				t.Fatal("expression is not *ast.Unary")
			}
			if u.Op.Text != tt.op {
				t.Errorf("op = %q, want %q", u.Op.Text, tt.op)
			}
			if u.X == nil {
				t.Error("operand missing")
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"dangling operator", "/cmd !", ErrUnexpectedEOF},
		{"bare identifier argument", "/say hello", ErrUnexpectedToken},
		{"missing command name", "/", ErrUnexpectedEOF},
		{"bracket cannot start a statement", "[", ErrUnexpectedToken},
		{"unclosed selector", "/kill @e[type=", ErrUnexpectedEOF},
		{"selector key must be an identifier", "/kill @e[1=2]", ErrUnexpectedToken},
		{"unclosed map", `/data {"a": 1`, ErrUnexpectedEOF},
		{"unrecognized character", "$", ErrLex},
		{"int overflow", "/fill 2147483648", ErrLex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSrc(t, tt.input)
			if err == nil {
				t.Fatalf("parse %q: expected error", tt.input)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error type %T, want *Error", err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("error kind %v, want %v (err: %v)", perr.Kind, tt.kind, err)
			}
			if tt.kind == ErrLex && perr.Lex == nil {
				t.Error("ErrLex must carry its lexer cause")
			}
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	src := "# setup\n/fill 1 2 ~3\n/kill @e[type=\"zombie\",limit=0..5,tag=!]\n/data {\"a\": 1}\n"

	first := mustParse(t, src)
	second := mustParse(t, src)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two parses of the same input differ (-first +second):\n%s", diff)
	}
}

func TestParse_SpanContainment(t *testing.T) {
	src := "/kill @e[type=\"zombie\",limit=0..5] {\"a\": !1} ~2\n# done"
	prog := mustParse(t, src)

	for _, stmt := range prog.Stmts {
		checkSpans(t, stmt)
		if !covers(prog.Span(), stmt.Span()) {
			t.Errorf("program span %v does not cover statement span %v",
				prog.Span(), stmt.Span())
		}
	}
}

func covers(outer, inner source.Span) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

// checkSpans walks the node and asserts that every child span lies
// within its parent's span.
func checkSpans(t *testing.T, n ast.Node) {
	t.Helper()

	check := func(children ...ast.Node) {
		t.Helper()
		for _, c := range children {
			if c == nil {
				continue
			}
			if !covers(n.Span(), c.Span()) {
				t.Errorf("%T span %v does not cover %T span %v", n, n.Span(), c, c.Span())
			}
			checkSpans(t, c)
		}
	}
	checkSpan := func(sp source.Span) {
		t.Helper()
		if !covers(n.Span(), sp) {
			t.Errorf("%T span %v does not cover token span %v", n, n.Span(), sp)
		}
	}

	switch v := n.(type) {
	case *ast.Command:
		if v.Slash != nil {
			checkSpan(v.Slash.Span)
		}
		check(v.Name)
		for _, arg := range v.Args {
			check(arg)
		}
	case *ast.Comment:
		checkSpan(v.Tok.Span)
	case *ast.Unary:
		checkSpan(v.Op.Span)
		if v.X != nil {
			check(v.X)
		}
	case *ast.Range:
		checkSpan(v.Dots.Span)
		if v.Lo != nil {
			check(v.Lo)
		}
		if v.Hi != nil {
			check(v.Hi)
		}
	case *ast.Map:
		checkSpan(v.LBrace.Span)
		checkSpan(v.RBrace.Span)
		for i := range v.Fields {
			f := &v.Fields[i]
			check(&f.Key)
			checkSpan(f.Colon.Span)
			check(f.Value)
		}
	case *ast.Target:
		checkSpan(v.At.Span)
		check(v.Class)
		if v.Params != nil {
			check(v.Params)
		}
	case *ast.Table[ast.Ident]:
		checkSpan(v.LBracket.Span)
		checkSpan(v.RBracket.Span)
		for i := range v.Fields {
			f := &v.Fields[i]
			check(f.Key)
			checkSpan(f.Eq.Span)
			if f.Value != nil {
				check(f.Value)
			}
		}
	}
}
