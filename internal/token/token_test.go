package token

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Ident"},
		{IntLit, "IntLit"},
		{DotDot, "DotDot"},
		{LtGt, "LtGt"},
		{FormatSel, "FormatSel"},
		{Colon, "Colon"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestToken_Classification(t *testing.T) {
	literals := []Kind{IntLit, FloatLit, StringLit, BoolLit, Path}
	for _, k := range literals {
		if !(Token{Kind: k}).IsLiteral() {
			t.Errorf("%s should be a literal", k)
		}
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Error("Ident is not a literal")
	}

	unary := []Kind{Bang, Tilde, Caret, FormatSel}
	for _, k := range unary {
		if !(Token{Kind: k}).IsUnaryOp() {
			t.Errorf("%s should be a unary operator", k)
		}
	}
	if (Token{Kind: Minus}).IsUnaryOp() {
		t.Error("Minus is not a unary operator")
	}

	scoreboard := []Kind{Assign, LtGt, PlusAssign, MinusAssign, StarAssign, SlashAssign, Gt, Lt, Star}
	for _, k := range scoreboard {
		if !(Token{Kind: k}).IsScoreboardOp() {
			t.Errorf("%s should be a scoreboard operator", k)
		}
	}
	if (Token{Kind: Bang}).IsScoreboardOp() {
		t.Error("Bang is not a scoreboard operator")
	}
}
