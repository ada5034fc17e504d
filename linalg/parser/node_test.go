package parser

import "testing"

func TestSpanContains(t *testing.T) {
	s := Span{Start: 2, End: 5}
	tests := []struct {
		offset int
		want   bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, true},
		{6, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestSpanUnionAndCovers(t *testing.T) {
	a := Span{Start: 3, End: 5}
	b := Span{Start: 1, End: 4}
	u := a.Union(b)
	if u != (Span{1, 5}) {
		t.Errorf("Union = %v, want 1-5", u)
	}
	if !u.Covers(a) || !u.Covers(b) {
		t.Errorf("%v should cover %v and %v", u, a, b)
	}
	if a.Covers(b) {
		t.Errorf("%v should not cover %v", a, b)
	}
}

func TestMatrixShape(t *testing.T) {
	one := Number{Value: 1}
	tests := []struct {
		name        string
		m           Matrix
		cols        int
		rectangular bool
	}{
		{"empty", Matrix{}, 0, false},
		{"2x2", Matrix{Rows: [][]Expr{{one, one}, {one, one}}}, 2, true},
		{"ragged", Matrix{Rows: [][]Expr{{one, one}, {one}}}, 2, false},
		{"column", Matrix{Rows: [][]Expr{{one}, {one}, {one}}}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Cols(); got != tt.cols {
				t.Errorf("Cols() = %d, want %d", got, tt.cols)
			}
			if got := tt.m.IsRectangular(); got != tt.rectangular {
				t.Errorf("IsRectangular() = %v, want %v", got, tt.rectangular)
			}
		})
	}
}

func TestChildrenFlattensMatrix(t *testing.T) {
	tree, _ := ParseString("[1,2;3,4]")
	children := Children(tree)
	if len(children) != 4 {
		t.Fatalf("got %d children, want 4", len(children))
	}
	for i, child := range children {
		n, ok := child.(Number)
		if !ok || n.Value != float64(i+1) {
			t.Errorf("child %d = %s, want Number %d", i, Dump(child), i+1)
		}
	}
}

func TestWalkCanSkipChildren(t *testing.T) {
	tree, _ := ParseString("<1,2> + (3*4)")
	var kinds []NodeKind
	Walk(tree, func(e Expr) bool {
		kinds = append(kinds, e.Kind())
		return e.Kind() != KindGroup
	})
	want := []NodeKind{KindBinary, KindVector, KindNumber, KindNumber, KindGroup}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestOpForToken(t *testing.T) {
	tests := []struct {
		kind TokenKind
		op   Op
		ok   bool
	}{
		{TokenPlus, OpAdd, true},
		{TokenMinus, OpSub, true},
		{TokenStar, OpMul, true},
		{TokenDot, OpDot, true},
		{TokenCross, OpCross, true},
		{TokenComma, 0, false},
	}
	for _, tt := range tests {
		op, ok := OpForToken(tt.kind)
		if ok != tt.ok || (ok && op != tt.op) {
			t.Errorf("OpForToken(%v) = %v, %v, want %v, %v", tt.kind, op, ok, tt.op, tt.ok)
		}
	}
}

func TestDumpWithPositions(t *testing.T) {
	tree, _ := ParseString("<1,x")
	want := "Vector [0-4]\n  Number [1-2] 1\n  Ident [3-4] x\n"
	if got := DumpWithPositions(tree); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
