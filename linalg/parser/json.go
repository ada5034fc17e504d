package parser

import (
	"encoding/json"
	"math"
	"strconv"
)

// JSONNode is the JSON shape of an expression tree. Matrix rows are encoded
// as nested arrays; all other children go in Children.
type JSONNode struct {
	Kind     string        `json:"kind"`
	Span     JSONSpan      `json:"span"`
	Value    *float64      `json:"value,omitempty"`
	Name     string        `json:"name,omitempty"`
	Expected string        `json:"expected,omitempty"`
	Op       string        `json:"op,omitempty"`
	Children []*JSONNode   `json:"children,omitempty"`
	Rows     [][]*JSONNode `json:"rows,omitempty"`
}

type JSONSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type JSONDiagnostic struct {
	Message string `json:"message"`
	Offset  int    `json:"offset"`
	Text    string `json:"text"`
}

func MarshalExpr(e Expr) ([]byte, error) {
	return json.Marshal(ToJSON(e))
}

func ToJSON(e Expr) *JSONNode {
	if e == nil {
		return nil
	}
	span := e.Span()
	jn := &JSONNode{
		Kind: e.Kind().String(),
		Span: JSONSpan{Start: span.Start, End: span.End},
	}

	switch n := e.(type) {
	case Number:
		v := n.Value
		if math.IsInf(v, 0) || math.IsNaN(v) {
			// JSON has no encoding for these.
			jn.Name = strconv.FormatFloat(v, 'g', -1, 64)
			break
		}
		jn.Value = &v
	case Ident:
		jn.Name = n.Name
	case Placeholder:
		jn.Expected = string(n.Expected)
	case Binary:
		jn.Op = n.Op.String()
	case Matrix:
		jn.Rows = make([][]*JSONNode, len(n.Rows))
		for i, row := range n.Rows {
			jn.Rows[i] = make([]*JSONNode, len(row))
			for j, cell := range row {
				jn.Rows[i][j] = ToJSON(cell)
			}
		}
		return jn
	}

	children := Children(e)
	if len(children) > 0 {
		jn.Children = make([]*JSONNode, len(children))
		for i, child := range children {
			jn.Children[i] = ToJSON(child)
		}
	}
	return jn
}

func DiagnosticsToJSON(diags []Diagnostic) []JSONDiagnostic {
	out := make([]JSONDiagnostic, len(diags))
	for i, d := range diags {
		out[i] = JSONDiagnostic{Message: d.Message, Offset: d.Offset, Text: d.String()}
	}
	return out
}
