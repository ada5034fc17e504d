package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/mathpad/linalg/parser"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node parser.Expr) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node parser.Expr) ([]byte, error) {
	return json.MarshalIndent(parser.ToJSON(node), "", "  ")
}
