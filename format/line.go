package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/mathpad/linalg"
)

// LineEncoder writes one tab-separated record per token, diagnostic and
// result, for consumption by line-oriented tools.
type LineEncoder struct {
	w      io.Writer
	result *linalg.Result
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(result *linalg.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.result

	for _, tok := range r.Tokens {
		fmt.Fprintf(&sb, "token\t%s\t%d\t%d\t%s\n", tok.Kind, tok.Start, tok.End, tok.Value)
	}

	for _, d := range r.Diagnostics {
		fmt.Fprintf(&sb, "diagnostic\t%d\t%s\n", d.Offset, d.Message)
	}

	for _, p := range linalg.Placeholders(r.Tree) {
		fmt.Fprintf(&sb, "placeholder\t%s\t%d\t%d\n", p.Expected, p.Loc.Start, p.Loc.End)
	}

	fmt.Fprintf(&sb, "tree\t%s\n", Text(r.Tree))
	fmt.Fprintf(&sb, "result\t%s\n", Text(r.Simplified))

	return []byte(sb.String()), nil
}
