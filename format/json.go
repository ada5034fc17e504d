package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/mathpad/linalg"
	"github.com/dhamidi/mathpad/linalg/parser"
)

type JSONEncoder struct {
	w      io.Writer
	result *linalg.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(result *linalg.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(ResultToJSON(e.result), "", "  ")
}

type JSONResult struct {
	Source      string                  `json:"source"`
	Tree        *parser.JSONNode        `json:"tree"`
	Diagnostics []parser.JSONDiagnostic `json:"diagnostics"`
	Simplified  *parser.JSONNode        `json:"simplified"`
	Text        string                  `json:"text"`
	Complete    bool                    `json:"complete"`
}

// ResultToJSON converts a pipeline result into its JSON shape.
func ResultToJSON(r *linalg.Result) *JSONResult {
	return &JSONResult{
		Source:      r.Source,
		Tree:        parser.ToJSON(r.Tree),
		Diagnostics: parser.DiagnosticsToJSON(r.Diagnostics),
		Simplified:  parser.ToJSON(r.Simplified),
		Text:        Text(r.Simplified),
		Complete:    r.IsComplete(),
	}
}
