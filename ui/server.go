package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/mathpad/format"
	"github.com/dhamidi/mathpad/linalg"
	"github.com/dhamidi/mathpad/linalg/parser"
	"github.com/dhamidi/mathpad/linalg/workspace"
	"github.com/dhamidi/mathpad/project"
)

//go:embed static templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("mathpad.ui")

// maxSourceBytes bounds the size of an evaluation request body.
const maxSourceBytes = 64 << 10

type Server struct {
	workspace *workspace.Workspace
	config    *project.Config
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer serves the playground and the JSON API. ws may be nil, in which
// case the documents endpoint reports an empty list.
func NewServer(ws *workspace.Workspace, config *project.Config) (*Server, error) {
	if config == nil {
		config = project.DefaultConfig()
	}

	opts := config.FormatOptions()
	funcMap := template.FuncMap{
		"text": func(e parser.Expr) string {
			return format.Text(e, opts...)
		},
		"dump": parser.DumpWithPositions,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(mustSub(embeddedFS, "templates"), "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		workspace: ws,
		config:    config,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(mustSub(embeddedFS, "static")))))
	s.mux.HandleFunc("POST /api/evaluate", s.handleEvaluate)
	s.mux.HandleFunc("GET /api/documents", s.handleDocuments)
	s.mux.HandleFunc("GET /api/grammar", s.handleGrammar)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type EvaluateRequest struct {
	Source string `json:"source"`
	// Caret is an optional rune offset; when set the response names the node
	// under it.
	Caret *int `json:"caret,omitempty"`
}

type EvaluateResponse struct {
	*format.JSONResult
	AtCaret *parser.JSONNode `json:"atCaret,omitempty"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSourceBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := linalg.FromSource(req.Source)
	resp := EvaluateResponse{JSONResult: format.ResultToJSON(result)}
	if req.Caret != nil {
		resp.AtCaret = parser.ToJSON(linalg.NodeAtPoint(result.Tree, *req.Caret))
	}

	log.Debugf("evaluated %q with %d diagnostics", req.Source, len(result.Diagnostics))
	writeJSON(w, resp)
}

type DocumentSummary struct {
	Path        string   `json:"path"`
	Version     int      `json:"version"`
	Diagnostics []string `json:"diagnostics"`
	Result      string   `json:"result"`
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	docs := []DocumentSummary{}
	if s.workspace != nil {
		for _, path := range s.workspace.Paths() {
			doc := s.workspace.GetFile(path)
			if doc == nil {
				continue
			}
			docs = append(docs, DocumentSummary{
				Path:        doc.Path,
				Version:     doc.Version,
				Diagnostics: doc.Result.DiagnosticStrings(),
				Result:      format.Text(doc.Result.Simplified, s.config.FormatOptions()...),
			})
		}
	}
	writeJSON(w, docs)
}

func (s *Server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, parser.GrammarSource())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Source string
		Result *linalg.Result
	}{
		Source: r.URL.Query().Get("q"),
	}
	if data.Source != "" {
		data.Result = linalg.FromSource(data.Source)
	}
	s.render(w, "index.html", data)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %s", name, err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %s", err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
