package workspace

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/mathpad/format"
	"github.com/dhamidi/mathpad/linalg"
	"github.com/dhamidi/mathpad/linalg/parser"
	"github.com/dhamidi/mathpad/linalg/simplify"
	"github.com/dhamidi/mathpad/project"

	_ "github.com/tliron/commonlog/simple"
)

const diagnosticSource = "mathpad"

var lspLog = commonlog.GetLogger("mathpad.lsp")

type LSPServer struct {
	mu        sync.Mutex
	workspace *Workspace
	config    *project.Config
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string, config *project.Config) *LSPServer {
	if config == nil {
		config = project.DefaultConfig()
	}
	ls := &LSPServer{
		version: version,
		config:  config,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentHover:      ls.textDocumentHover,
		TextDocumentCompletion: ls.textDocumentCompletion,
	}

	ls.server = server.NewServer(&ls.handler, config.LSP.Name, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(string(*params.RootURI)); err == nil {
			rootDir = path
		}
	}

	ls.mu.Lock()
	ls.workspace = New(rootDir, ls.config)
	ls.mu.Unlock()
	lspLog.Infof("initialized workspace at %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"<", "[", ","},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ls.config.LSP.Name,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// ensureWorkspace covers clients that send document events before
// initialize completes.
func (ls *LSPServer) ensureWorkspace() *Workspace {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.workspace == nil {
		ls.workspace = New(".", ls.config)
	}
	return ls.workspace
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := ls.ensureWorkspace().SetFile(string(params.TextDocument.URI), int(params.TextDocument.Version), params.TextDocument.Text)
	ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		lspLog.Warningf("ignoring incremental change for %s", params.TextDocument.URI)
		return nil
	}
	doc := ls.ensureWorkspace().SetFile(string(params.TextDocument.URI), int(params.TextDocument.Version), textChange.Text)
	ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.ensureWorkspace().RemoveFile(string(params.TextDocument.URI))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: toProtocolDiagnostics(doc),
	})
}

func toProtocolDiagnostics(doc *Document) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityWarning
	source := diagnosticSource
	diags := make([]protocol.Diagnostic, 0, len(doc.Result.Diagnostics))
	for _, d := range doc.Result.Diagnostics {
		diags = append(diags, protocol.Diagnostic{
			Range:    spanToRange(doc.Content, d.Offset, d.Offset),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return diags
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := ls.ensureWorkspace().GetFile(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	offset := positionToOffset(doc.Content, params.Position)
	node := linalg.NodeAtPoint(doc.Result.Tree, offset)
	if node == nil {
		return nil, nil
	}

	span := node.Span()
	rng := spanToRange(doc.Content, span.Start, span.End)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: ls.hoverText(node, doc.Result),
		},
		Range: &rng,
	}, nil
}

func (ls *LSPServer) hoverText(node parser.Expr, result *linalg.Result) string {
	opts := ls.config.FormatOptions()
	var sb strings.Builder
	if p, ok := node.(parser.Placeholder); ok {
		fmt.Fprintf(&sb, "empty %s slot\n\n", p.Expected)
	} else {
		fmt.Fprintf(&sb, "**%s** `%s` = `%s`\n\n", node.Kind(), format.Text(node, opts...), format.Text(simplify.Simplify(node), opts...))
	}
	fmt.Fprintf(&sb, "result: `%s`", format.Text(result.Simplified, opts...))
	return sb.String()
}

type snippet struct {
	label  string
	detail string
	insert string
	kind   protocol.CompletionItemKind
	format protocol.InsertTextFormat
}

var snippets = []snippet{
	{"vector", "3-element vector", "<${1}, ${2}, ${3}>", protocol.CompletionItemKindSnippet, protocol.InsertTextFormatSnippet},
	{"matrix", "2×2 matrix", "[${1}, ${2}; ${3}, ${4}]", protocol.CompletionItemKindSnippet, protocol.InsertTextFormatSnippet},
	{"dot", "dot product", "·", protocol.CompletionItemKindOperator, protocol.InsertTextFormatPlainText},
	{"cross", "cross product", "×", protocol.CompletionItemKindOperator, protocol.InsertTextFormatPlainText},
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	var items []protocol.CompletionItem
	for _, s := range snippets {
		kind := s.kind
		detail := s.detail
		insertText := s.insert
		insertFormat := s.format
		items = append(items, protocol.CompletionItem{
			Label:            s.label,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &insertText,
			InsertTextFormat: &insertFormat,
		})
	}

	doc := ls.ensureWorkspace().GetFile(string(params.TextDocument.URI))
	if doc == nil {
		return items, nil
	}

	// Offer the simplified value of the expression as a completion so a
	// finished computation can be pasted as a literal.
	if doc.Result.IsComplete() {
		kind := protocol.CompletionItemKindValue
		value := format.Text(doc.Result.Simplified, ls.config.FormatOptions()...)
		detail := "simplified result"
		items = append(items, protocol.CompletionItem{
			Label:      value,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &value,
		})
	}

	return items, nil
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
