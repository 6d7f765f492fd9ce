package main

import (
	"context"
	"errors"

	"github.com/liabri/zmerald/token"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri protocol.DocumentURI) {
	doc := s.docs.get(uri)
	if doc == nil || s.conn == nil {
		return
	}
	diagnostics := validateDocument(doc)
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     uint32(max(doc.version, 0)),
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.log.Error("publish diagnostics", "uri", uri, "error", err)
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   "zmerald",
		Message:  doc.err.Error(),
	}
	var te *token.Error
	if errors.As(doc.err, &te) {
		d.Message = te.Message()
		d.Code = te.Code.String()
		if !te.Pos.IsZero() {
			start := lspPosition(doc.content, te.Pos)
			end := start
			end.Character++
			d.Range = protocol.Range{Start: start, End: end}
		}
	}
	return append(diagnostics, d)
}
