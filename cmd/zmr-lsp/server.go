package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// notifier sends notifications to the client.
type notifier interface {
	Notify(ctx context.Context, method string, params any) error
}

type Server struct {
	log  *slog.Logger
	conn notifier
	docs *documentStore

	shutdown bool
}

func NewServer(log *slog.Logger, conn notifier) *Server {
	return &Server{
		log:  log,
		conn: conn,
		docs: &documentStore{docs: map[protocol.DocumentURI]*document{}},
	}
}

// Handle dispatches one request or notification.
func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.log.Debug("request", "method", req.Method())
	if s.shutdown && req.Method() != protocol.MethodExit {
		return reply(ctx, nil, fmt.Errorf("%w: server is shut down", jsonrpc2.ErrInvalidRequest))
	}
	switch req.Method() {
	case protocol.MethodInitialize:
		var params protocol.InitializeParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, s.initialize(&params), nil)
	case protocol.MethodInitialized:
		return reply(ctx, nil, nil)
	case protocol.MethodShutdown:
		s.shutdown = true
		return reply(ctx, nil, nil)
	case protocol.MethodExit:
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.docs.put(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
		s.publishDiagnostics(ctx, params.TextDocument.URI)
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		if n := len(params.ContentChanges); n > 0 {
			s.docs.put(params.TextDocument.URI, params.ContentChanges[n-1].Text, params.TextDocument.Version)
			s.publishDiagnostics(ctx, params.TextDocument.URI)
		}
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidClose:
		var params protocol.DidCloseTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.docs.remove(params.TextDocument.URI)
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidSave:
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentFormatting:
		var params protocol.DocumentFormattingParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		edits, err := s.formatting(&params)
		return reply(ctx, edits, err)
	}
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

func unmarshalParams(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return fmt.Errorf("%w: %s: %w", jsonrpc2.ErrInvalidParams, req.Method(), err)
	}
	return nil
}

func (s *Server) initialize(params *protocol.InitializeParams) *protocol.InitializeResult {
	if params.ClientInfo != nil {
		s.log.Info("initialize", "client", params.ClientInfo.Name, "clientVersion", params.ClientInfo.Version)
	}
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				Change:    protocol.TextDocumentSyncKindFull,
				OpenClose: true,
				Save:      &protocol.SaveOptions{IncludeText: false},
			},
			DocumentFormattingProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}
}
