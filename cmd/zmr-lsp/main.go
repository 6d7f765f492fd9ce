// Command zmr-lsp is a language server for zmerald files speaking JSON-RPC
// over stdio. It reports syntax errors as diagnostics and formats whole
// documents.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.lsp.dev/jsonrpc2"
)

const lsName = "zmr-lsp"

var version = "0.1.0"

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	conn := jsonrpc2.NewConn(stream)
	server := NewServer(log, conn)
	conn.Go(ctx, server.Handle)
	log.Info("started", "name", lsName, "version", version)
	<-conn.Done()
	if err := conn.Err(); err != nil && err != io.EOF {
		log.Error("connection closed", "error", err)
		os.Exit(1)
	}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
