package main

import (
	"sync"

	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

type document struct {
	uri     protocol.DocumentURI
	content string
	version int32
	// value is valid when err is nil.
	value ir.Value
	err   error
}

func (ds *documentStore) get(uri protocol.DocumentURI) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri protocol.DocumentURI, content string, version int32) *document {
	v, err := parse.ParseValue([]byte(content), parse.PreserveOrder())
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		value:   v,
		err:     err,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri protocol.DocumentURI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
