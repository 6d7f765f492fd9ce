package main

import (
	"bytes"

	"github.com/liabri/zmerald/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) formatting(params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	indent := "    "
	if params.Options.InsertSpaces && params.Options.TabSize > 0 {
		indent = string(bytes.Repeat([]byte{' '}, int(params.Options.TabSize)))
	} else if !params.Options.InsertSpaces && params.Options.TabSize > 0 {
		indent = "\t"
	}
	cfg := encode.DefaultPrettyConfig().WithIndentor(indent).WithDecimalFloats(true)
	var buf bytes.Buffer
	if err := encode.Encode(doc.value, &buf, encode.Pretty(cfg)); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	if buf.String() == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{},
			End:   endPosition(doc.content),
		},
		NewText: buf.String(),
	}}, nil
}
