package main

import (
	"strings"
	"unicode/utf16"

	"github.com/liabri/zmerald/token"
	"go.lsp.dev/protocol"
)

// lspPosition converts a 1-based line and rune column into a 0-based line
// and UTF-16 offset.
func lspPosition(content string, p token.Pos) protocol.Position {
	lines := strings.Split(content, "\n")
	line := max(p.Line-1, 0)
	if line >= len(lines) {
		return protocol.Position{Line: uint32(line)}
	}
	units := 0
	col := 1
	for _, r := range lines[line] {
		if col >= p.Col {
			break
		}
		units += utf16.RuneLen(r)
		col++
	}
	return protocol.Position{Line: uint32(line), Character: uint32(units)}
}

// endPosition is the position just past the last character of content.
func endPosition(content string) protocol.Position {
	line := strings.Count(content, "\n")
	last := content[strings.LastIndexByte(content, '\n')+1:]
	units := 0
	for _, r := range last {
		units += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(units)}
}
