package workspace

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// offsetToPosition converts a rune offset into an LSP position, whose
// character counts UTF-16 code units.
func offsetToPosition(text string, offset int) protocol.Position {
	var line, char uint32
	i := 0
	for _, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			char = 0
		} else {
			char += uint32(utf16.RuneLen(r))
		}
		i++
	}
	return protocol.Position{Line: line, Character: char}
}

// positionToOffset converts an LSP position back into a rune offset. Positions
// past the end of a line clamp to the line end.
func positionToOffset(text string, pos protocol.Position) int {
	var line, char uint32
	offset := 0
	for _, r := range text {
		if line == pos.Line && (char >= pos.Character || r == '\n') {
			return offset
		}
		if r == '\n' {
			line++
			char = 0
		} else if line == pos.Line {
			char += uint32(utf16.RuneLen(r))
		}
		offset++
	}
	return offset
}

func spanToRange(text string, start, end int) protocol.Range {
	return protocol.Range{
		Start: offsetToPosition(text, start),
		End:   offsetToPosition(text, end),
	}
}
