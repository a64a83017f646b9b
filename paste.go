package termcore

import "strings"

// chunkByteLimit is the default maximum UTF-8 byte count per paste chunk.
const chunkByteLimit = 4096

const bpStart = "\x1b[200~"
const bpEnd = "\x1b[201~"

// EncodePaste is the stateless PasteHandler (spec.md §4's PasteHandler):
// normalizes CRLF to CR (never stripping bare CR), wraps the payload in
// bracketed-paste markers when mode.BracketedPaste is set, and chunks the
// result by UTF-8 byte count without ever splitting a scalar.
func EncodePaste(text string, mode ModeFlags) [][]byte {
	normalized := strings.ReplaceAll(text, "\r\n", "\r")

	chunks := chunkUTF8([]byte(normalized), chunkByteLimit)
	if len(chunks) == 0 {
		chunks = [][]byte{{}}
	}

	if !mode.BracketedPaste {
		return chunks
	}

	out := make([][]byte, len(chunks))
	for i, c := range chunks {
		switch {
		case len(chunks) == 1:
			out[i] = append([]byte(bpStart), append(c, []byte(bpEnd)...)...)
		case i == 0:
			out[i] = append([]byte(bpStart), c...)
		case i == len(chunks)-1:
			out[i] = append(c, []byte(bpEnd)...)
		default:
			out[i] = c
		}
	}
	return out
}

// chunkUTF8 splits data into chunks of at most limit bytes, never cutting
// a UTF-8 scalar in half.
func chunkUTF8(data []byte, limit int) [][]byte {
	var chunks [][]byte
	for len(data) > 0 {
		if len(data) <= limit {
			chunks = append(chunks, data)
			break
		}
		cut := limit
		for cut > 0 && isUTF8Continuation(data[cut]) {
			cut--
		}
		if cut == 0 {
			cut = limit // pathological: no valid boundary found, hard-cut
		}
		chunks = append(chunks, data[:cut])
		data = data[cut:]
	}
	return chunks
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}
