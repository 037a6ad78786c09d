package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/atikulmunna/depthtree/internal/model"
)

// Fields is the decoded key=value mapping for one input line.
type Fields map[string]string

// kvRE matches one identifier=value token. Values are either a
// double-quoted string (backslash escapes allowed inside) or a run of
// non-whitespace characters. Tokens may appear anywhere in the line.
var kvRE = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)=("(?:\\.|[^"])*"|[^\s]+)`)

// ---------------------------------------------------------------------------
// Line decoding
// ---------------------------------------------------------------------------

// ParseLine extracts all key=value tokens from a raw log line.
// Text outside the token pattern is ignored. If a key appears more
// than once, the last occurrence wins. A line with no tokens yields
// an empty mapping; no line is ever rejected here.
func ParseLine(raw string) Fields {
	kv := make(Fields)
	for _, m := range kvRE.FindAllStringSubmatch(raw, -1) {
		kv[m[1]] = unquote(m[2])
	}
	return kv
}

// unquote strips surrounding double quotes and decodes escape pairs.
// Recognized escapes: \\ and \" (the literal character) and \xHH (the
// byte with hex value HH). Any other backslash sequence is passed
// through literally rather than rejected. Unquoted values are returned
// verbatim.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	body := s[1 : len(s)-1]

	var out strings.Builder
	out.Grow(len(body))
	i := 0
	for i < len(body) {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			switch n := body[i+1]; {
			case n == '\\' || n == '"':
				out.WriteByte(n)
				i += 2
				continue
			case n == 'x' && i+3 < len(body) && isHex(body[i+2]) && isHex(body[i+3]):
				v, _ := strconv.ParseUint(body[i+2:i+4], 16, 8)
				out.WriteRune(rune(v))
				i += 4
				continue
			}
			// Unknown escape: keep the backslash as-is.
			out.WriteByte(c)
			i++
			continue
		}
		out.WriteByte(c)
		i++
	}
	return out.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// ---------------------------------------------------------------------------
// Event building
// ---------------------------------------------------------------------------

// BuildEvent converts a decoded field mapping into an Event.
// The tid, depth and func fields are required and depth must be a
// base-10 integer; otherwise ok is false and the line should be
// skipped. Remaining fields default to the empty string.
func BuildEvent(kv Fields) (model.Event, bool) {
	tid, hasTID := kv["tid"]
	rawDepth, hasDepth := kv["depth"]
	fn, hasFunc := kv["func"]
	if !hasTID || !hasDepth || !hasFunc {
		return model.Event{}, false
	}

	depth, err := strconv.Atoi(rawDepth)
	if err != nil {
		return model.Event{}, false
	}

	return model.Event{
		TS:    kv["ts"],
		Level: kv["level"],
		TID:   tid,
		Depth: depth,
		Func:  fn,
		File:  kv["file"],
		Line:  kv["line"],
		Msg:   kv["msg"],
	}, true
}
