package eventsfile

import "strings"

// The scanner is deliberately small: it knows enough PHP lexical structure
// (comments, quoted strings, heredocs, inline HTML, qualified names) to find
// the two block shapes without being fooled by text inside comments or
// strings. It does not try to understand anything else.

type tokenKind int

const (
	tokName tokenKind = iota // identifier, possibly `\` qualified
	tokString
	tokPunct
)

type token struct {
	kind  tokenKind
	text  string
	start int
	end   int
}

func (t token) is(text string) bool {
	return t.kind == tokPunct && t.text == text
}

func (t token) isName(name string) bool {
	return t.kind == tokName && strings.EqualFold(t.text, name)
}

func isNameByte(c byte) bool {
	return c == '_' || c == '\\' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isIdentByte(c byte, first bool) bool {
	return c == '_' || c >= 0x80 || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(!first && c >= '0' && c <= '9')
}

// heredocEnd returns the offset just past the closing identifier of the
// heredoc or nowdoc that starts at i. An unterminated one runs to the end
// of src.
func heredocEnd(src string, i int) (int, bool) {
	if !strings.HasPrefix(src[i:], "<<<") {
		return 0, false
	}
	j := i + 3
	for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
		j++
	}
	var quote byte
	if j < len(src) && (src[j] == '\'' || src[j] == '"') {
		quote = src[j]
		j++
	}
	idStart := j
	for j < len(src) && isIdentByte(src[j], j == idStart) {
		j++
	}
	if j == idStart {
		return 0, false
	}
	id := src[idStart:j]
	if quote != 0 {
		if j >= len(src) || src[j] != quote {
			return 0, false
		}
		j++
	}
	if j < len(src) && src[j] == '\r' {
		j++
	}
	if j >= len(src) || src[j] != '\n' {
		return 0, false
	}
	for line := j + 1; line < len(src); {
		k := line
		for k < len(src) && (src[k] == ' ' || src[k] == '\t') {
			k++
		}
		if end := k + len(id); strings.HasPrefix(src[k:], id) && (end == len(src) || !isIdentByte(src[end], false)) {
			return end, true
		}
		nl := strings.IndexByte(src[line:], '\n')
		if nl < 0 {
			break
		}
		line += nl + 1
	}
	return len(src), true
}

// skipInlineHTML returns the offset just past the next open tag at or after
// from, or len(src) when PHP mode is never re-entered.
func skipInlineHTML(src string, from int) int {
	k := strings.Index(src[from:], "<?")
	if k < 0 {
		return len(src)
	}
	j := from + k + 2
	switch {
	case len(src)-j >= 3 && strings.EqualFold(src[j:j+3], "php"):
		j += 3
	case j < len(src) && src[j] == '=':
		j++
	}
	return j
}

func lex(src string) []token {
	var toks []token
	i := 0
	for i < len(src) {
		if end, ok := heredocEnd(src, i); ok {
			toks = append(toks, token{kind: tokString, text: src[i:end], start: i, end: end})
			i = end
			continue
		}
		if strings.HasPrefix(src[i:], "?>") {
			i = skipInlineHTML(src, i+2)
			continue
		}
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/',
			c == '#' && !(i+1 < len(src) && src[i+1] == '['):
			for i < len(src) && src[i] != '\n' && !strings.HasPrefix(src[i:], "?>") {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				i = len(src)
			} else {
				i += 2 + end + 2
			}
		case c == '\'' || c == '"' || c == '`':
			start := i
			i++
			for i < len(src) && src[i] != c {
				if src[i] == '\\' {
					i++
				}
				i++
			}
			if i < len(src) {
				i++
			}
			if i > len(src) {
				i = len(src)
			}
			toks = append(toks, token{kind: tokString, text: src[start:i], start: start, end: i})
		case isNameByte(c):
			start := i
			for i < len(src) && isNameByte(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokName, text: src[start:i], start: start, end: i})
		default:
			start := i
			if i+1 < len(src) {
				if two := src[i : i+2]; two == "::" || two == "=>" || two == "->" {
					i += 2
					toks = append(toks, token{kind: tokPunct, text: two, start: start, end: i})
					continue
				}
			}
			i++
			toks = append(toks, token{kind: tokPunct, text: src[start:i], start: start, end: i})
		}
	}
	return toks
}

// braceDepth returns, for every token, the number of braces enclosing it.
// The braces of a `namespace Name { ... }` block do not count, so imports
// inside one are at depth 0 like file-level imports.
func braceDepth(toks []token) []int {
	depth := make([]int, len(toks))
	var counted []bool
	d := 0
	for i, t := range toks {
		depth[i] = d
		switch {
		case t.is("{"):
			c := !opensNamespace(toks, i)
			counted = append(counted, c)
			if c {
				d++
			}
		case t.is("}"):
			if n := len(counted); n > 0 {
				if counted[n-1] {
					d--
				}
				counted = counted[:n-1]
			}
		}
	}
	return depth
}

func opensNamespace(toks []token, i int) bool {
	if i >= 1 && toks[i-1].isName("namespace") {
		return true
	}
	return i >= 2 && toks[i-1].kind == tokName && toks[i-2].isName("namespace")
}

// sameNamespace compares two namespace names ignoring case and any leading or
// trailing separators.
func sameNamespace(a, b string) bool {
	return strings.EqualFold(strings.Trim(a, `\`), strings.Trim(b, `\`))
}

// lineBounds widens r to whole lines when the text before r on its first line
// and after r on its last line is blank. The trailing newline is included.
// Otherwise r is returned unchanged.
func lineBounds(buf string, r Range) Range {
	ls := r.Start
	for ls > 0 && (buf[ls-1] == ' ' || buf[ls-1] == '\t') {
		ls--
	}
	if ls > 0 && buf[ls-1] != '\n' {
		return r
	}
	le := r.End
	for le < len(buf) && (buf[le] == ' ' || buf[le] == '\t' || buf[le] == '\r') {
		le++
	}
	if le < len(buf) {
		if buf[le] != '\n' {
			return r
		}
		le++
	}
	return Range{Start: ls, End: le}
}
