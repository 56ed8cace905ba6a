package lexer

import (
	"strings"

	"mdtree/token"
)

// Options control the optional inline extensions.
type Options struct {
	Strikethrough bool
}

func DefaultOptions() Options {
	return Options{Strikethrough: true}
}

// inlineScanner makes a single left-to-right pass. Every iteration moves the
// position forward by at least one rune, so a scan always terminates after at
// most len(src) iterations.
type inlineScanner struct {
	src  []rune
	pos  int
	opts Options
	out  []token.Inline
}

func ScanInline(text string) []token.Inline {
	return ScanInlineWith(text, DefaultOptions())
}

func ScanInlineWith(text string, opts Options) []token.Inline {
	s := &inlineScanner{src: []rune(text), opts: opts}
	return s.scan()
}

func (s *inlineScanner) scan() []token.Inline {
	for s.pos < len(s.src) {
		if s.escapeAhead() {
			continue
		}
		if s.codeAhead() {
			continue
		}
		if s.linkAhead() {
			continue
		}
		if s.imageAhead() {
			continue
		}
		if s.strongAhead() {
			continue
		}
		if s.emAhead() {
			continue
		}
		if s.opts.Strikethrough && s.delAhead() {
			continue
		}
		s.textRun()
	}
	return s.out
}

func (s *inlineScanner) emit(t token.Inline) {
	s.out = append(s.out, t)
}

// emitText folds runs of plain text into a single token.
func (s *inlineScanner) emitText(text string) {
	if n := len(s.out); n > 0 {
		if prev, ok := s.out[n-1].(*token.Text); ok {
			prev.Text += text
			return
		}
	}
	s.out = append(s.out, &token.Text{Text: text})
}

const escapable = "\\`*_{}[]()#+-.!~|>"

func (s *inlineScanner) escapeAhead() bool {
	if s.src[s.pos] != '\\' || s.pos+1 >= len(s.src) {
		return false
	}
	c := s.src[s.pos+1]
	if c > 127 || !strings.ContainsRune(escapable, c) {
		return false
	}
	s.emitText(string(c))
	s.pos += 2
	return true
}

// codeAhead matches a code span. The closing backtick run must have exactly
// the length of the opening one. An opening run with no closer is consumed
// whole as text so its tail cannot pair with a later run.
func (s *inlineScanner) codeAhead() bool {
	if s.src[s.pos] != '`' {
		return false
	}
	open := runLen(s.src, s.pos, '`')
	for i := s.pos + open; i < len(s.src); {
		if s.src[i] != '`' {
			i++
			continue
		}
		run := runLen(s.src, i, '`')
		if run == open {
			s.emit(&token.CodeSpan{Code: string(s.src[s.pos+open : i])})
			s.pos = i + run
			return true
		}
		i += run
	}
	s.emitText(string(s.src[s.pos : s.pos+open]))
	s.pos += open
	return true
}

func (s *inlineScanner) linkAhead() bool {
	if s.src[s.pos] != '[' {
		return false
	}
	text, href, title, end, ok := s.bracketTarget(s.pos)
	if !ok {
		return false
	}
	s.emit(&token.Link{Text: text, Href: href, Title: title})
	s.pos = end
	return true
}

func (s *inlineScanner) imageAhead() bool {
	if s.src[s.pos] != '!' || s.pos+1 >= len(s.src) || s.src[s.pos+1] != '[' {
		return false
	}
	alt, src, title, end, ok := s.bracketTarget(s.pos + 1)
	if !ok {
		return false
	}
	s.emit(&token.Image{Alt: alt, Src: src, Title: title})
	s.pos = end
	return true
}

// bracketTarget reads `[text](href "title")` starting at the opening bracket
// and returns the position just past the closing parenthesis.
func (s *inlineScanner) bracketTarget(open int) (text, href, title string, end int, ok bool) {
	rb := -1
	for i := open + 1; i < len(s.src); i++ {
		if s.src[i] == ']' {
			rb = i
			break
		}
	}
	if rb < 0 || rb+1 >= len(s.src) || s.src[rb+1] != '(' {
		return
	}
	text = string(s.src[open+1 : rb])
	i := rb + 2
	start := i
	for i < len(s.src) && s.src[i] != ')' && s.src[i] != ' ' && s.src[i] != '\t' {
		i++
	}
	if i >= len(s.src) {
		return
	}
	href = string(s.src[start:i])
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	if i < len(s.src) && s.src[i] == '"' {
		j := i + 1
		for j < len(s.src) && s.src[j] != '"' {
			j++
		}
		if j >= len(s.src) {
			return
		}
		title = string(s.src[i+1 : j])
		i = j + 1
		for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t') {
			i++
		}
	}
	if i >= len(s.src) || s.src[i] != ')' {
		return "", "", "", 0, false
	}
	return text, href, title, i + 1, true
}

func (s *inlineScanner) strongAhead() bool {
	c := s.src[s.pos]
	if c != '*' && c != '_' {
		return false
	}
	if s.pos+1 >= len(s.src) || s.src[s.pos+1] != c {
		return false
	}
	for i := s.pos + 2; i+1 < len(s.src); i++ {
		if s.src[i] != c || s.src[i+1] != c {
			continue
		}
		if i == s.pos+2 {
			return false
		}
		s.emit(&token.Strong{Text: string(s.src[s.pos+2 : i])})
		s.pos = i + 2
		return true
	}
	return false
}

// emAhead matches single-marker emphasis. The inner span runs to the first
// marker of the same kind, so it can never begin or end with that marker.
func (s *inlineScanner) emAhead() bool {
	c := s.src[s.pos]
	if c != '*' && c != '_' {
		return false
	}
	if s.pos+1 < len(s.src) && s.src[s.pos+1] == c {
		return false
	}
	for i := s.pos + 1; i < len(s.src); i++ {
		if s.src[i] != c {
			continue
		}
		inner := s.src[s.pos+1 : i]
		if len(inner) == 0 {
			return false
		}
		s.emit(&token.Em{Text: string(inner)})
		s.pos = i + 1
		return true
	}
	return false
}

func (s *inlineScanner) delAhead() bool {
	if s.src[s.pos] != '~' {
		return false
	}
	if s.pos+1 >= len(s.src) || s.src[s.pos+1] != '~' {
		return false
	}
	for i := s.pos + 2; i+1 < len(s.src); i++ {
		if s.src[i] != '~' || s.src[i+1] != '~' {
			continue
		}
		if i == s.pos+2 {
			return false
		}
		s.emit(&token.Del{Text: string(s.src[s.pos+2 : i])})
		s.pos = i + 2
		return true
	}
	return false
}

// textRun consumes up to the next potential marker. When the very next rune
// is a marker that failed every structured matcher it is consumed alone,
// which keeps the scan moving on pathological input.
func (s *inlineScanner) textRun() {
	start := s.pos
	for s.pos < len(s.src) && !isInlineMarker(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		s.emitText(string(s.src[s.pos]))
		s.pos++
		return
	}
	s.emitText(string(s.src[start:s.pos]))
}

func isInlineMarker(r rune) bool {
	switch r {
	case '\\', '`', '*', '_', '[', ']', '!', '~', '<', '@', '#':
		return true
	}
	return r >= '0' && r <= '9'
}

func runLen(src []rune, pos int, c rune) int {
	n := 0
	for pos+n < len(src) && src[pos+n] == c {
		n++
	}
	return n
}
