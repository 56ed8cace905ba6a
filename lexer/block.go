package lexer

import (
	"strings"

	"mdtree/token"
)

// Scanner walks a document line by line and classifies every line into some
// block token. It never fails: any input produces a token stream whose raw
// fields, joined with "\n", reproduce the input.
type Scanner struct {
	lines    []string
	pos      int
	warnings []string
}

func NewScanner(lines []string) *Scanner {
	return &Scanner{lines: lines}
}

// Normalize converts CRLF and CR line endings to LF and splits into lines.
func Normalize(src string) []string {
	src = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(src)
	return strings.Split(src, "\n")
}

// Tokenize scans a whole document.
func Tokenize(src string) []token.Block {
	return Scan(Normalize(src))
}

func Scan(lines []string) []token.Block {
	return NewScanner(lines).Scan()
}

func (s *Scanner) Scan() []token.Block {
	var blocks []token.Block
	for s.pos < len(s.lines) {
		b, n := s.next()
		blocks = append(blocks, b)
		s.pos += n
	}
	return blocks
}

func (s *Scanner) Warnings() []string {
	return s.warnings
}

// next tries the matchers in priority order. The paragraph fallback accepts
// any non-blank line, so next always consumes at least one line.
func (s *Scanner) next() (token.Block, int) {
	if b, n, ok := s.blankAhead(); ok {
		return b, n
	}
	if b, n, ok := s.headingAhead(); ok {
		return b, n
	}
	if b, n, ok := s.ruleAhead(); ok {
		return b, n
	}
	if b, n, ok := s.fenceAhead(); ok {
		return b, n
	}
	if b, n, ok := s.quoteAhead(); ok {
		return b, n
	}
	if b, n, ok := s.listAhead(); ok {
		return b, n
	}
	if b, n, ok := s.tableAhead(); ok {
		return b, n
	}
	if b, n, ok := s.htmlAhead(); ok {
		return b, n
	}
	if b, n, ok := s.indentAhead(); ok {
		return b, n
	}
	return s.paragraph()
}

func (s *Scanner) line() string {
	return s.lines[s.pos]
}

func (s *Scanner) peek(n int) (string, bool) {
	if s.pos+n >= len(s.lines) {
		return "", false
	}
	return s.lines[s.pos+n], true
}

func (s *Scanner) span(n int) token.Span {
	return token.Span{
		RawText: strings.Join(s.lines[s.pos:s.pos+n], "\n"),
		LineNo:  s.pos + 1,
	}
}

func (s *Scanner) blankAhead() (token.Block, int, bool) {
	if !isBlank(s.line()) {
		return nil, 0, false
	}
	return &token.Blank{Span: s.span(1)}, 1, true
}

func (s *Scanner) headingAhead() (token.Block, int, bool) {
	level, text, ok := headingLine(s.line())
	if !ok {
		return nil, 0, false
	}
	return &token.Heading{Span: s.span(1), Level: level, Text: text}, 1, true
}

func (s *Scanner) ruleAhead() (token.Block, int, bool) {
	if !ruleLine(s.line()) {
		return nil, 0, false
	}
	return &token.Rule{Span: s.span(1)}, 1, true
}

// fenceAhead consumes a fenced code block. A fence that is never closed eats
// the rest of the document; a closing run preceded by code on the same line
// ends the block with that code as the last line, the fence itself and
// anything after it are dropped from the code (they stay in the raw text).
func (s *Scanner) fenceAhead() (token.Block, int, bool) {
	ch, open := fenceRun(s.line())
	if open == 0 {
		return nil, 0, false
	}
	lang := strings.TrimSpace(s.line()[open:])
	var code []string
	n := 1
	for i := s.pos + 1; i < len(s.lines); i++ {
		ln := s.lines[i]
		n++
		if closesFence(ln, ch, open) {
			break
		}
		if idx, ok := fenceTail(ln, ch); ok {
			code = append(code, ln[:idx])
			break
		}
		code = append(code, ln)
	}
	if s.pos+n >= len(s.lines) && !s.closedAt(ch, open) {
		s.warn("code block opened on line %d is never closed", s.pos+1)
	}
	return &token.CodeBlock{
		Span:     s.span(n),
		Language: lang,
		Code:     strings.Join(code, "\n"),
	}, n, true
}

// closedAt reports whether any line after the opening fence closes it.
func (s *Scanner) closedAt(ch byte, open int) bool {
	for i := s.pos + 1; i < len(s.lines); i++ {
		if closesFence(s.lines[i], ch, open) {
			return true
		}
		if _, ok := fenceTail(s.lines[i], ch); ok {
			return true
		}
	}
	return false
}

// quoteAhead consumes contiguous '>' lines and blank lines. The content keeps
// one optional space after each stripped marker removed and is left unparsed.
func (s *Scanner) quoteAhead() (token.Block, int, bool) {
	if !strings.HasPrefix(s.line(), ">") {
		return nil, 0, false
	}
	var content []string
	n := 0
	for i := s.pos; i < len(s.lines); i++ {
		ln := s.lines[i]
		if strings.HasPrefix(ln, ">") {
			inner := ln[1:]
			if strings.HasPrefix(inner, " ") {
				inner = inner[1:]
			}
			content = append(content, inner)
		} else if isBlank(ln) {
			content = append(content, "")
		} else {
			break
		}
		n++
	}
	return &token.Blockquote{
		Span:    s.span(n),
		Content: strings.Join(content, "\n"),
	}, n, true
}

// listAhead consumes marker lines as new items. A markerless line indented by
// two or more spaces continues the current item; blank lines are skipped but
// do not end the list.
func (s *Scanner) listAhead() (token.Block, int, bool) {
	marker, _, ok := listMarker(s.line())
	if !ok {
		return nil, 0, false
	}
	ordered := marker[0] >= '0' && marker[0] <= '9'
	var items []token.ListItem
	n := 0
	cur := -1
	for i := s.pos; i < len(s.lines); i++ {
		ln := s.lines[i]
		if m, rest, ok := listMarker(ln); ok {
			items = append(items, token.ListItem{
				Marker:  m,
				Content: rest,
				RawText: ln,
				LineNo:  i + 1,
			})
			cur = len(items) - 1
		} else if isBlank(ln) {
			// the list survives blank lines
		} else if indentWidth(ln) >= 2 && cur >= 0 {
			items[cur].Content += "\n" + strings.TrimSpace(ln)
			items[cur].RawText += "\n" + ln
		} else {
			break
		}
		n++
	}
	return &token.List{
		Span:    s.span(n),
		Ordered: ordered,
		Items:   items,
	}, n, true
}

// tableAhead matches a pipe line whose next line is a valid separator row.
// Body rows run until the first line without a pipe.
func (s *Scanner) tableAhead() (token.Block, int, bool) {
	line := s.line()
	if !strings.Contains(line, "|") {
		return nil, 0, false
	}
	next, ok := s.peek(1)
	if !ok {
		return nil, 0, false
	}
	aligns, ok := separatorRow(next)
	if !ok {
		return nil, 0, false
	}
	cells := splitRow(line)
	headers := make([]token.TableCell, len(cells))
	for i, text := range cells {
		align := token.AlignNone
		if i < len(aligns) {
			align = aligns[i]
		}
		headers[i] = token.TableCell{Text: text, Align: align}
	}
	var rows [][]string
	n := 2
	for i := s.pos + 2; i < len(s.lines); i++ {
		if !strings.Contains(s.lines[i], "|") {
			break
		}
		rows = append(rows, splitRow(s.lines[i]))
		n++
	}
	return &token.Table{
		Span:    s.span(n),
		Headers: headers,
		Rows:    rows,
	}, n, true
}

// htmlAhead consumes lines through the one containing the matching close tag.
// Without a close tag only the opening line is taken.
func (s *Scanner) htmlAhead() (token.Block, int, bool) {
	line := s.line()
	if len(line) < 2 || line[0] != '<' || !isLetter(line[1]) {
		return nil, 0, false
	}
	j := 1
	for j < len(line) && (isLetter(line[j]) || isDigit(line[j]) || line[j] == '-') {
		j++
	}
	closing := "</" + line[1:j] + ">"
	n := 1
	if !strings.Contains(line, closing) {
		found := false
		for i := s.pos + 1; i < len(s.lines); i++ {
			n++
			if strings.Contains(s.lines[i], closing) {
				found = true
				break
			}
		}
		if !found {
			s.warn("html block on line %d has no %s", s.pos+1, closing)
			n = 1
		}
	}
	return &token.HTMLBlock{
		Span: s.span(n),
		HTML: strings.Join(s.lines[s.pos:s.pos+n], "\n"),
	}, n, true
}

// indentAhead consumes indented-or-blank lines, removing one indent level.
func (s *Scanner) indentAhead() (token.Block, int, bool) {
	if !isIndented(s.line()) {
		return nil, 0, false
	}
	var code []string
	n := 0
	for i := s.pos; i < len(s.lines); i++ {
		ln := s.lines[i]
		if isIndented(ln) {
			code = append(code, dedent(ln))
		} else if isBlank(ln) {
			code = append(code, "")
		} else {
			break
		}
		n++
	}
	return &token.CodeBlock{
		Span: s.span(n),
		Code: strings.Join(code, "\n"),
	}, n, true
}

// paragraph is the fallback: contiguous non-blank lines up to the first line
// that would start a heading, thematic break, blockquote or list.
func (s *Scanner) paragraph() (token.Block, int) {
	var text []string
	n := 0
	for i := s.pos; i < len(s.lines); i++ {
		ln := s.lines[i]
		if n > 0 && (isBlank(ln) || interrupts(ln)) {
			break
		}
		text = append(text, strings.TrimSpace(ln))
		n++
	}
	return &token.Paragraph{
		Span: s.span(n),
		Text: strings.Join(text, "\n"),
	}, n
}

func interrupts(ln string) bool {
	if _, _, ok := headingLine(ln); ok {
		return true
	}
	if ruleLine(ln) {
		return true
	}
	if strings.HasPrefix(ln, ">") {
		return true
	}
	_, _, ok := listMarker(ln)
	return ok
}
