package lexer

import (
	"fmt"
	"strings"

	"mdtree/token"
)

func (s *Scanner) warn(format string, args ...interface{}) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

func isBlank(ln string) bool {
	return strings.TrimSpace(ln) == ""
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// headingLine matches one to six leading '#' followed by a space. Seven or
// more never match.
func headingLine(ln string) (level int, text string, ok bool) {
	for level < len(ln) && ln[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level >= len(ln) || ln[level] != ' ' {
		return 0, "", false
	}
	text = strings.TrimSpace(ln[level+1:])
	return level, trimClosingHashes(text), true
}

// trimClosingHashes strips an optional trailing '#' run and the whitespace
// before it. A run glued to the text ("text#") stays.
func trimClosingHashes(text string) string {
	end := len(text)
	for end > 0 && text[end-1] == '#' {
		end--
	}
	if end == len(text) {
		return text
	}
	if end == 0 {
		return ""
	}
	if text[end-1] == ' ' || text[end-1] == '\t' {
		return strings.TrimRight(text[:end], " \t")
	}
	return text
}

// ruleLine matches a run of three or more of the same character out of
// '*', '-' and '_', optionally separated by spaces.
func ruleLine(ln string) bool {
	var ch byte
	count := 0
	for i := 0; i < len(ln); i++ {
		c := ln[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if c != '*' && c != '-' && c != '_' {
			return false
		}
		if count == 0 {
			ch = c
		} else if c != ch {
			return false
		}
		count++
	}
	return count >= 3
}

// fenceRun reports the fence character and run length when ln opens with
// three or more backticks or tildes.
func fenceRun(ln string) (byte, int) {
	if len(ln) == 0 || (ln[0] != '`' && ln[0] != '~') {
		return 0, 0
	}
	ch := ln[0]
	n := 0
	for n < len(ln) && ln[n] == ch {
		n++
	}
	if n < 3 {
		return 0, 0
	}
	return ch, n
}

// closesFence reports whether ln closes a fence opened with a run of open
// characters ch. A bare line must carry a run at least as long as the
// opening; an indented run of three or more also closes.
func closesFence(ln string, ch byte, open int) bool {
	t := strings.TrimRight(ln, " \t")
	lead := len(t) - len(strings.TrimLeft(t, " \t"))
	run := t[lead:]
	if len(run) < 3 {
		return false
	}
	for i := 0; i < len(run); i++ {
		if run[i] != ch {
			return false
		}
	}
	if lead == 0 {
		return len(run) >= open
	}
	return true
}

// fenceTail finds a closing run that follows code on the same line and
// returns the index where the code ends.
func fenceTail(ln string, ch byte) (int, bool) {
	for i := 0; i+2 < len(ln); i++ {
		if ln[i] != ch || ln[i+1] != ch || ln[i+2] != ch {
			continue
		}
		if strings.TrimSpace(ln[:i]) == "" {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// listMarker matches a bullet ('*', '+', '-') or an ordinal ("12." or "12)")
// followed by whitespace. It returns the marker and the trimmed item text.
func listMarker(ln string) (marker, rest string, ok bool) {
	i := 0
	for i < len(ln) && (ln[i] == ' ' || ln[i] == '\t') {
		i++
	}
	if i >= len(ln) {
		return "", "", false
	}
	c := ln[i]
	if c == '*' || c == '+' || c == '-' {
		if i+1 < len(ln) && (ln[i+1] == ' ' || ln[i+1] == '\t') {
			return ln[i : i+1], strings.TrimSpace(ln[i+2:]), true
		}
		return "", "", false
	}
	if !isDigit(c) {
		return "", "", false
	}
	j := i
	for j < len(ln) && isDigit(ln[j]) {
		j++
	}
	if j < len(ln) && (ln[j] == '.' || ln[j] == ')') &&
		j+1 < len(ln) && (ln[j+1] == ' ' || ln[j+1] == '\t') {
		return ln[i : j+1], strings.TrimSpace(ln[j+1:]), true
	}
	return "", "", false
}

func indentWidth(ln string) int {
	w := 0
	for i := 0; i < len(ln); i++ {
		switch ln[i] {
		case ' ':
			w++
		case '\t':
			w += 4
		default:
			return w
		}
	}
	return w
}

func isIndented(ln string) bool {
	return strings.HasPrefix(ln, "    ") || strings.HasPrefix(ln, "\t")
}

func dedent(ln string) string {
	if strings.HasPrefix(ln, "\t") {
		return ln[1:]
	}
	return strings.TrimPrefix(ln, "    ")
}

// splitRow splits a pipe row into trimmed cells, ignoring the outer pipes.
func splitRow(ln string) []string {
	t := strings.TrimSpace(ln)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// separatorRow validates a table separator line and reads the per-column
// alignment out of it.
func separatorRow(ln string) ([]token.Alignment, bool) {
	if !strings.Contains(ln, "|") {
		return nil, false
	}
	cells := splitRow(ln)
	aligns := make([]token.Alignment, len(cells))
	for i, c := range cells {
		a, ok := separatorCell(c)
		if !ok {
			return nil, false
		}
		aligns[i] = a
	}
	return aligns, true
}

func separatorCell(c string) (token.Alignment, bool) {
	if c == "" {
		return token.AlignNone, true
	}
	left := strings.HasPrefix(c, ":")
	right := strings.HasSuffix(c, ":")
	body := strings.TrimSuffix(strings.TrimPrefix(c, ":"), ":")
	if body == "" || strings.Trim(body, "-") != "" {
		return token.AlignNone, false
	}
	switch {
	case left && right:
		return token.AlignCenter, true
	case right:
		return token.AlignRight, true
	case left:
		return token.AlignLeft, true
	}
	return token.AlignNone, true
}
