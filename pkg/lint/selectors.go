package lint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Selector lines carry a bracketed platform condition, usually in a trailing
// comment: `- pywin32  # [win]`. Jinja lines are `{% set name = value %}`
// variable assignments. Each classification has a stricter canonical form the
// tidiness rules check against.
var (
	// A selector with a comment marker may carry trailing content after the
	// closing bracket; a bare selector must end the line at the bracket.
	selectorCommentRe = regexp.MustCompile(`^.+?\s*#.*\[[^\[\]]+\]`)
	selectorBareRe    = regexp.MustCompile(`^.+?\s*\[[^\[\]]+\]$`)

	// Canonical form: content, two or more spaces, '#', one space, bracketed
	// expression.
	tidySelectorRe = regexp.MustCompile(`^.+?\s{2,}#\s\[.+\]`)

	jinjaAssignRe = regexp.MustCompile(`^\s*\{%\s*set\s+\S+\s*=\s*\S+\s*%\}`)

	// Canonical form: exactly one space around set, the name, '=', the value.
	tidyJinjaRe = regexp.MustCompile(`^\s*\{%\sset\s\S+\s=\s\S+\s%\}`)
)

// RawLine is a literal recipe line paired with its 1-based line number, used
// by the rules whose contract is defined against the raw textual layout.
type RawLine struct {
	Text   string
	Number int
}

// IsSelectorLine reports whether a raw line carries a selector annotation.
// Comment-only lines are not selectors.
func IsSelectorLine(line string) bool {
	line = strings.TrimRight(line, " \t\r\n")
	if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
		return false
	}
	return selectorCommentRe.MatchString(line) || selectorBareRe.MatchString(line)
}

// IsTidySelectorLine reports whether a selector line is in canonical form.
func IsTidySelectorLine(line string) bool {
	return tidySelectorRe.MatchString(strings.TrimRight(line, " \t\r\n"))
}

// IsJinjaLine reports whether a raw line is a template variable assignment.
func IsJinjaLine(line string) bool {
	return jinjaAssignRe.MatchString(strings.TrimRight(line, " \t\r\n"))
}

// IsTidyJinjaLine reports whether a template assignment is in canonical form.
func IsTidyJinjaLine(line string) bool {
	return tidyJinjaRe.MatchString(strings.TrimRight(line, " \t\r\n"))
}

// SelectorLines returns every selector line of the raw text with its line
// number. The text is immutable input, so each call rescans from scratch.
func SelectorLines(content string) []RawLine {
	return classifyLines(content, IsSelectorLine)
}

// JinjaLines returns every template variable-assignment line of the raw text
// with its line number.
func JinjaLines(content string) []RawLine {
	return classifyLines(content, IsJinjaLine)
}

func classifyLines(content string, matches func(string) bool) []RawLine {
	var out []RawLine
	for i, line := range strings.Split(content, "\n") {
		if matches(line) {
			out = append(out, RawLine{Text: line, Number: i + 1})
		}
	}
	return out
}

// formatLineNumbers renders line numbers for a finding message: [3, 14].
func formatLineNumbers(lines []RawLine) string {
	numbers := make([]string, 0, len(lines))
	for _, line := range lines {
		numbers = append(numbers, strconv.Itoa(line.Number))
	}
	return fmt.Sprintf("[%s]", strings.Join(numbers, ", "))
}
