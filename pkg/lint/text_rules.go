package lint

import (
	"strings"
)

// The raw-text rules check properties that do not survive rendering and
// parsing: selector and template-line tidiness, trailing newlines, and the
// noarch/selector interaction. They only run when the recipe file is
// accessible on disk.

// lintSelectorTidiness flags selector lines that are not in the canonical
// `<two spaces>#<one space>[<expression>]` form.
func lintSelectorTidiness(ctx *ruleContext) {
	content, ok := ctx.raw()
	if !ok {
		return
	}
	var bad []RawLine
	for _, line := range SelectorLines(content) {
		if !IsTidySelectorLine(line.Text) {
			bad = append(bad, line)
		}
	}
	if len(bad) > 0 {
		ctx.findings.AddErrorf(
			"Selectors are suggested to take a ``<two spaces>#<one space>[<expression>]`` form. See lines %s",
			formatLineNumbers(bad))
	}
}

// lintJinjaTidiness flags template variable assignments that are not in the
// canonical `{% set name = value %}` form.
func lintJinjaTidiness(ctx *ruleContext) {
	content, ok := ctx.raw()
	if !ok {
		return
	}
	var bad []RawLine
	for _, line := range JinjaLines(content) {
		if !IsTidyJinjaLine(line.Text) {
			bad = append(bad, line)
		}
	}
	if len(bad) > 0 {
		ctx.findings.AddErrorf(
			"Jinja2 variable definitions are suggested to take a ``{%%<one space>set<one space><variable name><one space>=<one space><expression><one space>%%}`` form. See lines %s",
			formatLineNumbers(bad))
	}
}

// lintTrailingNewline requires exactly one empty line at the end of the
// recipe file.
func lintTrailingNewline(ctx *ruleContext) {
	content, ok := ctx.raw()
	if !ok {
		return
	}
	lines := strings.Split(content, "\n")
	emptyAtEnd := 0
	for i := len(lines) - 1; i >= 0 && lines[i] == ""; i-- {
		emptyAtEnd++
	}
	switch {
	case emptyAtEnd > 1:
		ctx.findings.AddErrorf(
			"There are %d too many lines.  There should be one empty line at the end of the file.",
			emptyAtEnd-1)
	case emptyAtEnd < 1:
		ctx.findings.AddError(
			"There are too few lines.  There should be one empty line at the end of the file.")
	}
}

// lintNoarchSelectors rejects selectors within the requirements block or on
// a skip line when the build is noarch; a noarch build cannot be
// platform-conditional.
//
// The requirements block is delimited textually: it starts at the line whose
// stripped form is exactly "requirements:" and ends at the first subsequent
// line whose leading indentation returns to that line's own indentation.
// This layout-based scan is the rule's contract; a structural re-parse would
// see the rendered document, not the selectors.
func lintNoarchSelectors(ctx *ruleContext) {
	noarch, ok := ctx.build.Get("noarch")
	if !ok || noarch == nil {
		return
	}
	content, rawOK := ctx.raw()
	if !rawOK {
		return
	}

	inRequirements := false
	requirementsIndent := ""
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "requirements:" {
			inRequirements = true
			requirementsIndent = leadingWhitespace(line)
			continue
		}
		if strings.HasPrefix(stripped, "skip:") && IsSelectorLine(line) {
			ctx.findings.AddErrorf(
				"`noarch` packages can't have selectors. If the selectors are necessary, please remove `noarch: %v`.",
				noarch)
			return
		}
		if inRequirements {
			if leadingWhitespace(line) == requirementsIndent {
				inRequirements = false
				continue
			}
			if IsSelectorLine(line) {
				ctx.findings.AddErrorf(
					"`noarch` packages can't have selectors. If the selectors are necessary, please remove `noarch: %v`.",
					noarch)
				return
			}
		}
	}
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
