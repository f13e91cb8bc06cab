package recipe

import (
	"regexp"
	"strings"

	"github.com/condaforge/recipe-lint/pkg/logger"
)

var renderLog = logger.New("recipe:render")

// Renderer expands templating constructs in raw recipe text before parsing.
// Render errors are not handled by the lint engine and propagate to the
// caller unchanged.
type Renderer interface {
	Render(content string) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(content string) (string, error)

// Render implements Renderer.
func (f RendererFunc) Render(content string) (string, error) {
	return f(content)
}

var (
	jinjaSetRe  = regexp.MustCompile(`\{%\s*set\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+?)\s*%\}`)
	jinjaExprRe = regexp.MustCompile(`\{\{\s*(.*?)\s*\}\}`)
	jinjaStmtRe = regexp.MustCompile(`\{%.*?%\}`)
)

// DefaultRenderer returns the built-in best-effort template expander.
//
// It mirrors null-undefined Jinja semantics: `{% set name = value %}`
// assignments are collected and substituted into `{{ name }}` expressions,
// every other `{{ ... }}` expression collapses to an empty string, and
// remaining `{% ... %}` statements are blanked out. Line structure is
// preserved so parse errors still point at meaningful locations.
func DefaultRenderer() Renderer {
	return RendererFunc(expandTemplates)
}

func expandTemplates(content string) (string, error) {
	vars := map[string]string{}
	for _, m := range jinjaSetRe.FindAllStringSubmatch(content, -1) {
		vars[m[1]] = unquote(m[2])
	}
	renderLog.Printf("Expanding templates: variables=%d", len(vars))

	out := jinjaExprRe.ReplaceAllStringFunc(content, func(expr string) string {
		inner := strings.TrimSpace(jinjaExprRe.FindStringSubmatch(expr)[1])
		// Drop trailing filters: `{{ version|lower }}` resolves on the name.
		if i := strings.IndexAny(inner, "|. ("); i >= 0 {
			inner = inner[:i]
		}
		if v, ok := vars[inner]; ok {
			return v
		}
		return ""
	})
	out = jinjaStmtRe.ReplaceAllString(out, "")
	return out, nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
