package lint

import "strings"

// lintLegacyNumpyPin flags the deprecated pinned-numpy pattern in build
// requirements.
func lintLegacyNumpyPin(ctx *ruleContext) {
	if buildRequirementsContain(ctx, "numpy x.x") {
		ctx.findings.AddError(
			"Using pinned numpy packages is a deprecated pattern.  Consider using the method outlined " +
				"[here](https://conda-forge.org/docs/meta.html#building-against-numpy).")
	}
}

// lintLegacyToolchain flags direct use of the toolchain package in build
// requirements.
func lintLegacyToolchain(ctx *ruleContext) {
	if buildRequirementsContain(ctx, "toolchain") {
		ctx.findings.AddError(
			"Using toolchain directly in this manner is deprecated.  Consider using the compilers outlined " +
				"[here](https://conda-forge.org/docs/meta.html#compilers).")
	}
}

// buildRequirementsContain reports whether requirements/build lists the
// token as an entry. A scalar requirements/build value is searched as text.
func buildRequirementsContain(ctx *ruleContext, token string) bool {
	v, ok := ctx.requirements.Get("build")
	if !ok || v == nil {
		return false
	}
	switch reqs := v.(type) {
	case string:
		return strings.Contains(reqs, token)
	case []any:
		for _, req := range reqs {
			if s, ok := req.(string); ok && s == token {
				return true
			}
		}
	}
	return false
}
