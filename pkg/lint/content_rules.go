package lint

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/condaforge/recipe-lint/pkg/fileutil"
	"github.com/condaforge/recipe-lint/pkg/recipe"
	"github.com/condaforge/recipe-lint/pkg/schema"
)

var recipeNameRe = regexp.MustCompile(`^[a-z0-9_\-.]+$`)

// lintAboutContents requires non-empty home, license, and summary entries in
// the about section.
func lintAboutContents(ctx *ruleContext) {
	for _, item := range []string{"home", "license", "summary"} {
		if ctx.about.String(item) == "" {
			ctx.findings.AddErrorf("The %s item is expected in the about section.", item)
		}
	}
}

// lintMaintainersPresent requires a non-empty extra/recipe-maintainers list.
func lintMaintainersPresent(ctx *ruleContext) {
	v, ok := ctx.extra.Get("recipe-maintainers")
	if ok && !isEmptyValue(v) {
		return
	}
	ctx.findings.AddError(
		"The recipe could do with some maintainers listed in the `extra/recipe-maintainers` section.")
}

// lintMaintainersAreList requires recipe-maintainers, when present, to be a
// list rather than a scalar.
func lintMaintainersAreList(ctx *ruleContext) {
	v, ok := ctx.extra.Get("recipe-maintainers")
	if !ok {
		return
	}
	if _, isList := v.([]any); !isList {
		ctx.findings.AddError("Recipe maintainers should be a json list.")
	}
}

// lintHasTests requires some test signal: test imports/commands, a test
// script next to the recipe, or per-output tests. When only some outputs
// have tests the gaps become hints; when nothing does, one blocking error.
func lintHasTests(ctx *ruleContext) {
	for _, key := range testKeys {
		if ctx.test.Has(key) {
			return
		}
	}

	if ctx.opts.RecipeDir != "" {
		for _, name := range testFiles {
			if fileutil.FileExists(filepath.Join(ctx.opts.RecipeDir, name)) {
				return
			}
		}
	}

	if len(ctx.outputs) > 0 {
		hasOutputTest := false
		var missing []string
		for _, out := range ctx.outputs {
			testOut := recipe.Section(out, "test", &ctx.findings.Errors)
			outputHasTest := false
			for _, key := range testKeys {
				if testOut.Has(key) {
					outputHasTest = true
					break
				}
			}
			if outputHasTest {
				hasOutputTest = true
			} else {
				name := out.String("name")
				if name == "" {
					name = "???"
				}
				missing = append(missing,
					fmt.Sprintf("It looks like the '%s' output doesn't have any tests.", name))
			}
		}
		if hasOutputTest {
			for _, hint := range missing {
				ctx.findings.AddHint(hint)
			}
			return
		}
	}

	ctx.findings.AddError("The recipe must have some tests.")
}

// lintLicenseNotUnknown rejects a license of literally "unknown".
func lintLicenseNotUnknown(ctx *ruleContext) {
	license := strings.TrimSpace(strings.ToLower(ctx.about.String("license")))
	if license == "unknown" {
		ctx.findings.AddError("The recipe license cannot be unknown.")
	}
}

// lintBuildNumber requires a non-null build/number entry.
func lintBuildNumber(ctx *ruleContext) {
	if v, ok := ctx.build.Get("number"); !ok || v == nil {
		ctx.findings.AddError("The recipe must have a `build/number` section.")
	}
}

// lintSourceChecksums requires a checksum on every source entry that
// downloads from a url.
func lintSourceChecksums(ctx *ruleContext) {
	for _, source := range ctx.sources {
		if !source.Has("url") {
			continue
		}
		if source.Has("sha256") || source.Has("sha1") || source.Has("md5") {
			continue
		}
		ctx.findings.AddError(
			"When defining a source/url please add a sha256, sha1 or md5 checksum (sha256 preferably).")
	}
}

// lintLicenseWording rejects redundant licensing text like "BSD License".
func lintLicenseWording(ctx *ruleContext) {
	license := strings.ToLower(ctx.about.String("license"))
	if strings.Contains(license, "license") {
		ctx.findings.AddError("The recipe `license` should not include the word \"License\".")
	}
}

// lintLicenseFamily validates about/license_family against the allowed
// families, surfacing the validator's message as the finding.
func lintLicenseFamily(ctx *ruleContext) {
	if err := schema.ValidateLicenseFamily(ctx.about.String("license_family")); err != nil {
		ctx.findings.AddError(err.Error())
	}
}

// lintRecipeName restricts package names to lowercase alphanumerics,
// underscores, hyphens, and dots. A missing name fails too.
func lintRecipeName(ctx *ruleContext) {
	name := strings.TrimSpace(ctx.pkg.String("name"))
	if !recipeNameRe.MatchString(name) {
		ctx.findings.AddError(
			"Recipe name has invalid characters. only lowercase alpha, numeric, underscores, hyphens and dots allowed")
	}
}

// lintPackageVersion checks package/version, when present, against the conda
// version grammar.
func lintPackageVersion(ctx *ruleContext) {
	v, ok := ctx.pkg.Get("version")
	if !ok || v == nil {
		return
	}
	version := fmt.Sprint(v)
	if err := schema.CheckVersion(version); err != nil {
		ctx.findings.AddErrorf("Package version %s doesn't match conda spec", version)
	}
}

// hintUsePip suggests pip whenever a build script invokes setup.py install
// directly.
func hintUsePip(ctx *ruleContext) {
	v, ok := ctx.build.Get("script")
	if !ok {
		return
	}
	var scripts []string
	switch script := v.(type) {
	case string:
		scripts = []string{script}
	case []any:
		for _, s := range script {
			if str, ok := s.(string); ok {
				scripts = append(scripts, str)
			}
		}
	}
	for _, script := range scripts {
		if strings.Contains(script, "python setup.py install") {
			ctx.findings.AddHint(
				"Whenever possible python packages should use pip. See https://conda-forge.org/docs/meta.html#use-pip")
		}
	}
}

// isEmptyValue reports whether a decoded YAML value is absent-like: null, an
// empty string, or an empty list.
func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	default:
		if m, ok := recipe.AsMapping(v); ok {
			return len(m) == 0
		}
		return false
	}
}
