package lint

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/condaforge/recipe-lint/pkg/logger"
	"github.com/condaforge/recipe-lint/pkg/recipe"
)

var engineLog = logger.New("lint:engine")

// Canonical top-level section order for a recipe.
var expectedSectionOrder = []string{
	"package", "source", "build", "requirements",
	"test", "app", "outputs", "about", "extra",
}

// Canonical relative order of the requirements tiers.
var requirementsOrder = []string{"build", "host", "run"}

// Keys within the test section that count as tests.
var testKeys = []string{"imports", "commands"}

// Test script files that satisfy the has-tests rule when present next to the
// recipe definition.
var testFiles = []string{"run_test.py", "run_test.sh", "run_test.bat", "run_test.pl"}

// ruleContext carries the normalized document, the shared finding
// accumulator, and lazily loaded raw text across one rule pass.
type ruleContext struct {
	doc      recipe.Document
	opts     Options
	findings *Findings

	// Expected top-level keys present in the document, in document order.
	// Populated by the unexpected-keys rule, which strips unknown keys.
	majorSections []string

	sources      []recipe.Mapping
	outputs      []recipe.Mapping
	build        recipe.Mapping
	requirements recipe.Mapping
	test         recipe.Mapping
	about        recipe.Mapping
	extra        recipe.Mapping
	pkg          recipe.Mapping
	app          recipe.Mapping

	rawLoaded  bool
	rawContent string
	rawOK      bool

	advisoryErr error
}

// ruleCatalog is the fixed evaluation order of the lint rules. The order
// affects only the order of emitted findings; every rule is independent.
var ruleCatalog = []struct {
	name string
	run  func(*ruleContext)
}{
	{"unexpected-top-level-keys", lintUnexpectedTopLevelKeys},
	{"section-order", lintSectionOrder},
	{"about-contents", lintAboutContents},
	{"maintainers-present", lintMaintainersPresent},
	{"maintainers-list", lintMaintainersAreList},
	{"has-tests", lintHasTests},
	{"license-not-unknown", lintLicenseNotUnknown},
	{"selector-tidiness", lintSelectorTidiness},
	{"build-number", lintBuildNumber},
	{"requirements-order", lintRequirementsOrder},
	{"source-checksums", lintSourceChecksums},
	{"license-wording", lintLicenseWording},
	{"trailing-newline", lintTrailingNewline},
	{"license-family", lintLicenseFamily},
	{"recipe-name", lintRecipeName},
	{"conda-forge-advisory", lintCondaForgeAdvisory},
	{"legacy-numpy-pin", lintLegacyNumpyPin},
	{"subsection-names", lintSubsectionNames},
	{"noarch-selectors", lintNoarchSelectors},
	{"package-version", lintPackageVersion},
	{"jinja-tidiness", lintJinjaTidiness},
	{"legacy-toolchain", lintLegacyToolchain},
	{"pip-install-hint", hintUsePip},
}

// Lintify runs the full rule catalog against an already-parsed recipe
// document and returns the accumulated (errors, hints).
//
// The returned error is non-nil only when the conda-forge advisory rules hit
// a remote failure other than not-found; the core findings are complete and
// valid even then, since the advisory failure never cancels the core pass.
func Lintify(doc recipe.Document, opts Options) (lints, hints []string, err error) {
	opts = opts.withDefaults()

	ctx := &ruleContext{
		doc:      doc,
		opts:     opts,
		findings: &Findings{},
	}
	ctx.normalizeSections()

	engineLog.Printf("Running rule catalog: rules=%d, recipeDir=%q, condaForge=%v",
		len(ruleCatalog), opts.RecipeDir, opts.CondaForge)
	for _, rule := range ruleCatalog {
		before := len(ctx.findings.Errors) + len(ctx.findings.Hints)
		rule.run(ctx)
		if added := len(ctx.findings.Errors) + len(ctx.findings.Hints) - before; added > 0 {
			engineLog.Printf("Rule %s emitted %d finding(s)", rule.name, added)
		}
	}

	return ctx.findings.Errors, ctx.findings.Hints, ctx.advisoryErr
}

// normalizeSections resolves every known section through the shape-tolerant
// accessors once, so each rule receives a canonical form and shape findings
// are recorded exactly once.
func (ctx *ruleContext) normalizeSections() {
	errs := &ctx.findings.Errors
	ctx.sources = recipe.ListSection(ctx.doc, "source", errs, true)
	ctx.build = recipe.Section(ctx.doc, "build", errs)
	ctx.requirements = recipe.Section(ctx.doc, "requirements", errs)
	ctx.test = recipe.Section(ctx.doc, "test", errs)
	ctx.about = recipe.Section(ctx.doc, "about", errs)
	ctx.extra = recipe.Section(ctx.doc, "extra", errs)
	ctx.pkg = recipe.Section(ctx.doc, "package", errs)
	ctx.app = recipe.Section(ctx.doc, "app", errs)
	ctx.outputs = recipe.ListSection(ctx.doc, "outputs", errs, false)
}

// section returns the normalized mapping section by name. Only sections in
// the canonical vocabulary are requested.
func (ctx *ruleContext) section(name string) recipe.Mapping {
	switch name {
	case "build":
		return ctx.build
	case "requirements":
		return ctx.requirements
	case "test":
		return ctx.test
	case "about":
		return ctx.about
	case "extra":
		return ctx.extra
	case "package":
		return ctx.pkg
	case "app":
		return ctx.app
	default:
		return recipe.Mapping{}
	}
}

// metaPath returns the on-disk location of the recipe definition, or "" when
// linting a document without disk access.
func (ctx *ruleContext) metaPath() string {
	if ctx.opts.RecipeDir == "" {
		return ""
	}
	return filepath.Join(ctx.opts.RecipeDir, "meta.yaml")
}

// raw returns the literal recipe file text. The raw-text rules skip when the
// file is not accessible on disk.
func (ctx *ruleContext) raw() (string, bool) {
	if ctx.rawLoaded {
		return ctx.rawContent, ctx.rawOK
	}
	ctx.rawLoaded = true

	path := ctx.metaPath()
	if path == "" {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		engineLog.Printf("Raw text unavailable, skipping text rules: %v", err)
		return "", false
	}
	ctx.rawContent = string(data)
	ctx.rawOK = true
	return ctx.rawContent, true
}

// sortByCanonicalIndex returns keys reordered by their position in order.
// Every key is expected to appear in order.
func sortByCanonicalIndex(keys, order []string) []string {
	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return slices.Index(order, a) - slices.Index(order, b)
	})
	return sorted
}
