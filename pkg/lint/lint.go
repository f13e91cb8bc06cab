package lint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/condaforge/recipe-lint/pkg/fileutil"
	"github.com/condaforge/recipe-lint/pkg/logger"
	"github.com/condaforge/recipe-lint/pkg/recipe"
)

var lintLog = logger.New("lint:lint")

// ErrNoRecipe is returned when the recipe root has no meta.yaml to lint.
// Without a document no rule can run, so this is fatal rather than a finding.
var ErrNoRecipe = errors.New("feedstock has no recipe/meta.yaml")

// Options configures a lint pass.
type Options struct {
	// RecipeDir is the directory holding meta.yaml. Empty when linting an
	// in-memory document; the raw-text rules then skip.
	RecipeDir string

	// CondaForge enables the conda-forge specific advisory rules.
	CondaForge bool

	// Lookup is the directory service used by the advisory rules. Defaults
	// to a GitHub-backed lookup when CondaForge is set.
	Lookup RepoLookup

	// Org is the feedstock organization checked by the advisory rules.
	// Defaults to GH_ORG, then "conda-forge".
	Org string

	// Renderer expands templating before parse. Defaults to the built-in
	// best-effort expander.
	Renderer recipe.Renderer
}

func (o Options) withDefaults() Options {
	if o.Org == "" {
		o.Org = os.Getenv("GH_ORG")
	}
	if o.Org == "" {
		o.Org = DefaultOrg
	}
	if o.Renderer == nil {
		o.Renderer = recipe.DefaultRenderer()
	}
	if o.CondaForge && o.Lookup == nil {
		lookup, err := NewGitHubLookup()
		if err != nil {
			lintLog.Printf("GitHub lookup unavailable, advisory rules will skip: %v", err)
		} else {
			o.Lookup = lookup
		}
	}
	return o
}

// RecipeDir lints the recipe in the given directory: it loads the raw
// meta.yaml, renders the templating, parses the document, and runs the full
// rule catalog.
//
// A missing recipe definition returns an error wrapping ErrNoRecipe. Render
// and parse failures propagate unconverted. An advisory-lookup transport
// failure is returned alongside the complete core findings.
func RecipeDir(dir string, opts Options) (lints, hints []string, err error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve recipe dir: %w", err)
	}
	metaPath := filepath.Join(abs, "meta.yaml")
	if !fileutil.FileExists(metaPath) {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoRecipe, metaPath)
	}
	lintLog.Printf("Linting recipe: %s", metaPath)

	raw, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", metaPath, err)
	}

	opts = opts.withDefaults()
	rendered, err := opts.Renderer.Render(string(raw))
	if err != nil {
		return nil, nil, err
	}
	doc, err := recipe.Parse([]byte(rendered))
	if err != nil {
		return nil, nil, err
	}

	opts.RecipeDir = abs
	return Lintify(doc, opts)
}
