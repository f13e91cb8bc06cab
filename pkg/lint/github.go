package lint

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/condaforge/recipe-lint/pkg/logger"
)

var githubLog = logger.New("lint:github")

// DefaultOrg is the organization whose feedstocks the advisory rules check
// against. Overridable via Options.Org or the GH_ORG environment variable.
const DefaultOrg = "conda-forge"

// ErrAdvisory marks a lookup failure in the conda-forge advisory rules. The
// core findings returned alongside it are complete; callers can downgrade it
// to a warning.
var ErrAdvisory = errors.New("conda-forge advisory rules failed")

const (
	biocondaOrg  = "bioconda"
	biocondaRepo = "bioconda-recipes"
)

// RepoLookup is the directory service capability the conda-forge specific
// rules depend on. "Not found" is a distinguished negative outcome, reported
// as (false, nil); only transport or authentication failures return an error.
type RepoLookup interface {
	RepoExists(org, name string) (bool, error)
	PathExists(org, repo, path string) (bool, error)
	UserExists(login string) (bool, error)
}

// GitHubLookup implements RepoLookup against the GitHub REST API, with
// authentication resolved from the ambient gh configuration.
type GitHubLookup struct {
	client *api.RESTClient
}

// NewGitHubLookup creates a REST-backed lookup.
func NewGitHubLookup() (*GitHubLookup, error) {
	client, err := api.NewRESTClient(api.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return &GitHubLookup{client: client}, nil
}

// RepoExists reports whether org/name exists.
func (g *GitHubLookup) RepoExists(org, name string) (bool, error) {
	return g.exists(fmt.Sprintf("repos/%s/%s", org, name))
}

// PathExists reports whether the given path exists within org/repo.
func (g *GitHubLookup) PathExists(org, repo, path string) (bool, error) {
	return g.exists(fmt.Sprintf("repos/%s/%s/contents/%s", org, repo, path))
}

// UserExists reports whether a user account exists.
func (g *GitHubLookup) UserExists(login string) (bool, error) {
	return g.exists(fmt.Sprintf("users/%s", login))
}

func (g *GitHubLookup) exists(path string) (bool, error) {
	githubLog.Printf("GET %s", path)
	var resp struct{}
	err := g.client.Get(path, &resp)
	if err == nil {
		return true, nil
	}
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, err
}

// DisabledLookup is the no-op capability for environments without GitHub
// credentials: nothing conflicts and every maintainer resolves, so the
// advisory rules degrade silently.
type DisabledLookup struct{}

// RepoExists always reports absent.
func (DisabledLookup) RepoExists(org, name string) (bool, error) { return false, nil }

// PathExists always reports absent.
func (DisabledLookup) PathExists(org, repo, path string) (bool, error) { return false, nil }

// UserExists always reports present.
func (DisabledLookup) UserExists(login string) (bool, error) { return true, nil }

// lintCondaForgeAdvisory runs the conda-forge specific advisory rules when
// enabled. A lookup failure other than not-found aborts the advisory pass
// only; the core rules before and after it are unaffected.
func lintCondaForgeAdvisory(ctx *ruleContext) {
	if !ctx.opts.CondaForge {
		return
	}
	lookup := ctx.opts.Lookup
	if lookup == nil {
		githubLog.Print("No repo lookup configured, skipping advisory rules")
		return
	}
	if err := runCondaForgeSpecific(ctx, lookup); err != nil {
		githubLog.Printf("Advisory pass aborted: %v", err)
		ctx.advisoryErr = fmt.Errorf("%w: %w", ErrAdvisory, err)
	}
}

func runCondaForgeSpecific(ctx *ruleContext, lookup RepoLookup) error {
	recipeDirname := "recipe"
	if ctx.opts.RecipeDir != "" {
		recipeDirname = filepath.Base(ctx.opts.RecipeDir)
	}
	recipeName := strings.TrimSpace(ctx.pkg.String("name"))
	isStagedRecipe := recipeDirname != "recipe"

	// A staged recipe must not collide with an existing feedstock, and a
	// same-named bioconda recipe is worth coordinating on.
	if isStagedRecipe && recipeName != "" {
		exists, err := lookup.RepoExists(ctx.opts.Org, recipeName+"-feedstock")
		if err != nil {
			return err
		}
		if exists {
			ctx.findings.AddError("Feedstock with the same name exists in conda-forge")
		}

		exists, err = lookup.PathExists(biocondaOrg, biocondaRepo, "recipes/"+recipeName)
		if err != nil {
			return err
		}
		if exists {
			ctx.findings.AddHint(
				"Recipe with the same name exists in bioconda: please discuss with @conda-forge/bioconda-recipes.")
		}
	}

	// Team-qualified maintainers (org/team) are not checked; existence
	// lookups for teams are too costly.
	if maintainers, ok := ctx.extra.Get("recipe-maintainers"); ok {
		if list, ok := maintainers.([]any); ok {
			for _, m := range list {
				maintainer, ok := m.(string)
				if !ok || strings.Contains(maintainer, "/") {
					continue
				}
				exists, err := lookup.UserExists(maintainer)
				if err != nil {
					return err
				}
				if !exists {
					ctx.findings.AddErrorf("Recipe maintainer %q does not exist", maintainer)
				}
			}
		}
	}

	if ctx.opts.RecipeDir != "" && strings.Contains(ctx.opts.RecipeDir, "recipes/example/") {
		ctx.findings.AddError("Please move the recipe out of the example dir and into its own dir.")
	}
	return nil
}
