//go:build !integration

package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condaforge/recipe-lint/pkg/recipe"
)

func runLint(t *testing.T, content string) (lints, hints []string) {
	t.Helper()
	doc, err := recipe.Parse([]byte(content))
	require.NoError(t, err)
	lints, hints, err = Lintify(doc, Options{})
	require.NoError(t, err)
	return lints, hints
}

// goodRecipe passes every rule that does not need disk access.
const goodRecipe = `package:
  name: foo
  version: 1.2.3
build:
  number: 0
requirements:
  build:
    - cmake
  host:
    - python
  run:
    - python
test:
  imports:
    - foo
about:
  home: https://example.com
  license: BSD-3-Clause
  summary: a package
extra:
  recipe-maintainers:
    - someone
`

func TestCleanRecipeHasNoFindings(t *testing.T) {
	lints, hints := runLint(t, goodRecipe)
	assert.Empty(t, lints)
	assert.Empty(t, hints)
}

func TestDeterministicFindingOrder(t *testing.T) {
	content := "build:\n  name: bar\npackage:\n  version: not//valid\n"
	first, firstHints := runLint(t, content)
	second, secondHints := runLint(t, content)
	assert.Equal(t, first, second)
	assert.Equal(t, firstHints, secondHints)
	assert.NotEmpty(t, first)
}

func TestUnexpectedTopLevelKey(t *testing.T) {
	lints, _ := runLint(t, goodRecipe+"sauce:\n  url: http://x\n")
	assert.Contains(t, lints, "The top level meta key sauce is unexpected")
	// The unexpected key is excluded from order checking.
	for _, l := range lints {
		assert.NotContains(t, l, "unexpected order")
	}
}

func TestSectionOrder(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "build before package",
			content: "build:\n  number: 0\npackage:\n  name: foo\n",
			want:    "The top level meta keys are in an unexpected order. Expecting ['package', 'build'].",
		},
		{
			name:    "canonical order is fine",
			content: "package:\n  name: foo\nbuild:\n  number: 0\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lints, _ := runLint(t, tt.content)
			if tt.want == "" {
				for _, l := range lints {
					assert.NotContains(t, l, "unexpected order")
				}
			} else {
				assert.Contains(t, lints, tt.want)
			}
		})
	}
}

func TestAboutContents(t *testing.T) {
	lints, _ := runLint(t, "about:\n  license: MIT\n")
	assert.Contains(t, lints, "The home item is expected in the about section.")
	assert.Contains(t, lints, "The summary item is expected in the about section.")
	assert.NotContains(t, lints, "The license item is expected in the about section.")
}

func TestAboutEmptyValuesCount(t *testing.T) {
	lints, _ := runLint(t, "about:\n  home: ''\n  license: MIT\n  summary: ok\n")
	assert.Contains(t, lints, "The home item is expected in the about section.")
}

func TestMaintainers(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantMissing  bool
		wantNotAList bool
	}{
		{name: "absent section", content: "package:\n  name: foo\n", wantMissing: true},
		{name: "empty list", content: "extra:\n  recipe-maintainers: []\n", wantMissing: true},
		{name: "null value", content: "extra:\n  recipe-maintainers:\n", wantMissing: true, wantNotAList: true},
		{name: "scalar value", content: "extra:\n  recipe-maintainers: someone\n", wantNotAList: true},
		{name: "proper list", content: "extra:\n  recipe-maintainers:\n    - someone\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lints, _ := runLint(t, tt.content)
			missing := "The recipe could do with some maintainers listed in the `extra/recipe-maintainers` section."
			notAList := "Recipe maintainers should be a json list."
			if tt.wantMissing {
				assert.Contains(t, lints, missing)
			} else {
				assert.NotContains(t, lints, missing)
			}
			if tt.wantNotAList {
				assert.Contains(t, lints, notAList)
			} else {
				assert.NotContains(t, lints, notAList)
			}
		})
	}
}

func TestHasTests(t *testing.T) {
	noTests := "The recipe must have some tests."

	t.Run("imports satisfy", func(t *testing.T) {
		lints, _ := runLint(t, "test:\n  imports:\n    - foo\n")
		assert.NotContains(t, lints, noTests)
	})

	t.Run("commands satisfy", func(t *testing.T) {
		lints, _ := runLint(t, "test:\n  commands:\n    - foo --help\n")
		assert.NotContains(t, lints, noTests)
	})

	t.Run("nothing at all", func(t *testing.T) {
		lints, _ := runLint(t, "package:\n  name: foo\n")
		assert.Contains(t, lints, noTests)
	})

	t.Run("all outputs tested", func(t *testing.T) {
		lints, hints := runLint(t, `outputs:
  - name: a
    test:
      imports:
        - a
  - name: b
    test:
      commands:
        - b --version
`)
		assert.NotContains(t, lints, noTests)
		assert.Empty(t, hints)
	})

	t.Run("some outputs untested becomes hints", func(t *testing.T) {
		lints, hints := runLint(t, `outputs:
  - name: a
    test:
      imports:
        - a
  - name: b
`)
		assert.NotContains(t, lints, noTests)
		assert.Contains(t, hints, "It looks like the 'b' output doesn't have any tests.")
	})

	t.Run("no outputs tested is an error", func(t *testing.T) {
		lints, hints := runLint(t, "outputs:\n  - name: a\n  - name: b\n")
		assert.Contains(t, lints, noTests)
		assert.Empty(t, hints)
	})

	t.Run("unnamed output placeholder", func(t *testing.T) {
		_, hints := runLint(t, `outputs:
  - test:
      imports:
        - a
  - script: build.sh
`)
		assert.Contains(t, hints, "It looks like the '???' output doesn't have any tests.")
	})
}

func TestLicenseRules(t *testing.T) {
	t.Run("unknown license", func(t *testing.T) {
		lints, _ := runLint(t, "about:\n  license: UNKNOWN\n")
		assert.Contains(t, lints, "The recipe license cannot be unknown.")
	})

	t.Run("license word", func(t *testing.T) {
		lints, _ := runLint(t, "about:\n  license: BSD License\n")
		assert.Contains(t, lints, "The recipe `license` should not include the word \"License\".")
	})

	t.Run("bad license family", func(t *testing.T) {
		lints, _ := runLint(t, "about:\n  license: MIT\n  license_family: COMMERCIAL\n")
		found := false
		for _, l := range lints {
			if strings.Contains(l, "about/license_family 'COMMERCIAL' not allowed") {
				found = true
			}
		}
		assert.True(t, found, "expected a license_family finding, got %v", lints)
	})

	t.Run("valid family", func(t *testing.T) {
		lints, _ := runLint(t, "about:\n  license: MIT\n  license_family: MIT\n")
		for _, l := range lints {
			assert.NotContains(t, l, "license_family")
		}
	})
}

func TestBuildNumber(t *testing.T) {
	missing := "The recipe must have a `build/number` section."

	lints, _ := runLint(t, "build:\n  number: 0\n")
	assert.NotContains(t, lints, missing)

	lints, _ = runLint(t, "build:\n  number:\n")
	assert.Contains(t, lints, missing)

	lints, _ = runLint(t, "package:\n  name: foo\n")
	assert.Contains(t, lints, missing)
}

func TestRequirementsOrder(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "run before build",
			content: "requirements:\n  run:\n    - a\n  build:\n    - b\n",
			want:    "The `requirements/` sections should be defined in the following order: build, host, run; instead saw: run, build.",
		},
		{
			name:    "absent tiers are skipped",
			content: "requirements:\n  host:\n    - a\n  run:\n    - b\n",
			want:    "",
		},
		{
			name:    "canonical",
			content: "requirements:\n  build:\n    - a\n  host:\n    - b\n  run:\n    - c\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lints, _ := runLint(t, tt.content)
			if tt.want == "" {
				for _, l := range lints {
					assert.NotContains(t, l, "requirements/")
				}
			} else {
				assert.Contains(t, lints, tt.want)
			}
		})
	}
}

func TestSourceChecksums(t *testing.T) {
	missing := "When defining a source/url please add a sha256, sha1 or md5 checksum (sha256 preferably)."

	t.Run("url with sha256", func(t *testing.T) {
		lints, _ := runLint(t, "source:\n  url: http://x\n  sha256: abc\n")
		assert.NotContains(t, lints, missing)
	})

	t.Run("url without checksum", func(t *testing.T) {
		lints, _ := runLint(t, "source:\n  url: http://x\n")
		assert.Equal(t, 1, countOccurrences(lints, missing))
	})

	t.Run("single mapping and one element list match", func(t *testing.T) {
		asMapping, _ := runLint(t, "source:\n  url: http://x\n")
		asList, _ := runLint(t, "source:\n  - url: http://x\n")
		assert.Equal(t, asMapping, asList)
	})

	t.Run("each offending entry reported", func(t *testing.T) {
		lints, _ := runLint(t, "source:\n  - url: http://x\n  - url: http://y\n    md5: abc\n  - url: http://z\n")
		assert.Equal(t, 2, countOccurrences(lints, missing))
	})

	t.Run("path source needs no checksum", func(t *testing.T) {
		lints, _ := runLint(t, "source:\n  path: ../src\n")
		assert.NotContains(t, lints, missing)
	})
}

func TestRecipeName(t *testing.T) {
	invalid := "Recipe name has invalid characters. only lowercase alpha, numeric, underscores, hyphens and dots allowed"

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "valid", content: "package:\n  name: foo-bar_1.2\n", want: false},
		{name: "uppercase", content: "package:\n  name: Foo\n", want: true},
		{name: "spaces", content: "package:\n  name: foo bar\n", want: true},
		{name: "missing name", content: "build:\n  number: 0\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lints, _ := runLint(t, tt.content)
			if tt.want {
				assert.Contains(t, lints, invalid)
			} else {
				assert.NotContains(t, lints, invalid)
			}
		})
	}
}

func TestPackageVersion(t *testing.T) {
	t.Run("valid version", func(t *testing.T) {
		lints, _ := runLint(t, "package:\n  name: foo\n  version: 1.2.3\n")
		for _, l := range lints {
			assert.NotContains(t, l, "doesn't match conda spec")
		}
	})

	t.Run("invalid version", func(t *testing.T) {
		lints, _ := runLint(t, "package:\n  name: foo\n  version: not//valid\n")
		assert.Contains(t, lints, "Package version not//valid doesn't match conda spec")
	})

	t.Run("absent version is fine", func(t *testing.T) {
		lints, _ := runLint(t, "package:\n  name: foo\n")
		for _, l := range lints {
			assert.NotContains(t, l, "conda spec")
		}
	})
}

func TestLegacyPatterns(t *testing.T) {
	t.Run("pinned numpy", func(t *testing.T) {
		lints, _ := runLint(t, "requirements:\n  build:\n    - numpy x.x\n")
		assert.Contains(t, joined(lints), "pinned numpy packages is a deprecated pattern")
	})

	t.Run("toolchain", func(t *testing.T) {
		lints, _ := runLint(t, "requirements:\n  build:\n    - toolchain\n")
		assert.Contains(t, joined(lints), "Using toolchain directly in this manner is deprecated")
	})

	t.Run("plain numpy is fine", func(t *testing.T) {
		lints, _ := runLint(t, "requirements:\n  build:\n    - numpy\n")
		assert.NotContains(t, joined(lints), "deprecated")
	})
}

func TestSubsectionNames(t *testing.T) {
	t.Run("unexpected build field", func(t *testing.T) {
		lints, _ := runLint(t, "build:\n  number: 0\n  nmber: 1\n")
		assert.Contains(t, lints,
			"The build section contained an unexpected subsection name. nmber is not a valid subsection name.")
	})

	t.Run("unexpected source entry field", func(t *testing.T) {
		lints, _ := runLint(t, "source:\n  - url: http://x\n    sha256: abc\n    shasum: abc\n")
		assert.Contains(t, lints,
			"The source section contained an unexpected subsection name. shasum is not a valid subsection name.")
	})

	t.Run("unexpected output field", func(t *testing.T) {
		lints, _ := runLint(t, "outputs:\n  - name: a\n    nmae: b\n    test:\n      imports:\n        - a\n")
		assert.Contains(t, lints,
			"The outputs section contained an unexpected subsection name. nmae is not a valid subsection name.")
	})

	t.Run("extra only permits recipe-maintainers", func(t *testing.T) {
		lints, _ := runLint(t, "extra:\n  recipe-maintainers:\n    - someone\n  feedstock-name: foo\n")
		assert.Contains(t, lints,
			"The extra section contained an unexpected subsection name. feedstock-name is not a valid subsection name.")
	})
}

func TestPipHint(t *testing.T) {
	pip := "Whenever possible python packages should use pip. See https://conda-forge.org/docs/meta.html#use-pip"

	t.Run("string script", func(t *testing.T) {
		_, hints := runLint(t, "build:\n  script: python setup.py install\n")
		assert.Contains(t, hints, pip)
	})

	t.Run("list script", func(t *testing.T) {
		_, hints := runLint(t, "build:\n  script:\n    - python setup.py install --prefix=x\n")
		assert.Contains(t, hints, pip)
	})

	t.Run("pip script", func(t *testing.T) {
		_, hints := runLint(t, "build:\n  script: pip install .\n")
		assert.NotContains(t, hints, pip)
	})
}

func TestMalformedSectionsDoNotAbortThePass(t *testing.T) {
	lints, _ := runLint(t, "about: nope\nbuild: 3\nsource: 4\n")
	assert.Contains(t, lints, `The "about" section was expected to be a dictionary, but got a string.`)
	assert.Contains(t, lints, `The "build" section was expected to be a dictionary, but got a integer.`)
	assert.Contains(t, lints, `The "source" section was expected to be a dictionary or a list, but got a integer.`)
	// Later rules still ran against the safe defaults.
	assert.Contains(t, lints, "The recipe must have a `build/number` section.")
	assert.Contains(t, lints, "The recipe must have some tests.")
}

func countOccurrences(list []string, s string) int {
	n := 0
	for _, item := range list {
		if item == s {
			n++
		}
	}
	return n
}

func joined(list []string) string {
	return strings.Join(list, "\n")
}
