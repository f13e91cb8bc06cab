// Package schema carries the packaging metadata rulebook the linter validates
// against: the permitted field names per recipe section, the allowed license
// families, and the package version grammar.
package schema

// Fields maps each recipe section to its permitted field names. The table
// follows the conda-build metadata schema, locally extended with the
// recipe-maintainers field under extra.
var Fields = map[string]map[string]bool{
	"package": set(
		"name", "version",
	),
	"source": set(
		"fn", "url", "md5", "sha1", "sha256", "path",
		"git_url", "git_tag", "git_branch", "git_rev", "git_depth",
		"hg_url", "hg_tag",
		"svn_url", "svn_rev", "svn_ignore_externals",
		"folder", "patches",
	),
	"build": set(
		"number", "string", "entry_points", "osx_is_app", "features",
		"track_features", "preserve_egg_dir", "no_link", "binary_relocation",
		"script", "noarch", "noarch_python", "has_prefix_files",
		"binary_has_prefix_files", "ignore_prefix_files",
		"detect_binary_files_with_prefix", "skip_compile_pyc", "rpaths",
		"script_env", "always_include_files", "skip", "msvc_compiler",
		"pin_depends", "include_recipe", "preferred_env",
		"preferred_env_executable_paths", "run_exports", "ignore_run_exports",
		"requires_features", "provides_features", "force_use_keys",
		"force_ignore_keys", "merge_build_host",
	),
	"requirements": set(
		"build", "host", "run", "conflicts", "run_constrained",
	),
	"app": set(
		"entry", "icon", "summary", "type", "cli_opts", "own_environment",
	),
	"outputs": set(
		"name", "version", "number", "entry_points", "script",
		"script_interpreter", "build", "requirements", "test", "about",
		"toolchain", "files", "type", "run_exports",
	),
	"test": set(
		"requires", "commands", "files", "imports", "source_files", "downstreams",
	),
	"about": set(
		"home", "dev_url", "doc_url", "doc_source_url", "license_url",
		"license", "summary", "description", "license_family", "license_file",
		"prelink_message", "readme", "tags", "keywords",
	),
	"extra": set(
		"recipe-maintainers",
	),
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, name := range names {
		m[name] = true
	}
	return m
}

// AllowedField reports whether field is a permitted field name within the
// given section. Sections without a schema accept everything.
func AllowedField(section, field string) bool {
	fields, ok := Fields[section]
	if !ok || len(fields) == 0 {
		return true
	}
	return fields[field]
}

// HasFieldSchema reports whether the section has a non-empty field schema.
func HasFieldSchema(section string) bool {
	return len(Fields[section]) > 0
}
