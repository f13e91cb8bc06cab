// Package fileutil provides small file and directory existence helpers.
package fileutil

import "os"

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// AnyFileExists reports whether any of the given paths is an existing file.
func AnyFileExists(paths ...string) bool {
	for _, p := range paths {
		if FileExists(p) {
			return true
		}
	}
	return false
}
