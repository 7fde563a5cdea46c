package preprocessor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cxlang/cxc/internal/config"
)

// ResolveImportPath turns an import path into a source file path
// relative to the importing file's directory, honoring the rule that
// a directory X containing X.hlx is an autonomous module rooted at
// that directory (spec §4.6).
func ResolveImportPath(importerDir, importPath string) string {
	candidate := importPath
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(importerDir, importPath)
	}

	if !strings.HasSuffix(candidate, config.SourceFileExt) {
		moduleFile := filepath.Join(candidate, filepath.Base(candidate)+config.SourceFileExt)
		if fileExists(moduleFile) {
			return moduleFile
		}
		candidate += config.SourceFileExt
	}
	return candidate
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ModuleDirOf returns the directory that paths inside a resolved
// import should themselves resolve relative to.
func ModuleDirOf(resolvedPath string) string {
	return filepath.Dir(resolvedPath)
}
