// Package analyzer orchestrates the per-file AI review of a pull request and
// publishes the resulting comments.
package analyzer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sevigo/pr-sentinel/internal/core"
)

// binaryExtensions are file types never worth fetching or reviewing.
var binaryExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".pdf":  {},
	".zip":  {},
	".exe":  {},
}

// languageByExtension maps the supported file extensions to the language
// label used in prompts.
var languageByExtension = map[string]string{
	".go":  "go",
	".py":  "python",
	".js":  "javascript",
	".jsx": "javascript",
	".ts":  "typescript",
	".tsx": "typescript",
}

// IsBinary reports whether the filename carries a known binary or media
// extension.
func IsBinary(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := binaryExtensions[ext]
	return ok
}

// ClassifyLanguage maps a filename to its review language. Unsupported
// extensions return core.ErrUnsupportedLanguage and trigger no AI call.
func ClassifyLanguage(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	lang, ok := languageByExtension[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrUnsupportedLanguage, filename)
	}
	return lang, nil
}

// matchesIgnorePath reports whether path falls under any of the configured
// ignore prefixes from the in-repo config file.
func matchesIgnorePath(path string, ignorePaths []string) bool {
	clean := strings.TrimPrefix(path, "./")
	for _, prefix := range ignorePaths {
		prefix = strings.TrimSuffix(strings.TrimPrefix(prefix, "./"), "/")
		if prefix == "" {
			continue
		}
		if clean == prefix || strings.HasPrefix(clean, prefix+"/") {
			return true
		}
	}
	return false
}
