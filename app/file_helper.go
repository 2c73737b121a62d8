package app

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/zemdomu/zemdomu/domain"
)

// FileHelper provides file collection utilities
type FileHelper struct {
	// RespectGitignore drops files matched by a .gitignore found at the
	// root of each walked directory.
	RespectGitignore bool
}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectMarkupFiles collects HTML and JSX/TSX files from paths
func (h *FileHelper) CollectMarkupFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.isMarkupFile(path, includePatterns) && !h.isExcluded(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		matcher := h.gitignoreFor(path)

		if recursive {
			err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				// Skip excluded directories early
				if info.IsDir() {
					dirName := filepath.Base(filePath)
					for _, pattern := range excludePatterns {
						if pattern == dirName {
							return filepath.SkipDir
						}
						if matched, _ := filepath.Match(pattern, dirName); matched {
							return filepath.SkipDir
						}
					}
					if matcher != nil && filePath != path {
						if rel, relErr := filepath.Rel(path, filePath); relErr == nil && matcher.MatchesPath(rel) {
							return filepath.SkipDir
						}
					}
					return nil
				}

				if !h.isMarkupFile(filePath, includePatterns) || h.isExcluded(filePath, excludePatterns) {
					return nil
				}
				if matcher != nil {
					if rel, relErr := filepath.Rel(path, filePath); relErr == nil && matcher.MatchesPath(rel) {
						return nil
					}
				}

				files = append(files, filePath)
				return nil
			})
		} else {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, err
			}

			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				filePath := filepath.Join(path, entry.Name())
				if !h.isMarkupFile(filePath, includePatterns) || h.isExcluded(filePath, excludePatterns) {
					continue
				}
				if matcher != nil && matcher.MatchesPath(entry.Name()) {
					continue
				}
				files = append(files, filePath)
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// IsValidMarkupFile checks if a file has a lintable extension
func (h *FileHelper) IsValidMarkupFile(path string) bool {
	return domain.KindForPath(path) != domain.FileKindUnknown
}

// FileExists checks if a file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// isMarkupFile checks extension and, when include patterns are given,
// matches the base name against them. Directory globs like "**/*.html"
// can never match a base name with filepath.Match, so the pattern's own
// base is matched as well.
func (h *FileHelper) isMarkupFile(path string, includePatterns []string) bool {
	if domain.KindForPath(path) == domain.FileKindUnknown {
		return false
	}
	if len(includePatterns) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, pattern := range includePatterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
		if matched, _ := filepath.Match(filepath.Base(pattern), base); matched {
			return true
		}
	}
	return false
}

// isExcluded checks if a path matches any exclude pattern
func (h *FileHelper) isExcluded(path string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		// Also check full path matching
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// gitignoreFor compiles the .gitignore at the root of dir, if enabled and
// present. A broken .gitignore is ignored rather than failing collection.
func (h *FileHelper) gitignoreFor(dir string) *ignore.GitIgnore {
	if !h.RespectGitignore {
		return nil
	}
	matcher, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	return matcher
}

// ResolveFilePaths resolves file paths, returning existing files directly
// or collecting files from directories
func ResolveFilePaths(
	fileHelper *FileHelper,
	paths []string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
) ([]string, error) {
	// Check if all paths are already files
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}

	// If all paths are already files, no need to collect again
	if allFiles {
		return paths, nil
	}

	return fileHelper.CollectMarkupFiles(paths, recursive, includePatterns, excludePatterns)
}
