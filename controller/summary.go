package controller

import (
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// countThemeFiles walks the scaffolded directory and counts the files a
// developer actually works with, honoring the template's .gitignore.
func countThemeFiles(dir string) (int, error) {
	ignore, ignoreErr := gitignore.NewGitIgnore(filepath.Join(dir, ".gitignore"), dir)

	count := 0
	err := filepath.Walk(dir, func(file string, fi os.FileInfo, passedErr error) error {
		if passedErr != nil {
			return passedErr
		}
		if fi.IsDir() {
			if fi.Name() == ".git" || fi.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if ignoreErr == nil && ignore.Match(file, false) {
			return nil
		}
		count++
		return nil
	})
	return count, err
}
