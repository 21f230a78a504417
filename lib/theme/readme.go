package theme

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// RewriteReadmeHeading replaces the first top-level markdown heading in
// the theme's README with the new name. A missing README is fine, the
// rewrite is best effort.
func RewriteReadmeHeading(dir, name string) error {
	path := filepath.Join(dir, "README.md")

	b, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	lines := strings.Split(string(b), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			lines[i] = "# " + name
			break
		}
	}

	return ioutil.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}
