package theme

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// RewriteManifest points the theme's package.json at its new identity:
// the top-level name, and config.shopifyStore when a store was given.
// Unknown manifest fields are carried over untouched. A missing manifest
// is fine, the rewrite is best effort.
func RewriteManifest(dir, name, store string) error {
	path := filepath.Join(dir, "package.json")

	b, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	var manifest map[string]interface{}
	if err := json.Unmarshal(b, &manifest); err != nil {
		return errors.Wrap(err, "parse package.json")
	}

	manifest["name"] = name

	if store != "" {
		config, ok := manifest["config"].(map[string]interface{})
		if !ok {
			config = map[string]interface{}{}
		}
		config["shopifyStore"] = store
		manifest["config"] = config
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path, append(out, '\n'), 0644)
}
