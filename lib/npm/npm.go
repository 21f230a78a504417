package npm

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Install runs `npm install` inside dir, streaming npm's own output.
func Install(ctx context.Context, dir string) error {
	installCmd := exec.CommandContext(ctx, "npm", "install")
	installCmd.Dir = dir
	installCmd.Stdout = os.Stdout
	installCmd.Stderr = os.Stderr

	if err := installCmd.Run(); err != nil {
		return errors.Wrap(err, "npm install")
	}
	return nil
}
