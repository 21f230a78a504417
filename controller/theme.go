package controller

import (
	"context"
	"fmt"
	"strconv"

	"github.com/themelab/create-shopify-theme/entity"
	"github.com/themelab/create-shopify-theme/errors"
	"github.com/themelab/create-shopify-theme/lib/git"
	"github.com/themelab/create-shopify-theme/lib/npm"
	"github.com/themelab/create-shopify-theme/lib/theme"
	"github.com/themelab/create-shopify-theme/ui"
)

// CreateTheme runs the scaffolding pipeline. Only the clone is fatal;
// every later step reports its failure and lets the rest continue.
func (c *Controller) CreateTheme(ctx context.Context, cfg *entity.ThemeConfig) error {
	template := cfg.Template

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: fmt.Sprintf("Cloning %s into %s...", template.Name, cfg.Name),
	})
	err := git.Clone(ctx, template.URL, template.Branch, cfg.Name)
	if err != nil {
		ui.StopSpinner(fmt.Sprintf("%s %v", ui.RedText("✕"), err))
		return errors.CloneFailed
	}
	ui.StopSpinner(fmt.Sprintf("%s Cloned %s into %s", ui.GreenText("✔"), ui.Bold(template.Name), ui.Bold(cfg.Name)))

	reportStep("Update README", theme.RewriteReadmeHeading(cfg.Name, cfg.Name))
	reportStep("Update package.json", theme.RewriteManifest(cfg.Name, cfg.Name, cfg.Store))

	if cfg.InitGit {
		reportStep("Reinitialize git history", git.Reinit(cfg.Name))
	}

	if cfg.InstallDeps {
		fmt.Printf("%s Installing npm dependencies...\n", ui.MagentaText("▸"))
		reportStep("Install npm dependencies", npm.Install(ctx, cfg.Name))
	}

	c.printSummary(cfg)

	return nil
}

func reportStep(label string, err error) {
	if err != nil {
		fmt.Printf("%s %s: %v\n", ui.RedText("✕"), label, err)
		return
	}
	fmt.Printf("%s %s\n", ui.GreenText("✔"), label)
}

func (c *Controller) printSummary(cfg *entity.ThemeConfig) {
	summary := map[string]string{
		"Theme":    cfg.Name,
		"Template": cfg.Template.Name,
	}
	if cfg.Store != "" {
		summary["Store"] = cfg.Store
	}
	if files, err := countThemeFiles(cfg.Name); err == nil {
		summary["Files"] = strconv.Itoa(files)
	}

	fmt.Println()
	fmt.Print(ui.KeyValues(summary))
	fmt.Printf("\n🎉 Created %s. Next steps:\n", ui.MagentaText(cfg.Name))
	fmt.Print(ui.OrderedList(NextSteps(cfg)))
}

// NextSteps lists the commands to run after scaffolding. The install
// reminder only shows up when dependencies were not installed.
func NextSteps(cfg *entity.ThemeConfig) []string {
	steps := []string{fmt.Sprintf("cd %s", cfg.Name)}
	if !cfg.InstallDeps {
		steps = append(steps, "npm install")
	}
	steps = append(steps, "npm run dev")
	return steps
}
