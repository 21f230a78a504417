package cmd

import (
	"context"
	"fmt"

	"github.com/themelab/create-shopify-theme/entity"
	"github.com/themelab/create-shopify-theme/errors"
	"github.com/themelab/create-shopify-theme/ui"
)

func (h *Handler) Templates(ctx context.Context, req *entity.CommandRequest) error {
	ui.StartSpinner(&ui.SpinnerCfg{Message: "Fetching templates..."})
	templates, err := h.ctrl.GetTemplates(ctx)
	ui.StopSpinner("")
	if err != nil {
		return errors.ProblemFetchingTemplates
	}
	if len(templates) == 0 {
		fmt.Println("No templates published right now.")
		return nil
	}

	if ui.HasInteractiveInput() {
		template, err := ui.PromptTemplates(templates)
		if err != nil {
			return err
		}
		fmt.Printf("Scaffold it with %s\n", ui.Bold(fmt.Sprintf("create-shopify-theme my-theme --template=%s", template.Name)))
		return nil
	}

	lines := make([]string, 0, len(templates))
	for _, t := range templates {
		lines = append(lines, fmt.Sprintf("%s %s %s", ui.Bold(t.Name), ui.BlueText(t.URL), ui.Truncate(t.Description, 60)))
	}
	fmt.Print(ui.UnorderedList(lines))
	return nil
}
