package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/entity"
)

func PromptThemeName() (string, error) {
	prompt := promptui.Prompt{
		Label:   "Theme name",
		Default: constants.DefaultThemeName,
	}
	return prompt.Run()
}

// PromptStore keeps re-prompting until the input is a valid store URL
// or left empty. Empty skips the store rewrite entirely.
func PromptStore(defaultStore string) (string, error) {
	validate := func(input string) error {
		if entity.ValidStoreURL(input) {
			return nil
		}
		return errors.New("store URL must end with " + constants.StoreSuffix)
	}
	prompt := promptui.Prompt{
		Label:    fmt.Sprintf("Store URL (something%s, empty to skip)", constants.StoreSuffix),
		Default:  defaultStore,
		Validate: validate,
	}
	return prompt.Run()
}

func PromptConfirm(label string, defaultYes bool) (bool, error) {
	items := []string{"Yes", "No"}
	if !defaultYes {
		items = []string{"No", "Yes"}
	}
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ . | underline }}`,
			Inactive: `{{ . }}`,
			Selected: fmt.Sprintf("%s %s: {{ . | bold }} ", GreenText("✔"), label),
		},
	}
	_, selection, err := prompt.Run()
	return selection == "Yes", err
}

func PromptTemplates(templates []*entity.Template) (*entity.Template, error) {
	prompt := promptui.Select{
		Label: "Select template",
		Items: templates,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Name | underline }}`,
			Inactive: `{{ .Name }}`,
			Selected: fmt.Sprintf("%s Template: {{ .Name | magenta | bold }} ", GreenText("✔")),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return templates[i], nil
}
