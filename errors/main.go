package errors

import (
	"fmt"

	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/ui"
)

type ThemeError error

var (
	ThemeNameRequired        ThemeError = fmt.Errorf("%s\nPass one as the first argument: %s", ui.RedText("Theme name required in non-interactive mode."), ui.Bold("create-shopify-theme <name> --non-interactive"))
	InvalidStoreURL          ThemeError = fmt.Errorf("%s\nIt should look like %s", ui.RedText("Invalid store URL."), ui.Bold("your-store"+constants.StoreSuffix))
	CloneFailed              ThemeError = fmt.Errorf("%s\nCheck that git is installed and the template URL is reachable.", ui.RedText("There was a problem cloning the template."))
	TemplateNotFound         ThemeError = fmt.Errorf("%s\nRun %s to see what is available.", ui.RedText("Unknown template."), ui.Bold("create-shopify-theme templates"))
	ProblemFetchingTemplates ThemeError = fmt.Errorf("%s\nGitHub might be rate limiting you, try again in a minute.", ui.RedText("There was a problem fetching the template list."))
	UserConfigNotFound       ThemeError = fmt.Errorf("%s", ui.RedText("No saved defaults found."))
)
