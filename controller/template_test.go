package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/controller"
)

var templateNameTest = []struct {
	name string
	in   string
	out  string
}{
	{
		name: "https URL",
		in:   "https://github.com/themelab/minimal-theme.git",
		out:  "minimal-theme",
	},
	{
		name: "URL without .git suffix",
		in:   "https://github.com/themelab/minimal-theme",
		out:  "minimal-theme",
	},
	{
		name: "Trailing slash",
		in:   "https://github.com/themelab/minimal-theme/",
		out:  "minimal-theme",
	},
	{
		name: "ssh remote",
		in:   "git@github.com:themelab/minimal-theme.git",
		out:  "minimal-theme",
	},
}

func TestTemplateNameFromURL(t *testing.T) {
	for _, tt := range templateNameTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, controller.TemplateNameFromURL(tt.in))
		})
	}
}

func TestResolveTemplateDefault(t *testing.T) {
	c := controller.New()

	template, err := c.ResolveTemplate(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, constants.DefaultTemplateName, template.Name)
	require.Equal(t, constants.DefaultTemplateURL, template.URL)
	require.Equal(t, constants.DefaultTemplateRef, template.Branch)
}

func TestResolveTemplateURL(t *testing.T) {
	c := controller.New()

	template, err := c.ResolveTemplate(context.Background(), "https://github.com/someone/other-theme.git")
	require.NoError(t, err)
	require.Equal(t, "other-theme", template.Name)
	require.Equal(t, "https://github.com/someone/other-theme.git", template.URL)
	require.Equal(t, "", template.Branch, "explicit URLs clone the default branch")
}
