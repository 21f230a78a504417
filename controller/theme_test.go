package controller_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/themelab/create-shopify-theme/controller"
	"github.com/themelab/create-shopify-theme/entity"
)

func TestNextStepsWithInstall(t *testing.T) {
	steps := controller.NextSteps(&entity.ThemeConfig{Name: "my-theme", InstallDeps: true})
	require.Equal(t, []string{"cd my-theme", "npm run dev"}, steps)
}

func TestNextStepsWithoutInstall(t *testing.T) {
	steps := controller.NextSteps(&entity.ThemeConfig{Name: "my-theme", InstallDeps: false})
	require.Equal(t, []string{"cd my-theme", "npm install", "npm run dev"}, steps)
}
