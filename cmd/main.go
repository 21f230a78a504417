package cmd

import (
	"github.com/themelab/create-shopify-theme/configs"
	"github.com/themelab/create-shopify-theme/controller"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() *Handler {
	return &Handler{
		ctrl: controller.New(),
		cfg:  configs.New(),
	}
}
