package controller

import (
	"github.com/themelab/create-shopify-theme/gateway"
)

type Controller struct {
	gtwy *gateway.Gateway
}

func New() *Controller {
	return &Controller{
		gtwy: gateway.New(),
	}
}
