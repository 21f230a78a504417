package cmd

import (
	"context"
	"fmt"

	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Println(fmt.Sprintf("create-shopify-theme version %s", constants.Version))
	if constants.Version != "source" {
		latest, err := h.ctrl.GetLatestVersion(ctx)
		if err != nil {
			return err
		}
		if latest != "" && latest != constants.Version {
			fmt.Println("A newer version of create-shopify-theme is available, please update to:", latest)
		}
	}
	return nil
}
