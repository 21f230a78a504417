package cmd

import (
	"context"
	"fmt"

	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/entity"
	"github.com/themelab/create-shopify-theme/ui"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	topic := "docs"
	if len(req.Args) > 0 {
		topic = req.Args[0]
	}

	url, ok := constants.DocsURLMap[topic]
	if !ok {
		fmt.Printf("Unknown topic %s. Available topics:\n", ui.RedText(topic))
		fmt.Print(ui.KeyValues(constants.DocsURLMap))
		return nil
	}

	fmt.Printf("Opening %s...\n", ui.BlueText(url))
	return h.ctrl.OpenInBrowser(url)
}
