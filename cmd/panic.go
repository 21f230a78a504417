package cmd

import (
	"context"
	"fmt"

	"github.com/themelab/create-shopify-theme/ui"
)

func (h *Handler) Panic(ctx context.Context, msg string, stack string) error {
	fmt.Println(ui.RedText("create-shopify-theme crashed!"))
	fmt.Println(msg)
	fmt.Println(stack)
	return nil
}
