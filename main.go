package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/themelab/create-shopify-theme/cmd"
	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/entity"
)

var rootCmd = &cobra.Command{
	Use:           "create-shopify-theme [name]",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Args:          cobra.MaximumNArgs(1),
	Short:         "🛍  Scaffold a new Shopify theme",
	Long:          "Scaffold a new Shopify theme from a starter template.\n\nClones the template, renames it, and gets it ready for development.\nDocs: " + constants.ThemeDocsURL,
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, fmt.Sprint(r), string(debug.Stack()))
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.RunE = contextualize(handler.Create, handler.Panic)
	rootCmd.Flags().StringP("store", "s", "", "your .myshopify.com store URL")
	rootCmd.Flags().BoolP("git", "g", true, "reinitialize git history in the new theme")
	rootCmd.Flags().BoolP("install", "i", true, "install npm dependencies after cloning")
	rootCmd.Flags().StringP("template", "t", "", "starter template name or git URL")
	rootCmd.Flags().Bool("non-interactive", false, "never prompt; fail when required input is missing")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "templates",
		Short: "List available starter templates",
		RunE:  contextualize(handler.Templates, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "docs [topic]",
		Short: "Open the Shopify theme docs in your browser",
		RunE:  contextualize(handler.Docs, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of create-shopify-theme",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"create-shopify-theme --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
