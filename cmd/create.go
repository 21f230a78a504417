package cmd

import (
	"context"

	"github.com/themelab/create-shopify-theme/entity"
	"github.com/themelab/create-shopify-theme/errors"
	"github.com/themelab/create-shopify-theme/ui"
)

func (h *Handler) Create(ctx context.Context, req *entity.CommandRequest) error {
	cfg, err := h.collectInputs(req)
	if err != nil {
		return err
	}

	templateFlag, err := req.Cmd.Flags().GetString("template")
	if err != nil {
		return err
	}
	if templateFlag == "" {
		if user, err := h.cfg.GetUserConfigs(); err == nil {
			templateFlag = user.DefaultTemplate
		}
	}
	template, err := h.ctrl.ResolveTemplate(ctx, templateFlag)
	if err != nil {
		return err
	}
	cfg.Template = template

	if err := h.ctrl.CreateTheme(ctx, cfg); err != nil {
		return err
	}

	h.saveDefaults(cfg, templateFlag)

	return nil
}

// collectInputs gathers the theme configuration from flags, falling back
// to interactive prompts. Non-interactive mode (explicit flag, or stdin
// not being a terminal) fails fast on missing or invalid input; prompts
// instead keep asking until the input is acceptable.
func (h *Handler) collectInputs(req *entity.CommandRequest) (*entity.ThemeConfig, error) {
	flags := req.Cmd.Flags()

	nonInteractive, err := flags.GetBool("non-interactive")
	if err != nil {
		return nil, err
	}
	if !nonInteractive && !ui.HasInteractiveInput() {
		nonInteractive = true
	}

	cfg := &entity.ThemeConfig{}
	if len(req.Args) > 0 {
		cfg.Name = req.Args[0]
	}
	cfg.Store, _ = flags.GetString("store")
	cfg.InitGit, _ = flags.GetBool("git")
	cfg.InstallDeps, _ = flags.GetBool("install")

	if nonInteractive {
		if cfg.Name == "" {
			return nil, errors.ThemeNameRequired
		}
		if !entity.ValidStoreURL(cfg.Store) {
			return nil, errors.InvalidStoreURL
		}
		return cfg, nil
	}

	if cfg.Name == "" {
		name, err := ui.PromptThemeName()
		if err != nil {
			return nil, err
		}
		cfg.Name = name
	}

	if flags.Changed("store") {
		if !entity.ValidStoreURL(cfg.Store) {
			return nil, errors.InvalidStoreURL
		}
	} else {
		defaultStore := ""
		if user, err := h.cfg.GetUserConfigs(); err == nil {
			defaultStore = user.DefaultStore
		}
		store, err := ui.PromptStore(defaultStore)
		if err != nil {
			return nil, err
		}
		cfg.Store = store
	}

	if !flags.Changed("git") {
		initGit, err := ui.PromptConfirm("Reinitialize git history?", true)
		if err != nil {
			return nil, err
		}
		cfg.InitGit = initGit
	}

	if !flags.Changed("install") {
		installDeps, err := ui.PromptConfirm("Install npm dependencies?", true)
		if err != nil {
			return nil, err
		}
		cfg.InstallDeps = installDeps
	}

	return cfg, nil
}

// saveDefaults remembers the store and template for the next run.
// The template is stored exactly as the user gave it: a URL must stay a
// URL, a registry name would need a lookup that URL-sourced themes never
// had. Failing to write the config never fails the command.
func (h *Handler) saveDefaults(cfg *entity.ThemeConfig, templateFlag string) {
	user, err := h.cfg.GetUserConfigs()
	if err != nil {
		user = &entity.UserConfig{}
	}
	if cfg.Store != "" {
		user.DefaultStore = cfg.Store
	}
	if templateFlag != "" {
		user.DefaultTemplate = templateFlag
	}
	_ = h.cfg.SetUserConfigs(user)
}
