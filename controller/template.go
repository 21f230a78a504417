package controller

import (
	"context"
	"path"
	"strings"

	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/entity"
	"github.com/themelab/create-shopify-theme/errors"
)

// GetTemplates returns all available starter templates
func (c *Controller) GetTemplates(ctx context.Context) ([]*entity.Template, error) {
	return c.gtwy.GetTemplates(ctx)
}

// ResolveTemplate turns a --template value into a concrete Template.
// Empty means the default starter, anything URL-shaped is cloned as-is,
// and everything else is looked up in the template registry.
func (c *Controller) ResolveTemplate(ctx context.Context, nameOrURL string) (*entity.Template, error) {
	if nameOrURL == "" || nameOrURL == constants.DefaultTemplateName {
		return &entity.Template{
			Name:   constants.DefaultTemplateName,
			URL:    constants.DefaultTemplateURL,
			Branch: constants.DefaultTemplateRef,
		}, nil
	}

	if strings.Contains(nameOrURL, "://") || strings.HasPrefix(nameOrURL, "git@") {
		return &entity.Template{
			Name: TemplateNameFromURL(nameOrURL),
			URL:  nameOrURL,
		}, nil
	}

	templates, err := c.GetTemplates(ctx)
	if err != nil {
		return nil, errors.ProblemFetchingTemplates
	}
	for _, t := range templates {
		if t.Name == nameOrURL {
			return t, nil
		}
	}
	return nil, errors.TemplateNotFound
}

func TemplateNameFromURL(url string) string {
	base := path.Base(strings.TrimSuffix(url, "/"))
	return strings.TrimSuffix(base, ".git")
}
