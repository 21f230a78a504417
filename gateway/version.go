package gateway

import "context"

func (g *Gateway) GetLatestVersion(ctx context.Context) (string, error) {
	rep, _, err := g.ghc.Repositories.GetLatestRelease(ctx, "themelab", "create-shopify-theme")
	if err != nil {
		return "", err
	}
	return rep.GetTagName(), nil
}
