package gateway

import (
	"context"
	"fmt"
	"strings"

	gql "github.com/machinebox/graphql"
	"github.com/themelab/create-shopify-theme/constants"
	"github.com/themelab/create-shopify-theme/entity"
)

// templateRepoSuffix marks which repos under the template account are
// starter themes.
const templateRepoSuffix = "-theme"

// GetTemplates lists the starter themes published under the template
// account. GraphQL needs a token, so without one the REST API is used.
func (g *Gateway) GetTemplates(ctx context.Context) ([]*entity.Template, error) {
	if token := GithubToken(); token != "" {
		return g.getTemplatesGQL(ctx, token)
	}
	return g.getTemplatesREST(ctx)
}

func (g *Gateway) getTemplatesREST(ctx context.Context) ([]*entity.Template, error) {
	repos, _, err := g.ghc.Repositories.List(ctx, constants.TemplateOwner, nil)
	if err != nil {
		return nil, err
	}

	templates := []*entity.Template{}
	for _, repo := range repos {
		if !strings.HasSuffix(repo.GetName(), templateRepoSuffix) {
			continue
		}
		templates = append(templates, &entity.Template{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			URL:         repo.GetCloneURL(),
			Branch:      repo.GetDefaultBranch(),
		})
	}
	return templates, nil
}

func (g *Gateway) getTemplatesGQL(ctx context.Context, token string) ([]*entity.Template, error) {
	gqlReq := gql.NewRequest(`
		query($owner: String!) {
			repositoryOwner(login: $owner) {
				repositories(first: 100, privacy: PUBLIC) {
					nodes {
						name
						description
						url
						defaultBranchRef {
							name
						}
					}
				}
			}
		}
	`)
	gqlReq.Var("owner", constants.TemplateOwner)
	gqlReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	var resp struct {
		RepositoryOwner struct {
			Repositories struct {
				Nodes []struct {
					Name             string `json:"name"`
					Description      string `json:"description"`
					URL              string `json:"url"`
					DefaultBranchRef struct {
						Name string `json:"name"`
					} `json:"defaultBranchRef"`
				} `json:"nodes"`
			} `json:"repositories"`
		} `json:"repositoryOwner"`
	}

	if err := g.gqlClient.Run(ctx, gqlReq, &resp); err != nil {
		return nil, err
	}

	templates := []*entity.Template{}
	for _, node := range resp.RepositoryOwner.Repositories.Nodes {
		if !strings.HasSuffix(node.Name, templateRepoSuffix) {
			continue
		}
		templates = append(templates, &entity.Template{
			Name:        node.Name,
			Description: node.Description,
			URL:         node.URL + ".git",
			Branch:      node.DefaultBranchRef.Name,
		})
	}
	return templates, nil
}
