package gateway

import (
	"os"

	"github.com/google/go-github/github"
	gql "github.com/machinebox/graphql"
)

const GH_GQL_URL = "https://api.github.com/graphql"

type Gateway struct {
	ghc       *github.Client
	gqlClient *gql.Client
}

// GithubToken is picked up from the environment. Unauthenticated
// requests fall back to the REST API with its lower rate limit.
func GithubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

func New() *Gateway {
	return &Gateway{
		ghc:       github.NewClient(nil),
		gqlClient: gql.NewClient(GH_GQL_URL),
	}
}
