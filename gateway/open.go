package gateway

import (
	"github.com/pkg/browser"
)

func (g *Gateway) OpenInBrowser(url string) error {
	return browser.OpenURL(url)
}
