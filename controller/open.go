package controller

// OpenInBrowser opens the provided url in the browser
func (c *Controller) OpenInBrowser(url string) error {
	return c.gtwy.OpenInBrowser(url)
}
