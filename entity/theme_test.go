package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/themelab/create-shopify-theme/entity"
)

var storeURLTest = []struct {
	name string
	in   string
	out  bool
}{
	{
		name: "Empty means skip and is valid",
		in:   "",
		out:  true,
	},
	{
		name: "Plain store URL is valid",
		in:   "foo.myshopify.com",
		out:  true,
	},
	{
		name: "Subdomain store URL is valid",
		in:   "my-cool-shop.myshopify.com",
		out:  true,
	},
	{
		name: "Other domains are invalid",
		in:   "foo.example.com",
		out:  false,
	},
	{
		name: "Suffix in the middle does not count",
		in:   "foo.myshopify.com.evil.org",
		out:  false,
	},
	{
		name: "Bare word is invalid",
		in:   "foo",
		out:  false,
	},
}

func TestValidStoreURL(t *testing.T) {
	for _, tt := range storeURLTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, entity.ValidStoreURL(tt.in))
		})
	}
}
