package configs

import (
	"github.com/themelab/create-shopify-theme/entity"
	"github.com/themelab/create-shopify-theme/errors"
)

func (c *Configs) GetUserConfigs() (*entity.UserConfig, error) {
	var cfg entity.UserConfig

	if err := c.unmarshalConfig(c.userConfigs, &cfg); err != nil {
		return nil, errors.UserConfigNotFound
	}
	return &cfg, nil
}

func (c *Configs) SetUserConfigs(cfg *entity.UserConfig) error {
	return c.marshalConfig(c.userConfigs, *cfg)
}
