package config

import (
	"errors"
	"net/url"

	"github.com/omnistake/vault-adapter-service/internal/types"
	"github.com/omnistake/vault-adapter-service/internal/utils"
)

type GatewayConfig struct {
	Host         string   `mapstructure:"host"`
	Timeout      int      `mapstructure:"timeout"`
	OperatorId   string   `mapstructure:"operator-id"`
	AssetKind    string   `mapstructure:"asset-kind"`
	TokenAddress string   `mapstructure:"token-address"`
	Blueprint    []uint64 `mapstructure:"blueprint"`
}

func (cfg *GatewayConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("host cannot be empty")
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout cannot be smaller or equal to 0")
	}

	parsedURL, err := url.ParseRequestURI(cfg.Host)
	if err != nil {
		return errors.New("invalid delegation gateway host")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("host must start with http or https")
	}

	if !utils.IsValidOperatorId(cfg.OperatorId) {
		return errors.New("operator-id must be a 0x-prefixed 32 byte hex string")
	}

	kind, err := types.FromStringToAssetKind(cfg.AssetKind)
	if err != nil {
		return err
	}

	switch kind {
	case types.AssetERC20:
		if !utils.IsValidEthAddress(cfg.TokenAddress) {
			return errors.New("token-address must be a valid address for erc20 assets")
		}
	case types.AssetNative:
		if cfg.TokenAddress != "" {
			return errors.New("token-address must be empty for native assets")
		}
	}

	if len(cfg.Blueprint) == 0 {
		return errors.New("blueprint cannot be empty")
	}

	return nil
}
