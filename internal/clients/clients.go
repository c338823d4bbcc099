package clients

import (
	"github.com/omnistake/vault-adapter-service/internal/clients/gateway"
	"github.com/omnistake/vault-adapter-service/internal/clients/vault"
	"github.com/omnistake/vault-adapter-service/internal/config"
)

type Clients struct {
	Gateway gateway.GatewayClientInterface
	Vault   vault.VaultClientInterface
}

func New(cfg *config.Config) *Clients {
	gatewayClient := gateway.NewGatewayClient(&cfg.Gateway)
	vaultClient := vault.NewVaultClient(&cfg.Vault)

	return &Clients{
		Gateway: gatewayClient,
		Vault:   vaultClient,
	}
}
