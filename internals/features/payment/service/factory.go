package service

import (
	"fmt"

	"codekar_backend/internals/configs"
)

// NewProviderFromConfig builds the gateway selected by PAYMENT_PROVIDER.
func NewProviderFromConfig() (Provider, error) {
	switch configs.PaymentProvider {
	case "zoho":
		cfg := ZohoConfig{
			OrgID:         configs.ZohoOrgID,
			GatewayKey:    configs.ZohoGatewayKey,
			Environment:   configs.ZohoEnvironment,
			BasePublicURL: configs.BasePublicURL,
			Configured:    configs.ZohoConfigured(),
		}
		return NewZohoProvider(cfg, SaltChecksumSigner{Salt: configs.ZohoSaltKey}), nil
	case "midtrans":
		return NewMidtransProvider(configs.MidtransServerKey, configs.MidtransUseProd), nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", configs.PaymentProvider)
	}
}
