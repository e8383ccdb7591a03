package config

import (
	"fmt"

	"github.com/MKhiriev/go-user-cards/models"
)

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	Adapter Adapter
	Batch   Batch
}

// ServerConfig is the configuration view used by the web server.
type ServerConfig struct {
	Adapter Adapter
	Batch   Batch
	Server  Server
}

// Query converts the batch settings into an API query.
func (b Batch) Query() models.UsersQuery {
	return models.UsersQuery{
		Results:       b.Results,
		Nationalities: b.Nationalities,
		Fields:        b.Fields,
	}
}

// GetClientConfig builds and validates the client view of
// [GetStructuredConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Batch:   cfg.Batch,
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the server view of
// [GetStructuredConfig].
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Adapter: cfg.Adapter,
		Batch:   cfg.Batch,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
