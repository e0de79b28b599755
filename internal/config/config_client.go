package config

import "fmt"

// ClientConfig is the capture client view of [StructuredConfig].
type ClientConfig struct {
	// Camera selects the frame source and drawing surface.
	Camera Camera
	// Capture controls the capture loop.
	Capture Capture
	// Adapter holds the registration endpoint.
	Adapter Adapter
	// Journal locates the optional upload journal.
	Journal Journal
	// UI selects the presentation.
	UI UI
}

// ServerConfig is the registration receiver view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// GetClientConfig builds and validates the client view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetServerConfig builds and validates the receiver view from the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Camera:  cfg.Camera,
		Capture: cfg.Capture,
		Adapter: cfg.Adapter,
		Journal: cfg.Storage.Journal,
		UI:      cfg.UI,
	}

	return clientCfg, clientCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
