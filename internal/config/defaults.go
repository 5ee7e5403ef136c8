package config

import (
	_ "embed"
)

//go:embed defaults/flow.yaml
var defaultFlowYAML []byte

// DefaultFlowConfig returns the hardcoded configuration used when no file
// can be read.
func DefaultFlowConfig() FlowConfig {
	return FlowConfig{
		Display: DisplayConfig{
			Theme:    ThemeDefault,
			ShowHelp: true,
		},
		Records: RecordsConfig{
			Enabled: true,
			DBPath:  "~/.flow/records.db",
		},
		Server: ServerConfig{
			Address:            ":2323",
			HostKey:            ".ssh/flow_host_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlowYAML
}
