package config

type ServiceConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

// AuthConfig selects how bearer tokens are checked.
// With VerifySignature disabled tokens are decoded without checking the signature.
type AuthConfig struct {
	VerifySignature bool   `mapstructure:"verify_signature"`
	Secret          string `mapstructure:"secret"`
}

type HackathonConfig struct {
	// ValidateWindows rejects hackathons whose registration and hack windows are out of order.
	ValidateWindows bool `mapstructure:"validate_windows"`
}

type DemoConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	FixturesPath string `mapstructure:"fixtures_path"`
	Seed         int64  `mapstructure:"seed"`
}

func (c ServiceConfig) IsProduction() bool {
	return c.Environment == "production"
}
