package config

// Config is the top-level portfolio configuration, corresponding to
// .portfolio.yml.
type Config struct {
	Host            string   `yaml:"host" koanf:"host"`
	Port            int      `yaml:"port" koanf:"port"`
	DefaultLanguage string   `yaml:"default_language" koanf:"default_language"`
	ContentDir      string   `yaml:"content_dir,omitempty" koanf:"content_dir"`
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionTTL      string   `yaml:"session_ttl" koanf:"session_ttl"`
	Profile         Profile  `yaml:"profile" koanf:"profile"`
}

// Profile is the site owner's identity.
type Profile struct {
	Name     string `yaml:"name" koanf:"name"`
	Email    string `yaml:"email" koanf:"email"`
	Telegram string `yaml:"telegram" koanf:"telegram"`
}

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".portfolio.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		DefaultLanguage: "fa",
		AllowedOrigins:  []string{"http://localhost:*", "http://127.0.0.1:*"},
		SessionTTL:      "30m",
		Profile: Profile{
			Name:     "Ali Mahmoudabadi",
			Email:    "aliali123451387@gmail.com",
			Telegram: "@WasTrader",
		},
	}
}
