package config

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Spotify SpotifyConfig `toml:"spotify"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SpotifyConfig holds Spotify Web API settings.
type SpotifyConfig struct {
	BaseURL string `toml:"base_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}
