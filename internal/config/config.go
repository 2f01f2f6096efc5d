package config

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Site   Site   `yaml:"site"`
	Server Server `yaml:"server"`
	Auth   Auth   `yaml:"auth"`
}

type Site struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"baseUrl"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Auth struct {
	// TokenSecret signs/verifies bearer tokens issued by the session
	// provider. Session issuance itself lives outside this service.
	TokenSecret   string `yaml:"tokenSecret"`
	SessionCookie string `yaml:"sessionCookie"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Auth.SessionCookie == "" {
		config.Auth.SessionCookie = "vc_session"
	}
	if config.Auth.TokenSecret == "" {
		return Config{}, fmt.Errorf("auth.tokenSecret is required")
	}

	return config, nil
}
