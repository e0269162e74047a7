package config

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

type Config struct {
	Server Server `yaml:"server"`
	Sync   Sync   `yaml:"sync"`
}

type Server struct {
	Listen         string        `yaml:"listen"`
	DatabaseDriver string        `yaml:"databaseDriver"` // postgres, sqlite
	DatabaseDsn    string        `yaml:"databaseDsn"`
	RedisAddr      string        `yaml:"redisAddr"`
	RedisPassword  string        `yaml:"redisPassword"`
	RedisDB        int           `yaml:"redisDB"`
	MemcachedAddr  string        `yaml:"memcachedAddr"`
	CacheTTL       time.Duration `yaml:"cacheTTL"`
	EnableTrace    bool          `yaml:"enableTrace"`
	TraceEndpoint  string        `yaml:"traceEndpoint"`
}

type Sync struct {
	// bcrypt hash of the bearer token accepted for sync writes
	TokenHash string `yaml:"tokenHash"`
}

const (
	DefaultListen   = ":8000"
	DefaultDriver   = "postgres"
	DefaultCacheTTL = 5 * time.Minute
)

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}

	config.applyDefaults()

	if config.Server.DatabaseDsn == "" {
		return Config{}, errors.New("server.databaseDsn is required")
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Server.DatabaseDriver == "" {
		c.Server.DatabaseDriver = DefaultDriver
	}
	if c.Server.CacheTTL <= 0 {
		c.Server.CacheTTL = DefaultCacheTTL
	}
}
