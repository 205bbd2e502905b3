package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Graph API config
const GRAPH_API_ENDPOINT_BASE = "https://graph.facebook.com"
const GRAPH_API_VERSION = "v2.4"

// The Graph API only allows 50 ids per /?ids= call.
const GRAPH_API_IDS_PER_CALL = 50
const PLACE_SEARCH_RESULT_LIMIT = 1000

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACE_SEARCH_RESPONSE_RESOURCE = "place_search_response.json"
const VENUE_BATCH_RESPONSE_RESOURCE = "venue_batch_response.json"

// Config holds the environment-driven settings. Variable names are kept
// compatible with the original deployment (HOST, PORT0, FEBL_*).
type Config struct {
	Host          string `env:"HOST" env-default:"0.0.0.0"`
	Port          string `env:"PORT0" env-default:"3000"`
	Env           string `env:"FEBL_ENV" env-default:"prod"`
	AccessToken   string `env:"FEBL_ACCESS_TOKEN"`
	CorsWhitelist string `env:"FEBL_CORS_WHITELIST"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load but fatal on error, for use from main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("[Config] Failed to read environment: %v", err)
	}
	return cfg
}

// Addr returns the host:port pair the HTTP server binds.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
