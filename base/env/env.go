package env

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// PodName example: storefront-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api
func AppName() string {
	return os.Getenv("APP_NAME")
}

func IsDevelopment() bool {
	return os.Getenv("ENV") == "development"
}

var defaults = map[string]interface{}{
	"server.address": ":8080",
	"server.timeout": 30 * time.Second,

	"chain.id":              33139,
	"chain.rpc":             "https://rpc.apechain.com",
	"chain.registry":        "0x0E22dc442f31b423b4Ca2A563D33690d342d9196",
	"chain.max_concurrency": 32,

	"listing.window":          800,
	"listing.batch_size":      20,
	"listing.ttl":             5 * time.Minute,
	"listing.refresh_timeout": 2 * time.Minute,

	"sale.block_window":    50000,
	"sale.max_events":      15,
	"sale.ttl":             2 * time.Minute,
	"sale.refresh_timeout": time.Minute,

	"metadata.timeout":      10 * time.Second,
	"metadata.ipfs_gateway": "https://ipfs.io/ipfs/",
	"metadata.ar_gateway":   "https://arweave.net/",

	"cache.local_size_mb": 64,
	"cache.fallback_ttl":  10 * time.Minute,
	"redis.url":           "",
	"redis.password":      "",
	"redis.name":          "storefront",
	"ipfs.node_api":       "",
	"datadog_host":        "",
	"log_level":           "info",
}

// LoadConfig fills viper with defaults, then reads the yaml file at path (when it
// exists) and lets environment variables override any key, e.g. CHAIN_RPC.
func LoadConfig(path string) error {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	return viper.ReadInConfig()
}
