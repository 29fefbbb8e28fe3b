package config

import (
	"fmt"
	"time"

	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/utils"
)

type Config struct {
	Port string

	// Upstream (Archives of Nethys) endpoints. The search host serves both
	// the full uuid index and the per-uuid record payloads.
	IndexURL  string
	SearchURL string

	UpstreamTimeout time.Duration

	FreshnessWindow  time.Duration
	IndexCacheTTL    time.Duration
	CategoryCacheTTL time.Duration

	RegistrarRetries    int
	RegistrarRetryDelay time.Duration
	SyncInterval        time.Duration
}

func Load(log *logger.Logger) Config {
	protocol := utils.GetEnv("AON_PROTOCOL", "https", log)
	baseURL := utils.GetEnv("AON_URL", "aonprd.com", log)
	searchPrefix := utils.GetEnv("ELASTIC_SEARCH_PREFIX", "elasticsearch", log)
	indexPath := utils.GetEnv("AON_INDEX_PATH", "json-data/aon52-index.json", log)

	searchURL := utils.GetEnv("AON_SEARCH_URL", "", log)
	if searchURL == "" {
		searchURL = fmt.Sprintf("%s://%s.%s", protocol, searchPrefix, baseURL)
	}

	return Config{
		Port:                utils.GetEnv("PORT", "8080", log),
		IndexURL:            fmt.Sprintf("%s/%s", searchURL, indexPath),
		SearchURL:           searchURL,
		UpstreamTimeout:     time.Duration(utils.GetEnvAsInt("AON_TIMEOUT_SECONDS", 10, log)) * time.Second,
		FreshnessWindow:     time.Duration(utils.GetEnvAsInt("FETCH_THRESHOLD_SECONDS", 7200, log)) * time.Second,
		IndexCacheTTL:       time.Duration(utils.GetEnvAsInt("UUID_INDEX_CACHE_SECONDS", 3600, log)) * time.Second,
		CategoryCacheTTL:    time.Duration(utils.GetEnvAsInt("CATEGORY_CACHE_SECONDS", 300, log)) * time.Second,
		RegistrarRetries:    utils.GetEnvAsInt("REGISTRAR_MAX_RETRIES", 3, log),
		RegistrarRetryDelay: time.Duration(utils.GetEnvAsInt("REGISTRAR_RETRY_DELAY_SECONDS", 2, log)) * time.Second,
		SyncInterval:        time.Duration(utils.GetEnvAsInt("SYNC_INTERVAL_SECONDS", 1800, log)) * time.Second,
	}
}
