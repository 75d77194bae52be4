package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	// vendor-rate source
	RatesURL     string
	RatesTTLSecs int

	// optional pincode standardization API; empty disables it
	PincodeURL string

	// fuzzy location-match threshold (0..1)
	MatchThreshold float64
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	ttl, _ := strconv.Atoi(getenv("RATES_CACHE_TTL", "300"))
	thr, err := strconv.ParseFloat(getenv("MATCH_THRESHOLD", "0.6"), 64)
	if err != nil || thr <= 0 || thr > 1 {
		thr = 0.6
	}
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           port,
		AllowOrigins:   origins,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		MaxUploadMB:    mb,
		LogFile:        getenv("LOG_FILE", "logs/quotation-service.log"),
		RatesURL:       getenv("RATES_URL", ""),
		RatesTTLSecs:   ttl,
		PincodeURL:     getenv("PINCODE_URL", "https://pinlookup.in/api/pincode"),
		MatchThreshold: thr,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
