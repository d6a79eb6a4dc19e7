package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Defaults used when the environment leaves a value unset or unparsable.
const (
	DefaultPort           = "8080"
	DefaultMaxUploadMB    = 20
	DefaultMaxCanvasPixel = 64 << 20
	DefaultStaticDir      = "web/static"
)

// Config holds the runtime settings of the server.
type Config struct {
	Port            string
	GinMode         string
	MaxUploadBytes  int64
	MaxCanvasPixels int
	StaticDir       string
}

// Default returns the configuration used with an empty environment.
func Default() Config {
	return Config{
		Port:            DefaultPort,
		GinMode:         gin.ReleaseMode,
		MaxUploadBytes:  DefaultMaxUploadMB << 20,
		MaxCanvasPixels: DefaultMaxCanvasPixel,
		StaticDir:       DefaultStaticDir,
	}
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := Default()
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.Port = v
	}
	if v, ok := lookup("GIN_MODE"); ok {
		switch v {
		case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
			cfg.GinMode = v
		default:
			log.Printf("[config] ignoring GIN_MODE=%q", v)
		}
	}
	if mb, ok := positiveInt(lookup, "CRAFTKIT_MAX_UPLOAD_MB"); ok {
		cfg.MaxUploadBytes = int64(mb) << 20
	}
	if px, ok := positiveInt(lookup, "CRAFTKIT_MAX_CANVAS_PIXELS"); ok {
		cfg.MaxCanvasPixels = px
	}
	if v, ok := lookup("CRAFTKIT_STATIC_DIR"); ok && v != "" {
		cfg.StaticDir = v
	}
	return cfg
}

func positiveInt(lookup func(string) (string, bool), key string) (int, bool) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] ignoring %s=%q", key, v)
		return 0, false
	}
	return n, true
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}
