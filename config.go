package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-simpler.org/env"
)

// ScanConfig represents the configuration of this service,
// populated from TESS_* environment variables.
type ScanConfig struct {
	// HTTP listen address and port
	HostPort string `env:"TESS_HOST_PORT" default:":8080"`
	// increase log level
	Debug bool `env:"TESS_DEBUG" default:"false"`
	// reject threshold for decoded image payloads
	MaxFileSizeBytes int64 `env:"TESS_MAX_FILE_SIZE_BYTES" default:"10485760"`
	// scratch directory for the image handoff to the engine
	TempDir string `env:"TESS_TEMP_DIR"`
	// tessdata installation path; empty uses the engine default
	DataPath string `env:"TESS_DATA_PATH"`
	// language keys enabled on this instance
	Languages []string `env:"TESS_LANGUAGES" default:"eng"`
	// external catalog file overriding the bundled one
	LanguagesFile string `env:"TESS_LANGUAGES_FILE"`
	// Tesseract page segmentation mode ordinal
	PageSegMode int `env:"TESS_PAGE_SEG_MODE" default:"3"`
	// Tesseract engine mode ordinal
	EngineMode int `env:"TESS_ENGINE_MODE" default:"3"`
	// upper bound for a single engine invocation
	OcrTimeout time.Duration `env:"TESS_OCR_TIMEOUT" default:"30s"`
	// if true, disable the HTTP server in favor of the NATS interface
	NoHttp bool `env:"TESS_NO_HTTP" default:"false"`
	// external NATS URL; empty disables the NATS interface unless an
	// embedded server is requested
	NatsUrl string `env:"TESS_NATS_URL"`
	// run an embedded NATS server instead of connecting to an external one
	EmbedNats bool `env:"TESS_EMBED_NATS" default:"false"`
	// whether to expose the embedded NATS server to other clients
	ExposeNats bool `env:"TESS_EXPOSE_NATS" default:"false"`
	// embedded NATS server host/ip address, if exposed
	NatsHost string `env:"TESS_NATS_HOST" default:"localhost"`
	// embedded NATS server port, if exposed
	NatsPort int `env:"TESS_NATS_PORT" default:"4222"`
	// embedded NATS server storage location
	NatsStoreDir string `env:"TESS_NATS_STORE_DIR"`
	// NATS max msg size (embedded server only)
	NatsMaxPayload int32 `env:"TESS_NATS_MAX_PAYLOAD" default:"10485760"`
}

// NewScanConfigFromEnv returns a service config object
// populated with defaults and values from environment vars.
func NewScanConfigFromEnv() (ScanConfig, error) {
	var conf ScanConfig
	if err := env.Load(&conf, &env.Options{SliceSep: ","}); err != nil {
		return conf, err
	}
	if conf.MaxFileSizeBytes <= 0 {
		return conf, fmt.Errorf("TESS_MAX_FILE_SIZE_BYTES must be positive, got %d", conf.MaxFileSizeBytes)
	}
	if conf.TempDir == "" {
		conf.TempDir = filepath.Join(os.TempDir(), "tess-scan")
	}
	return conf, nil
}

// MaxFileSizeKb is the reject threshold in whole kilobytes,
// as reported to clients.
func (c ScanConfig) MaxFileSizeKb() int64 {
	return c.MaxFileSizeBytes / 1024
}
