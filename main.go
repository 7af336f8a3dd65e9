package main

import (
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/ocrworks/tesseract-scan-service/pkg/langcatalog"
	"github.com/ocrworks/tesseract-scan-service/pkg/tesswrap"
	"github.com/ocrworks/tesseract-scan-service/pkg/tmpfile"
)

var logger *slog.Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{}))

func main() {
	conf, err := NewScanConfigFromEnv()
	if err != nil {
		logger.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	if conf.Debug {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if os.Getenv("GOMEMLIMIT") != "" {
		logger.Info("GOMEMLIMIT", "Bytes", debug.SetMemoryLimit(-1), "MBytes", debug.SetMemoryLimit(-1)/1024/1024)
	}
	buildinfo, _ := debug.ReadBuildInfo()
	logger.Debug("Info", "buildinfo", buildinfo)

	// The catalog is a startup resource: a broken one must fail the
	// deployment, not the first request.
	var catalog *langcatalog.Catalog
	if conf.LanguagesFile != "" {
		catalog, err = langcatalog.LoadFile(conf.LanguagesFile)
	} else {
		catalog, err = langcatalog.Load()
	}
	if err != nil {
		logger.Error("Could not load language catalog", "err", err)
		os.Exit(1)
	}
	installed := catalog.Installed(conf.Languages)
	if installed.Len() == 0 {
		logger.Error("None of the configured languages exist in the catalog", "configured", conf.Languages)
		os.Exit(1)
	}

	if !tesswrap.PageSegMode(conf.PageSegMode).Valid() {
		logger.Error("Invalid page segmentation mode", "psm", conf.PageSegMode)
		os.Exit(1)
	}
	if !tesswrap.EngineMode(conf.EngineMode).Valid() {
		logger.Error("Invalid engine mode", "oem", conf.EngineMode)
		os.Exit(1)
	}
	engine := &tesswrap.Client{
		DataPath:    conf.DataPath,
		PageSegMode: tesswrap.PageSegMode(conf.PageSegMode),
		EngineMode:  tesswrap.EngineMode(conf.EngineMode),
	}
	if missing, err := engine.Check(installed.Keys()); err != nil {
		logger.Warn("Could not query the engine for available languages", "err", err)
	} else if len(missing) > 0 {
		logger.Warn("Configured languages lack training data on this host", "missing", missing)
	}

	files := tmpfile.NewManager(conf.TempDir)
	if created, err := files.EnsureDir(); err != nil {
		logger.Error("Could not create scratch directory", "dir", conf.TempDir, "err", err)
		os.Exit(1)
	} else if created {
		logger.Info("Scratch directory created", "dir", conf.TempDir)
	}

	scanner := NewScanner(conf, installed, files, engine)
	srv := NewServer(conf, scanner, tesswrap.Version())

	nc := SetupNatsConnection(conf)
	if nc != nil {
		if err := RegisterNatsService(nc, scanner); err != nil {
			logger.Error("Could not register NATS service", "err", err)
			os.Exit(1)
		}
		defer nc.Drain()
	}

	if conf.NoHttp {
		if nc == nil {
			logger.Error("Fatal: NATS not connected and HTTP disabled.")
			os.Exit(1)
		}
		logger.Info("Service started with no HTTP endpoints. Waiting for interrupt.")
		wait := make(chan bool, 1)
		<-wait
	}

	httpSrv := http.Server{Addr: conf.HostPort, Handler: NewRouter(srv)}
	logger.Info("Service started", "address", httpSrv.Addr, "languages", installed.Keys(), "engine", srv.engineVersion)
	defer logger.Info("HTTP Server stopped.")
	if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("Webserver failed", "err", err)
	}
}
