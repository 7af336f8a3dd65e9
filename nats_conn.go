package main

import (
	"os"

	"github.com/nats-io/nats.go"
)

// SetupNatsConnection connects to the configured NATS server, spins up an
// embedded one when requested, or returns nil when the NATS interface is
// disabled.
func SetupNatsConnection(conf ScanConfig) *nats.Conn {
	if conf.NatsUrl != "" {
		logger.Info("Connecting to NATS", "server", conf.NatsUrl)
		nc, err := nats.Connect(conf.NatsUrl)
		if err != nil {
			logger.Error("Could not connect to NATS", "server", conf.NatsUrl, "err", err)
			os.Exit(1)
		}
		return nc
	}
	if !conf.EmbedNats {
		return nil
	}
	nc, err := connectToEmbeddedNatsServer(conf)
	if err != nil {
		logger.Error("Could not start embedded NATS server", "err", err)
		os.Exit(1)
	}
	return nc
}
