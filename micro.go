package main

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/micro"
)

type natsScanRequest struct {
	ImageBase64 string `json:"imageBase64"`
	LanguageKey string `json:"languageKey"`
}

// RegisterNatsService exposes the scan pipeline as NATS request/reply
// endpoints, mirroring the HTTP surface.
func RegisterNatsService(nc *nats.Conn, scanner *Scanner) error {
	scanService, err := micro.AddService(nc, micro.Config{
		Name:        "tesseract-scan",
		Version:     "1.0.0",
		Description: "Recognizes text in base64-encoded images",
	})
	if err != nil {
		return err
	}
	err = scanService.AddEndpoint("scan-image",
		micro.HandlerFunc(func(req micro.Request) { handleScanImage(scanner, req) }),
		micro.WithEndpointQueueGroup("tesseract-scan-service"))
	if err != nil {
		return err
	}
	return scanService.AddEndpoint("list-languages",
		micro.HandlerFunc(func(req micro.Request) { handleListLanguages(scanner, req) }),
		micro.WithEndpointQueueGroup("tesseract-scan-service"))
}

func handleScanImage(scanner *Scanner, req micro.Request) {
	var params natsScanRequest
	if err := json.Unmarshal(req.Data(), &params); err != nil {
		req.Error("400", err.Error(), nil)
		return
	}
	if params.LanguageKey == "" {
		params.LanguageKey = "eng"
	}
	logger.Info("Received NATS scan request", "lang", params.LanguageKey)
	result, err := scanner.ScanBase64(context.Background(), params.ImageBase64, params.LanguageKey)
	if err != nil {
		if IsValidation(err) {
			req.Error("400", err.Error(), nil)
			return
		}
		logger.Error("Recognition failed", "err", err, "lang", params.LanguageKey)
		req.Error("500", "text recognition failed", nil)
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		req.Error("500", "text recognition failed", nil)
		return
	}
	req.Respond(data)
}

func handleListLanguages(scanner *Scanner, req micro.Request) {
	data, err := json.Marshal(scanner.Installed().List())
	if err != nil {
		req.Error("500", err.Error(), nil)
		return
	}
	req.Respond(data)
}
