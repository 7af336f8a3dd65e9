package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-contrib/expvar"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ocrworks/tesseract-scan-service/pkg/tesswrap"
	sloggin "github.com/samber/slog-gin"
)

var validate = validator.New()

// envelope is the uniform response wrapper of every endpoint.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func okEnvelope(data any) envelope {
	return envelope{Code: http.StatusOK, Data: data}
}

func errEnvelope(code int, msg string) envelope {
	return envelope{Code: code, Message: msg}
}

// Server holds the request handlers and their collaborators.
type Server struct {
	conf          ScanConfig
	scanner       *Scanner
	engineVersion string
}

func NewServer(conf ScanConfig, scanner *Scanner, engineVersion string) *Server {
	return &Server{conf: conf, scanner: scanner, engineVersion: engineVersion}
}

type scanParams struct {
	LanguageKey string `form:"languageKey" validate:"omitempty,len=3,alpha"`
}

// Ping reports service and engine status.
func (s *Server) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, okEnvelope(gin.H{
		"status":    "up",
		"engine":    s.engineVersion,
		"languages": s.scanner.Installed().Len(),
	}))
}

// Languages returns the installed language descriptors in catalog order.
func (s *Server) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, okEnvelope(s.scanner.Installed().List()))
}

// ScanImageBase64 runs the request body (a base64 or data-URI image payload)
// through the OCR pipeline.
func (s *Server) ScanImageBase64(c *gin.Context) {
	var params scanParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errEnvelope(http.StatusBadRequest, "invalid query parameters"))
		return
	}
	if params.LanguageKey == "" {
		params.LanguageKey = "eng"
	}
	if err := validate.Struct(params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			errEnvelope(http.StatusBadRequest, fmt.Sprintf("unknown or uninstalled languageKey: %s", params.LanguageKey)))
		return
	}

	// Base64 inflates the decoded size by 4/3; a body past this bound
	// cannot pass the size check anyway.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.conf.MaxFileSizeBytes*4/3+1024)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			errEnvelope(http.StatusBadRequest, fmt.Sprintf("image exceeds the maximum size of %d KB", s.conf.MaxFileSizeKb())))
		return
	}

	result, err := s.scanner.ScanBase64(c.Request.Context(), string(body), params.LanguageKey)
	if err != nil {
		if IsValidation(err) {
			c.AbortWithStatusJSON(http.StatusBadRequest, errEnvelope(http.StatusBadRequest, err.Error()))
			return
		}
		var ee *tesswrap.EngineError
		if errors.As(err, &ee) {
			logger.Error("Recognition failed", "err", ee.Err, "lang", params.LanguageKey)
		} else {
			logger.Error("Scan pipeline failed", "err", err, "lang", params.LanguageKey)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			errEnvelope(http.StatusInternalServerError, "text recognition failed"))
		return
	}
	c.JSON(http.StatusOK, okEnvelope(result))
}

// NewRouter wires the HTTP surface.
func NewRouter(srv *Server) *gin.Engine {
	router := gin.New()
	router.Use(sloggin.New(logger), gin.Recovery())
	t := router.Group("/tesseract")
	t.GET("/ping", srv.Ping)
	t.GET("/health", srv.Ping)
	t.GET("/languages", srv.Languages)
	t.POST("/scanImageBase64", srv.ScanImageBase64)
	router.GET("/debug/vars", expvar.Handler())
	return router
}
