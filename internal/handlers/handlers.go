package handlers

import (
	"github.com/nahidhasan98/standup-summarizer/internal/logger"
	"github.com/nahidhasan98/standup-summarizer/internal/standup"
	"github.com/nahidhasan98/standup-summarizer/internal/validation"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	svc       *standup.Service
	log       *logger.Logger
	validator *validation.Validator
}

// New creates a new handler instance
func New(svc *standup.Service, log *logger.Logger) *Handler {
	return &Handler{
		svc:       svc,
		log:       log,
		validator: validation.New(),
	}
}
