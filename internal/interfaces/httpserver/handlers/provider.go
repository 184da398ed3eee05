package handlers

import (
	"github.com/rs/zerolog"

	"samadhan-setu/services/reel-api/internal/config"
	domain "samadhan-setu/services/reel-api/internal/domain/reel"
)

// Provider wires HTTP handlers.
type Provider struct {
	Reel *ReelHandler
}

func NewProvider(cfg *config.Config, service *domain.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Reel: NewReelHandler(cfg, service, log),
	}
}
