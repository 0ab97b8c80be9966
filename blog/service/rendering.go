package service

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/denimatfire/warm-corporate-canvas/render"
)

// RenderingService defines the interface for rendering markdown content.
type RenderingService interface {
	// Render converts markdown to sanitized HTML.
	Render(markdown string) (string, error)
}

// renderingService is the default implementation of RenderingService.
type renderingService struct {
	renderer  *render.HTMLRenderer
	sanitizer *bluemonday.Policy
}

// NewRenderingService creates a new RenderingService.
func NewRenderingService(renderer *render.HTMLRenderer, sanitizer *bluemonday.Policy) RenderingService {
	return &renderingService{
		renderer:  renderer,
		sanitizer: sanitizer,
	}
}

// DefaultPolicy returns the sanitizer policy used for article bodies.
// The UGC policy admits every tag the renderer produces (h2, h3,
// strong, ul, li, p, img) and strips script and event handlers.
func DefaultPolicy() *bluemonday.Policy {
	return bluemonday.UGCPolicy()
}

// Render converts markdown to sanitized HTML.
func (s *renderingService) Render(markdown string) (string, error) {
	unsafe, err := s.renderer.Render(markdown)
	if err != nil {
		return "", err
	}

	return s.sanitizer.Sanitize(unsafe), nil
}
