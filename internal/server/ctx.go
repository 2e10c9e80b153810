package server

import (
	"os"

	"github.com/rs/zerolog/log"

	"geoatlas/assets"
	"geoatlas/internal/catalog"
	"geoatlas/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	IndexHTML []byte
	Favicon   []byte

	// MapImagePath is the on-disk schematic background rendered by the
	// mapgen command; the page falls back to inline SVG continents when the
	// file is absent.
	MapImagePath string
}

// NewServerContext initializes the context around a validated catalog.
func NewServerContext(cfg *config.Config, cat *catalog.Catalog) *ServerContext {
	ctx := &ServerContext{
		Config:       cfg,
		Catalog:      cat,
		IndexHTML:    assets.Index,
		Favicon:      assets.Favicon,
		MapImagePath: "assets/worldmap.webp",
	}

	if _, err := os.Stat(ctx.MapImagePath); err != nil {
		log.Debug().
			Str("path", ctx.MapImagePath).
			Msg("No rendered map background, page uses inline outline")
		ctx.MapImagePath = ""
	}

	log.Info().
		Int("features", cat.Len()).
		Int("types", len(cat.Types())).
		Str("title", cfg.Title).
		Msg("Server context initialized")

	return ctx
}
