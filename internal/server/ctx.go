package server

import (
	"errors"
	"time"

	"github.com/andrewsheerin/cartox.io/internal/config"
	"github.com/andrewsheerin/cartox.io/internal/geo"
	"github.com/andrewsheerin/cartox.io/internal/names"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
// It is not modified after NewServerContext returns.
type ServerContext struct {
	Config     *config.Config
	IndexHTML  []byte
	Names      names.List
	Continents map[string]int
	Index      *names.Index
	Started    time.Time
}

// NewServerContext renders the index page and loads the country names.
// A missing GeoJSON is not fatal: the page still works as a static site and
// the names API serves an empty list.
func NewServerContext(cfg *config.Config) (*ServerContext, error) {
	log.Info().
		Str("templates", cfg.TemplateDir).
		Str("static", cfg.StaticDir).
		Msg("Initializing server context")

	page, err := RenderIndex(cfg.TemplateDir, cfg.Title)
	if err != nil {
		return nil, err
	}

	list := names.List{}
	aliases := make(map[string][]string)
	continents := make(map[string]int)

	fc, err := geo.Load(cfg.GeoJSON)
	switch {
	case errors.Is(err, geo.ErrNotFound):
		log.Warn().
			Str("path", cfg.GeoJSON).
			Msg("GeoJSON not found, names API will be empty")
	case err != nil:
		return nil, err
	default:
		list = names.FromCollection(fc, cfg.Property)
		aliases = names.Aliases(fc, cfg.Property, cfg.AliasProperty)
		continents = names.Continents(fc, cfg.Property, cfg.ContinentProperty)
	}

	for name, extra := range cfg.Aliases {
		aliases[name] = append(aliases[name], extra...)
	}

	idx := names.NewIndex(list, aliases)

	log.Info().
		Int("names", idx.Len()).
		Int("aliased", len(aliases)).
		Int("continents", len(continents)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:     cfg,
		IndexHTML:  page,
		Names:      list,
		Continents: continents,
		Index:      idx,
		Started:    time.Now(),
	}, nil
}
