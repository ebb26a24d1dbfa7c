package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/andrewsheerin/cartox.io/internal/config"
	"github.com/andrewsheerin/cartox.io/internal/logger"
	"github.com/andrewsheerin/cartox.io/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string `short:"c" long:"config"    env:"CONFIG_FILE"    description:"Path to configuration file"`
	Addr        string `short:"a" long:"addr"      env:"LISTEN_ADDRESS" description:"Address to listen on"  default:"127.0.0.1"`
	Port        int    `short:"p" long:"port"      env:"LISTEN_PORT"    description:"Port to listen on"     default:"8000"`
	StaticDir   string `short:"s" long:"static"    env:"STATIC_DIR"     description:"Static assets directory"`
	TemplateDir string `short:"t" long:"templates" env:"TEMPLATE_DIR"   description:"Template directory"`
	GeoJSON     string `short:"g" long:"geojson"   env:"GEOJSON_PATH"   description:"GeoJSON file (default <static>/countries.geo.json)"`
	Title       string `long:"title"               env:"PAGE_TITLE"     description:"Page title"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	applyOptions(cfg, opts)

	srvCtx, err := server.NewServerContext(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           srvCtx.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Str("addr", listenAddr).
		Str("title", cfg.Title).
		Int("names_loaded", len(srvCtx.Names)).
		Msg("Web server started")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// applyOptions layers non-empty flags over cfg. Moving the static directory
// also moves the GeoJSON when it still sits at the default spot inside it.
func applyOptions(cfg *config.Config, opts Options) {
	if opts.StaticDir != "" {
		if filepath.Clean(cfg.GeoJSON) == defaultGeoJSON(cfg.StaticDir) {
			cfg.GeoJSON = defaultGeoJSON(opts.StaticDir)
		}
		cfg.StaticDir = opts.StaticDir
	}
	if opts.GeoJSON != "" {
		cfg.GeoJSON = opts.GeoJSON
	}
	if opts.TemplateDir != "" {
		cfg.TemplateDir = opts.TemplateDir
	}
	if opts.Title != "" {
		cfg.Title = opts.Title
	}
}

func defaultGeoJSON(staticDir string) string {
	return filepath.Join(staticDir, "countries.geo.json")
}
