package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"geoatlas/internal/catalog"
	"geoatlas/internal/config"
	"geoatlas/internal/logger"
	"geoatlas/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
}

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		log.Warn().
			Str("path", opts.ConfigFile).
			Msg("No configuration file, using built-in dataset")
		cfg = config.Default()
	}

	features, err := cfg.Dataset()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load dataset")
	}

	cat, err := catalog.New(features)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid dataset")
	}

	srvCtx := server.NewServerContext(cfg, cat)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/features", srvCtx.HandleFeatures)
	mux.HandleFunc("/api/features/", srvCtx.HandleFeatureByID)
	mux.HandleFunc("/api/features.geojson", srvCtx.HandleGeoJSON)
	mux.HandleFunc("/api/types", srvCtx.HandleTypes)
	mux.HandleFunc("/api/stats", srvCtx.HandleStats)
	mux.HandleFunc("/api/export", srvCtx.HandleExport)
	mux.HandleFunc("/assets/worldmap.webp", srvCtx.HandleMapImage)
	mux.HandleFunc("/favicon.svg", srvCtx.HandleFavicon)
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("features_loaded", cat.Len()).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
