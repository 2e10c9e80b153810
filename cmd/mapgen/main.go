package main

import (
	"os"

	"geoatlas/internal/logger"
	"geoatlas/internal/render"

	"github.com/chai2010/webp"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Output  string  `short:"o" long:"out" description:"Output WebP file path" default:"assets/worldmap.webp"`
	Width   int     `short:"w" long:"width" description:"Image width in pixels (height follows the 2:1 canvas)" default:"1600"`
	Quality float64 `short:"q" long:"quality" description:"WebP encoding quality" default:"90"`
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

	opts.Logger.Setup()

	if opts.Width < 100 {
		log.Fatal().Int("width", opts.Width).Msg("Width too small, need at least 100")
	}

	img := render.Map(opts.Width)

	f, err := os.Create(opts.Output)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to create output file")
	}

	if err := webp.Encode(f, img, &webp.Options{Quality: float32(opts.Quality)}); err != nil {
		_ = f.Close()
		log.Fatal().Err(err).Msg("Failed to encode WebP")
	}

	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to close file")
	}

	log.Info().
		Str("path", opts.Output).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("World map background rendered")
}
