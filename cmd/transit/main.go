package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/transitx/pkg/engine"
	"github.com/lintang-b-s/transitx/pkg/http"
	"github.com/lintang-b-s/transitx/pkg/http/usecases"
	"github.com/lintang-b-s/transitx/pkg/logger"
	"github.com/lintang-b-s/transitx/pkg/reader"
	"github.com/lintang-b-s/transitx/pkg/renderer"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
	"github.com/lintang-b-s/transitx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const usage = `usage:
  transit process [-in file] [-out file] [-config dir]
  transit serve -in file [-config dir] [-rate_limit]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "process":
		err = runProcess(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(configDir string) (*zap.Logger, error) {
	if err := util.ReadConfig(configDir); err != nil {
		return nil, err
	}
	return logger.New()
}

func runProcess(args []string) error {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	inPath := fs.String("in", "", "input document, stdin when empty. .bz2 files are decompressed")
	outPath := fs.String("out", "", "output file, stdout when empty")
	configDir := fs.String("config", "./data/", "directory of config.{yaml,json,toml}")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := setup(*configDir)
	if err != nil {
		return err
	}
	defer log.Sync()

	in, err := reader.OpenInput(*inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := reader.CreateOutput(*outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	r := reader.NewReader(log, viper.GetInt("STAT_WORKERS"), viper.GetInt("ROUTE_CACHE_SIZE"))
	return r.Process(in, out)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	inPath := fs.String("in", "", "input document with base requests and settings")
	configDir := fs.String("config", "./data/", "directory of config.{yaml,json,toml}")
	useRateLimit := fs.Bool("rate_limit", true, "per client rate limit (RATE_LIMIT_RPS, RATE_LIMIT_BURST)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("serve: -in is required")
	}

	log, err := setup(*configDir)
	if err != nil {
		return err
	}
	defer log.Sync()

	in, err := reader.OpenInput(*inPath)
	if err != nil {
		return err
	}
	r := reader.NewReader(log, viper.GetInt("STAT_WORKERS"), viper.GetInt("ROUTE_CACHE_SIZE"))
	doc, err := r.ReadDocument(in)
	in.Close()
	if err != nil {
		return err
	}
	if doc.RoutingSettings == nil {
		return errors.New("serve: document has no routing_settings")
	}

	cat := r.BuildCatalogue(doc)

	transitEngine, err := engine.NewEngine(cat, *doc.RoutingSettings, log, viper.GetInt("ROUTE_CACHE_SIZE"))
	if err != nil {
		return err
	}

	stopIndex := spatialindex.NewStopIndex()
	stopIndex.Build(cat.AllStops(), log)

	var mapRenderer usecases.MapRenderer
	if doc.RenderSettings != nil {
		settings := doc.RenderSettings.ToRenderSettings()
		if err := settings.Validate(); err != nil {
			return err
		}
		mapRenderer = renderer.NewMapRenderer(settings, cat)
	}

	transitService := usecases.NewTransitService(log, transitEngine, stopIndex, mapRenderer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := http.NewServer(log)
	err = api.Use(ctx, *useRateLimit, transitService)
	log.Info("transit server stopped", zap.Error(err))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
