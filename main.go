package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-gif/render"
	"github.com/sheikhrachel/go-gol-gif/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("loading %s: %v", configFile, err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	engine, err := buildEngine(config)
	if err != nil {
		log.Fatal(err)
	}
	style, err := buildStyle(config)
	if err != nil {
		log.Fatal(err)
	}
	renderer, outPath, err := openRenderer(config, style)
	if err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	displayGameInfo(os.Stdout, config, engine, outPath)

	var progress io.Writer
	if outPath != "" {
		progress = os.Stderr
	}
	stats := utils.NewStats()
	result, runErr := runSimulation(ctx, engine, renderer, config.Steps, config.StopWhenStagnant, progress, stats)

	// live mode must restore the terminal before anything else is printed
	closeErr := renderer.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
	if closeErr != nil && !errors.Is(closeErr, render.ErrNoFrames) {
		log.Fatal(closeErr)
	}

	displayFinalStats(os.Stdout, result, stats)
	if outPath == "" {
		return
	}
	if result.Rendered == 0 {
		fmt.Println("No frames were rendered, nothing was saved")
		return
	}
	fmt.Printf("✨ Animation saved successfully to '%s'!\n", outPath)

	if config.Chart {
		chartPath := utils.SiblingPath(outPath, "_population", "png")
		if err = writeChart(chartPath, stats, style); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("📈 Population chart saved to '%s'\n", chartPath)
	}
}
