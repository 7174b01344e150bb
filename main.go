package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arfacturas8-ai/sociograph/config"
	"github.com/arfacturas8-ai/sociograph/models"
	"github.com/arfacturas8-ai/sociograph/render"
	"github.com/arfacturas8-ai/sociograph/server"
	"github.com/arfacturas8-ai/sociograph/social"
	"github.com/arfacturas8-ai/sociograph/viz"
)

// Options represents the command-line settings layered over the config file.
// LabelsSet records whether -labels was given on the command line, since its
// default of true is indistinguishable from an explicit -labels=true.
type Options struct {
	Mode       string
	Subject    string
	Filter     string
	ViewMode   string
	Force      float64
	Labels     bool
	LabelsSet  bool
	OutputDir  string
	ConfigFile string
	Port       int
	DebugMode  bool
}

func main() {
	// Create a context that can be canceled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	opts := parseOptions()

	if opts.DebugMode {
		log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
		log.Println("Debug mode enabled")
	} else {
		log.SetFlags(log.LstdFlags)
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyOptions(&cfg, opts)

	source := social.SampleSource{}
	notifier := social.LogNotifier{}

	if opts.Mode == "server" {
		srv := server.New(cfg, source, notifier)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	if err := exportSnapshot(ctx, cfg, opts, source, notifier); err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}
}

// parseOptions parses command-line flags.
func parseOptions() *Options {
	opts := &Options{}

	flag.StringVar(&opts.Mode, "mode", "png", "Run mode: png, server")
	flag.StringVar(&opts.Subject, "subject", "me", "Subject account ID to visualize")
	flag.StringVar(&opts.Filter, "filter", "", "Relationship filter: all, friends, followers, following")
	flag.StringVar(&opts.ViewMode, "view", "", "View mode: network, circle, hierarchy")
	flag.Float64Var(&opts.Force, "force", 0, "Center force strength (0.1-1.0)")
	flag.BoolVar(&opts.Labels, "labels", true, "Draw node labels")
	flag.StringVar(&opts.OutputDir, "out", ".", "Directory for the exported image")
	flag.StringVar(&opts.ConfigFile, "config", "sociograph.toml", "Path to TOML config file")
	flag.IntVar(&opts.Port, "port", 0, "Port for server mode")
	flag.BoolVar(&opts.DebugMode, "debug", false, "Enable debug logging")

	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "labels" {
			opts.LabelsSet = true
		}
	})
	return opts
}

// applyOptions lets non-zero flags override config file values.
func applyOptions(cfg *config.Config, opts *Options) {
	if opts.Filter != "" {
		cfg.Filter = opts.Filter
	}
	if opts.ViewMode != "" {
		cfg.Mode = opts.ViewMode
	}
	if opts.Force > 0 {
		cfg.ForceStrength = opts.Force
	}
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}
	if opts.LabelsSet {
		cfg.ShowLabels = opts.Labels
	}
}

// exportSnapshot renders one relaxed frame of the subject's graph and saves
// it under the fixed export filename.
func exportSnapshot(ctx context.Context, cfg config.Config, opts *Options, source social.Source, notifier social.Notifier) error {
	builder := social.NewBuilder(source, notifier)
	graph, stats := builder.Load(ctx, opts.Subject, models.Filter(cfg.Filter))

	canvas, err := render.NewRaster(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	settings := viz.DefaultSettings()
	settings.Mode = models.ViewMode(cfg.Mode)
	settings.Filter = models.Filter(cfg.Filter)
	settings.ShowLabels = cfg.ShowLabels
	settings.Seed = cfg.Seed

	scene := viz.NewScene(graph, stats, canvas, render.GetPalette(cfg.Palette), cfg.PixelRatio, settings)
	scene.SetForceStrength(cfg.ForceStrength)
	scene.Start()

	for i := 0; i < maxRelaxSteps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if scene.Frame() {
			break
		}
	}
	scene.Pause()
	scene.Redraw()

	path, err := viz.SavePNG(canvas, opts.OutputDir)
	if err != nil {
		return err
	}

	summary := scene.Summary()
	log.Printf("Exported %s (%d connections, %d mutual, %d clusters, density %s)",
		path, summary.TotalConnections, summary.MutualConnections, summary.Clusters, summary.Density)
	return nil
}

// maxRelaxSteps bounds the relaxation loop for one-shot exports.
const maxRelaxSteps = 300
