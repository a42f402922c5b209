package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/tinytelemetry/signboard/internal/feed"
	"github.com/tinytelemetry/signboard/internal/httpserver"
	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/playlog"
	"github.com/tinytelemetry/signboard/internal/promo"
	"github.com/tinytelemetry/signboard/internal/session"
	"github.com/tinytelemetry/signboard/internal/tui"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flags := pflag.NewFlagSet("signboard", pflag.ContinueOnError)
	flags.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/signboard/config.yml)")
	flags.BoolVar(&showVersion, "version", false, "print version information")
	registerFlags(flags)

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if showVersion {
		fmt.Printf("Signboard - Digital Notice Board\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger(cfg.LogFile)
	defer cleanupLogger()
	log.Printf("signboard %s starting (config %q)", version, cfg.ConfigPath)

	client, err := feed.NewClient(feed.Config{
		BaseURL:    cfg.APIBaseURL,
		NewsLimit:  cfg.NewsLimit,
		AwardYear:  cfg.AwardYear,
		HTTPClient: &http.Client{},
	})
	if err != nil {
		return err
	}

	var prober *feed.Prober
	if cfg.MediaProbe {
		prober = feed.NewProber(&http.Client{}, cfg.MediaProbeTimeout)
	}

	promos, err := promo.Load(cfg.PromoCatalog)
	if err != nil {
		return fmt.Errorf("loading promo catalog: %w", err)
	}

	var (
		recorder model.ImpressionRecorder
		querier  model.ImpressionQuerier
		store    httpserver.ImpressionStore
	)
	if cfg.PlaylogEnabled {
		pl, err := playlog.Open()
		if err != nil {
			return err
		}
		defer pl.Close()
		recorder, querier, store = pl, pl, pl
	}

	sess := session.New()
	publisher := tui.NewStatusPublisher()
	rt := tui.NewRuntime(tui.Options{
		Source:            client,
		FetchTimeout:      cfg.FetchTimeout,
		Promos:            promos,
		AwardPageSize:     cfg.AwardPageSize,
		BootstrapInterval: cfg.BootstrapInterval,
		SlideInterval:     cfg.SlideInterval,
		Session:           sess,
		Prober:            prober,
		Recorder:          recorder,
		Querier:           querier,
		Publisher:         publisher,
		Title:             cfg.BoardTitle,
		AutoLaunch:        cfg.AutoLaunch,
	})

	p := tea.NewProgram(tui.NewProgramModel(rt), tea.WithAltScreen())

	if cfg.StatusAPIEnabled {
		srv := httpserver.NewServer(cfg.StatusAPIAddr, publisher, store, tui.NewRemote(p.Send))
		if err := srv.Start(); err != nil {
			return fmt.Errorf("start status api: %w", err)
		}
		log.Printf("status api listening on %s", srv.Addr())
		defer func() {
			if err := srv.Stop(); err != nil {
				log.Printf("status api stop: %v", err)
			}
			log.Printf("status api stopped")
		}()
	}

	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("signboard requires a real terminal")
		}
		return fmt.Errorf("error running display: %w", err)
	}
	log.Printf("signboard session %s ended", sess.ID())
	return nil
}

func configureRuntimeLogger(logPath string) func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if logPath == "" {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
