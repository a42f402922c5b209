package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/signboard/internal/model"
)

// appConfig is the display's runtime configuration.
type appConfig struct {
	APIBaseURL        string        `mapstructure:"api-base-url"`
	NewsLimit         int           `mapstructure:"news-limit"`
	AwardYear         int           `mapstructure:"award-year"`
	AwardPageSize     int           `mapstructure:"award-page-size"`
	SlideInterval     time.Duration `mapstructure:"slide-interval"`
	BootstrapInterval time.Duration `mapstructure:"bootstrap-interval"`
	FetchTimeout      time.Duration `mapstructure:"fetch-timeout"`
	MediaProbe        bool          `mapstructure:"media-probe"`
	MediaProbeTimeout time.Duration `mapstructure:"media-probe-timeout"`
	AutoLaunch        bool          `mapstructure:"auto-launch"`
	PromoCatalog      string        `mapstructure:"promo-catalog"`
	BoardTitle        string        `mapstructure:"board-title"`
	StatusAPIEnabled  bool          `mapstructure:"status-api-enabled"`
	StatusAPIAddr     string        `mapstructure:"status-api-addr"`
	PlaylogEnabled    bool          `mapstructure:"playlog-enabled"`
	LogFile           string        `mapstructure:"log-file"`
	ConfigPath        string        `mapstructure:"-"` // not from config file
}

// registerFlags declares the command-line overrides. Every flag name is a
// config key so viper can bind the set directly.
func registerFlags(fs *pflag.FlagSet) {
	fs.String("api-base-url", model.DefaultAPIBaseURL, "content backend base URL")
	fs.Int("award-year", model.DefaultAwardYear, "year filter for the achievements feed")
	fs.Duration("slide-interval", model.DefaultSlideInterval, "time each slide stays on screen")
	fs.String("board-title", model.DefaultBoardTitle, "title shown on the gate and header")
	fs.Bool("auto-launch", true, "start the board as soon as every feed is ready")
	fs.Bool("status-api-enabled", false, "serve the local status and control API")
	fs.String("status-api-addr", model.DefaultStatusAPIAddr, "status API listen address")
	fs.String("promo-catalog", "", "promo catalog YAML file (default is the built-in catalog)")
}

func loadConfig(configPath string, flags *pflag.FlagSet) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SIGNBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-base-url", model.DefaultAPIBaseURL)
	v.SetDefault("news-limit", model.DefaultNewsLimit)
	v.SetDefault("award-year", model.DefaultAwardYear)
	v.SetDefault("award-page-size", model.DefaultAwardPageSize)
	v.SetDefault("slide-interval", model.DefaultSlideInterval)
	v.SetDefault("bootstrap-interval", model.DefaultBootstrapInterval)
	v.SetDefault("fetch-timeout", model.DefaultFetchTimeout)
	v.SetDefault("media-probe", true)
	v.SetDefault("media-probe-timeout", model.DefaultMediaProbeTimeout)
	v.SetDefault("auto-launch", true)
	v.SetDefault("promo-catalog", "")
	v.SetDefault("board-title", model.DefaultBoardTitle)
	v.SetDefault("status-api-enabled", false)
	v.SetDefault("status-api-addr", model.DefaultStatusAPIAddr)
	v.SetDefault("playlog-enabled", true)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "signboard", "signboard.log"))

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, fmt.Errorf("binding flags: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "signboard", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	// Expand ~ in file paths
	cfg.LogFile = expandHome(home, cfg.LogFile)
	cfg.PromoCatalog = expandHome(home, cfg.PromoCatalog)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(c.APIBaseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api-base-url: %q", c.APIBaseURL)
	}
	if c.SlideInterval <= 0 {
		return fmt.Errorf("invalid slide-interval: %s", c.SlideInterval)
	}
	if c.BootstrapInterval <= 0 {
		return fmt.Errorf("invalid bootstrap-interval: %s", c.BootstrapInterval)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("invalid fetch-timeout: %s", c.FetchTimeout)
	}
	if c.MediaProbe && c.MediaProbeTimeout <= 0 {
		return fmt.Errorf("invalid media-probe-timeout: %s", c.MediaProbeTimeout)
	}
	if c.AwardPageSize < 1 {
		return fmt.Errorf("invalid award-page-size: %d", c.AwardPageSize)
	}
	if c.NewsLimit < 1 {
		return fmt.Errorf("invalid news-limit: %d", c.NewsLimit)
	}
	if c.StatusAPIEnabled && c.StatusAPIAddr == "" {
		return errors.New("status-api-addr is required when the status API is enabled")
	}
	return nil
}

func expandHome(home, path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
