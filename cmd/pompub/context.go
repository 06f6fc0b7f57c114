package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pubforge/pompub"
	"github.com/pubforge/pompub/detect"
)

// newEngine builds the engine every subcommand resolves with: default
// detectors, logging to the process logger.
func newEngine() *pompub.Engine {
	return pompub.NewEngine(
		pompub.WithDetectors(detect.Defaults()...),
		pompub.WithLogger(slog.Default()),
	)
}

// resolveRequest assembles the ResolveRequest from the persistent flags.
func resolveRequest(cmd *cobra.Command) (pompub.ResolveRequest, error) {
	dir, _ := cmd.Flags().GetString("project-dir")

	props, _ := cmd.Flags().GetString("properties")
	if props == "" {
		props = filepath.Join(dir, "pompub.properties")
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = filepath.Join(dir, ".pompub.yaml")
	}
	explicit, err := loadConfigFile(configPath)
	if err != nil {
		return pompub.ResolveRequest{}, err
	}

	noAutoDetect, _ := cmd.Flags().GetBool("no-auto-detect")

	return pompub.ResolveRequest{
		Explicit:            explicit,
		PropertiesPath:      props,
		EnableAutoDetection: !noAutoDetect,
		Project:             pompub.ProjectContext{Dir: dir},
	}, nil
}

// loadConfigFile reads the explicit configuration file into a Partial.
// A missing file means "nothing explicit" and returns nil.
func loadConfigFile(path string) (*pompub.Partial, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var p pompub.Partial
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &p, nil
}
