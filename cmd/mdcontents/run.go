package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	mdcontents "github.com/alnah/go-mdcontents"
	"github.com/alnah/go-mdcontents/internal/config"
	"github.com/alnah/go-mdcontents/internal/fileutil"
	"github.com/alnah/go-mdcontents/internal/hints"
)

// batchPlan is the resolved input of one command run.
type batchPlan struct {
	cfg     *config.Config
	files   []string
	workers int
}

// planBatch resolves configuration and inputs shared by every command:
// config file, environment, flags (via merge), discovered files and pool size.
func planBatch(common commonFlags, args []string, env *Environment, merge func(*config.Config)) (*batchPlan, error) {
	configureLogger(env.Logger, common)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(env.Logger)))

	if err := validateWorkers(common.workers); err != nil {
		return nil, err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Logger)

	cfg, err := loadConfig(common.config, envCfg.ConfigPath, env.Logger)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	if common.workers > 0 {
		cfg.Workers = common.workers
	}
	if merge != nil {
		merge(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	inputs, err := resolveInputPaths(args, cfg)
	if err != nil {
		return nil, err
	}

	files, err := discoverFiles(inputs)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	workers := resolvePoolSize(cfg.Workers)
	env.Logger.WithFields(logrus.Fields{
		"files":   len(files),
		"workers": workers,
	}).Debug("starting batch")

	return &batchPlan{cfg: cfg, files: files, workers: workers}, nil
}

// loadConfig loads the config named by the flag, else by MDCONTENTS_CONFIG.
// Without either the defaults apply.
func loadConfig(flagValue, envValue string, log *logrus.Logger) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !fileutil.IsFilePath(name) {
				searched = config.SearchPaths(name)
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log.WithField("config", name).Debug("config loaded")
	return cfg, nil
}

// mergeContentsFlags merges CLI contents flags into config. CLI values
// override config values; a boolean flag can only switch an option on.
func mergeContentsFlags(flags contentsFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.Contents.Title = flags.title
	}
	if flags.keepExisting {
		cfg.Contents.KeepExisting = true
	}
	if flags.skipCodeBlocks {
		cfg.Contents.SkipCodeBlocks = true
	}
	if flags.frontMatter {
		cfg.Contents.FrontMatter = true
	}
}

// newGenerator builds a Generator from the contents section of the config.
func newGenerator(c config.ContentsConfig) *mdcontents.Generator {
	opts := []mdcontents.Option{mdcontents.WithTitle(c.Title)}
	if c.KeepExisting {
		opts = append(opts, mdcontents.WithKeepExisting())
	}
	if c.SkipCodeBlocks {
		opts = append(opts, mdcontents.WithSkipCodeBlocks())
	}
	if c.FrontMatter {
		opts = append(opts, mdcontents.WithFrontMatter())
	}
	return mdcontents.NewGenerator(opts...)
}
