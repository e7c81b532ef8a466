package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/piwi3910/advslider/internal/logger"
	"github.com/piwi3910/advslider/internal/model"
	"github.com/piwi3910/advslider/internal/project"
)

type rootFlags struct {
	configPath  string
	presetsPath string
	logLevel    string
	verbose     bool
}

// session is the state every subcommand starts from.
type session struct {
	log        *logger.Logger
	config     model.AppConfig
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "advslider",
		Short:         "AdvSlider shows flat sliders with their formatted value",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the window
			if len(args) == 0 {
				s, err := loadSession(flags, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				return runGUI(s)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", project.DefaultConfigPath(), "Application config file")
	cmd.PersistentFlags().StringVarP(&flags.presetsPath, "presets", "p", "", "YAML preset file replacing the configured sliders")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGUICmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSession builds the logger, reads the config and applies the preset
// file. The level comes from --verbose, then --log-level, then the config.
func loadSession(flags *rootFlags, errOut io.Writer) (*session, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := newLogger(level, errOut)
	if err != nil {
		return nil, err
	}

	cfg, err := project.LoadAppConfig(flags.configPath, log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if level == "" && cfg.LogLevel != "" {
		if log, err = newLogger(cfg.LogLevel, errOut); err != nil {
			return nil, err
		}
	}

	presetsPath := flags.presetsPath
	if presetsPath == "" {
		presetsPath = cfg.PresetsFile
	}
	if presetsPath != "" {
		presets, err := project.LoadPresets(presetsPath)
		if err != nil {
			return nil, err
		}
		cfg.Sliders = presets
		log.With("path", presetsPath).Debugf("loaded %d presets", len(presets))
	}

	return &session{log: log, config: cfg, configPath: flags.configPath}, nil
}

func newLogger(level string, w io.Writer) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}
