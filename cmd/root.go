package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/PGP-Health-System/pgp/internal/config"
	"github.com/PGP-Health-System/pgp/internal/log"
	"github.com/PGP-Health-System/pgp/internal/tui"
)

// ErrNotTerminal is returned when the shell is started without a terminal.
var ErrNotTerminal = errors.New("pgp needs an interactive terminal; use 'pgp modules' for plain output")

var (
	cfgFile string
	debug   bool
	noMouse bool
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// cfgSource is the file whose changes are watched when watch is enabled.
var cfgSource string

// globalCfg is the parsed global config, used as the base when reloading.
var globalCfg *config.Config

// isTerminal is swapped in tests.
var isTerminal = func() bool { return term.IsTerminal(os.Stdin.Fd()) }

var rootCmd = &cobra.Command{
	Use:           "pgp",
	Short:         "PGP Health System clinic shell",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		if noMouse {
			off := false
			cfg.Mouse = &off
		}

		if debug || os.Getenv("PGP_DEBUG") != "" {
			flush, err := log.Init(cfg.LogFile, true)
			if err != nil {
				return err
			}
			cobra.OnFinalize(flush)
		}
		log.Debug(log.CatConfig, "config loaded", "source", cfgSource, "mouse", cfg.MouseEnabled())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return ErrNotTerminal
		}

		opts := tui.Options{Config: cfg}
		if cfg.Watch && cfgSource != "" {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			updates, errs, err := config.Watch(ctx, cfgSource, globalCfg)
			if err != nil {
				log.ErrorErr(log.CatConfig, "config watch disabled", err, "path", cfgSource)
			} else {
				opts.ConfigUpdates = updates
				opts.ConfigErrors = errs
			}
		}
		return tui.Run(opts)
	},
}

// loadConfig merges global and project config, or reads --config alone.
func loadConfig() error {
	if cfgFile != "" {
		explicit, err := config.LoadFile(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Merge(nil, explicit)
		cfgSource = cfgFile
		globalCfg = nil
		return nil
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	project, err := config.LoadProject()
	if err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	cfg = config.Merge(global, project)
	globalCfg = nil

	switch {
	case project != nil:
		cfgSource = config.ProjectPath
		globalCfg = global
	default:
		if p, err := config.GlobalPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				cfgSource = p
			}
		}
	}
	return nil
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/pgp/config.json merged with ./.pgpconfig)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug log to the configured log file")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse support")
}
