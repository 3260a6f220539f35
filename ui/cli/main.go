// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the persistent flags shared by every
// subcommand, configuration loading and version reporting.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/rankscope/buildvars"
	"github.com/toeirei/rankscope/internal/config"
	"github.com/toeirei/rankscope/internal/db"
	"github.com/toeirei/rankscope/internal/i18n"
	"github.com/toeirei/rankscope/internal/logging"
)

const modulePath = "github.com/toeirei/rankscope"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// appConfig is the configuration of the running command.
var appConfig config.Config

// configFileUsed is the file appConfig was read from, if any.
var configFileUsed string

// dotEnvPath is loaded before the configuration.
var dotEnvPath = ".env"

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(dotEnvPath); err != nil {
		logging.Warnf("%v", err)
	}

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configFileUsed = findConfigFile(optionalConfigPath)
	if configFileUsed == "" {
		// First run: persist the defaults so users have a file to edit.
		defaults := config.DefaultConfig()
		if writeErr := config.WriteConfigFile(&defaults, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else if p, err := config.GetConfigPath(false); err == nil {
			logging.Debugf("wrote default config to %s", p)
		}
	}

	i18n.Init(appConfig.Language)
	return nil
}

// findConfigFile mirrors the search order of config.LoadConfig and returns
// the first existing file.
func findConfigFile(explicit *string) string {
	if explicit != nil {
		return *explicit
	}
	var candidates []string
	if p, err := config.GetConfigPath(false); err == nil {
		candidates = append(candidates, p)
	}
	if p, err := config.GetConfigPath(true); err == nil {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, "rankscope.yaml")
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		} else if !errors.Is(err, fs.ErrNotExist) {
			logging.Debugf("config candidate %s: %v", c, err)
		}
	}
	return ""
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns an independent command tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "rankscope [file]",
		Short: "Rankscope explores keyword search rankings.",
		Long: `Rankscope loads a dataset of keyword rankings, prints summary diagnostics
and charts the rank history of one keyword as well as the most searched
keyword of every search engine.

Running without a subcommand performs all three steps.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetDebug(verbose)
			db.SetDebug(verbose)
			return setupDefaultServices(cmd, args)
		},
		RunE: runAll,
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (includes DB logs)")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)
	cmd.PersistentFlags().String("source", config.SourceFile, `Dataset source ("file", "database")`)
	cmd.PersistentFlags().String("delimiter", ";", `Field delimiter of dataset files (a character, "tab" or "comma")`)
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./rankscope.db", "Database connection string (DSN)")
	cmd.PersistentFlags().Int("keyword", config.DefaultKeywordID, "keyword_id of the rank chart")
	cmd.PersistentFlags().Int("engine", config.DefaultSearchEngine, "search_engine of the rank chart")

	cmd.AddCommand(
		newExploreCmd(),
		newRankCmd(),
		newTopCmd(),
		newImportCmd(),
		newDebugCmd(),
		newVersionCmd(),
	)
	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// Version output needs no config or dataset.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit provided via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
