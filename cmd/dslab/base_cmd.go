package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/g-m-twostay/dslab/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "DSLAB"

	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

type baseConfiguration struct {
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

// newApp creates the root command with all subcommands added.
func newApp() *cobra.Command {
	baseCmd, config := newBaseCmd()
	baseCmd.AddCommand(newBSTCmd(config))
	baseCmd.AddCommand(newGraphCmd(config))
	return baseCmd
}

func newBaseCmd() (*cobra.Command, *baseConfiguration) {
	config := &baseConfiguration{log: zerolog.Nop()}
	baseCmd := &cobra.Command{
		Use:           "dslab",
		Short:         "Data structure lab consoles",
		Long:          `dslab runs interactive consoles over a binary search tree and an undirected graph, reading commands from stdin.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}
	config.addConfigurationFlags(baseCmd)
	return baseCmd, config
}

func (config *baseConfiguration) addConfigurationFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "config file (yaml, json or toml), flags override its values")
	cmd.PersistentFlags().StringVar(&config.LogLevel, keyLogLevel, "info", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&config.LogFormat, keyLogFormat, logger.FormatConsole, "log format: console or json")
}

func initializeConfig(cmd *cobra.Command, config *baseConfiguration) error {
	var errs []error
	if err := config.initializeConfig(cmd); err != nil {
		errs = append(errs, fmt.Errorf("reading configuration: %w", err))
	}
	log, err := logger.New(logger.Config{Level: config.LogLevel, Format: config.LogFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	}
	config.log = log
	return errors.Join(errs...)
}

// initializeConfig reads in config file and ENV variables if set.
func (config *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	if config.CfgFile != "" {
		v.SetConfigFile(config.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	// Flags bind to environment variables with the prefix, e.g. --log-level
	// binds to DSLAB_LOG_LEVEL.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q: %w", f.Name, err))
			}
		}
	})
	return errors.Join(bindFlagErr...)
}
