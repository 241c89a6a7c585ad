package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itsatony/go-sayf"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command for the sayf CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           CLIName,
		Short:         CLIDescription,
		Long:          CLILong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, FlagConfig, FlagConfigShort, "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, FlagVerbose, FlagVerboseShort, false, "debug logging to stderr")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewTokensCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// logger returns a console logger on w when verbose, otherwise a no-op logger.
func (o *RootOptions) logger(w io.Writer) *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// loadConfig reads --config, or returns the defaults when it is unset.
func (o *RootOptions) loadConfig() (*sayf.Config, error) {
	if o.ConfigPath == "" {
		return sayf.DefaultConfig(), nil
	}
	cfg, err := sayf.LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, withExitCode(ExitCodeConfigError, fmt.Errorf("%s: %w", ErrMsgLoadConfig, err))
	}
	return cfg, nil
}

func isValidFormat(format string) bool {
	return format == OutputFormatText || format == OutputFormatJSON
}
