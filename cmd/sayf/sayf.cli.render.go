package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-sayf"
)

type renderOptions struct {
	room  int
	host  string
	limit int
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   CmdNameRender + " [flags] -- <params...>",
		Short: "Compose a message from sayf parameters",
		Long: `Compose a message from sayf command parameters and print it.

Parameters are read from the arguments, or from stdin split on whitespace
when no arguments are given.`,
		Example: RenderExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.room, FlagRoom, 0, "room id used for name resolution")
	cmd.Flags().StringVar(&opts.host, FlagHost, "", "chat host of the room")
	cmd.Flags().IntVarP(&opts.limit, FlagLimit, FlagLimitShort, -1, "override the truncation limit")

	return cmd
}

func runRender(cmd *cobra.Command, rootOpts *RootOptions, opts *renderOptions, args []string) error {
	params := args
	if len(params) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return withExitCode(ExitCodeInputError, fmt.Errorf("%s: %w", ErrMsgReadStdinFailed, err))
		}
		params = strings.Fields(string(data))
	}
	if len(params) == 0 {
		return withExitCode(ExitCodeInputError, fmt.Errorf("%s", ErrMsgNoParameters))
	}

	cfg, err := rootOpts.loadConfig()
	if err != nil {
		return err
	}

	var extra []sayf.Option
	if opts.limit >= 0 {
		extra = append(extra, sayf.WithTruncationLimit(opts.limit))
	}

	composer, dir, err := cfg.Open(rootOpts.logger(cmd.ErrOrStderr()), extra...)
	if err != nil {
		return withExitCode(ExitCodeConfigError, fmt.Errorf("%s: %w", ErrMsgOpenDirectory, err))
	}
	defer dir.Close()

	room := sayf.Room{ID: opts.room, Host: opts.host}
	out, err := composer.ComposeParameters(cmd.Context(), room, params)
	if err != nil {
		return withExitCode(ExitCodeError, fmt.Errorf("%s (%s): %w", ErrMsgComposeFailed, sayf.KindOf(err), err))
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return withExitCode(ExitCodeError, fmt.Errorf("%s: %w", ErrMsgWriteFailed, err))
	}
	return nil
}
