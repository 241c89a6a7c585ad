package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-sayf"
)

// tokenOutput is the JSON form of one specifier.
type tokenOutput struct {
	Offset    int    `json:"offset"`
	Length    int    `json:"length"`
	Spec      string `json:"spec"`
	ArgNum    *int   `json:"arg_num,omitempty"`
	Sign      string `json:"sign,omitempty"`
	Pad       string `json:"pad,omitempty"`
	LeftAlign bool   `json:"left_align,omitempty"`
	Width     *int   `json:"width,omitempty"`
	Precision *int   `json:"precision,omitempty"`
	Verb      string `json:"verb"`
	Mention   bool   `json:"mention,omitempty"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     CmdNameTokens + " <template>",
		Short:   "List the format specifiers found in a template",
		Example: TokensExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("%s: %q", ErrMsgInvalidFormat, format)
			}
			specs := sayf.TokenizeWithLogger(args[0], rootOpts.logger(cmd.ErrOrStderr()))
			if format == OutputFormatJSON {
				return writeTokensJSON(cmd.OutOrStdout(), specs)
			}
			return writeTokensText(cmd.OutOrStdout(), specs)
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, OutputFormatText, "output format (text|json)")

	return cmd
}

func toTokenOutput(spec sayf.Specifier) tokenOutput {
	out := tokenOutput{
		Offset:    spec.Offset,
		Length:    spec.Length,
		Spec:      spec.String(),
		LeftAlign: spec.IsLeftAligned(),
		Verb:      string(spec.Verb),
		Mention:   spec.IsMention(),
	}
	if spec.HasArgNum {
		n := spec.ArgNum
		out.ArgNum = &n
	}
	if spec.Sign != 0 {
		out.Sign = string(spec.Sign)
	}
	if spec.PadChar != 0 {
		out.Pad = string(spec.PadChar)
	}
	if spec.HasWidth {
		w := spec.Width
		out.Width = &w
	}
	if spec.HasPrecision {
		p := spec.Precision
		out.Precision = &p
	}
	return out
}

func writeTokensJSON(w io.Writer, specs []sayf.Specifier) error {
	out := make([]tokenOutput, 0, len(specs))
	for _, spec := range specs {
		out = append(out, toTokenOutput(spec))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTokensText(w io.Writer, specs []sayf.Specifier) error {
	if _, err := io.WriteString(w, FmtTokenHeader); err != nil {
		return err
	}
	for _, spec := range specs {
		verb := strconv.QuoteRune(spec.Verb)
		if _, err := fmt.Fprintf(w, FmtTokenLine, spec.Offset, spec.Length, spec.String(), verb); err != nil {
			return err
		}
	}
	return nil
}
