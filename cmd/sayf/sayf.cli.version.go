package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

// versionsYAML is the layout of versions.yaml
type versionsYAML struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
	} `yaml:"git"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("%s: %q", ErrMsgInvalidFormat, format)
			}
			v := getVersionInfo()
			if format == OutputFormatJSON {
				data, err := json.MarshalIndent(v, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), VersionTextTemplate+"\n", v.Version, v.Commit, v.GoVersion)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, OutputFormatText, "output format (text|json)")

	return cmd
}

func getVersionInfo() versionOutput {
	v := versionOutput{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		GoVersion: runtime.Version(),
	}

	for _, path := range []string{"versions.yaml", "../versions.yaml", "../../versions.yaml"} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}
		if vy.Project.Version != "" {
			v.Version = vy.Project.Version
		}
		if vy.Git.Commit != "" {
			v.Commit = vy.Git.Commit
		}
		break
	}
	return v
}
