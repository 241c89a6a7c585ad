package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
truncation_limit: 50
directory:
  rooms:
    - id: 11540
      members:
        - user_id: 1
          name: Carol Smith
`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sayf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, CLIName, cmd.Use)

	for _, name := range []string{CmdNameRender, CmdNameTokens, CmdNameVersion} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup(FlagVerbose)
	require.NotNil(t, verbose)
	assert.Equal(t, FlagVerboseShort, verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	config := cmd.PersistentFlags().Lookup(FlagConfig)
	require.NotNil(t, config)
	assert.Equal(t, "", config.DefValue)
}

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CmdNameRender)
	assert.Contains(t, stdout, CmdNameTokens)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "", "frobnicate")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgCommandFailed)
}

func TestRender(t *testing.T) {
	t.Run("plain conversions", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "", CmdNameRender, "--", "%05.2f", "/", "3.14159")
		require.Equal(t, ExitCodeSuccess, code, stderr)
		assert.Equal(t, "03.14\n", stdout)
	})

	t.Run("mention from config", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "", "--config", writeConfig(t), CmdNameRender, "--room", "11540", "--", "hi", "%p", "/", "carol")
		require.Equal(t, ExitCodeSuccess, code, stderr)
		assert.Equal(t, "hi @CarolSmith\n", stdout)
	})

	t.Run("other room does not resolve", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "", "--config", writeConfig(t), CmdNameRender, "--room", "1", "--", "hi", "%p", "/", "carol")
		require.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "hi carol\n", stdout)
	})

	t.Run("params from stdin", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "%s-%s / a / b\n", CmdNameRender)
		require.Equal(t, ExitCodeSuccess, code, stderr)
		assert.Equal(t, "a-b\n", stdout)
	})

	t.Run("limit from config", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "", "--config", writeConfig(t), CmdNameRender, "--", "%51s", "/", "x")
		assert.Equal(t, ExitCodeError, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "limit_exceeded")
	})

	t.Run("limit flag overrides", func(t *testing.T) {
		code, _, stderr := runCLI(t, "", CmdNameRender, "--limit", "2", "--", "%3s", "/", "x")
		assert.Equal(t, ExitCodeError, code)
		assert.Contains(t, stderr, "limit_exceeded")
	})

	t.Run("render failure", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "", CmdNameRender, "--", "%d", "/", "lots")
		assert.Equal(t, ExitCodeError, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "render_failed")
	})

	t.Run("no parameters", func(t *testing.T) {
		code, _, stderr := runCLI(t, "", CmdNameRender)
		assert.Equal(t, ExitCodeInputError, code)
		assert.Contains(t, stderr, ErrMsgNoParameters)
	})

	t.Run("missing config", func(t *testing.T) {
		code, _, stderr := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), CmdNameRender, "--", "x")
		assert.Equal(t, ExitCodeConfigError, code)
		assert.Contains(t, stderr, ErrMsgLoadConfig)
	})

	t.Run("verbose logs to stderr", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "", "-v", CmdNameRender, "--", "hi")
		require.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "hi\n", stdout)
		assert.NotEmpty(t, stderr)
	})
}

func TestTokens(t *testing.T) {
	t.Run("verbose logs to stderr", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "", "-v", CmdNameTokens, "%s")
		require.Equal(t, ExitCodeSuccess, code)
		assert.Contains(t, stdout, "%s")
		assert.NotEmpty(t, stderr)
	})

	t.Run("text", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "", CmdNameTokens, "a %2$p b %-8.3s")
		require.Equal(t, ExitCodeSuccess, code)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "2\t4\t%2$p\t'p'", lines[1])
		assert.Equal(t, "9\t6\t%-8.3s\t's'", lines[2])
	})

	t.Run("json", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "", CmdNameTokens, "--format", "json", "%'*05.2f")
		require.Equal(t, ExitCodeSuccess, code)

		var tokens []tokenOutput
		require.NoError(t, json.Unmarshal([]byte(stdout), &tokens))
		require.Len(t, tokens, 1)
		assert.Equal(t, 0, tokens[0].Offset)
		assert.Equal(t, 8, tokens[0].Length)
		assert.Equal(t, "*", tokens[0].Pad)
		require.NotNil(t, tokens[0].Width)
		assert.Equal(t, 5, *tokens[0].Width)
		require.NotNil(t, tokens[0].Precision)
		assert.Equal(t, 2, *tokens[0].Precision)
		assert.Equal(t, "f", tokens[0].Verb)
		assert.False(t, tokens[0].Mention)
	})

	t.Run("no specifiers", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "", CmdNameTokens, "--format", "json", "plain")
		require.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "[]\n", stdout)
	})

	t.Run("invalid format", func(t *testing.T) {
		code, _, stderr := runCLI(t, "", CmdNameTokens, "--format", "xml", "x")
		assert.Equal(t, ExitCodeUsageError, code)
		assert.Contains(t, stderr, ErrMsgInvalidFormat)
	})

	t.Run("requires template", func(t *testing.T) {
		code, _, _ := runCLI(t, "", CmdNameTokens)
		assert.Equal(t, ExitCodeUsageError, code)
	})
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameVersion)
	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, "go-sayf version")

	code, stdout, _ = runCLI(t, "", CmdNameVersion, "--format", "json")
	require.Equal(t, ExitCodeSuccess, code)
	var v versionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &v))
	assert.NotEmpty(t, v.GoVersion)
}
