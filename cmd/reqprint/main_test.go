package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all signals",
			args: []string{
				"digest",
				"--user-agent", "UA/1.0",
				"--forwarded-for", "10.0.0.1",
				"--client-hints", "hints",
				"--accept-language", "en-US",
				"--user-id", "u123",
			},
			want: "80d24bab144965f2c8e8e1257e29fa14",
		},
		{
			name: "no signals",
			args: []string{"digest"},
			want: "59d7d64dbcc254544f04cdb81ccff699",
		},
		{
			name: "user agent only",
			args: []string{"digest", "--user-agent", "A"},
			want: "41d31634fb5cb68a63a92d2fd5789dc8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			cmd := newRootCmd()
			cmd.SetOut(out)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, strings.TrimSpace(out.String()))
		})
	}
}

func TestDigestCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"digest", "extra"})
	assert.Error(t, cmd.Execute())
}

func TestDigestCmd_Output(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, args ...string) (string, error) {
		t.Helper()
		out := &bytes.Buffer{}
		cmd := newRootCmd()
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"digest", "--user-agent", "A"}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "--output", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"digest": "41d31634fb5cb68a63a92d2fd5789dc8"`)
		assert.Contains(t, out, `"canonical": "A||||"`)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "digest: 41d31634fb5cb68a63a92d2fd5789dc8")
		assert.Contains(t, out, "user_agent: A")
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "-o", "xml")
		assert.ErrorIs(t, err, errUnknownOutput)
	})
}
