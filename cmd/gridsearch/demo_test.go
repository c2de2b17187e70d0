package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, runDemo(cmd, nil))

	want := "Matches found at: [(1, 2), (3, 3)]\n" +
		"Match at top-left = (1, 2):\npik\nuuu\n" +
		"Match at top-left = (3, 3):\npik\nuuu\n"
	assert.Equal(t, want, out.String())
	assert.Empty(t, errOut.String(), "debug logs are off by default")
}

func TestNewLogger(t *testing.T) {
	prevVerbose, prevQuiet, prevFormat := verbose, quiet, logFormat
	t.Cleanup(func() { verbose, quiet, logFormat = prevVerbose, prevQuiet, prevFormat })

	var buf bytes.Buffer

	verbose, quiet, logFormat = true, false, "json"
	logger, err := newLogger(&buf)
	require.NoError(t, err)
	logger.Debug("probe", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"probe"`)

	buf.Reset()
	verbose, quiet, logFormat = false, true, "text"
	logger, err = newLogger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")

	logFormat = "xml"
	_, err = newLogger(&buf)
	assert.ErrorContains(t, err, "unknown log format")
}
