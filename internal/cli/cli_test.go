package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	previousOutput := color.Output
	previousNoColor := color.NoColor
	buffer := &bytes.Buffer{}
	color.Output = buffer
	color.NoColor = true
	t.Cleanup(func() {
		color.Output = previousOutput
		color.NoColor = previousNoColor
	})
	fn()
	return buffer.String()
}

func TestBotOutputFormatsArgs(t *testing.T) {
	output := captureOutput(t, func() {
		BotOutput("Renamed chat %s.\n", "abc")
	})
	require.Equal(t, "Renamed chat abc.\n", output)
}

func TestBotOutputVerbatimPercent(t *testing.T) {
	output := captureOutput(t, func() {
		BotOutput("usage is at 80% of quota\n")
	})
	require.Equal(t, "usage is at 80% of quota\n", output)
}

func TestFieldOutput(t *testing.T) {
	output := captureOutput(t, func() {
		Field("chatbot_id", "chatbot-1")
	})
	require.Contains(t, output, "chatbot_id: ")
}
