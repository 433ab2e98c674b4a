package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/responder/pkg/logging"
)

var (
	logLevel  string
	logFormat string

	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "responder",
	Short: "Render mock response templates and extract route path parameters",
	Long: `responder resolves {{$...}} placeholder tokens in JSON-like mock
response templates and extracts named :param segments from route patterns.

It is the standalone companion to a mock HTTP server: the server owns
routing and transport, responder owns turning a stored template plus
request data into a concrete response body.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Format: logging.ParseFormat(logFormat),
			Output: cmd.ErrOrStderr(),
		})
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
}

// parseKeyValues parses repeated key=value flag values into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair %q", pair)
		}
		out[key] = value
	}
	return out, nil
}
