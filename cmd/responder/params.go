package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/responder/pkg/matching"
)

var paramsCmd = &cobra.Command{
	Use:   "params <pattern> <path>",
	Short: "Extract named path parameters from a route pattern",
	Long: `Params matches a :name route pattern against a concrete request
path and prints the captured parameters as JSON:

  responder params /api/users/:id /api/users/123
  {"id":"123"}

A query string on the path is ignored. Literal segments are not validated;
use the exit status of your router for that.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := matching.ExtractPathParams(args[0], args[1])
		out, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encoding path parameters: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}
