package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/vidping/vidping/ping"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of the records written by replay.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of a ping record",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(ping.Schema()))
	},
}
