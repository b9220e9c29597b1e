package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rainify",
		Short: "Turn any photo into a rainy day in Dhaka",
		Long: `Rainify reimagines photos as monsoon street scenes in Dhaka using
Gemini's image generation models.

Run the web interface with "rainify serve", or transform a single photo
from the terminal with "rainify transform".`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newTransformCmd())

	return cmd
}
