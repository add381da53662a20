package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	envFile string
	guildID string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "lootctl",
		Short:         "Administer guild loot rotations",
		Long:          "lootctl reads and changes the loot rotations stored by the lootwheel bot, using the same storage settings.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional .env file with storage settings")
	cmd.PersistentFlags().StringVarP(&opts.guildID, "guild", "g", "", "guild ID, defaults to GUILD_ID")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newImportCmd(opts))
	cmd.AddCommand(newResetDailyCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lootctl %s (commit: %s)\n", Version, Commit)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
