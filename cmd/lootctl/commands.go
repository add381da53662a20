package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KirkDiggler/lootwheel/internal/seed"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Add the members and items of a YAML seed file",
		Long:  "Adds the roster and items of a seed file to the guild. Members and items that already exist are skipped, so it is safe to run again.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			s, err := connect(cmd, opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			seeder, err := seed.New(&seed.Config{Service: s.Rotation})
			if err != nil {
				return err
			}
			res, err := seeder.Apply(cmd.Context(), s.guildID, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "members: %d added, %d skipped\nitems: %d added, %d skipped\n",
				res.MembersAdded, res.MembersSkipped, res.ItemsAdded, res.ItemsSkipped)
			return nil
		},
	}
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show whose turn it is on every item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd, opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			out, err := s.Rotation.GetState(cmd.Context(), &rotationService.GetStateInput{GuildID: s.guildID})
			if err != nil {
				return err
			}
			formatView(cmd.OutOrStdout(), out.View)
			return nil
		},
	}
}

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var (
		item  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent loot actions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd, opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			out, err := s.Rotation.GetHistory(cmd.Context(), &rotationService.GetHistoryInput{
				GuildID: s.guildID,
				ItemRef: item,
				Limit:   limit,
			})
			if err != nil {
				return err
			}
			formatHistory(cmd.OutOrStdout(), out.Entries, s.cfg.Location())
			return nil
		},
	}

	cmd.Flags().StringVar(&item, "item", "", "only show one item")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries, HISTORY_LIMIT when zero")
	return cmd
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the guild's snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd, opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			out, err := s.Rotation.Export(cmd.Context(), &rotationService.ExportInput{GuildID: s.guildID})
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(append(out.Data, '\n'))
				return err
			}
			return os.WriteFile(outPath, out.Data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, stdout when empty")
	return cmd
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the guild's state with a snapshot",
		Long:  "Replaces the guild's entire state with an exported snapshot. Use - to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			s, err := connect(cmd, opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			out, err := s.Rotation.Import(cmd.Context(), &rotationService.ImportInput{
				GuildID: s.guildID,
				Admin:   true,
				Data:    data,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d item(s) and %d member(s) into %s\n",
				len(out.View.Items), len(out.View.Roster), s.guildID)
			return nil
		},
	}
}

func newResetDailyCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset-daily",
		Short: "Clear the count of actions taken today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd, opts, !all)
			if err != nil {
				return err
			}
			defer s.Close()

			if all {
				out, err := s.Rotation.ResetAllDailyCounters(cmd.Context(), &rotationService.ResetAllDailyCountersInput{Admin: true})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reset %d guild(s)\n", out.Guilds)
				return nil
			}

			out, err := s.Rotation.ResetDailyCounter(cmd.Context(), &rotationService.GuildInput{GuildID: s.guildID, Admin: true})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset %s, %d action(s) were counted today\n", s.guildID, out.Previous)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "reset every stored guild")
	return cmd
}
