package cmd

import (
	"fmt"

	"github.com/mmuldo/colorlab/store"
	"github.com/spf13/cobra"
)

// sessionsCmd represents the sessions command
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Lists the sessions stored in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, e := openStore()
		if e != nil {
			return e
		}
		defer st.Close()

		names, e := st.Sessions(cmd.Context())
		if e != nil {
			return e
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete NAME...",
	Short: "Deletes the palette and history of the named sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, e := openStore()
		if e != nil {
			return e
		}
		defer st.Close()

		for _, n := range args {
			for _, key := range []string{store.PaletteKey, store.HistoryKey} {
				if e := st.Delete(cmd.Context(), n, key); e != nil {
					return e
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted session %s\n", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}
