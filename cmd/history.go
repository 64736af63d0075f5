package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows and edits the saved analyses of the session",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists saved analyses, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, e := openStore()
		if e != nil {
			return e
		}
		defer st.Close()

		s, e := loadState(cmd.Context(), st)
		if e != nil {
			return e
		}
		if len(s.History) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no saved analyses")
			return nil
		}
		return printHistory(cmd.OutOrStdout(), s)
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Removes the analysis at INDEX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, e := strconv.Atoi(args[0])
		if e != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}

		ctx := cmd.Context()
		st, e := openStore()
		if e != nil {
			return e
		}
		defer st.Close()

		name := viper.GetString("session")
		h, e := st.LoadHistory(ctx, name)
		if e != nil {
			return e
		}
		r, e := h.Remove(i)
		if e != nil {
			return e
		}
		if e := st.SaveHistory(ctx, name, h); e != nil {
			return e
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed analysis %s\n", r.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyRemoveCmd)
}
