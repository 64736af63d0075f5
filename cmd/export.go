package cmd

import (
	"fmt"
	"time"

	"github.com/mmuldo/colorlab/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportOut string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the session history to an .xlsx spreadsheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, e := openStore()
		if e != nil {
			return e
		}
		defer st.Close()

		h, e := st.LoadHistory(cmd.Context(), viper.GetString("session"))
		if e != nil {
			return e
		}

		if exportOut == "-" {
			return export.Write(cmd.OutOrStdout(), h, time.Local)
		}

		path := exportOut
		if path == "" {
			path = export.FileName(time.Now())
		}
		if e := export.Save(path, h, time.Local); e != nil {
			return e
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d analyses to %s\n", len(h), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file, - for stdout (default color_analysis_YYYY-MM-DD.xlsx)")
}
