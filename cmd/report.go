package cmd

import (
	"io"
	"os"
	"time"

	"github.com/mmuldo/colorlab/report"
	"github.com/spf13/cobra"
)

var (
	reportHTML bool
	reportOut  string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Renders the session palette and history",
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

		format := report.Text
		if reportHTML {
			format = report.HTML
		}

		var w io.Writer = cmd.OutOrStdout()
		if reportOut != "" {
			f, e := os.Create(reportOut)
			if e != nil {
				return e
			}
			defer f.Close()
			w = f
		}

		return report.Render(w, format, report.Data{
			Title:   sessionTitle(),
			Palette: report.NewPalette(s.Palette, nil),
			History: report.NewHistory(s.History, time.Local),
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "render HTML instead of text")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "write the report to a file")
}
