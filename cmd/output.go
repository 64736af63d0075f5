package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/mmuldo/colorlab/palette"
	"github.com/mmuldo/colorlab/report"
	"github.com/mmuldo/colorlab/session"
	"github.com/spf13/viper"
)

var plain bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "do not print ANSI color swatches")
}

// swatch prints a colored block in truecolor terminals
func swatch(c palette.Color) string {
	if plain {
		return ""
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm    \033[0m ", c.R, c.G, c.B)
}

func printColor(w io.Writer, label string, c palette.Color) {
	fmt.Fprintf(w, "%s%-9s %s  %s  %s\n", swatch(c), label, c, c.RGBString(), c.LabString())
}

func printComparison(w io.Writer, s *session.State) error {
	return report.Render(w, report.Text, report.Data{
		Comparison: report.NewComparison(s.Reference, s.Selected),
	})
}

func printHistory(w io.Writer, s *session.State) error {
	return report.Render(w, report.Text, report.Data{
		History: report.NewHistory(s.History, time.Local),
	})
}

func sessionTitle() string {
	return "Session " + viper.GetString("session")
}
