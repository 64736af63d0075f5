package cmd

import (
	"fmt"
	"time"

	"github.com/mmuldo/colorlab/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	refHex     string
	refIndex   int
	refX, refY int
	saveResult bool
	sampleName string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare IMAGE",
	Short: "Compares a sampled color against a reference color",
	Long: `Samples IMAGE at --x/--y and compares the result against a reference given
as a hex color (--ref-hex), a palette position (--ref-index) or another point
of the same image (--ref-x/--ref-y). With --save the analysis is added to the
session history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, e := openStore()
		if e != nil {
			return e
		}
		defer st.Close()

		s, e := loadState(ctx, st)
		if e != nil {
			return e
		}

		if e := loadImage(cmd, s, args[0]); e != nil {
			return e
		}

		switch {
		case cmd.Flags().Changed("ref-hex"):
			ref, e := palette.FromHex(refHex)
			if e != nil {
				return e
			}
			s.SetReference(ref)
		case cmd.Flags().Changed("ref-index"):
			if refIndex < 0 || refIndex >= len(s.Palette) {
				return fmt.Errorf("%w: %d of %d", palette.ErrIndex, refIndex, len(s.Palette))
			}
			s.SetReference(s.Palette[refIndex])
		case cmd.Flags().Changed("ref-x") || cmd.Flags().Changed("ref-y"):
			if e := selectPoint(s, refX, refY); e != nil {
				return e
			}
			if e := s.UseSelectedAsReference(); e != nil {
				return e
			}
		default:
			return fmt.Errorf("a reference is required: use --ref-hex, --ref-index or --ref-x/--ref-y")
		}

		if e := selectPoint(s, pointX, pointY); e != nil {
			return e
		}

		if e := printComparison(cmd.OutOrStdout(), s); e != nil {
			return e
		}

		if !saveResult {
			return nil
		}
		r, e := s.SaveAnalysis(sampleName, time.Now())
		if e != nil {
			return e
		}
		if e := st.SaveHistory(ctx, viper.GetString("session"), s.History); e != nil {
			return e
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved analysis %s\n", r.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	addPointFlags(compareCmd)
	compareCmd.Flags().StringVar(&refHex, "ref-hex", "", "reference color as #rrggbb")
	compareCmd.Flags().IntVar(&refIndex, "ref-index", 0, "reference color by palette position")
	compareCmd.Flags().IntVar(&refX, "ref-x", 0, "x coordinate of a reference point in the same image")
	compareCmd.Flags().IntVar(&refY, "ref-y", 0, "y coordinate of a reference point in the same image")
	compareCmd.Flags().BoolVar(&saveResult, "save", false, "save the analysis to the history")
	compareCmd.Flags().StringVar(&sampleName, "name", "", "name of the saved sample")
	compareCmd.MarkFlagsMutuallyExclusive("ref-hex", "ref-index", "ref-x")
	compareCmd.MarkFlagsMutuallyExclusive("ref-hex", "ref-index", "ref-y")
}
