package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/mmuldo/colorlab/sampler"
	"github.com/mmuldo/colorlab/session"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	pointX, pointY int
	sampleSize     int
	addToPalette   bool
	zoomOut        string
	zoomSide       int
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample IMAGE",
	Short: "Samples the averaged color around a point of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if zoomSide < 1 {
			return fmt.Errorf("zoom-size must be positive, got %d", zoomSide)
		}

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
		if e := selectPoint(s, pointX, pointY); e != nil {
			return e
		}

		out := cmd.OutOrStdout()
		printColor(out, "sampled", *s.Selected)
		if c, d, ok := s.Palette.Nearest(*s.Selected); ok {
			fmt.Fprintf(out, "%snearest   %s  delta E %.2f\n", swatch(c), c, d)
		}

		if zoomOut != "" {
			if e := writeZoom(s, zoomOut); e != nil {
				return e
			}
		}

		if addToPalette {
			added, e := s.AddSelectedToPalette()
			if e != nil {
				return e
			}
			if !added {
				fmt.Fprintf(out, "%s is already in the palette\n", s.Selected)
				return nil
			}
			return st.SavePalette(ctx, viper.GetString("session"), s.Palette)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	addPointFlags(sampleCmd)
	sampleCmd.Flags().BoolVar(&addToPalette, "add", false, "add the sampled color to the palette")
	sampleCmd.Flags().StringVar(&zoomOut, "zoom", "", "write a magnified preview of the sampled area to this PNG file")
	sampleCmd.Flags().IntVar(&zoomSide, "zoom-size", 210, "side of the zoom preview in pixels")
}

func addPointFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&pointX, "x", "x", 0, "x coordinate of the sampled point")
	cmd.Flags().IntVarP(&pointY, "y", "y", 0, "y coordinate of the sampled point")
	cmd.Flags().IntVar(&sampleSize, "size", 0, "odd sampling window size (default from config, 5)")
}

// loadImage loads the image at path into s and applies --size when given.
func loadImage(cmd *cobra.Command, s *session.State, path string) error {
	b, e := sampler.Load(path)
	if e != nil {
		return e
	}
	s.SetImage(b)

	if cmd.Flags().Changed("size") {
		return s.SetSampleSize(sampleSize)
	}
	return nil
}

func selectPoint(s *session.State, x, y int) error {
	if _, e := s.Select(x, y); e != nil {
		return e
	}
	log.Debug().Int("x", s.LastX).Int("y", s.LastY).Int("size", s.SampleSize).Msg("sampled")
	return nil
}

func writeZoom(s *session.State, path string) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	if e := png.Encode(f, s.Image.Zoom(s.LastX, s.LastY, zoomSide)); e != nil {
		return e
	}
	return f.Close()
}
