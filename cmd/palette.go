package cmd

import (
	"fmt"
	"strconv"

	"github.com/mmuldo/colorlab/palette"
	"github.com/mmuldo/colorlab/sampler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	suggestNum  int
	suggestAdd  bool
	byLightness bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manages the reference palette of the session",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the palette colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, e := openStore()
		if e != nil {
			return e
		}
		defer st.Close()

		p, e := st.LoadPalette(cmd.Context(), viper.GetString("session"))
		if e != nil {
			return e
		}
		if len(p) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "palette is empty")
			return nil
		}
		list := p
		if byLightness {
			list = p.SortByLightness()
		}
		// indexes always refer to the stored order
		for _, c := range list {
			printColor(cmd.OutOrStdout(), strconv.Itoa(p.Index(c.Hex)), c)
		}
		return nil
	},
}

var paletteAddCmd = &cobra.Command{
	Use:   "add HEX...",
	Short: "Adds colors given as #rrggbb to the palette",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors := make([]palette.Color, len(args))
		for i, a := range args {
			c, e := palette.FromHex(a)
			if e != nil {
				return e
			}
			colors[i] = c
		}
		return updatePalette(cmd, func(p *palette.Palette) error {
			for _, c := range colors {
				if !p.Add(c) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is already in the palette\n", c)
				}
			}
			return nil
		})
	},
}

var paletteRemoveCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Removes the palette color at INDEX",
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

		s, e := loadState(ctx, st)
		if e != nil {
			return e
		}
		c, e := s.RemovePaletteColor(i)
		if e != nil {
			return e
		}
		if e := st.SavePalette(ctx, viper.GetString("session"), s.Palette); e != nil {
			return e
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", c)
		return nil
	},
}

// paletteSuggestCmd represents the suggest command
var paletteSuggestCmd = &cobra.Command{
	Use:   "suggest IMAGE",
	Short: "Suggests palette colors from the dominant colors of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, e := sampler.Load(args[0])
		if e != nil {
			return e
		}
		cc, e := b.Dominant(suggestNum)
		if e != nil {
			return e
		}

		total := 0
		for _, c := range cc {
			total += c.Count
		}
		suggested := make([]palette.Color, len(cc))
		for i, c := range cc {
			suggested[i] = palette.New(c.Color)
			fmt.Fprintf(cmd.OutOrStdout(), "%s%5.1f%%  %s  %s\n",
				swatch(suggested[i]), 100*float64(c.Count)/float64(total), suggested[i], suggested[i].LabString())
		}

		if !suggestAdd {
			return nil
		}
		return updatePalette(cmd, func(p *palette.Palette) error {
			for _, c := range suggested {
				p.Add(c)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteListCmd, paletteAddCmd, paletteRemoveCmd, paletteSuggestCmd)

	paletteListCmd.Flags().BoolVar(&byLightness, "by-lightness", false, "list from darkest to lightest")
	paletteSuggestCmd.Flags().IntVarP(&suggestNum, "num", "n", 8, "number of colors to suggest")
	paletteSuggestCmd.Flags().BoolVar(&suggestAdd, "add", false, "add the suggested colors to the palette")
}

// updatePalette loads the session palette, applies fn and saves the result.
func updatePalette(cmd *cobra.Command, fn func(*palette.Palette) error) error {
	ctx := cmd.Context()
	st, e := openStore()
	if e != nil {
		return e
	}
	defer st.Close()

	name := viper.GetString("session")
	p, e := st.LoadPalette(ctx, name)
	if e != nil {
		return e
	}
	if e := fn(&p); e != nil {
		return e
	}
	return st.SavePalette(ctx, name, p)
}
