package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colorlab/sampler"
	"github.com/mmuldo/colorlab/session"
	"github.com/mmuldo/colorlab/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorlab",
	Short: "Sample image colors and compare them in CIE L*a*b*",
	Long: `colorlab samples averaged colors from images, compares them against a
reference color with the CIE76 Delta E metric and keeps a palette of
reference colors and a history of analyses per session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorlab.yaml)")
	rootCmd.PersistentFlags().String("db", "", "database file (default is $HOME/.colorlab/colorlab.db)")
	rootCmd.PersistentFlags().StringP("session", "s", "default", "session whose palette and history are used")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	for _, name := range []string{"db", "session", "log-level"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetDefault("sample-size", sampler.DefaultWindow)
}

// initConfig reads in a .env file, the config file and ENV variables if set.
func initConfig() {
	if e := godotenv.Load(); e != nil && !os.IsNotExist(e) {
		fmt.Fprintln(os.Stderr, "error loading .env file:", e)
	}

	home, e := homedir.Dir()
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
	viper.SetDefault("db", filepath.Join(home, ".colorlab", "colorlab.db"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(home)
		viper.SetConfigName(".colorlab")
	}

	viper.SetEnvPrefix("colorlab")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if e := viper.ReadInConfig(); e == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogger() error {
	level, e := zerolog.ParseLevel(viper.GetString("log-level"))
	if e != nil {
		return e
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func openStore() (*store.Store, error) {
	path, e := homedir.Expand(viper.GetString("db"))
	if e != nil {
		return nil, e
	}
	return store.Open(path)
}

// loadState restores the palette and history of the configured session.
func loadState(ctx context.Context, st *store.Store) (*session.State, error) {
	name := viper.GetString("session")
	p, e := st.LoadPalette(ctx, name)
	if e != nil {
		return nil, e
	}
	h, e := st.LoadHistory(ctx, name)
	if e != nil {
		return nil, e
	}

	s := session.New(p, h)
	if e := s.SetSampleSize(viper.GetInt("sample-size")); e != nil {
		return nil, fmt.Errorf("sample-size: %w", e)
	}
	return s, nil
}
