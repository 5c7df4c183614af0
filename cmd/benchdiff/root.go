package main

import (
	"fmt"
	"os"
	"strings"

	"benchdiff/internal/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchdiff",
	Short: "Parse and compare divan benchmark results in CI",
	Long: `benchdiff is a pair of CI-support utilities for divan benchmark output.

The parse command turns divan's tree-formatted text into a JSON record set;
the compare command diffs two such record sets (a base run and a PR run) and
renders a markdown report with regression and improvement indicators.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("Error: %v", err)))
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .benchdiff.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".benchdiff")
	}

	viper.SetEnvPrefix("BENCHDIFF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("metric", "mean")
	viper.SetDefault("thresholds.improvement", -0.5)
	viper.SetDefault("thresholds.warn", 5.0)
	viper.SetDefault("thresholds.error", 10.0)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
