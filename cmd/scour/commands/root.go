// Package commands implements the CLI commands for scour.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "scour",
	Short: "Normalize and deduplicate crawled customer feedback",
	Long: `Scour turns raw crawled HTML and markdown into normalized text,
fingerprints it, and partitions each batch into accepted, duplicate,
and discarded records.

Examples:
  # Clean a JSONL batch of crawled reviews
  scour clean reviews.jsonl

  # Pipe raw text through the pipeline
  cat review.txt | scour clean --input-format text

  # Reduce whole HTML pages first, keep only accepted records
  scour clean pages.json --reduce-html --partition records -o cleaned.jsonl --format jsonl`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.scour.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".scour")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SCOUR")
	viper.AutomaticEnv()

	// Config file is optional
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
