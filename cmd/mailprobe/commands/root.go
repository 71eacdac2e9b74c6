// Package commands implements the CLI commands for mailprobe.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "mailprobe",
	Short: "Find business-contact emails for company websites and reach out",
	Long: `Mailprobe crawls company websites, extracts the most likely
business-contact email address, optionally sends an outreach message via
the Gmail API, and records per-site outcomes in durable formats.

Examples:
  # Process a single site
  mailprobe discover -u "https://example-corp.com"

  # Process sites from a file without sending anything
  mailprobe discover -f sites.txt --no-send

  # Send with a custom subject and save only CSV
  mailprobe discover -f sites.csv --subject "Partnership inquiry" --format csv`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.mailprobe.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
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
		viper.SetConfigName(".mailprobe")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MAILPROBE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
