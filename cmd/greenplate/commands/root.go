// Package commands implements the CLI commands for greenplate.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "greenplate",
	Short: "Filter restaurant menus for vegan and vegetarian options",
	Long: `Greenplate classifies restaurant menu items by dietary category:
vegan, vegetarian, non-vegetarian, or unfiltered.

Point it at a menu URL or paste menu text. Classification uses a
language model when one is configured, and degrades to deterministic
keyword matching when it is not.

Examples:
  # Filter a menu page for vegan items
  greenplate filter --url "https://example.com/menu" --category vegan

  # Paste menu text on stdin
  cat menu.txt | greenplate filter --category vegetarian

  # Force the deterministic keyword path
  greenplate filter --text "Vegan burger $5.99" --no-llm`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.greenplate.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	// .env support, same surface the original deployment used
	_ = godotenv.Load()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".greenplate")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("GREENPLATE")
	viper.AutomaticEnv()

	_ = viper.BindEnv("llm.enabled", "USE_LLM")
	_ = viper.BindEnv("llm.model", "LLM_MODEL")
	_ = viper.BindEnv("llm.temperature", "LLM_TEMPERATURE")

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
