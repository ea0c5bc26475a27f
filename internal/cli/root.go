package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invidx/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "invidx",
	Short: "Build, persist, and query a word-to-documents inverted index",
	Long: `invidx builds an inverted index over a tab-separated document corpus,
stores it on disk, and answers multi-term AND queries with the matching
document ids.

Example usage:
  invidx build -d wikipedia_sample -o inverted.index
  invidx query -i inverted.index -q two -q words`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, wdErr := os.Getwd()
			if wdErr != nil {
				return fmt.Errorf("failed to get working directory: %w", wdErr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		config.SetupLogging(cfg.Logging.Level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./invidx.yaml)")
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}
