package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rtiworkbench/rti-cli/internal/casefile"
	"github.com/rtiworkbench/rti-cli/internal/config"
	"github.com/rtiworkbench/rti-cli/internal/rti"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rti",
	Short: "File and track Right to Information requests from the terminal",
	Long: `rti walks you through filing a Right to Information request:
  - upload or link a government document
  - review the backend's gap analysis and generated drafts
  - edit the draft yourself or with an AI instruction
  - finalize, submit and track your requests

The current case is kept in a workspace snapshot, so every step resumes
where the previous one left off.

Typical flow:
  rti start --file budget.pdf --department "Ministry of Education" --year 2024-25
  rti review --accept
  rti edit --mode ai --instruction "make it more formal"
  rti finalize --location Pune --send
  rti history`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rti/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "rti")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("backend.base_url", rti.DefaultBaseURL)
	viper.SetDefault("workspace.dir", "")
	viper.SetDefault("download.dir", ".")
	viper.SetDefault("draft.language", "english")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// logger builds the command logger: a development logger on stderr with
// --verbose, a no-op logger otherwise
func logger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// backendClient builds the backend client from configuration
func backendClient() *rti.Client {
	return rti.NewClient(config.GetBackendBaseURL(), logger())
}

// caseStore opens the workspace case store
func caseStore() *casefile.Store {
	return casefile.NewStore(config.GetWorkspaceDir())
}
