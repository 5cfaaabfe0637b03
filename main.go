package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vmsched/api/app"
	"github.com/vmsched/api/config"
	"github.com/vmsched/api/pkg/logger"
)

var (
	configName string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "vmsched",
	Short: "Label-driven VM scale scheduler API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		restApp, err := app.NewRestApp(configName, configPath)
		if err != nil {
			return err
		}

		level := "info"
		if cfg := config.GetConfig(); cfg != nil && cfg.Logging.Level != "" {
			level = cfg.Logging.Level
		}
		logger.InitLogger(level)

		restApp.Run()
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configName, "config-name", "", "config file name without extension")
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "additional config search path")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
