package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/d60-Lab/comedor/config"
	"github.com/d60-Lab/comedor/pkg/logger"
)

// @title Comedor API
// @version 1.0
// @description 每日订餐服务：订单、菜单、公司与用户
// @BasePath /

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "comedor",
	Short:         "comedor - daily meal ordering service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml or ./config/config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
