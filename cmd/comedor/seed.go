package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/d60-Lab/comedor/internal/seed"
	"github.com/d60-Lab/comedor/pkg/logger"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load companies, users and menus from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fx, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.close()

		l := &seed.Loader{Companies: a.companies, Users: a.users, Menus: a.menus}
		res, err := l.Apply(cmd.Context(), fx)
		if err != nil {
			return err
		}
		logger.Info("seed finished",
			zap.Int("empresas", res.Companies),
			zap.Int("usuarios", res.Users),
			zap.Int("menus", res.Menus),
			zap.Int("publicaciones", res.Publications))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "config/fixtures.example.yaml", "fixtures YAML file")
}
