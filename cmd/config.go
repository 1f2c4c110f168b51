package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yuniko/biscuit/cookie"
	"github.com/yuniko/biscuit/di"
	"github.com/yuniko/biscuit/fetch"
	"github.com/yuniko/biscuit/lib/config"
	"github.com/yuniko/biscuit/lib/logger"
	"github.com/yuniko/biscuit/lib/utils"
	"gopkg.in/yaml.v3"
)

var (
	configArg    string
	configGenArg string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "biscuit configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		if configGenArg != "" {
			return writeDiskConfig()
		}
		return nil
	},
}

func writeDiskConfig() error {
	file, err := utils.ExpandPath(configGenArg)
	if err != nil {
		return err
	}
	path := filepath.Dir(file)
	if _, err = os.Stat(file); errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(path, os.ModePerm)
		if err != nil {
			return err
		}
		bytes, err := yaml.Marshal(config.DefaultConfig())
		if err != nil {
			return err
		}
		return os.WriteFile(file, bytes, 0o600)
	}
	return errors.New("configuration file is already exists")
}

func init() {
	configCmd.Flags().StringVarP(&configGenArg, "gen", "g", "", "generate default configuration file")
	rootCmd.PersistentFlags().StringVar(&configArg, "config", "~/.config/biscuit/config.yml", "config file path")
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	cfg, err := config.ReadConfig(configArg)
	if err != nil {
		logger.Error("error reading config file", err)
		cfg = config.DefaultConfig()
	}
	initDependencies(*cfg)
	rootCmd.SetContext(config.NewContext(context.Background(), *cfg))
}

func initDependencies(cfg config.Config) {
	di.Provide(cookie.NewStore())
	di.Provide(fetch.NewFetcher(cfg.Fetch))
}
