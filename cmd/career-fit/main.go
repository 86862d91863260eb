package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pathwise/career-fit-engine/internal/catalog"
	"github.com/pathwise/career-fit-engine/internal/domain"
)

const app = "career-fit"

// Config is the application configuration, read from career-fit.yaml, the
// environment, and command flags.
type Config struct {
	Address     string `mapstructure:"address"`
	CatalogPath string `mapstructure:"catalog-path"`
	DBPath      string `mapstructure:"db-path"`
	Strategy    string `mapstructure:"strategy"`
	TopN        int    `mapstructure:"top-n"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "career-fit scores assessment answers against a role catalog and profiles skill gaps",
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-fit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}
}

func initConfig() {
	viper.SetEnvPrefix("CAREER_FIT")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	// The config file is optional; everything has a flag or a default.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}

// loadCatalog returns the validated role catalog: the configured JSON file
// when set, otherwise the built-in one.
func loadCatalog(config *Config, logger *zap.Logger) []domain.CareerProfile {
	if config.CatalogPath != "" {
		careers, err := catalog.LoadFromFile(config.CatalogPath)
		if err != nil {
			logger.Fatal("loading catalog", zap.Error(err), zap.String("path", config.CatalogPath))
		}
		logger.Info("catalog loaded", zap.String("path", config.CatalogPath), zap.Int("careers", len(careers)))
		return careers
	}

	careers := catalog.BuiltIn()
	if err := catalog.Validate(careers); err != nil {
		logger.Fatal("built-in catalog is invalid", zap.Error(err))
	}
	logger.Debug("using built-in catalog", zap.Int("careers", len(careers)))
	return careers
}
