package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	httpapi "github.com/pathwise/career-fit-engine/internal/http"
	"github.com/pathwise/career-fit-engine/internal/logger"
	"github.com/pathwise/career-fit-engine/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matching and skills API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", ":8080", "listen address")
	serveCmd.Flags().String("db-path", "", "SQLite database path for the catalog store (optional)")
	serveCmd.Flags().String("catalog-path", "", "JSON catalog file overriding the built-in catalog")

	for _, name := range []string{"address", "db-path", "catalog-path"} {
		if err := viper.BindPFlag(name, serveCmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func serve() {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zl.Fatal("getting a config", zap.Error(err))
	}

	careers := loadCatalog(config, zl)

	var repo httpapi.CareersRepo
	if config.DBPath != "" {
		store, err := storage.OpenSQLite(config.DBPath)
		if err != nil {
			zl.Fatal("opening catalog store", zap.Error(err))
		}
		defer store.Close()

		if err := store.EnsureSchema(); err != nil {
			zl.Fatal("ensuring schema", zap.Error(err))
		}
		if err := store.SeedCareers(careers); err != nil {
			zl.Fatal("seeding careers", zap.Error(err))
		}
		count, err := store.CountCareers()
		if err != nil {
			zl.Fatal("counting careers", zap.Error(err))
		}
		zl.Info("catalog store ready", zap.String("path", config.DBPath), zap.Int("careers", count))

		repo = &httpapi.SQLiteCareersRepo{Store: store}
	}

	srv := httpapi.NewServer(careers, repo, zl)

	zl.Info("API listening", zap.String("address", config.Address), zap.String("version", version))
	if err := http.ListenAndServe(config.Address, srv.Routes()); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}
