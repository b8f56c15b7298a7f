package main

import (
	"github.com/AbuBakkarSiddique007/bhojonbox-server/configs"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/cartbus"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/metrics"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := configs.LoadConfig()

	if err := configs.ConnectionDB(cfg); err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := configs.SetupDatabase(); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	if err := configs.SeedAdmin(); err != nil {
		log.WithError(err).Fatal("admin seed failed")
	}
	if err := configs.SeedCategories(); err != nil {
		log.WithError(err).Fatal("category seed failed")
	}

	// the cart change bus is owned here and injected down; nothing hangs
	// off package-level state
	bus := cartbus.New()
	m := metrics.New()

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, bus, log, m)

	log.WithField("port", cfg.Port).Info("bhojonbox server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
