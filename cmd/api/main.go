package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/hotelio/hotel-manager/internal/config"
	dbpkg "github.com/hotelio/hotel-manager/internal/db"
	"github.com/hotelio/hotel-manager/internal/logging"
	"github.com/hotelio/hotel-manager/internal/middleware"
	"github.com/hotelio/hotel-manager/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init("hotel-manager", cfg.Env)

	db := dbpkg.NewDB(cfg)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
