package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/calensys/appointment-api/internal/config"
	dbpkg "github.com/calensys/appointment-api/internal/db"
	"github.com/calensys/appointment-api/internal/middleware"
	"github.com/calensys/appointment-api/internal/routes"
	"github.com/calensys/appointment-api/internal/validators"
)

// @title           Appointment Booking API
// @version         1.0
// @description     Slot-based appointment booking with day-off and unavailable-hour exclusions.
// @BasePath        /api
func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	validators.Register()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
