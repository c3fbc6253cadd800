package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-pos/cart"
	"github.com/yeremiapane/restaurant-pos/config"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/external/resend"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/router"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/store"
	"github.com/yeremiapane/restaurant-pos/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// One cart per process: single register, single user.
	posCart := cart.New()

	backupSvc := services.NewBackupService(
		store.NewOrderStore(db),
		newBackupMailer(),
		config.GetEnv("BACKUP_DIR", filepath.Join(os.TempDir(), "restaurant-pos-backups")),
	)

	r := router.SetupRouter(db, posCart, backupSvc)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := config.GetEnv("PORT", "8080")
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// newBackupMailer builds the Resend mailer from the environment. Without an
// API key the backup endpoint stays reachable but reports every attempt as a
// transmission failure instead of crashing the process.
func newBackupMailer() services.BackupMailer {
	mailer, err := resend.NewMailer(
		config.GetEnv("RESEND_FROM", "Restaurant POS <backup@resend.dev>"),
		os.Getenv("BACKUP_RECIPIENT"),
	)
	if err != nil {
		utils.ErrorLogger.Printf("Backup mailer not configured: %v", err)
		return nil
	}
	return mailer
}
