package main

import (
	"os"
	"plantie/infra"
	"plantie/models"
	"strconv"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := infra.Initialize()
	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migrated")

	// ADMIN_ID seeds the first admin account
	if v := os.Getenv("ADMIN_ID"); v != "" {
		adminID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			log.Fatal().Err(err).Str("ADMIN_ID", v).Msg("Invalid ADMIN_ID")
		}
		admin := models.Admin{ID: uint(adminID)}
		if err := db.FirstOrCreate(&admin, admin.ID).Error; err != nil {
			log.Fatal().Err(err).Msg("Failed to seed admin")
		}
		log.Info().Uint("admin_id", admin.ID).Msg("Admin seeded")
	}
}
