// migrate aplica el esquema de la base y siembra los datos mínimos de arranque:
// la cuenta admin (ADMIN_EMAIL / ADMIN_PASSWORD) y la configuración por defecto
// de la plataforma. Es idempotente: re-ejecutarlo no duplica nada.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/softshop-api/pkg/config"
	"github.com/jhoicas/softshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	userRepo := postgres.NewUserRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)

	// Cuenta admin: el rol admin no es auto-asignable por registro, se siembra aquí.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD no definidos, se omite la siembra del admin")
	} else {
		existing, err := userRepo.GetByEmail(adminEmail)
		if err != nil {
			log.Fatal().Err(err).Msg("consultar cuenta admin")
		}
		if existing != nil {
			log.Info().Str("email", adminEmail).Msg("cuenta admin ya existe")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Fatal().Err(err).Msg("hashear password del admin")
			}
			now := time.Now()
			admin := &entity.User{
				ID:           uuid.New().String(),
				Email:        adminEmail,
				PasswordHash: string(hash),
				Name:         "Administrador",
				Role:         entity.RoleAdmin,
				Status:       entity.StatusActive,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := userRepo.Create(admin); err != nil {
				log.Fatal().Err(err).Msg("crear cuenta admin")
			}
			log.Info().Str("email", adminEmail).Msg("cuenta admin creada")
		}
	}

	// Configuración por defecto: solo se siembran las claves ausentes
	// para no pisar valores ya ajustados por el admin.
	defaults := map[string]string{
		entity.SettingCommissionRate:  "5",
		entity.SettingMaintenanceMode: "false",
	}
	for key, value := range defaults {
		current, err := settingRepo.Get(key)
		if err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("consultar configuración")
		}
		if current != nil {
			continue
		}
		if err := settingRepo.Upsert(key, value); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("sembrar configuración")
		}
		log.Info().Str("key", key).Str("value", value).Msg("configuración sembrada")
	}

	log.Info().Msg("migración completada")
}
