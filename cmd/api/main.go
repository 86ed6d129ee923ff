package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/softshop-api/internal/application/auth"
	"github.com/jhoicas/softshop-api/internal/application/checkout"
	"github.com/jhoicas/softshop-api/internal/application/fulfillment"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/jhoicas/softshop-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/softshop-api/internal/infrastructure/pdf"
	"github.com/jhoicas/softshop-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/softshop-api/internal/interfaces/http"
	"github.com/jhoicas/softshop-api/pkg/config"
	"github.com/jhoicas/softshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vendorRepo := postgres.NewVendorProfileRepository(pool)
	ratingRepo := postgres.NewRatingRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Con Redis configurado, productos y settings se leen vía cache-aside;
	// sin Redis se va directo a PostgreSQL.
	var productRepo repository.ProductRepository = postgres.NewProductRepository(pool)
	var settingRepo repository.SettingRepository = postgres.NewSettingRepository(pool)
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		productRepo = cache.NewCachedProductRepository(productRepo, rdb, cfg.Redis.TTL, log.Zerolog())
		settingRepo = cache.NewCachedSettingRepository(settingRepo, rdb, cfg.Redis.TTL, log.Zerolog())
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché Redis habilitado")
	}

	authUC := auth.NewAuthUseCase(userRepo, vendorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, vendorRepo, ratingRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo, vendorRepo)
	checkoutUC := checkout.NewUseCase(txRunner, cfg.Orders.PayDelay, cfg.Orders.FulfillDelay, log.Zerolog())
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, ratingRepo, infrapdf.NewReceiptGenerator(), log.Zerolog())
	vendorUC := usecase.NewVendorUseCase(vendorRepo, log.Zerolog())
	userUC := usecase.NewUserUseCase(userRepo, log.Zerolog())
	settingUC := usecase.NewSettingUseCase(settingRepo, log.Zerolog())
	statsUC := usecase.NewStatsUseCase(statsRepo, settingRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SoftShop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CartUC:     cartUC,
		CheckoutUC: checkoutUC,
		OrderUC:    orderUC,
		VendorUC:   vendorUC,
		UserUC:     userUC,
		SettingUC:  settingUC,
		StatsUC:    statsUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	// Worker de fulfillment: aplica pending -> paid -> fulfilled al vencer
	// next_status_due. Comparte el ciclo de vida del proceso vía ctx.
	worker := fulfillment.NewWorker(orderRepo, cfg.Orders.FulfillDelay, cfg.Orders.PollInterval, cfg.Orders.WorkerBatch, log.Zerolog())
	go worker.Run(ctx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
