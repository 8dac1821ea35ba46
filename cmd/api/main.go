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
	"github.com/tu-usuario/cortes-stock/internal/application/auth"
	"github.com/tu-usuario/cortes-stock/internal/application/cutting"
	"github.com/tu-usuario/cortes-stock/internal/application/stock"
	"github.com/tu-usuario/cortes-stock/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cortes-stock/internal/interfaces/http"
	"github.com/tu-usuario/cortes-stock/pkg/config"
	"github.com/tu-usuario/cortes-stock/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (lecturas fuera de transacción)
	productRepo := postgres.NewProductRepository(pool)
	subproductRepo := postgres.NewSubproductRepository(pool)
	stockRepo := postgres.NewStockRecordRepository(pool)
	eventRepo := postgres.NewStockEventRepository(pool)
	orderRepo := postgres.NewCuttingOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Las mutaciones corren dentro de transacciones vía TxRunner
	txRunner := postgres.NewTxRunner(pool)
	stockSvc := stock.NewService(txRunner, productRepo, subproductRepo, stockRepo, eventRepo)
	cuttingUC := cutting.NewUseCase(txRunner, stockSvc, orderRepo, subproductRepo, userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Cortes Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockSvc:  stockSvc,
		CuttingUC: cuttingUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
