package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/controle-epi-api/internal/application/auth"
	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
	"github.com/jhoicas/controle-epi-api/internal/application/report"
	"github.com/jhoicas/controle-epi-api/internal/application/usecase"
	"github.com/jhoicas/controle-epi-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/controle-epi-api/internal/infrastructure/pdf"
	"github.com/jhoicas/controle-epi-api/internal/infrastructure/postgres"
	"github.com/jhoicas/controle-epi-api/internal/infrastructure/ws"
	"github.com/jhoicas/controle-epi-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/controle-epi-api/internal/interfaces/http"
	"github.com/jhoicas/controle-epi-api/pkg/config"
	"github.com/jhoicas/controle-epi-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	if cfg.App.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.DB, "up"); err != nil {
			log.Fatal().Err(err).Msg("migrações")
		}
		log.Info().Msg("migrações aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	modelRepo := postgres.NewPPEModelRepository(pool)
	certRepo := postgres.NewCertificateRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	lotRepo := postgres.NewLotStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Eventos de estoque: websocket sempre, Prometheus quando habilitado
	hub := ws.NewHub(log.Component("ws"))
	go hub.Run()
	notifiers := inventory.Notifiers{hub}
	var collector *metrics.Collector
	var requestObserver httpRouter.RequestObserver
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		notifiers = append(notifiers, collector)
		requestObserver = collector
	}

	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner, inventory.NoopTraceability{}, notifiers)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo, employeeRepo, modelRepo)
	shipmentUC := inventory.NewShipmentUseCase(txRunner, shipmentRepo, supplierRepo, modelRepo, certRepo, notifiers)
	lotStockUC := inventory.NewLotStockUseCase(txRunner, lotRepo, shipmentRepo, modelRepo, notifiers,
		cfg.Stock.LowThreshold, cfg.Stock.ExpiryWindowDays)
	replenishmentUC := inventory.NewReplenishmentUseCase(modelRepo)

	deliverySheetUC := report.NewDeliverySheetUseCase(employeeRepo, roleRepo, movementRepo,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	stockExportUC := report.NewStockExportUseCase(lotRepo, xlsx.NewExcelizeStockSheet())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("criar administrador inicial")
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("administrador inicial criado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Upload.MaxSizeMB + 1) * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http"), requestObserver))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de EPI API",
	}))

	app.Static("/uploads", cfg.Upload.Dir)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if collector != nil {
		app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(userRepo),
		RecordMove:    recordMovementUC,
		MovementQuery: movementQueryUC,
		ShipmentUC:    shipmentUC,
		LotStockUC:    lotStockUC,
		Replenishment: replenishmentUC,
		StockExport:   stockExportUC,
		DeliverySheet: deliverySheetUC,
		EmployeeUC:    usecase.NewEmployeeUseCase(employeeRepo, roleRepo),
		RoleUC:        usecase.NewRoleUseCase(roleRepo, modelRepo),
		CategoryUC:    usecase.NewCategoryUseCase(categoryRepo),
		BrandUC:       usecase.NewBrandUseCase(brandRepo),
		SupplierUC:    usecase.NewSupplierUseCase(supplierRepo),
		PPEModelUC:    usecase.NewPPEModelUseCase(modelRepo, brandRepo, categoryRepo, roleRepo),
		CertificateUC: usecase.NewCertificateUseCase(certRepo, modelRepo, cfg.Stock.ExpiryWindowDays),
		Uploader: httpRouter.Uploader{
			Dir:      cfg.Upload.Dir,
			MaxBytes: int64(cfg.Upload.MaxSizeMB) * 1024 * 1024,
		},
		JWTSecret:   cfg.JWT.Secret,
		StockSocket: hub.Handler,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}
	hub.Stop()

	log.Info().Msg("aplicação encerrada")
}
