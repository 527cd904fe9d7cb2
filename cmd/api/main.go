package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/AssetVerse-api/docs"
	appanalytics "github.com/jhoicas/AssetVerse-api/internal/application/analytics"
	"github.com/jhoicas/AssetVerse-api/internal/application/billing"
	"github.com/jhoicas/AssetVerse-api/internal/application/usecase"
	"github.com/jhoicas/AssetVerse-api/internal/application/workflow"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
	"github.com/jhoicas/AssetVerse-api/internal/infrastructure/cache"
	"github.com/jhoicas/AssetVerse-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/AssetVerse-api/internal/infrastructure/pdf"
	"github.com/jhoicas/AssetVerse-api/internal/infrastructure/postgres"
	infrastripe "github.com/jhoicas/AssetVerse-api/internal/infrastructure/stripe"
	httpRouter "github.com/jhoicas/AssetVerse-api/internal/interfaces/http"
	"github.com/jhoicas/AssetVerse-api/pkg/config"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// stores agrupa los repositorios del driver elegido.
type stores struct {
	assets    repository.AssetRepository
	requests  repository.AssetRequestRepository
	users     repository.UserRepository
	packages  repository.PackageRepository
	dashboard repository.DashboardRepository
	tx        workflow.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st := openStores(ctx, cfg, log)
	defer st.close()

	// Cache del dashboard: opcional, sin REDIS_URL se consulta siempre el almacén.
	var dashboardCache appanalytics.DashboardCache
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, dashboard sin cache")
		} else {
			defer rdb.Close()
			dashboardCache = cache.NewRedisDashboardCache(rdb, "assetverse:")
		}
	}

	if cfg.Stripe.SecretKey == "" {
		log.Warn().Msg("STRIPE_SECRET vacío: el checkout fallará hasta configurarlo")
	}
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: rutas administrativas sin autenticación")
	}

	assetUC := usecase.NewAssetUseCase(st.assets)
	userUC := usecase.NewUserUseCase(st.users)
	requestUC := workflow.NewRequestUseCase(st.tx, st.assets, st.requests)
	dashboardUC := appanalytics.NewDashboardUseCase(st.dashboard, dashboardCache, cfg.Dashboard.CacheTTL, log)
	reportUC := appanalytics.NewReportUseCase(st.assets, dashboardUC, infrapdf.NewMarotoReportGenerator())
	checkoutUC := billing.NewCheckoutUseCase(
		infrastripe.NewCheckoutGateway(cfg.Stripe.SecretKey),
		st.packages,
		billing.CheckoutConfig{Currency: cfg.Stripe.Currency, ClientURL: cfg.Stripe.ClientURL},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	prom := fiberprometheus.New(cfg.App.Name)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AssetVerse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AssetUC:     assetUC,
		RequestUC:   requestUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		CheckoutUC:  checkoutUC,
		Logger:      log,
		JWTSecret:   cfg.JWT.Secret,
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

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) stores {
	if cfg.DB.Driver == "memory" {
		s := memory.NewStore()
		log.Warn().Msg("DB_DRIVER=memory: los datos no se persisten")
		return stores{
			assets:    s.Assets(),
			requests:  s.Requests(),
			users:     s.Users(),
			packages:  s.Packages(),
			dashboard: s.Dashboard(),
			tx:        s,
			close:     func() {},
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	version, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Uint("schema_version", version).Msg("esquema actualizado")
	return stores{
		assets:    postgres.NewAssetRepository(pool),
		requests:  postgres.NewAssetRequestRepository(pool),
		users:     postgres.NewUserRepository(pool),
		packages:  postgres.NewPackageRepository(pool),
		dashboard: postgres.NewDashboardRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}
}
