package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/AssetVerse-api/internal/application/analytics"
	"github.com/jhoicas/AssetVerse-api/internal/application/billing"
	"github.com/jhoicas/AssetVerse-api/internal/application/usecase"
	"github.com/jhoicas/AssetVerse-api/internal/application/workflow"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC     *usecase.AssetUseCase
	RequestUC   *workflow.RequestUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	CheckoutUC  *billing.CheckoutUseCase
	Logger      *logger.Logger
	// JWTSecret vacío deja abiertas las rutas administrativas.
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	// admin antepone JWT + rol admin|hr cuando la autenticación está activa.
	admin := func(h fiber.Handler) []fiber.Handler {
		if deps.JWTSecret == "" {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{
			AuthMiddleware(deps.JWTSecret),
			RequireRole(entity.RoleAdmin, entity.RoleHR),
			h,
		}
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AssetVerse Backend Running!")
	})

	// Assets
	assetHandler := NewAssetHandler(deps.AssetUC, log)
	assets := app.Group("/assets")
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Post("/", admin(assetHandler.Create)...)
	assets.Put("/:id", admin(assetHandler.Update)...)
	assets.Delete("/:id", admin(assetHandler.Delete)...)

	// Asset requests
	requestHandler := NewAssetRequestHandler(deps.RequestUC, log)
	requests := app.Group("/asset_requests")
	requests.Get("/", requestHandler.List)
	requests.Post("/", requestHandler.Create)
	requests.Put("/:id/approve", admin(requestHandler.Approve)...)
	requests.Put("/:id/reject", admin(requestHandler.Reject)...)
	requests.Delete("/:id", admin(requestHandler.Delete)...)

	// Users
	userHandler := NewUserHandler(deps.UserUC, log)
	users := app.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:email/role", userHandler.Role)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", admin(userHandler.Update)...)
	users.Delete("/:id", admin(userHandler.Delete)...)

	api := app.Group("/api")

	// Pagos de paquetes HR
	paymentHandler := NewPaymentHandler(deps.CheckoutUC, log)
	api.Post("/stripe/create-checkout-session", paymentHandler.CreateCheckoutSession)
	api.Get("/stripe/success", paymentHandler.Success)
	api.Get("/packages/:hrId", paymentHandler.GetPackage)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/dashboard/pie", dashboardHandler.Pie)
	api.Get("/dashboard/bar", dashboardHandler.Bar)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC, log)
	api.Get("/reports/assets.pdf", admin(reportHandler.AssetsPDF)...)
}
