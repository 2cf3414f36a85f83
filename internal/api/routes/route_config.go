package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lavanyassgit/Medicine-AI/internal/api/handlers"
	"github.com/lavanyassgit/Medicine-AI/internal/middleware"
	"github.com/lavanyassgit/Medicine-AI/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	MedicineHandler     handlers.MedicineHandler
	CatalogHandler      handlers.CatalogHandler
	AssistantHandler    handlers.AssistantHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Medicines()
	c.Catalog()
	c.Assistant()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Medicines() {
	medicines := c.App.Group("/api/v1/medicines", c.Middleware.AuthMiddleware(c.JWTService))
	medicines.Get("/dashboard", c.MedicineHandler.GetDashboard)
	medicines.Get("/reports", c.MedicineHandler.GetReports)
	medicines.Get("/reports/export", c.MedicineHandler.ExportReports)

	medicines.Post("", c.MedicineHandler.SubmitScan)
	medicines.Get("", c.MedicineHandler.GetScans)
	medicines.Get("/:id", c.MedicineHandler.GetScanDetails)
	medicines.Get("/:id/export", c.MedicineHandler.ExportSnapshot)
	medicines.Patch("/:id/review", c.MedicineHandler.MarkReviewed)
	medicines.Delete("/:id", c.MedicineHandler.DeleteScan)
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog", c.Middleware.AuthMiddleware(c.JWTService))
	catalog.Get("/access-code", c.CatalogHandler.GetAccessCode)
	catalog.Post("/unlock", c.CatalogHandler.Unlock)
	catalog.Post("/lock", c.CatalogHandler.Lock)
	catalog.Get("/medicines", c.CatalogHandler.GetMedicines)
	catalog.Get("/stock", c.CatalogHandler.LookupStock)
}

func (c *Config) Assistant() {
	assistant := c.App.Group("/api/v1/assistant", c.Middleware.AuthMiddleware(c.JWTService))
	assistant.Post("/messages", c.AssistantHandler.SendMessage)
	assistant.Get("/messages", c.AssistantHandler.GetTranscript)
	assistant.Delete("/session", c.AssistantHandler.EndSession)
}

func (c *Config) Notifications() {
	c.App.Get("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService), c.NotificationHandler.GetAlerts)
}
