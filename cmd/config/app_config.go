package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/lavanyassgit/Medicine-AI/internal/api/handlers"
	"github.com/lavanyassgit/Medicine-AI/internal/api/routes"
	"github.com/lavanyassgit/Medicine-AI/internal/middleware"
	"github.com/lavanyassgit/Medicine-AI/internal/utils"
	"github.com/lavanyassgit/Medicine-AI/internal/utils/mailing"
	"github.com/lavanyassgit/Medicine-AI/internal/utils/storage"
	"github.com/lavanyassgit/Medicine-AI/pkg/analysis"
	"github.com/lavanyassgit/Medicine-AI/pkg/assistant"
	"github.com/lavanyassgit/Medicine-AI/pkg/catalog"
	"github.com/lavanyassgit/Medicine-AI/pkg/jwt"
	"github.com/lavanyassgit/Medicine-AI/pkg/medicine"
	"github.com/lavanyassgit/Medicine-AI/pkg/notification"
	"github.com/lavanyassgit/Medicine-AI/pkg/user"
	"gorm.io/gorm"
)

// App is the wired HTTP application plus the background work it owns.
type App struct {
	*fiber.App
	Assistant *assistant.Assistant
	logFile   *os.File
}

// Shutdown stops accepting requests, cancels pending assistant replies and
// closes the access log.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.App.ShutdownWithContext(ctx)
	a.Assistant.Close()
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
	return err
}

func NewApp(db *gorm.DB) (*App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         10 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	location := utils.Location()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   location.String(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(context.Background())
	if err != nil {
		log.Warnf("scan images will not be stored: %v", err)
	}
	provider, err := analysis.NewProvider(utils.GetConfig("ANALYSIS_PROVIDER"), utils.GetConfig("AI_MODEL_URL"))
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	medicineRepository := medicine.NewMedicineRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService)
	medicineService := medicine.NewMedicineService(medicineRepository, provider, s3, location)
	notificationService := notification.NewNotificationService(notificationRepository)

	medicines := catalog.NewDefault()
	catalogService := catalog.NewCatalogService(medicines, catalog.NewAccessGate(location))
	assistantService := assistant.New(
		assistant.NewEngine(medicines),
		stockNotifier(notificationService),
		assistant.WithReplyDelay(replyDelay()),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	medicineHandler := handlers.NewMedicineHandler(medicineService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		MedicineHandler:     medicineHandler,
		CatalogHandler:      catalogHandler,
		AssistantHandler:    assistantHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()

	return &App{App: app, Assistant: assistantService, logFile: file}, nil
}

func stockNotifier(store assistant.Notifier) assistant.Notifier {
	notifiers := assistant.MultiNotifier{assistant.LogNotifier{}, store}
	if to := utils.GetConfig("STOCK_ALERT_EMAIL"); to != "" {
		notifiers = append(notifiers, assistant.NewMailNotifier(to, mailing.SendMail))
	}
	return notifiers
}

func replyDelay() time.Duration {
	ms, err := strconv.Atoi(utils.GetConfig("ASSISTANT_REPLY_DELAY_MS"))
	if err != nil || ms < 0 {
		return assistant.DefaultReplyDelay
	}
	return time.Duration(ms) * time.Millisecond
}
