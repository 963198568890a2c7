package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/pjoly/hr-console/internal/client"
	"github.com/pjoly/hr-console/internal/config"
	"github.com/pjoly/hr-console/internal/domain/fiber/handler"
	"github.com/pjoly/hr-console/internal/middleware"
	"github.com/pjoly/hr-console/internal/model"
	"github.com/pjoly/hr-console/internal/view"
	"github.com/pjoly/hr-console/web"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:     appConfig.Name,
		Views:       web.Engine(),
		ViewsLayout: "layout",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).SendString(message)
		},
	})
	app.Use(logger.New())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	api := client.New(config.LoadHRAPIConfig().BaseURL)
	applicants := client.Applicants(api)
	employees := client.Employees(api)

	dashboard := handler.NewDashboardHandler(applicants, employees)
	applicantHandler := handler.NewResourceHandler[model.Applicant](applicants, model.ApplicantFields, view.ApplicantText, "/applicants")
	employeeHandler := handler.NewResourceHandler[model.Employee](employees, model.EmployeeFields, view.EmployeeText, "/employees")

	dashboard.RegisterRoutes(app)
	applicantHandler.RegisterRoutes(app)
	employeeHandler.RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
