package routers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"

	"media-fetcher/internal/delivery/http/handlers"
	"media-fetcher/internal/delivery/http/views"
	"media-fetcher/internal/domain/mapper"
)

func NewApp() *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		AppName:               "media-fetcher",
		Views:                 engine,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	return app
}

type StaticDirs struct {
	Static    string
	Downloads string
}

func SetupDownloadRoutes(app *fiber.App, h *handlers.DownloadHandler, dirs StaticDirs) {
	app.Get("/", h.Index)
	app.Post("/download", h.StartDownload)
	app.Get("/status/:video_id", h.Status)

	// Health check
	app.Get("/health", h.Health)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Assets and finished downloads
	app.Static("/static", dirs.Static)
	app.Static(mapper.DownloadsMount, dirs.Downloads, fiber.Static{Browse: true})
}
