package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stepsyncdev/stepsync/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	projectHandler *Project
	configHandler  *Config
	mediaHandler   *Media
	sessionHandler *Session
	renderHandler  *Render
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	projectHandler *Project,
	configHandler *Config,
	mediaHandler *Media,
	sessionHandler *Session,
	renderHandler *Render,
) *Router {
	return &Router{
		cfg:            cfg,
		projectHandler: projectHandler,
		configHandler:  configHandler,
		mediaHandler:   mediaHandler,
		sessionHandler: sessionHandler,
		renderHandler:  renderHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupProjectRoutes(v1)
	rt.setupSessionRoutes(v1)
}

// setupProjectRoutes configures project, caption, config, media and
// render routes
func (rt *Router) setupProjectRoutes(g *echo.Group) {
	projects := g.Group("/projects")

	projects.POST("", rt.projectHandler.CreateProject)
	projects.GET("", rt.projectHandler.ListProjects)
	projects.GET("/:id", rt.projectHandler.GetProject)
	projects.PATCH("/:id", rt.projectHandler.UpdateProject)
	projects.DELETE("/:id", rt.projectHandler.DeleteProject)

	projects.POST("/:id/captions", rt.projectHandler.AddCaption)
	projects.PATCH("/:id/captions/:captionId", rt.projectHandler.UpdateCaption)
	projects.DELETE("/:id/captions/:captionId", rt.projectHandler.DeleteCaption)

	projects.GET("/:id/config", rt.configHandler.ExportConfig)
	projects.PUT("/:id/config", rt.configHandler.ImportConfig)

	projects.POST("/:id/media", rt.mediaHandler.UploadMedia)
	projects.GET("/:id/media", rt.mediaHandler.GetMediaURL)

	projects.POST("/:id/render", rt.renderHandler.StartRender)
	projects.GET("/:id/renders", rt.renderHandler.RenderHistory)

	projects.POST("/:id/sessions", rt.sessionHandler.OpenSession)
}

// setupSessionRoutes configures preview session routes
func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessions := g.Group("/sessions")

	sessions.GET("/:id", rt.sessionHandler.GetSession)
	sessions.POST("/:id/transport", rt.sessionHandler.Transport)
	sessions.POST("/:id/seek", rt.sessionHandler.Seek)
	sessions.POST("/:id/rate", rt.sessionHandler.SetRate)
	sessions.POST("/:id/sample", rt.sessionHandler.Sample)
	sessions.DELETE("/:id", rt.sessionHandler.CloseSession)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
