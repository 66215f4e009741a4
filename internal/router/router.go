package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/carlosRosario19/EventEase-Backend/internal/handler"    // import the handlers that implement request processing
	"github.com/carlosRosario19/EventEase-Backend/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/carlosRosario19/EventEase-Backend/internal/model"      // authority constants
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated API surface: the credential
// exchange, member registration, event browsing and image downloads.  These
// routes apply no JWT or role middleware.
func RegisterPublic(e *echo.Echo, a *handler.AuthHandler, ev *handler.EventHandler, m *handler.MemberHandler, img *handler.ImageHandler) {
	// Exchange username/password for a bearer token.
	e.POST("/api/login", a.Login)
	// Create a login account plus member profile.  Registration is open;
	// everything member-scoped afterwards requires the issued token.
	e.POST("/api/register", m.Register)
	// Browse events with optional filters and pagination.
	e.GET("/api/events", ev.GetAll)
	// Event detail by id.
	e.GET("/api/events/:id", ev.Get)
	// Events owned by a specific member, paginated.
	e.GET("/api/events/member/:username", ev.GetAllByUsername)
	// Download a stored event image by its generated filename.
	e.GET("/api/images/:filename", img.Get)
}

// RegisterMember registers the routes reserved for authenticated members and
// applies the necessary middleware.  The jwtSecret must match the one used
// when issuing tokens.
func RegisterMember(e *echo.Echo, ev *handler.EventHandler, m *handler.MemberHandler, jwtSecret string) {
	// Create a route group for endpoints that require a valid access token.
	// All handlers registered on this group will execute the JWTAuth
	// middleware before being invoked.
	g := e.Group("/api")
	// Apply the JWTAuth middleware to the protected group using the provided secret.
	g.Use(middleware.JWTAuth(jwtSecret))
	// Apply the RequireAuthority middleware so that only tokens carrying the
	// ROLE_MEMBER authority reach these handlers.  The middleware rejects
	// requests with missing or unknown authorities.
	g.Use(middleware.RequireAuthority(model.RoleMember))
	// Create a new event (multipart form with optional image upload).
	g.POST("/events", ev.Create)
	// Fetch a member profile.
	g.GET("/members/:username", m.Get)
	// Update the mutable fields of a member profile.
	g.PUT("/members", m.Update)
}
