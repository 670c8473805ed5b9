package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pgnest/hostel-system/docs"
	"github.com/pgnest/hostel-system/internal/api/handler"
	"github.com/pgnest/hostel-system/internal/api/middleware"
	"github.com/pgnest/hostel-system/internal/core/ports"
	healthhandlers "github.com/pgnest/hostel-system/internal/infrastructure/http/handlers"
)

// Deps bundles everything the router needs. The services are constructed in
// main so the session service can also run Resume before traffic arrives.
type Deps struct {
	Sessions      ports.SessionService
	Rooms         ports.RoomService
	Residents     ports.ResidentService
	Payments      ports.PaymentService
	Menu          ports.MenuService
	Notifications ports.NotificationService
	Messages      ports.MessageService
	Properties    ports.PropertyService
	Dispatcher    handler.NotificationDispatcher
	JWTSecret     string
	DB            *mongo.Database
	Redis         *redis.Client
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pgnest"))
	e.Use(middleware.Session(deps.Sessions, deps.JWTSecret))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	roomHandler := handler.NewRoomHandler(deps.Rooms)
	residentHandler := handler.NewResidentHandler(deps.Residents)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	mealHandler := handler.NewMealHandler(deps.Menu)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications, deps.Dispatcher)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	propertyHandler := handler.NewPropertyHandler(deps.Properties)

	// --- Public routes ---
	e.GET(middleware.RoleSelectionPath, authHandler.RoleSelection)
	e.POST("/auth/login", authHandler.Login)

	public := e.Group("/public")
	public.GET("/rooms", roomHandler.Vacancies)
	public.GET("/menu", mealHandler.WeekPublic)

	// --- Session routes (any authenticated audience) ---
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)
	e.PUT("/auth/session/role", authHandler.SetRole)
	e.PUT("/auth/session/sub-role", authHandler.SetAdminSubRole)
	e.PUT("/auth/session/profile", authHandler.UpdateProfile)

	// --- Guest dashboard ---
	guest := e.Group("/guest", middleware.RequireGuest(deps.Log))
	guest.GET("/profile", authHandler.Profile)
	guest.GET("/menu", mealHandler.Week)
	guest.GET("/payments", paymentHandler.MyPayments)
	guest.GET("/notifications", notificationHandler.Inbox)
	guest.POST("/notifications/:id/read", notificationHandler.MarkRead)
	guest.GET("/messages", messageHandler.Threads)
	guest.GET("/messages/:other_id", messageHandler.Thread)
	guest.POST("/messages", messageHandler.Send)

	// --- Warden operations ---
	warden := e.Group("/warden", middleware.RequireWarden(deps.Log))
	warden.POST("/residents", residentHandler.CheckIn)
	warden.GET("/residents", residentHandler.List)
	warden.GET("/residents/:id", residentHandler.Get)
	warden.PUT("/residents/:id", residentHandler.Update)
	warden.POST("/residents/:id/check-out", residentHandler.CheckOut)
	warden.GET("/menu", mealHandler.Week)
	warden.PUT("/menu", mealHandler.UpsertDay)
	warden.POST("/notifications", notificationHandler.Send)
	warden.POST("/notifications/broadcast", notificationHandler.Broadcast)
	warden.GET("/messages", messageHandler.Threads)
	warden.GET("/messages/:other_id", messageHandler.Thread)
	warden.POST("/messages", messageHandler.Send)

	// --- Property management ---
	pgAdmin := e.Group("/pg-admin", middleware.RequirePGAdmin(deps.Log))
	pgAdmin.POST("/rooms", roomHandler.Create)
	pgAdmin.GET("/rooms", roomHandler.List)
	pgAdmin.GET("/rooms/:id", roomHandler.Get)
	pgAdmin.PUT("/rooms/:id", roomHandler.Update)
	pgAdmin.POST("/rooms/:id/assign", roomHandler.Assign)
	pgAdmin.POST("/rooms/:id/release", roomHandler.Release)
	pgAdmin.GET("/residents", residentHandler.List)
	pgAdmin.GET("/residents/:id", residentHandler.Get)
	pgAdmin.POST("/notifications", notificationHandler.Send)
	pgAdmin.POST("/notifications/broadcast", notificationHandler.Broadcast)
	pgAdmin.POST("/payments", paymentHandler.Record)
	pgAdmin.GET("/payments", paymentHandler.List)
	pgAdmin.GET("/payments/:id", paymentHandler.Get)
	pgAdmin.POST("/payments/:id/pay", paymentHandler.MarkPaid)

	// --- Portfolio ---
	superAdmin := e.Group("/super-admin", middleware.RequireSuperAdmin(deps.Log))
	superAdmin.POST("/properties", propertyHandler.Create)
	superAdmin.GET("/properties", propertyHandler.List)
	superAdmin.GET("/properties/:id", propertyHandler.Get)
	superAdmin.PUT("/properties/:id", propertyHandler.Update)
	superAdmin.GET("/overview", propertyHandler.Overview)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
