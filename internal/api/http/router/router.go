package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/plantnet/plantnet-server/internal/api/http/handler"
	"github.com/plantnet/plantnet-server/internal/api/http/middleware"
	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// Router wires handlers and middleware into the HTTP route tree.
type Router struct {
	authService     handler.AuthService
	catalogService  handler.CatalogService
	checkoutService handler.CheckoutService
	tokenManager    model.TokenManager
	allowedOrigins  []string
	production      bool
	logger          *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	catalogService handler.CatalogService,
	checkoutService handler.CheckoutService,
	tokenManager model.TokenManager,
	allowedOrigins []string,
	production bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		catalogService:  catalogService,
		checkoutService: checkoutService,
		tokenManager:    tokenManager,
		allowedOrigins:  allowedOrigins,
		production:      production,
		logger:          logger,
	}
}

// Handler builds the route tree. Catalog browsing stays public; checkout,
// order and profile routes require a session; catalog mutation requires
// the admin role on top.
func (r *Router) Handler() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.production, r.logger)
	plantHandler := handler.NewPlant(r.catalogService, r.logger)
	checkoutHandler := handler.NewCheckout(r.checkoutService, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	mux.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello from plantNet Server.."))
	})

	mux.Post("/jwt", authHandler.Login)
	mux.Get("/logout", authHandler.Logout)

	mux.Get("/plants", plantHandler.List)
	mux.Get("/plant/{id}", plantHandler.Get)
	mux.Get("/plant/{id}/image", plantHandler.Image)

	mux.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handle)

		protected.Post("/create-payment-intent", checkoutHandler.CreatePaymentIntent)
		protected.Post("/order", checkoutHandler.PlaceOrder)
		protected.Post("/user", authHandler.UpsertUser)

		protected.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireRole(model.RoleAdmin))

			admin.Post("/add-plant", plantHandler.Add)
			admin.Post("/plant/{id}/image", plantHandler.UploadImage)
		})
	})

	return mux
}
