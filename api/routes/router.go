package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/weavemart/weavemart-backend/api/controllers"
	"github.com/weavemart/weavemart-backend/api/middleware"
	"github.com/weavemart/weavemart-backend/internal/auth"
	"github.com/weavemart/weavemart-backend/internal/cart"
	"github.com/weavemart/weavemart-backend/internal/catalog"
	"github.com/weavemart/weavemart-backend/internal/contact"
	"github.com/weavemart/weavemart-backend/internal/purchase"
	"github.com/weavemart/weavemart-backend/pkg/auth/session"
	"github.com/weavemart/weavemart-backend/pkg/config"
	"github.com/weavemart/weavemart-backend/pkg/db"
	"github.com/weavemart/weavemart-backend/pkg/enums"
	"github.com/weavemart/weavemart-backend/pkg/logger"
	"github.com/weavemart/weavemart-backend/pkg/metrics"
	"github.com/weavemart/weavemart-backend/pkg/redis"
)

// NewRouter assembles the full HTTP surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database *db.Client,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	authService auth.Service,
	signupService auth.SignupService,
	catalogService catalog.Service,
	cartService cart.Service,
	purchaseService purchase.Service,
	contactService contact.Service,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)
	contactPolicy := middleware.NewAuthRateLimitPolicy(
		"contact",
		cfg.AuthRateLimit.ContactWindow,
		cfg.AuthRateLimit.ContactIPLimit,
		cfg.AuthRateLimit.ContactEmailLimit,
	)

	requireAuth := middleware.Auth(cfg.JWT, sessions, logg)
	requireSeller := middleware.RequireRole(logg, string(enums.UserRoleSeller))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(database, redisClient, logg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, redisClient, logg)).Post("/signup", controllers.AuthSignup(signupService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.Post("/refresh-token", controllers.AuthRefresh(authService, logg))
		r.Post("/forgot-password", controllers.AuthForgotPassword(authService, logg))
		r.Post("/reset-password", controllers.AuthResetPassword(authService, logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", controllers.AuthMe(authService, logg))
			r.Post("/logout", controllers.AuthLogout(authService, logg))
			r.Put("/profile", controllers.AuthUpdateProfile(authService, logg))
		})
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/allproduct", controllers.ProductList(catalogService, logg))
		r.Get("/existing", controllers.ProductExisting(catalogService, logg))
		r.Get("/{productId}", controllers.ProductDetail(catalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireSeller)
			r.Post("/upload", controllers.ProductUpload(catalogService, logg))
		})
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/add", controllers.CartAdd(cartService, logg))
		r.Get("/", controllers.CartGet(cartService, logg))
		r.Post("/remove", controllers.CartRemove(cartService, logg))
	})

	r.Route("/api/purchase", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/buy", controllers.PurchaseBuy(purchaseService, logg))
		r.Get("/", controllers.PurchaseList(purchaseService, logg))
	})

	r.Route("/api/contact", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(contactPolicy, redisClient, logg)).Post("/submit", controllers.ContactSubmit(contactService, logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireSeller)
			r.Get("/all", controllers.ContactListAll(contactService, cfg.Contact.PageSize, logg))
			r.Get("/{contactId}", controllers.ContactGet(contactService, logg))
			r.Put("/{contactId}", controllers.ContactUpdate(contactService, logg))
			r.Delete("/{contactId}", controllers.ContactDelete(contactService, logg))
		})
	})

	return r
}
