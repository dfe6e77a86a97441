package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zaiqaeats/storefront/api/controllers"
	"github.com/zaiqaeats/storefront/api/middleware"
	cartsvc "github.com/zaiqaeats/storefront/internal/cart"
	checkoutsvc "github.com/zaiqaeats/storefront/internal/checkout"
	"github.com/zaiqaeats/storefront/internal/menu"
	"github.com/zaiqaeats/storefront/pkg/config"
	"github.com/zaiqaeats/storefront/pkg/db"
	"github.com/zaiqaeats/storefront/pkg/logger"
	"github.com/zaiqaeats/storefront/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	menuService *menu.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", controllers.MenuList(menuService, logg))
			r.Get("/{itemID}", controllers.MenuDetail(menuService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Post("/lines/{index}/quantity", controllers.CartAdjustQuantity(cartService, logg))
				r.Delete("/lines/{index}", controllers.CartRemoveLine(cartService, logg))
			})

			r.Post("/checkout", controllers.CheckoutSubmit(checkoutService, logg))
		})
	})

	return r
}
