package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agrimart/agrimart-backend/api/controllers"
	"github.com/agrimart/agrimart-backend/api/middleware"
	addresssvc "github.com/agrimart/agrimart-backend/internal/address"
	cartsvc "github.com/agrimart/agrimart-backend/internal/cart"
	catalogsvc "github.com/agrimart/agrimart-backend/internal/catalog"
	orderssvc "github.com/agrimart/agrimart-backend/internal/orders"
	profilesvc "github.com/agrimart/agrimart-backend/internal/profile"
	"github.com/agrimart/agrimart-backend/pkg/config"
	"github.com/agrimart/agrimart-backend/pkg/logger"
	"github.com/agrimart/agrimart-backend/pkg/redis"
)

// RouterParams groups everything the HTTP surface needs.
type RouterParams struct {
	Config    *config.Config
	Logger    *logger.Logger
	Pinger    redis.Pinger
	Registry  *prometheus.Registry
	Carts     cartsvc.Service
	Orders    orderssvc.Service
	Addresses addresssvc.Service
	Catalog   catalogsvc.Service
	Profile   profilesvc.Service
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Pinger, p.Logger))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(p.Carts, p.Logger))
			r.Put("/", controllers.CartReplace(p.Carts, p.Logger))
			r.Delete("/", controllers.CartClear(p.Carts, p.Logger))
			r.Post("/merge", controllers.CartMerge(p.Carts, p.Logger))
			r.Post("/items/{id}/adjust", controllers.CartAdjust(p.Carts, p.Logger))
			r.Delete("/items/{id}", controllers.CartRemoveLine(p.Carts, p.Logger))
		})

		r.Post("/checkout", controllers.Checkout(p.Carts, p.Orders, p.Addresses, p.Logger))
		r.Get("/orders", controllers.OrdersList(p.Orders, p.Logger))

		r.Route("/addresses", func(r chi.Router) {
			r.Get("/", controllers.AddressList(p.Addresses, p.Logger))
			r.Post("/", controllers.AddressAdd(p.Addresses, p.Logger))
			r.Put("/{index}", controllers.AddressUpdate(p.Addresses, p.Logger))
			r.Post("/{index}/default", controllers.AddressSelectDefault(p.Addresses, p.Logger))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(p.Catalog, p.Logger))
			r.Get("/{id}", controllers.ProductsGet(p.Catalog, p.Logger))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(p.Profile, p.Logger))
			r.Put("/", controllers.ProfileSave(p.Profile, p.Logger))
			r.Post("/request-otp", controllers.ProfileRequestOTP(p.Profile, p.Logger))
			r.Post("/verify-otp", controllers.ProfileVerifyOTP(p.Profile, p.Logger))
		})
	})

	return r
}
