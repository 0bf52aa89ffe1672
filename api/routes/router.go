package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/washdesk/washdesk-backend/api/controllers"
	"github.com/washdesk/washdesk-backend/api/middleware"
	"github.com/washdesk/washdesk-backend/internal/parties"
	"github.com/washdesk/washdesk-backend/internal/pricing"
	"github.com/washdesk/washdesk-backend/internal/records"
	"github.com/washdesk/washdesk-backend/internal/taxonomy"
	"github.com/washdesk/washdesk-backend/pkg/config"
	"github.com/washdesk/washdesk-backend/pkg/db"
	"github.com/washdesk/washdesk-backend/pkg/logger"
	"github.com/washdesk/washdesk-backend/pkg/metrics"
	pkgredis "github.com/washdesk/washdesk-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database db.Pinger,
	idempotencyStore pkgredis.IdempotencyStore,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	recordsService records.Service,
	pricingService pricing.Service,
	taxonomyService taxonomy.Service,
	partiesService parties.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, database, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/records", func(r chi.Router) {
			r.Get("/", controllers.RecordList(recordsService, logg))
			r.Post("/", controllers.RecordCreate(recordsService, logg))
			r.Get("/{recordId}", controllers.RecordGet(recordsService, logg))
			r.Post("/{recordId}/finish", controllers.RecordFinish(recordsService, logg))
			r.Post("/{recordId}/pay", controllers.RecordPay(recordsService, logg))
			r.With(middleware.RequireRole("admin", logg)).Patch("/{recordId}", controllers.RecordUpdate(recordsService, logg))
			r.With(middleware.RequireRole("admin", logg)).Delete("/{recordId}", controllers.RecordDelete(recordsService, logg))
		})

		r.Route("/pricing", func(r chi.Router) {
			r.Get("/", controllers.PricingMatrix(pricingService, logg))
			r.With(middleware.RequireRole("admin", logg)).Put("/", controllers.PricingBulkUpsert(pricingService, logg))
		})

		r.Route("/types/{kind}", func(r chi.Router) {
			r.Get("/", controllers.TypeList(taxonomyService, logg))
			r.With(middleware.RequireRole("admin", logg)).Post("/", controllers.TypeCreate(taxonomyService, logg))
			r.With(middleware.RequireRole("admin", logg)).Patch("/{typeId}", controllers.TypeUpdate(taxonomyService, logg))
			r.With(middleware.RequireRole("admin", logg)).Delete("/{typeId}", controllers.TypeDelete(taxonomyService, logg))
		})

		r.Route("/washers", func(r chi.Router) {
			r.Get("/", controllers.WasherList(partiesService, logg))
			r.With(middleware.RequireRole("admin", logg)).Patch("/{washerId}", controllers.WasherUpdate(partiesService, logg))
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", controllers.CompanyList(partiesService, logg))
			r.Get("/{companyId}", controllers.CompanyGet(partiesService, logg))
			r.Get("/{companyId}/discounts", controllers.DiscountList(partiesService, logg))
			r.With(middleware.RequireRole("admin", logg)).Post("/", controllers.CompanyCreate(partiesService, logg))
			r.With(middleware.RequireRole("admin", logg)).Patch("/{companyId}", controllers.CompanyUpdate(partiesService, logg))
			r.With(middleware.RequireRole("admin", logg)).Delete("/{companyId}", controllers.CompanyDelete(partiesService, logg))
			r.With(middleware.RequireRole("admin", logg)).Post("/{companyId}/discounts", controllers.DiscountCreate(partiesService, logg))
		})

		r.Route("/discounts", func(r chi.Router) {
			r.With(middleware.RequireRole("admin", logg)).Patch("/{discountId}", controllers.DiscountUpdate(partiesService, logg))
			r.With(middleware.RequireRole("admin", logg)).Delete("/{discountId}", controllers.DiscountDelete(partiesService, logg))
		})

		r.Get("/vehicles", controllers.VehicleSearch(partiesService, logg))
	})

	return r
}
