package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/cathedralnet/storefront/internal/config"
	"github.com/cathedralnet/storefront/internal/metrics"
	"github.com/cathedralnet/storefront/internal/modules/auth"
	"github.com/cathedralnet/storefront/internal/modules/cart"
	"github.com/cathedralnet/storefront/internal/modules/catalog"
	"github.com/cathedralnet/storefront/internal/modules/consent"
	"github.com/cathedralnet/storefront/internal/modules/fulfillment"
	"github.com/cathedralnet/storefront/internal/modules/order"
	"github.com/cathedralnet/storefront/internal/modules/payment"
	"github.com/cathedralnet/storefront/internal/modules/selection"
	"github.com/cathedralnet/storefront/internal/modules/stats"
	"github.com/cathedralnet/storefront/internal/modules/tenant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Persistent stores fall back to memory when no database is configured,
	// which keeps local development and previews zero-setup.
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")
	} else {
		log.Println("DATABASE_URL not set, using in-memory stores")
	}

	// ── Router ──────────────────────────────────────────────
	serverMetrics := metrics.NewServerMetrics("api")
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(serverMetrics.Middleware)
	router.Handle("/metrics", metrics.Handler())

	// ── Tenants & Auth ──────────────────────────────────────
	tenantService := tenant.NewService(cfg.DefaultDomain)
	tenant.NewHandler(tenantService).RegisterRoutes(router)

	authService := auth.NewService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPasswordHash)
	auth.NewHandler(authService).RegisterRoutes(router)
	guard := auth.Middleware(cfg.JWTSecret)

	// ── Catalog & Selection ─────────────────────────────────
	provider := fulfillment.NewClient(cfg.Printful.APIKey, cfg.Printful.StoreID, cfg.Printful.BaseURL)

	var selectionStore selection.Store
	if db != nil {
		selectionStore = selection.NewPostgresStore(db)
	} else {
		selectionStore = selection.NewMemoryStore()
	}
	var remote selection.RemoteSaver
	if cfg.SelectionSyncURL != "" {
		remote = selection.NewHTTPRemote(cfg.SelectionSyncURL)
	}
	selectionService := selection.NewService(selectionStore, provider, remote)
	selection.NewHandler(selectionService).RegisterRoutes(router, guard)

	catalogService := catalog.NewService(provider, selectionStore)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	var cartStore cart.Store
	if db != nil {
		cartStore = cart.NewPostgresStore(db)
	} else {
		cartStore = cart.NewMemoryStore()
	}
	cartService := cart.NewService(cartStore, catalogService, tenantService)
	cart.NewHandler(cartService, tenantService).RegisterRoutes(router)

	// ── Orders & Checkout ───────────────────────────────────
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey)

	var orderRepo order.Repository
	if db != nil {
		orderRepo = order.NewPostgresRepository(db)
	} else {
		orderRepo = order.NewMemoryRepository()
	}
	orderService := order.NewService(orderRepo, cartService, catalogService, provider, gateway)
	order.NewHandler(orderService, tenantService).RegisterRoutes(router, guard)

	// ── Admin Stats ─────────────────────────────────────────
	statsService := stats.NewService(orderRepo, catalogService)
	stats.NewHandler(statsService).RegisterRoutes(router, guard)

	// ── Cookie Consent ──────────────────────────────────────
	consent.NewHandler(consent.NewMemoryStore()).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("Storefront API server starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
