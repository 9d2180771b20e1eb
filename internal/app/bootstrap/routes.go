// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/circuitshop/circuitshop/internal/app/features/auth"
	categoriesfeature "github.com/circuitshop/circuitshop/internal/app/features/categories"
	diagfeature "github.com/circuitshop/circuitshop/internal/app/features/diag"
	healthfeature "github.com/circuitshop/circuitshop/internal/app/features/health"
	homefeature "github.com/circuitshop/circuitshop/internal/app/features/home"
	ordersfeature "github.com/circuitshop/circuitshop/internal/app/features/orders"
	productsfeature "github.com/circuitshop/circuitshop/internal/app/features/products"
	categorystore "github.com/circuitshop/circuitshop/internal/app/store/categories"
	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	orderstore "github.com/circuitshop/circuitshop/internal/app/store/orders"
	productstore "github.com/circuitshop/circuitshop/internal/app/store/products"
	userstore "github.com/circuitshop/circuitshop/internal/app/store/users"
	"github.com/circuitshop/circuitshop/internal/app/system/notify"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. deps.MongoDatabase may be nil (store
// unconfigured); the adapter then reports every operation as unavailable and
// the JSON API degrades per endpoint rather than failing to boot.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Single shared store adapter; all entity stores ride on it.
	store := docs.New(deps.MongoDatabase)

	notifier := notify.New(logger, appCfg.OrderNotify)

	r := chi.NewRouter()

	// Browser storefronts are served from other origins; the API itself is
	// unauthenticated, so the permissive policy gives nothing extra away.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(store, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// API root
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication (identity only; no sessions or tokens are issued)
	authHandler := authfeature.NewHandler(userstore.New(store), logger)
	r.Mount("/auth", authfeature.Routes(authHandler))

	// Catalog
	categoriesHandler := categoriesfeature.NewHandler(categorystore.New(store), logger)
	r.Mount("/categories", categoriesfeature.Routes(categoriesHandler))

	productsHandler := productsfeature.NewHandler(productstore.New(store), logger)
	r.Mount("/products", productsfeature.Routes(productsHandler))

	// Orders
	ordersHandler := ordersfeature.NewHandler(orderstore.New(store), notifier, logger)
	r.Mount("/orders", ordersfeature.Routes(ordersHandler))

	// Diagnostics: observational only, never raises
	diagHandler := diagfeature.NewHandler(store, appCfg.MongoURI != "", appCfg.MongoDatabase != "", logger)
	r.Mount("/test", diagfeature.Routes(diagHandler))

	return r, nil
}
