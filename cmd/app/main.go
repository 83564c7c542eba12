package main

import (
	"log"
	"os"

	"github.com/Dewey-byte/angular-project/internal/cache"
	"github.com/Dewey-byte/angular-project/internal/db"
	"github.com/Dewey-byte/angular-project/internal/logging"
	"github.com/Dewey-byte/angular-project/internal/middleware"
	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger := logging.Init("shop-api", "./logs/app.log")

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	var productCache *cache.ProductCache

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	inventoryRepo := repository.NewInventoryRepository(pool)

	// Optional read cache for the catalog
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")})
		productCache = cache.NewProductCache(productRepo, rdb, logging.New("product-cache"))
	}

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo, productCache, inventoryRepo, logging.New("catalog"))
	cartSvc := services.NewCartService(cartRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, orderRepo, userRepo, logging.New("checkout"))
	orderSvc := services.NewOrderService(orderRepo)
	inventorySvc := services.NewInventoryService(inventoryRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Metrics())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerUserRoutes(api, userSvc)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartSvc)
	registerCheckoutRoutes(api, checkoutSvc)
	registerOrderRoutes(api, orderSvc)
	registerInventoryRoutes(api, inventorySvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("starting server", "port", port)
	e.Logger.Fatal(e.Start(":" + port))
}
