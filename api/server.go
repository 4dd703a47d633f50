package api

import (
	"fmt"

	"github.com/artisora/artisan-BE/internal/checkout"
	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/artisora/artisan-BE/internal/delivery"
	"github.com/artisora/artisan-BE/internal/geocode"
	"github.com/artisora/artisan-BE/internal/token"
	"github.com/artisora/artisan-BE/internal/util"
	"github.com/artisora/artisan-BE/internal/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	router           *gin.Engine
	dbStore          db.Store
	tokenMaker       token.Maker
	config           *util.Config
	taskDistributor  worker.TaskDistributor
	deliveryResolver *delivery.Resolver
	geocoder         *geocode.ReverseGeocoder
	checkoutService  *checkout.Service
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, taskDistributor worker.TaskDistributor, config *util.Config, deliveryResolver *delivery.Resolver, geocoder *geocode.ReverseGeocoder) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	server := &Server{
		dbStore:          store,
		tokenMaker:       tokenMaker,
		config:           config,
		taskDistributor:  taskDistributor,
		deliveryResolver: deliveryResolver,
		geocoder:         geocoder,
		checkoutService:  checkout.NewService(store),
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	deliveryGroup := v1.Group("/delivery")
	{
		deliveryGroup.GET("quote", server.getDeliveryQuote)
		deliveryGroup.GET("route", server.getDeliveryRoute)
		deliveryGroup.GET("reverse-geocode", server.reverseGeocode)
	}

	productGroup := v1.Group("/products")
	{
		productGroup.GET("", server.listProducts)
		productGroup.GET("by-slug/:slug", server.getProductBySlug)
	}

	cartGroup := v1.Group("/cart")
	cartGroup.Use(authMiddleware(server.tokenMaker))
	{
		cartGroup.POST("items", server.addCartItem)
		cartGroup.GET("items", server.listCartItems)
		cartGroup.DELETE("items/:id", server.deleteCartItem)
	}

	orderGroup := v1.Group("/orders")
	orderGroup.Use(authMiddleware(server.tokenMaker))
	{
		orderGroup.POST("checkout", server.checkoutOrders)
		orderGroup.GET("", server.listOrders)
		orderGroup.GET(":orderID", server.getOrderDetails)
	}

	sellerGroup := v1.Group("/sellers/me")
	sellerGroup.Use(authMiddleware(server.tokenMaker))
	{
		sellerGroup.POST("products", server.createProduct)
	}

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
