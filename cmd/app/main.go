package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wadi/cmd/fx/attractions_fx"
	"wadi/cmd/fx/chat_fx"
	"wadi/cmd/fx/db_fx"
	"wadi/cmd/fx/lodgings_fx"
	"wadi/cmd/fx/planner_fx"
	"wadi/cmd/fx/products_fx"
	"wadi/cmd/fx/search_fx"
	"wadi/internal/api/controllers"
	"wadi/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		attractions_fx.Module,
		lodgings_fx.Module,
		products_fx.Module,
		planner_fx.Module,
		search_fx.Module,
		chat_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	attractionsController *controllers.AttractionsController,
	lodgingsController *controllers.LodgingsController,
	productsController *controllers.ProductsController,
	plannerController *controllers.PlannerController,
	searchController *controllers.SearchController,
	chatController *controllers.ChatController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		attractionsController,
		lodgingsController,
		productsController,
		plannerController,
		searchController,
		chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	attractionsController *controllers.AttractionsController,
	lodgingsController *controllers.LodgingsController,
	productsController *controllers.ProductsController,
	plannerController *controllers.PlannerController,
	searchController *controllers.SearchController,
	chatController *controllers.ChatController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	attractions := api.Group("/attractions")
	attractions.GET("", attractionsController.ListAttractions)
	attractions.GET("/:id", attractionsController.GetAttractionByID)
	attractions.POST("", attractionsController.CreateAttraction)
	attractions.PUT("", attractionsController.UpdateAttraction)
	attractions.DELETE("/:id", attractionsController.DeleteAttraction)
	attractions.POST("/generate-plan", plannerController.GeneratePlan)

	lodgings := api.Group("/lodgings")
	lodgings.GET("", lodgingsController.ListLodgings)
	lodgings.GET("/:id", lodgingsController.GetLodgingByID)
	lodgings.POST("", lodgingsController.CreateLodging)
	lodgings.PUT("", lodgingsController.UpdateLodging)
	lodgings.DELETE("/:id", lodgingsController.DeleteLodging)

	products := api.Group("/products")
	products.GET("", productsController.ListProducts)
	products.GET("/:id", productsController.GetProductByID)
	products.POST("", productsController.CreateProduct)
	products.PUT("", productsController.UpdateProduct)
	products.DELETE("/:id", productsController.DeleteProduct)

	api.GET("/search", searchController.GlobalSearch)
	api.POST("/chat", chatController.Chat)
}
