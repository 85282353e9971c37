package main

import (
	"log"
	"os"
	"time"

	"github.com/Ngosoman/DevSoko/handlers/payments"
	"github.com/Ngosoman/DevSoko/models"
	"github.com/Ngosoman/DevSoko/mpesa"
	"github.com/Ngosoman/DevSoko/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://devsoko.co.ke"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	if err := utils.PaymentsDB.AutoMigrate(&models.Order{}, &models.MpesaRequest{}, &models.MpesaResponse{}); err != nil {
		log.Fatalf("Failed to migrate payment models: %v", err)
	}

	cfg := mpesa.LoadConfig()
	registry := mpesa.NewCallbackURLRegistry(cfg.CallbackURL)
	client := mpesa.NewClient(cfg, registry)

	h := &payments.Handler{DB: utils.PaymentsDB, Client: client, Registry: registry}
	h.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
