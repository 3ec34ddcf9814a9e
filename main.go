package main

import (
	"fmt"
	"log"

	"github.com/YibestBelay/shegaCafe/configs"
	"github.com/YibestBelay/shegaCafe/middlewares"
	"github.com/YibestBelay/shegaCafe/pkg/imagestore"
	"github.com/YibestBelay/shegaCafe/routes"
	"github.com/YibestBelay/shegaCafe/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// image hosting (local disk, served below)
	images, err := imagestore.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("image store init failed: %v", err)
	}

	// live order feed
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, images, hub)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
