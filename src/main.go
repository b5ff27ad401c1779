package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "FoodiePal-Backend/docs"
	"FoodiePal-Backend/src/config"
	"FoodiePal-Backend/src/database"
	"FoodiePal-Backend/src/jobs"
	"FoodiePal-Backend/src/routes"
	"FoodiePal-Backend/src/utils"

	"github.com/hibiken/asynq"
)

// @title        FoodiePal API
// @version      1.0
// @description  Food catalogue, orders, table bookings and cookie auth for FoodiePal.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// เชื่อมต่อกับ MongoDB (หรือใช้ memory store ตอน dev)
	var colls database.Collections
	var mongoDB *database.Mongo
	if cfg.Store == "memory" {
		log.Println("⚠️ STORE=memory. Data is kept in process memory only.")
		colls = database.NewMemoryCollections()
	} else {
		mongoDB, err = database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatalf("Error connecting to the database: %v", err)
		}
		if names, err := mongoDB.ListCollections(ctx); err == nil {
			log.Println("📦 Collections:", names)
		}
		colls = mongoDB.Collections()
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURI)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}

	deps := routes.Dependencies{
		Config:      cfg,
		Collections: colls,
		Blacklist:   utils.NewTokenBlacklist(redisClient),
	}

	// background jobs ทำงานเฉพาะเมื่อมี Redis
	var worker *asynq.Server
	if queue := database.NewAsynqClient(cfg.RedisURI); queue != nil {
		defer queue.Close()
		deps.Queue = queue

		var sender jobs.MailSender = jobs.LogSender{}
		if cfg.SMTPConfigured() {
			sender = &jobs.SMTPSender{
				Host: cfg.SMTPHost,
				Port: cfg.SMTPPort,
				User: cfg.SMTPUser,
				Pass: cfg.SMTPPass,
				From: cfg.SMTPFrom,
			}
		}

		mux := asynq.NewServeMux()
		jobs.RegisterHandlers(mux, sender)
		worker = database.NewAsynqServer(cfg.RedisURI, 5)
		if err := worker.Start(mux); err != nil {
			log.Fatalf("Error starting job worker: %v", err)
		}
		log.Println("✅ Job worker started")
	}

	app := routes.NewApp(deps)

	go func() {
		<-ctx.Done()
		log.Println("🛑 Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Println("❌ Server shutdown error:", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}

	if worker != nil {
		worker.Shutdown()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if mongoDB != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Disconnect(shutdownCtx); err != nil {
			log.Println("❌ MongoDB disconnect error:", err)
		}
	}
}
