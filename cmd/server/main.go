package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eduforms/internal/cache"
	"eduforms/internal/config"
	"eduforms/internal/repository"
	"eduforms/internal/service"
	"eduforms/internal/transport/rest"
	"eduforms/internal/transport/ws"
)

// @title EduForms API
// @version 1.0
// @description Course platform backend with a conditional form engine
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	formRepo := repository.NewFormRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	webinarRepo := repository.NewWebinarRepo(db)
	enquiryRepo := repository.NewEnquiryRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	couponRepo := repository.NewCouponRepo(db)

	// Initialize caches
	formCache := cache.NewFormCache(rdb)
	couponCache := cache.NewCouponCache(rdb)
	notificationCache := cache.NewNotificationCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	formSvc := service.NewFormService(formRepo, submissionRepo, formCache)
	courseSvc := service.NewCourseService(courseRepo)
	webinarSvc := service.NewWebinarService(webinarRepo)
	enquirySvc := service.NewEnquiryService(enquiryRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, notificationCache)
	couponSvc := service.NewCouponService(couponRepo, couponCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	webinarSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:         authSvc,
		FormService:         formSvc,
		CourseService:       courseSvc,
		WebinarService:      webinarSvc,
		EnquiryService:      enquirySvc,
		NotificationService: notificationSvc,
		CouponService:       couponSvc,
		WSHub:               wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Admin auth: username=%s", cfg.AdminUsername)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/forms/{formId}/questions")
		log.Println("  POST /v1/forms/{formId}/resolve")
		log.Println("  POST /v1/forms/{formId}/submissions")
		log.Println("  GET  /v1/courses")
		log.Println("  GET  /v1/webinars/{webinarId}/countdown")
		log.Println("  POST /v1/enquiries")
		log.Println("  POST /v1/coupons/redeem")
		log.Println("  WS  /v1/ws/chat/{conversationId}/visitor")
		log.Println("  WS  /v1/ws/webinars/{webinarId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	webinarSvc.StopAll()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
