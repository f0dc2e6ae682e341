package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"eduforms/internal/service"
	"eduforms/internal/transport/rest/handler"
	"eduforms/internal/transport/rest/middleware"
	"eduforms/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	FormService         *service.FormService
	CourseService       *service.CourseService
	WebinarService      *service.WebinarService
	EnquiryService      *service.EnquiryService
	NotificationService *service.NotificationService
	CouponService       *service.CouponService
	WSHub               *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	formHandler := handler.NewFormHandler(c.FormService)
	adminFormHandler := handler.NewAdminFormHandler(c.FormService)
	courseHandler := handler.NewCourseHandler(c.CourseService)
	webinarHandler := handler.NewWebinarHandler(c.WebinarService)
	enquiryHandler := handler.NewEnquiryHandler(c.EnquiryService)
	notificationHandler := handler.NewNotificationHandler(c.NotificationService)
	couponHandler := handler.NewCouponHandler(c.CouponService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.WebinarService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/chat/conversations", authHandler.StartConversation).Methods("POST", "OPTIONS")

	v1.HandleFunc("/forms/{formId}/info", formHandler.Info).Methods("GET", "OPTIONS")
	v1.HandleFunc("/forms/{formId}/questions", formHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/forms/{formId}/resolve", formHandler.Resolve).Methods("POST", "OPTIONS")
	v1.HandleFunc("/forms/{formId}/submissions", formHandler.Submit).Methods("POST", "OPTIONS")

	v1.HandleFunc("/courses", courseHandler.ListPublic).Methods("GET", "OPTIONS")
	v1.HandleFunc("/courses/{courseId}", courseHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/webinars/{webinarId}", webinarHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/webinars/{webinarId}/countdown", webinarHandler.Countdown).Methods("GET", "OPTIONS")

	v1.HandleFunc("/enquiries", enquiryHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/coupons/redeem", couponHandler.Redeem).Methods("POST", "OPTIONS")

	v1.HandleFunc("/notifications", notificationHandler.ListForRecipient).Methods("GET", "OPTIONS")
	v1.HandleFunc("/notifications/read", notificationHandler.MarkRead).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/chat/{conversationId}/visitor", wsHandler.VisitorWS).Methods("GET")
	v1.HandleFunc("/ws/chat/{conversationId}/admin", wsHandler.AdminWS).Methods("GET")
	v1.HandleFunc("/ws/webinars/{webinarId}", wsHandler.WebinarWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/forms", adminFormHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/forms", adminFormHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/forms/{formId}", adminFormHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/forms/{formId}", adminFormHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/forms/{formId}", adminFormHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/forms/{formId}/submissions", adminFormHandler.Submissions).Methods("GET", "OPTIONS")

	adminRoutes.HandleFunc("/courses", courseHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/courses", courseHandler.ListAdmin).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/courses/{courseId}", courseHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/courses/{courseId}", courseHandler.Delete).Methods("DELETE", "OPTIONS")

	adminRoutes.HandleFunc("/webinars", webinarHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/webinars", webinarHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/webinars/{webinarId}", webinarHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/webinars/{webinarId}", webinarHandler.Delete).Methods("DELETE", "OPTIONS")

	adminRoutes.HandleFunc("/enquiries", enquiryHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/enquiries/{enquiryId}/status", enquiryHandler.UpdateStatus).Methods("PUT", "OPTIONS")

	adminRoutes.HandleFunc("/notifications", notificationHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/notifications", notificationHandler.ListAdmin).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/notifications/{notificationId}", notificationHandler.Delete).Methods("DELETE", "OPTIONS")

	adminRoutes.HandleFunc("/coupons", couponHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/coupons", couponHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/coupons/{couponId}", couponHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
