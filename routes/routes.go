package routes

import (
	"eyenova-backend/assistant"
	"eyenova-backend/config"
	"eyenova-backend/controllers"
	"eyenova-backend/database"
	"eyenova-backend/middleware"
	"eyenova-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	cfg := config.Get()
	db := database.GetMongoDB()

	// Initialize services
	userService := services.NewUserService(db, cfg.Security.BcryptCost)
	gameService := services.NewGameService(db)
	messageService := services.NewMessageService(db)
	chatLogService := services.NewChatLogService(db)
	otpService := services.NewOTPService(cfg.Assistant.OTPTTL)
	emailService := services.NewEmailService()
	aiAssistant := assistant.New(assistant.NewCacheStore(cfg.Assistant.SessionTTL))

	// Initialize controllers
	authController := controllers.NewAuthController(userService, otpService, emailService)
	userController := controllers.NewUserController(userService)
	gameController := controllers.NewGameController(gameService, userService)
	messageController := controllers.NewMessageController(messageService, userService)
	assistantController := controllers.NewAssistantController(aiAssistant, chatLogService)
	wsController := controllers.NewWebSocketController(aiAssistant)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/auth/send-otp", authController.SendOTP)
		public.POST("/auth/verify-otp", authController.VerifyOTP)
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/reset-password", authController.ResetPassword)

		// Assistant chat, persisted only for authenticated patients
		public.POST("/ai-chat", middleware.OptionalAuth(userService), assistantController.Chat)

		// WebSocket for real-time assistant chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// Authenticated routes
	authed := router.Group("/api/v1")
	authed.Use(middleware.RequireAuth(userService))
	{
		// Profiles
		authed.GET("/users/me", userController.Me)
		authed.PUT("/users/me", userController.UpdateMe)
		authed.DELETE("/users/me", userController.DeleteMe)
		authed.GET("/users/:id", userController.GetByID)
		authed.DELETE("/users/:id", userController.DeletePatient)

		// Doctor linking
		authed.POST("/link-doctor", userController.LinkDoctor)
		authed.GET("/my-patients", userController.MyPatients)
		authed.POST("/patients/:id/disconnect", userController.DisconnectPatient)

		// Game progress
		authed.POST("/game-sessions", gameController.Create)
		authed.GET("/game-sessions", gameController.MySessions)
		authed.GET("/game-sessions/:id", gameController.SessionDetails)
		authed.GET("/patients/:id/game-sessions", gameController.PatientSessions)
		authed.GET("/patients/:id/game-stats", gameController.PatientStats)

		// Direct messaging
		authed.POST("/messages", messageController.Send)
		authed.GET("/messages/partners", messageController.Partners)
		authed.GET("/messages/with/:id", messageController.Conversation)
		authed.DELETE("/messages/:id", messageController.Delete)

		// Assistant chat history
		authed.GET("/ai-chat/history", assistantController.History)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
