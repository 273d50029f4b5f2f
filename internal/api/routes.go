package api

import (
	"net/http"

	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/engine"
	"alcyxob/adaptive-coach/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	programService service.ProgramService,
	mediaService service.MediaService,
	cat catalog.Catalog,
	templates *engine.TemplateRepository,
) {
	authHandler := NewAuthHandler(authService)
	programHandler := NewProgramHandler(programService)
	mediaHandler := NewMediaHandler(mediaService)
	catalogHandler := NewCatalogHandler(cat, templates)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.GetMe)
		protected.PUT("/me/profile", authHandler.UpdateProfile)

		// --- Catalog (read-only reference data) ---
		protected.GET("/exercises", catalogHandler.ListExercises)
		protected.GET("/exercises/:exerciseId", catalogHandler.GetExercise)
		protected.GET("/templates", catalogHandler.ListTemplates)

		// --- Program lifecycle ---
		programGroup := protected.Group("/programs")
		{
			programGroup.POST("", programHandler.StartProgram)
			programGroup.GET("/active", programHandler.GetActiveProgram)

			programGroup.POST("/:programId/weeks", programHandler.GenerateNextWeek)
			programGroup.POST("/:programId/weeks/:weekNumber/materialize", programHandler.MaterializeWeek)
			programGroup.PUT("/:programId/weeks/:weekNumber/status", programHandler.SetWeekStatus)
			programGroup.GET("/:programId/weeks/:weekNumber/analysis", programHandler.GetWeekAnalysis)

			programGroup.POST("/:programId/completions", programHandler.RecordCompletion)
			programGroup.GET("/:programId/gate", programHandler.CheckPrerequisites)
			programGroup.GET("/:programId/insight", programHandler.GetInsight)
		}

		// --- Form-check media ---
		mediaGroup := protected.Group("/media")
		{
			mediaGroup.POST("/uploads", mediaHandler.RequestUpload)
			mediaGroup.GET("/uploads/:uploadId/download", mediaHandler.GetDownloadURL)
		}
	}
}
