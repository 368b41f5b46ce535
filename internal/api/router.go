package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/metamorph/greenspace-backend-go/internal/config"
	"github.com/metamorph/greenspace-backend-go/internal/database"
	"github.com/metamorph/greenspace-backend-go/internal/handler"
	"github.com/metamorph/greenspace-backend-go/internal/jobs"
	"github.com/metamorph/greenspace-backend-go/internal/middleware"
	"github.com/metamorph/greenspace-backend-go/internal/repository"
	"github.com/metamorph/greenspace-backend-go/internal/scoring"
	"github.com/metamorph/greenspace-backend-go/internal/service"
)

// SetupRouter builds the gin engine and wires all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Greenspace Backend API is running",
		})
	})

	analysisService := service.NewAnalysisService()
	optimizerService := service.NewOptimizerService(
		scoring.NewHeuristicScorer(),
		jobs.NewStore(),
		cfg.GridSize,
		cfg.EdgeMaxDistance,
	)
	projectService := service.NewProjectService(
		repository.NewProjectRepository(database.GetDB()),
	)

	analysisHandler := handler.NewAnalysisHandler(analysisService)
	plannerHandler := handler.NewPlannerHandler(optimizerService)
	projectHandler := handler.NewProjectHandler(projectService)

	api := r.Group("/api/v1")
	{
		// 场景分析接口
		analysis := api.Group("/analysis")
		{
			analysis.POST("/run", analysisHandler.RunAnalysis)
			analysis.POST("/terrain", analysisHandler.AnalyzeTerrain)
			analysis.POST("/environmental-impact", analysisHandler.EnvironmentalImpact)
			analysis.POST("/social-impact", analysisHandler.SocialImpact)
		}

		// 优化接口，带限流
		planner := api.Group("/planner")
		planner.Use(middleware.RateLimit(30, time.Minute))
		{
			planner.GET("/status", plannerHandler.Status)
			planner.POST("/optimize", plannerHandler.Optimize)
			planner.POST("/real-time-optimization", plannerHandler.RealTimeOptimize)
			planner.POST("/scenario-comparison", plannerHandler.CompareScenarios)
			planner.POST("/train", plannerHandler.StartTraining)
			planner.GET("/jobs/:id", plannerHandler.JobStatus)
		}

		// 项目接口
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}
	}

	return r
}
