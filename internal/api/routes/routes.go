package routes

import (
	"eperson-backend/internal/api/handlers"
	"eperson-backend/internal/api/middleware"
	"eperson-backend/internal/config"
	"eperson-backend/internal/repository"
	"eperson-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	transactor := repository.NewGormTransactor(db, repos)

	// Initialize services
	groupService := service.NewGroupService(repos, transactor, validator, cfg.GroupSearchFields)
	epersonService := service.NewEPersonService(repos.EPeople, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	groupHandler := handlers.NewGroupHandler(groupService)
	epersonHandler := handlers.NewEPersonHandler(epersonService, groupService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Group routes
		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.SearchGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/all", groupHandler.ListGroups)
			groups.GET("/count", groupHandler.CountGroups)
			groups.GET("/empty", groupHandler.GetEmptyGroups)
			groups.GET("/by-name/:name", groupHandler.GetGroupByName)
			groups.GET("/by-metadata", groupHandler.GetGroupByMetadata)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.POST("/:id/members", groupHandler.AddMember)
			groups.DELETE("/:id/members/:epersonId", groupHandler.RemoveMember)
			groups.POST("/:id/subgroups", groupHandler.AddSubgroup)
			groups.DELETE("/:id/subgroups/:childId", groupHandler.RemoveSubgroup)
		}

		// Group nesting routes
		group2group := v1.Group("/group2group")
		{
			group2group.GET("", groupHandler.GetGroup2Group)
			group2group.POST("/cache/rebuild", groupHandler.RebuildCache)
		}

		// EPerson routes
		epersons := v1.Group("/epersons")
		{
			epersons.POST("", epersonHandler.CreateEPerson)
			epersons.GET("", epersonHandler.GetEPersonByEmail)
			epersons.GET("/:id", epersonHandler.GetEPerson)
			epersons.GET("/:id/groups", epersonHandler.GetEPersonGroups)
			epersons.GET("/:id/memberships/:name", epersonHandler.CheckMembership)
		}
	}

	return router
}
