package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/logger"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, engine storage.Engine, log logger.Logger) {
	helloHandler := NewHelloHandler()
	r.GET("/", helloHandler.Index)
	r.GET("/hbnb", helloHandler.HBNB)
	r.GET("/c/:text", helloHandler.C)
	r.GET("/python/*text", helloHandler.Python)

	v1 := r.Group(BasePath) // lookup in version file

	entityHandler := NewEntityHandler(engine, log)
	v1.GET("/:type", entityHandler.List)
	v1.POST("/:type", entityHandler.Create)
	v1.GET("/:type/:id", entityHandler.GetByID)
	v1.DELETE("/:type/:id", entityHandler.DeleteByID)
}
