package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"
)

// SetupRoutes sets up all the API routes for version 1.
// The unversioned routes keep existing front-ends working.
func SetupRoutes(r *gin.Engine, rsaService rsa.RSAService, logger logger.Logger) {
	rsaHandler := NewRSAHandler(rsaService, logger)

	v1 := r.Group(BasePath) // lookup in version file
	v1.GET("/health", rsaHandler.Health)
	v1.POST("/keys", rsaHandler.GenerateKeys)
	v1.POST("/encrypt", rsaHandler.Encrypt)
	v1.POST("/decrypt", rsaHandler.Decrypt)
	v1.POST("/primality", rsaHandler.Primality)

	// Legacy routes
	r.GET("/health", rsaHandler.Health)
	r.POST("/generate_keys", rsaHandler.GenerateKeys)
	r.POST("/encrypt", rsaHandler.Encrypt)
	r.POST("/decrypt", rsaHandler.Decrypt)
}
