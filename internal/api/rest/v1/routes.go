package v1

import (
	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, aesService crypto.AESService) {
	v1 := r.Group(BasePath)

	v1.GET("/health", Health)

	aesHandler := NewAESHandler(aesService)
	v1.POST("/aes/encrypt", aesHandler.Encrypt)
	v1.POST("/aes/decrypt", aesHandler.Decrypt)
	v1.POST("/aes/keys", aesHandler.GenerateKey)
	v1.POST("/aes/blocks", aesHandler.ShowBlocks)
}
