package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// AESHandler defines the interface for handling AES operations
type AESHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	GenerateKey(ctx *gin.Context)
	ShowBlocks(ctx *gin.Context)
}

// aesHandler struct holds the services
type aesHandler struct {
	aesService crypto.AESService
}

// NewAESHandler creates a new AESHandler
func NewAESHandler(aesService crypto.AESService) AESHandler {
	return &aesHandler{
		aesService: aesService,
	}
}

// Encrypt handles the POST request to encrypt a message
// @Summary Encrypt a message with AES-ECB and PKCS#7 padding
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Message and key"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/encrypt [post]
func (handler *aesHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	ciphertext, err := handler.aesService.Encrypt(ctx.Request.Context(), request.Message, request.Key)
	if err != nil {
		respondServiceError(ctx, "error encrypting message", err)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt Base64 ciphertext
// @Summary Decrypt Base64 AES-ECB ciphertext
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext and key"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/decrypt [post]
func (handler *aesHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	message, err := handler.aesService.Decrypt(ctx.Request.Context(), request.Ciphertext, request.Key)
	if err != nil {
		respondServiceError(ctx, "error decrypting message", err)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Message: message})
}

// GenerateKey handles the POST request to generate a random text key
// @Summary Generate a random AES text key
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key size in bytes"
// @Success 201 {object} GenerateKeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/keys [post]
func (handler *aesHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	key, err := handler.aesService.GenerateKey(ctx.Request.Context(), int(request.KeySize))
	if err != nil {
		respondServiceError(ctx, "error generating key", err)
		return
	}

	ctx.JSON(http.StatusCreated, GenerateKeyResponse{Key: key, KeySize: len(key)})
}

// ShowBlocks handles the POST request to show a message split into padded blocks
// @Summary Show the PKCS#7 padded message as hex blocks
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body BlocksRequest true "Message"
// @Success 200 {object} BlocksResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/blocks [post]
func (handler *aesHandler) ShowBlocks(ctx *gin.Context) {
	var request BlocksRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	blocks, err := handler.aesService.PaddedBlocks(ctx.Request.Context(), request.Message)
	if err != nil {
		respondServiceError(ctx, "error splitting message", err)
		return
	}

	ctx.JSON(http.StatusOK, BlocksResponse{BlockSize: crypto.AESBlockSize, Blocks: blocks})
}

// Health reports that the service is up
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}

// respondServiceError maps caller-facing cipher errors to 400 and everything else to 500.
func respondServiceError(ctx *gin.Context, prefix string, err error) {
	status := http.StatusInternalServerError
	if crypto.IsValidationError(err) {
		status = http.StatusBadRequest
	}
	respondError(ctx, status, fmt.Sprintf("%s: %v", prefix, err))
}
