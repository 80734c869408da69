package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"
)

// RSAHandler defines the interface for handling textbook RSA operations
type RSAHandler interface {
	Health(ctx *gin.Context)
	GenerateKeys(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Primality(ctx *gin.Context)
}

// rsaHandler struct holds the service
type rsaHandler struct {
	rsaService rsa.RSAService
	logger     logger.Logger
}

// NewRSAHandler creates a new RSAHandler
func NewRSAHandler(rsaService rsa.RSAService, logger logger.Logger) RSAHandler {
	return &rsaHandler{
		rsaService: rsaService,
		logger:     logger,
	}
}

// Health handles the GET request reporting liveness
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (handler *rsaHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// GenerateKeys handles the POST request to derive a fresh keypair
// @Summary Generate a textbook RSA keypair
// @Description Generate two distinct primes of bits_per_prime bits, or use the supplied ones, and derive n, phi, e and d.
// @Tags Keys
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeysRequest false "Keypair parameters"
// @Success 200 {object} KeypairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /keys [post]
func (handler *rsaHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeysRequest

	// an empty body selects every default
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			handler.respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key parameters: %v", err))
			return
		}
	}

	if err := request.Validate(); err != nil {
		handler.respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	bitsPerPrime := rsa.DefaultBitsPerPrime
	if request.BitsPerPrime != nil {
		bitsPerPrime = *request.BitsPerPrime
	}

	view, err := handler.rsaService.GenerateKeypair(ctx.Request.Context(), bitsPerPrime, (*string)(request.P), (*string)(request.Q))
	if err != nil {
		handler.respondServiceError(ctx, "error generating keys", err)
		return
	}

	ctx.JSON(http.StatusOK, KeypairResponse{
		P:            view.P,
		Q:            view.Q,
		N:            view.N,
		Phi:          view.Phi,
		E:            view.E,
		D:            view.D,
		BitsPerPrime: view.BitsPerPrime,
	})
}

// Encrypt handles the POST request to encrypt a message byte by byte
// @Summary Encrypt text with a public key
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Message and public key"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *rsaHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid encryption data: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		handler.respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	cipher, err := handler.rsaService.Encrypt(ctx.Request.Context(), request.Message, string(request.E), string(request.N))
	if err != nil {
		handler.respondServiceError(ctx, "error encrypting message", err)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Cipher: cipher})
}

// Decrypt handles the POST request to decrypt cipher blocks into text
// @Summary Decrypt cipher blocks with a private key
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Cipher blocks and private key"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *rsaHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid decryption data: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		handler.respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	message, err := handler.rsaService.Decrypt(ctx.Request.Context(), decimalsToStrings(request.Cipher), string(request.D), string(request.N))
	if err != nil {
		handler.respondServiceError(ctx, "error decrypting cipher", err)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Message: message})
}

// Primality handles the POST request to run the Miller-Rabin test
// @Summary Test a number for primality
// @Description Runs Miller-Rabin with the given number of rounds, or the engine default when rounds is omitted.
// @Tags Primes
// @Accept json
// @Produce json
// @Param requestBody body PrimalityRequest true "Number and rounds"
// @Success 200 {object} PrimalityResponse
// @Failure 400 {object} ErrorResponse
// @Router /primality [post]
func (handler *rsaHandler) Primality(ctx *gin.Context) {
	var request PrimalityRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid primality data: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		handler.respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	rounds := 0
	if request.Rounds != nil {
		rounds = *request.Rounds
	}

	view, err := handler.rsaService.IsProbablePrime(ctx.Request.Context(), string(request.N), rounds)
	if err != nil {
		handler.respondServiceError(ctx, "error testing primality", err)
		return
	}

	ctx.JSON(http.StatusOK, PrimalityResponse{N: view.N, Rounds: view.Rounds, ProbablePrime: view.ProbablePrime})
}

func (handler *rsaHandler) respondServiceError(ctx *gin.Context, prefix string, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		handler.requestLogger(ctx).Error(prefix, ": ", err)
	}
	handler.respondError(ctx, status, fmt.Sprintf("%s: %v", prefix, err))
}

func (handler *rsaHandler) respondError(ctx *gin.Context, status int, message string) {
	var errorResponse ErrorResponse
	errorResponse.Message = message
	ctx.JSON(status, errorResponse)
}

func (handler *rsaHandler) requestLogger(ctx *gin.Context) logger.Logger {
	if id := ctx.GetString(RequestIDKey); id != "" {
		return handler.logger.With("request_id", id)
	}
	return handler.logger
}

// statusForError maps engine error kinds to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, rsa.ErrPrimeGenerationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, rsa.ErrExponentSearchExhausted):
		return http.StatusUnprocessableEntity
	case rsa.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
