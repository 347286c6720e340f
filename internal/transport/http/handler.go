package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"AESCipherService/algorithm/aescipher"
	"AESCipherService/algorithm/symmetric"
	"AESCipherService/internal/auth"
	"AESCipherService/internal/domain"
	myErrors "AESCipherService/internal/errors"
	"AESCipherService/internal/service"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct {
	services *service.Service
}

func NewCipherHandler(services *service.Service) *CipherHandler {
	return &CipherHandler{
		services: services,
	}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type encryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key"`
	KeyID     string `json:"key_id"`
	Mode      string `json:"mode" binding:"required"`
	IV        string `json:"iv"`
}

type decryptRequest struct {
	CipherHex string `json:"cipher_hex" binding:"required"`
	Key       string `json:"key"`
	KeyID     string `json:"key_id"`
	Mode      string `json:"mode" binding:"required"`
	IV        string `json:"iv"`
}

type createKeyRequest struct {
	Name string `json:"name" binding:"required"`
	Key  string `json:"key"`
}

type keyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	KeyHex    string `json:"key_hex"`
	CreatedAt string `json:"created_at"`
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "AES cipher service is running",
	})
}

func (h *CipherHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("Register request received", "username", req.Username)
	userID, err := h.services.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, myErrors.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": userID})
}

func (h *CipherHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("Login request received", "username", req.Username)
	userID, err := h.services.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, myErrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, myErrors.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": userID})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": myErrors.ErrUnauthorized.Error()})
		return
	}

	var req encryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.services.Encrypt(c.Request.Context(), userID, domain.CipherRequest{
		Plaintext: req.Plaintext,
		Key:       req.Key,
		KeyID:     req.KeyID,
		Mode:      req.Mode,
		IV:        req.IV,
	})
	if err != nil {
		c.JSON(cipherErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"cipher_hex": result.CipherHex}
	if result.IVHex != "" {
		response["iv_hex"] = result.IVHex
	}
	c.JSON(http.StatusOK, response)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": myErrors.ErrUnauthorized.Error()})
		return
	}

	var req decryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plaintext, err := h.services.Decrypt(c.Request.Context(), userID, domain.CipherRequest{
		CipherHex: req.CipherHex,
		Key:       req.Key,
		KeyID:     req.KeyID,
		Mode:      req.Mode,
		IV:        req.IV,
	})
	if err != nil {
		c.JSON(cipherErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plaintext": plaintext})
}

func (h *CipherHandler) CreateKey(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": myErrors.ErrUnauthorized.Error()})
		return
	}

	var req createKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, err := h.services.CreateKey(c.Request.Context(), userID, req.Name, req.Key)
	if err != nil {
		c.JSON(cipherErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toKeyResponse(key))
}

func (h *CipherHandler) ListKeys(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": myErrors.ErrUnauthorized.Error()})
		return
	}

	keys, err := h.services.ListKeys(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]keyResponse, 0, len(keys))
	for _, key := range keys {
		response = append(response, toKeyResponse(key))
	}
	c.JSON(http.StatusOK, gin.H{"keys": response})
}

func (h *CipherHandler) GetKey(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": myErrors.ErrUnauthorized.Error()})
		return
	}

	key, err := h.services.GetKey(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, myErrors.ErrKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toKeyResponse(key))
}

func toKeyResponse(key domain.AESKey) keyResponse {
	return keyResponse{
		ID:        key.ID,
		Name:      key.Name,
		KeyHex:    key.KeyHex,
		CreatedAt: key.CreatedAt.Format(time.RFC3339),
	}
}

// cipherErrorStatus maps the cipher error taxonomy onto HTTP status codes.
// Malformed input is the caller's fault; everything else is internal.
func cipherErrorStatus(err error) int {
	switch {
	case errors.Is(err, aescipher.ErrInvalidKey),
		errors.Is(err, aescipher.ErrInvalidIV),
		errors.Is(err, aescipher.ErrInvalidHex),
		errors.Is(err, aescipher.ErrUnsupportedMode),
		errors.Is(err, symmetric.ErrInvalidPadding),
		errors.Is(err, symmetric.ErrMisalignedLength),
		errors.Is(err, symmetric.ErrUnsupportedMode),
		errors.Is(err, myErrors.ErrMissingKey):
		return http.StatusBadRequest
	case errors.Is(err, myErrors.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, myErrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
