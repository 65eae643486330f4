package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	jwtsvc "fleetbook/internal/pkg/jwt"
	"fleetbook/internal/pkg/response"
)

// Handler implements the role-selection login stub. There are no user
// accounts: the client picks a role and receives a token carrying it.
type Handler struct {
	jwt *jwtsvc.Service
}

func NewHandler(jwt *jwtsvc.Service) *Handler {
	return &Handler{jwt: jwt}
}

var allowedRoles = map[string]bool{
	"admin":    true,
	"customer": true,
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/session", h.Create)
}

type createSessionRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if !allowedRoles[req.Role] {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "role must be admin or customer")
		return
	}

	token, err := h.jwt.GenerateToken(req.Role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"token": token, "role": req.Role})
}
