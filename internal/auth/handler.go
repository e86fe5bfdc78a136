package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pm-ajay/monitoring-backend/internal/users"
	"pm-ajay/monitoring-backend/pkg/response"
	"pm-ajay/monitoring-backend/pkg/validate"
)

type Handler struct {
	service *Service
	users   *users.Service
}

func NewHandler(service *Service, userSvc *users.Service) *Handler {
	return &Handler{service: service, users: userSvc}
}

// RegisterPublicRoutes mounts the routes that must work without a token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.login)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.me)
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res, "login successful")
}

func (h *Handler) me(c *gin.Context) {
	id, err := uuid.Parse(c.GetString(ContextUserID))
	if err != nil {
		response.BadRequest(c, "no authenticated user")
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user, "")
}
