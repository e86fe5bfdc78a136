package milestones

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pm-ajay/monitoring-backend/pkg/response"
)

// Handler handles HTTP requests for milestones
type Handler struct {
	service *Service
}

// NewHandler creates a new milestones handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers milestone routes under /projects/:id.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects/:id/milestones", h.list)
	rg.POST("/projects/:id/milestones", h.create)
	rg.PUT("/projects/:id/milestones/:mid", h.update)
	rg.DELETE("/projects/:id/milestones/:mid", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), projectID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, m, "milestone created")
}

func (h *Handler) list(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	ms, err := h.service.List(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, ms, "")
}

func (h *Handler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		response.BadRequest(c, "invalid milestone id")
		return
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, m, "milestone updated")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		response.BadRequest(c, "invalid milestone id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil, "milestone deleted")
}
