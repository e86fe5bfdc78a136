package projects

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pm-ajay/monitoring-backend/pkg/response"
)

// Handler handles HTTP requests for projects
type Handler struct {
	service *Service
}

// NewHandler creates a new projects handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers project routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	p := rg.Group("/projects")
	{
		p.GET("", h.list)
		p.POST("", h.create)
		p.GET("/:id", h.get)
		p.PUT("/:id", h.update)
		p.DELETE("/:id", h.delete)
	}
}

func (h *Handler) create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, project, "project created")
}

func (h *Handler) list(c *gin.Context) {
	filter := ProjectFilter{}
	if v := c.Query("component"); v != "" {
		comp := SchemeComponent(v)
		filter.Component = &comp
	}
	if v := c.Query("status"); v != "" {
		status := ProjectStatus(v)
		filter.Status = &status
	}
	if v := c.Query("state"); v != "" {
		filter.State = &v
	}
	if v := c.Query("district"); v != "" {
		filter.District = &v
	}
	if v := c.Query("agency_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "invalid agency_id")
			return
		}
		filter.AgencyID = &id
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, list, "")
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, project, "")
}

func (h *Handler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	project, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, project, "project updated")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil, "project deleted")
}
