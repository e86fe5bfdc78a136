package funds

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pm-ajay/monitoring-backend/pkg/response"
)

// Handler handles HTTP requests for the fund ledger
type Handler struct {
	service *Service
}

// NewHandler creates a new fund ledger handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers fund ledger routes. Project-scoped routes hang
// off /projects/:id; global routes off /funds.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects/:id/funds", h.listForProject)
	rg.POST("/projects/:id/funds", h.recordForProject)

	f := rg.Group("/funds")
	{
		f.GET("", h.listAll)
		f.POST("", h.recordGlobal)
		f.GET("/:id", h.get)
		f.PUT("/:id", h.update)
		f.DELETE("/:id", h.delete)
	}
}

func (h *Handler) recordForProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}
	h.record(c, &projectID)
}

func (h *Handler) recordGlobal(c *gin.Context) {
	h.record(c, nil)
}

func (h *Handler) record(c *gin.Context, projectID *uuid.UUID) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tx, err := h.service.Record(c.Request.Context(), projectID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx, "transaction recorded")
}

func (h *Handler) listForProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	txs, err := h.service.List(c.Request.Context(), &projectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txs, "")
}

func (h *Handler) listAll(c *gin.Context) {
	txs, err := h.service.List(c.Request.Context(), nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txs, "")
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid transaction id")
		return
	}

	tx, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx, "")
}

func (h *Handler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid transaction id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tx, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx, "transaction updated")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid transaction id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil, "transaction deleted")
}
