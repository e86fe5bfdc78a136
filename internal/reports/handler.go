package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pm-ajay/monitoring-backend/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	r := rg.Group("/reports")
	{
		r.GET("/fund-flow", h.fundFlow)
		r.GET("/fund-flow/export", h.exportFundFlow)
	}
}

func (h *Handler) fundFlow(c *gin.Context) {
	summary, err := h.service.FundFlow(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary, "")
}

func (h *Handler) exportFundFlow(c *gin.Context) {
	filename := fmt.Sprintf("fund-flow-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.service.ExportFundFlow(c.Request.Context(), c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
}
