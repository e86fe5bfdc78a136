package documents

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pm-ajay/monitoring-backend/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects/:id/documents", h.list)
	rg.POST("/projects/:id/documents", h.upload)

	d := rg.Group("/documents")
	{
		d.GET("/:id", h.get)
		d.PUT("/:id", h.update)
		d.DELETE("/:id", h.delete)
	}
}

func (h *Handler) upload(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read uploaded file")
		return
	}
	defer f.Close()

	req := UploadRequest{
		ProjectID:    projectID,
		Name:         fileHeader.Filename,
		Description:  c.PostForm("description"),
		DocumentType: DocumentType(c.PostForm("document_type")),
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Content:      f,
	}
	if v, ok := c.Get("userID"); ok {
		if id, err := uuid.Parse(v.(string)); err == nil {
			req.UploadedBy = &id
		}
	}

	doc, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc, "document uploaded")
}

func (h *Handler) list(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	list, err := h.service.List(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, list, "")
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid document id")
		return
	}

	doc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doc, "")
}

func (h *Handler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid document id")
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	doc, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doc, "document updated")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid document id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil, "document deleted")
}
