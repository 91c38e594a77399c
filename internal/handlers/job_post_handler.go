package handlers

import (
	"mime/multipart"
	"net/http"

	"visionvault_backend/internal/services"
	"visionvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobPostHandler struct {
	*BaseHandler
	service services.JobPostService
}

func NewJobPostHandler(base *BaseHandler, service services.JobPostService) *JobPostHandler {
	return &JobPostHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *JobPostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	job := rg.Group("/job")
	{
		job.POST("", h.Create)
		job.GET("", h.List)
		job.GET("/current", h.ListCurrent)
		job.GET("/consumer/:consumerId", h.ListByConsumer)
		job.GET("/:id", h.Get)
		job.PUT("/:id", h.Update)
		job.DELETE("/:id", h.Delete)
	}
}

// formFiles collects the uploads under the given field; non-multipart
// requests simply carry none.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

func (h *JobPostHandler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req, formFiles(c, "referencePics"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Job post created successfully.", resp)
}

func (h *JobPostHandler) List(c *gin.Context) {
	jobPosts, err := h.service.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondList(c, jobPosts, len(jobPosts))
}

func (h *JobPostHandler) ListCurrent(c *gin.Context) {
	jobPosts, err := h.service.ListCurrent(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondList(c, jobPosts, len(jobPosts))
}

func (h *JobPostHandler) ListByConsumer(c *gin.Context) {
	jobPosts, err := h.service.ListByConsumer(h.GetDB(c), c.Param("consumerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondList(c, jobPosts, len(jobPosts))
}

func (h *JobPostHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", resp)
}

func (h *JobPostHandler) Update(c *gin.Context) {
	var req dto.UpdateContentRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, formFiles(c, "newImages"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Job post updated successfully", resp)
}

func (h *JobPostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Job post deleted successfully", nil)
}
