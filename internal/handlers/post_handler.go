package handlers

import (
	"net/http"

	"visionvault_backend/internal/services"
	"visionvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	service services.PostService
}

func NewPostHandler(base *BaseHandler, service services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	post := rg.Group("/post")
	{
		post.POST("", h.Create)
		post.GET("", h.List)
		post.GET("/designer/:designerId", h.ListByDesigner)
		post.GET("/:id", h.Get)
		post.PUT("/:id", h.Update)
		post.DELETE("/:id", h.Delete)
	}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req, formFiles(c, "referencePics"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Post created successfully.", resp)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondList(c, posts, len(posts))
}

func (h *PostHandler) ListByDesigner(c *gin.Context) {
	posts, err := h.service.ListByDesigner(h.GetDB(c), c.Param("designerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondList(c, posts, len(posts))
}

func (h *PostHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", resp)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdateContentRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, formFiles(c, "newImages"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Post updated successfully", resp)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Post deleted successfully", nil)
}
