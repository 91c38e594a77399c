package handlers

import (
	"net/http"

	"visionvault_backend/internal/services"
	"visionvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DesignerHandler struct {
	*BaseHandler
	service services.DesignerService
}

func NewDesignerHandler(base *BaseHandler, service services.DesignerService) *DesignerHandler {
	return &DesignerHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *DesignerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	designer := rg.Group("/designer")
	{
		designer.POST("/register", h.Register)
		designer.POST("/login", h.Login)
		designer.GET("", h.List)
		designer.GET("/:id", h.GetProfile)
		designer.PUT("/:id", h.UpdateProfile)
		designer.POST("/forgotpassword", h.ForgotPassword)
		designer.GET("/resetpassword/:token", h.VerifyResetToken)
		designer.POST("/resetpassword/:token", h.ResetPassword)
	}
}

func (h *DesignerHandler) Register(c *gin.Context) {
	var req dto.RegisterDesignerRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	image, _ := c.FormFile("image")

	resp, err := h.service.Register(c.Request.Context(), h.GetDB(c), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Designer registered successfully", resp)
}

func (h *DesignerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Logged in successfully", resp)
}

func (h *DesignerHandler) List(c *gin.Context) {
	designers, err := h.service.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondList(c, designers, len(designers))
}

func (h *DesignerHandler) GetProfile(c *gin.Context) {
	designer, err := h.service.GetProfile(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", designer)
}

func (h *DesignerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateDesignerRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	image, _ := c.FormFile("image")

	designer, err := h.service.UpdateProfile(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Profile updated successfully", designer)
}

func (h *DesignerHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), h.GetDB(c), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Password reset link sent to your email.", nil)
}

func (h *DesignerHandler) VerifyResetToken(c *gin.Context) {
	resp, err := h.service.VerifyResetToken(h.GetDB(c), c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Reset token is valid. You can now reset your password.", resp)
}

func (h *DesignerHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.service.ResetPassword(h.GetDB(c), c.Param("token"), req.Password); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Password updated successfully", nil)
}
