package handlers

import (
	"net/http"

	"visionvault_backend/internal/services"
	"visionvault_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ConsumerHandler struct {
	*BaseHandler
	service services.ConsumerService
}

func NewConsumerHandler(base *BaseHandler, service services.ConsumerService) *ConsumerHandler {
	return &ConsumerHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *ConsumerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	consumer := rg.Group("/consumer")
	{
		consumer.POST("/register", h.Register)
		consumer.POST("/login", h.Login)
		consumer.GET("/:id", h.GetProfile)
		consumer.PUT("/:id", h.UpdateProfile)
		consumer.POST("/forgotpassword", h.ForgotPassword)
		consumer.GET("/resetpassword/:token", h.VerifyResetToken)
		consumer.POST("/resetpassword/:token", h.ResetPassword)
	}
}

func (h *ConsumerHandler) Register(c *gin.Context) {
	var req dto.RegisterConsumerRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	image, _ := c.FormFile("image")

	resp, err := h.service.Register(c.Request.Context(), h.GetDB(c), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Consumer registered successfully", resp)
}

func (h *ConsumerHandler) Login(c *gin.Context) {
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

func (h *ConsumerHandler) GetProfile(c *gin.Context) {
	consumer, err := h.service.GetProfile(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", consumer)
}

func (h *ConsumerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateConsumerRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	image, _ := c.FormFile("image")

	consumer, err := h.service.UpdateProfile(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Profile updated successfully", consumer)
}

func (h *ConsumerHandler) ForgotPassword(c *gin.Context) {
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

func (h *ConsumerHandler) VerifyResetToken(c *gin.Context) {
	resp, err := h.service.VerifyResetToken(h.GetDB(c), c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Reset token is valid. You can now reset your password.", resp)
}

func (h *ConsumerHandler) ResetPassword(c *gin.Context) {
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
