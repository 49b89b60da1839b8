package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/studiopos/salon-api/internal/application/service"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/request"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles receipt settings HTTP requests
type SettingsHandler struct {
	settingsService   *service.SettingsService
	credentialService *service.CredentialService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService, credentialService *service.CredentialService) *SettingsHandler {
	return &SettingsHandler{
		settingsService:   settingsService,
		credentialService: credentialService,
	}
}

// GetSettings retrieves the receipt settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the receipt settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		PaperHeight:      req.PaperHeight,
		TitleFontSize:    req.TitleFontSize,
		SubtitleFontSize: req.SubtitleFontSize,
		BodyFontSize:     req.BodyFontSize,
		BusinessName:     req.BusinessName,
		BusinessSubtitle: req.BusinessSubtitle,
		BusinessAddress:  req.BusinessAddress,
		BusinessPhone:    req.BusinessPhone,
		BusinessEmail:    req.BusinessEmail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// ChangeAdminPassword rotates the admin gate secret
func (h *SettingsHandler) ChangeAdminPassword(c *gin.Context) {
	var req request.ChangeAdminPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.credentialService.Set(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin password changed successfully", nil)
}
