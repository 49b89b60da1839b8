package request

// UpdateSettingsRequest represents a receipt settings update request.
// Paper width is fixed and not accepted here.
type UpdateSettingsRequest struct {
	PaperHeight      *int    `json:"paper_height" binding:"omitempty,min=1"`
	TitleFontSize    *int    `json:"title_font_size" binding:"omitempty,min=6,max=72"`
	SubtitleFontSize *int    `json:"subtitle_font_size" binding:"omitempty,min=6,max=72"`
	BodyFontSize     *int    `json:"body_font_size" binding:"omitempty,min=6,max=72"`
	BusinessName     *string `json:"business_name" binding:"omitempty,min=1,max=255"`
	BusinessSubtitle *string `json:"business_subtitle" binding:"omitempty,min=1,max=255"`
	BusinessAddress  *string `json:"business_address" binding:"omitempty,max=255"`
	BusinessPhone    *string `json:"business_phone" binding:"omitempty,max=50"`
	BusinessEmail    *string `json:"business_email" binding:"omitempty,max=255"`
}

// ChangeAdminPasswordRequest represents an admin gate secret change request
type ChangeAdminPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}
