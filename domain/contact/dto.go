package contact

type SendMessageRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,max=5000"`
}

type SendMessageResponse struct {
	Success bool `json:"success"`
}
