package waitlist

import (
	"github.com/altchain/landing-api/internal/models"
	"github.com/altchain/landing-api/pkg/constants"
)

type JoinWaitlistRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"omitempty,max=255"`
	Language string `json:"language" binding:"omitempty,max=35"`
}

type JoinWaitlistResponse struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Language   string `json:"language"`
	IsExisting bool   `json:"is_existing"`
	CreatedAt  string `json:"created_at"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(email, name, langCode string) *models.WaitlistEntry {
	return &models.WaitlistEntry{
		Email:    email,
		Name:     name,
		Language: langCode,
	}
}

func ToJoinWaitlistResponse(entry *models.WaitlistEntry, isExisting bool) JoinWaitlistResponse {
	if entry == nil {
		return JoinWaitlistResponse{}
	}
	return JoinWaitlistResponse{
		ID:         entry.ID,
		Email:      entry.Email,
		Name:       entry.Name,
		Language:   entry.Language,
		IsExisting: isExisting,
		CreatedAt:  entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
