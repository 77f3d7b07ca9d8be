package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/contact"
)

type ContactMessageDTO struct {
	ID        uint           `json:"id"`
	WebsiteID uint           `json:"website_id"`
	FormData  map[string]any `json:"form_data"`
	Email     string         `json:"email"`
	Name      string         `json:"name,omitempty"`
	Subject   string         `json:"subject,omitempty"`
	Message   string         `json:"message,omitempty"`
	Status    string         `json:"status"`
	IPAddress string         `json:"ip_address,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	RepliedAt *time.Time     `json:"replied_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func ToContactMessageDTO(msg *contact.Message) *ContactMessageDTO {
	if msg == nil {
		return nil
	}
	return &ContactMessageDTO{
		ID:        msg.ID(),
		WebsiteID: msg.WebsiteID(),
		FormData:  msg.FormData(),
		Email:     msg.Email(),
		Name:      msg.Name(),
		Subject:   msg.Subject(),
		Message:   msg.Body(),
		Status:    msg.Status().String(),
		IPAddress: msg.IPAddress(),
		UserAgent: msg.UserAgent(),
		Notes:     msg.Notes(),
		ReadAt:    msg.ReadAt(),
		RepliedAt: msg.RepliedAt(),
		CreatedAt: msg.CreatedAt(),
	}
}

func ToContactMessageDTOList(msgs []*contact.Message) []*ContactMessageDTO {
	out := make([]*ContactMessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, ToContactMessageDTO(msg))
	}
	return out
}
