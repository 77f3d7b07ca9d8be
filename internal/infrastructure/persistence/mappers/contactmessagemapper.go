package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/contact"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func ContactMessageToModel(msg *contact.Message) (*models.ContactMessageModel, error) {
	model := &models.ContactMessageModel{
		ID:        msg.ID(),
		WebsiteID: msg.WebsiteID(),
		Email:     msg.Email(),
		Name:      msg.Name(),
		Subject:   msg.Subject(),
		Body:      msg.Body(),
		Status:    msg.Status().String(),
		IPAddress: msg.IPAddress(),
		UserAgent: msg.UserAgent(),
		Notes:     msg.Notes(),
		ReadAt:    msg.ReadAt(),
		RepliedAt: msg.RepliedAt(),
		CreatedAt: msg.CreatedAt(),
		UpdatedAt: msg.UpdatedAt(),
	}

	if form := msg.FormData(); len(form) > 0 {
		raw, err := json.Marshal(form)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal form data: %w", err)
		}
		model.FormData = raw
	}

	return model, nil
}

func ContactMessageToDomain(model *models.ContactMessageModel) (*contact.Message, error) {
	status := contact.MessageStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid message status: %s", model.Status)
	}

	var formData map[string]any
	if len(model.FormData) > 0 {
		if err := json.Unmarshal(model.FormData, &formData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal form data: %w", err)
		}
	}

	return contact.ReconstructMessage(
		model.ID, model.WebsiteID,
		formData,
		model.Email, model.Name, model.Subject, model.Body,
		status,
		model.IPAddress, model.UserAgent, model.Notes,
		model.ReadAt, model.RepliedAt,
		model.CreatedAt, model.UpdatedAt,
	)
}
