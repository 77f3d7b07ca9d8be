package usecases

import (
	"context"

	"github.com/hostmail-io/hostmail/internal/application/subscription/dto"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
)

// ListPlansUseCase projects the plan catalog for the public pricing surface.
type ListPlansUseCase struct{}

func NewListPlansUseCase() *ListPlansUseCase {
	return &ListPlansUseCase{}
}

func (uc *ListPlansUseCase) Execute(_ context.Context) []*dto.PlanDTO {
	plans := vo.AllPlans()
	out := make([]*dto.PlanDTO, 0, len(plans))
	for _, plan := range plans {
		out = append(out, dto.ToPlanDTO(plan))
	}
	return out
}
