package usecase

import (
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

func toBuildingResponse(b *entity.Building) *dto.BuildingResponse {
	if b == nil {
		return nil
	}
	return &dto.BuildingResponse{
		ID:        b.ID,
		Address:   b.Address,
		Longitude: b.Longitude,
		Latitude:  b.Latitude,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toActivityResponse(a entity.Activity) dto.ActivityResponse {
	out := dto.ActivityResponse{
		ID:        a.ID,
		Name:      a.Name,
		ParentID:  a.ParentID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	for _, c := range a.Children {
		out.Children = append(out.Children, toActivityResponse(c))
	}
	return out
}

func toOrganizationResponse(o *entity.Organization) dto.OrganizationResponse {
	out := dto.OrganizationResponse{
		ID:         o.ID,
		Name:       o.Name,
		Phones:     make([]dto.OrganizationPhoneResponse, 0, len(o.Phones)),
		Activities: make([]dto.ActivityResponse, 0, len(o.Activities)),
		Building:   toBuildingResponse(o.Building),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, p := range o.Phones {
		out.Phones = append(out.Phones, dto.OrganizationPhoneResponse{
			ID:        p.ID,
			Phone:     p.Phone,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	for _, a := range o.Activities {
		out.Activities = append(out.Activities, toActivityResponse(a))
	}
	return out
}

func toOrganizationResponses(list []*entity.Organization) []dto.OrganizationResponse {
	items := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrganizationResponse(o))
	}
	return items
}
