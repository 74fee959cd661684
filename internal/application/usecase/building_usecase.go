package usecase

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/pkg/pagination"
)

// BuildingUseCase listado paginado de edificios.
type BuildingUseCase struct {
	repo    repository.BuildingRepository
	perPage int
}

// NewBuildingUseCase construye el caso de uso; perPage viene de PAGINATION_COUNT.
func NewBuildingUseCase(repo repository.BuildingRepository, perPage int) *BuildingUseCase {
	return &BuildingUseCase{repo: repo, perPage: perPage}
}

// List devuelve la página solicitada de edificios ordenados por id.
func (uc *BuildingUseCase) List(ctx context.Context, page int) (*dto.ListResult[dto.BuildingResponse], error) {
	req := pagination.NewRequest(page, uc.perPage)
	list, total, err := uc.repo.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.BuildingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBuildingResponse(b))
	}
	return &dto.ListResult[dto.BuildingResponse]{Items: items, Total: total, Page: req}, nil
}
