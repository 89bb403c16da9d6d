package usecase

import (
	"context"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/domain/repository"
)

// CategoryUseCase lectura de categorías (el cliente arma su filtro con esto).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}
