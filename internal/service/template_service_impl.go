package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
)

type templateService struct {
	templates repository.PathTemplateRepo
}

func NewTemplateService(templates repository.PathTemplateRepo) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) List(ctx context.Context) ([]*domain.PathTemplate, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing path templates: %w", err)
	}
	return templates, nil
}

func (s *templateService) Get(ctx context.Context, id string) (*domain.PathTemplate, error) {
	return s.templates.GetTree(ctx, id)
}
