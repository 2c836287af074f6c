package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
)

// CatalogService manages the reference data items classify against:
// categories, karat grades and sale regions.
type CatalogService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewCatalogService(db *pgxpool.Pool, queries *sqlc.Queries) *CatalogService {
	return &CatalogService{db: db, queries: queries}
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, avatar string) (*domain.Category, error) {
	row, err := s.queries.CreateCategory(ctx, sqlc.CreateCategoryParams{Name: name, Avatar: avatar})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return rowToCategory(row), nil
}

func (s *CatalogService) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	row, err := s.queries.GetCategoryByName(ctx, name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return rowToCategory(row), nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := s.queries.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, rowToCategory(row))
	}
	return categories, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, name string) error {
	rows, err := s.queries.DeleteCategory(ctx, name)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (s *CatalogService) CreateKarat(ctx context.Context, name string) (*domain.Karat, error) {
	row, err := s.queries.CreateKarat(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create karat: %w", err)
	}
	return rowToKarat(row), nil
}

func (s *CatalogService) GetKarat(ctx context.Context, name string) (*domain.Karat, error) {
	row, err := s.queries.GetKaratByName(ctx, name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrKaratNotFound
		}
		return nil, fmt.Errorf("get karat: %w", err)
	}
	return rowToKarat(row), nil
}

func (s *CatalogService) ListKarats(ctx context.Context) ([]*domain.Karat, error) {
	rows, err := s.queries.ListKarats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list karats: %w", err)
	}
	karats := make([]*domain.Karat, 0, len(rows))
	for _, row := range rows {
		karats = append(karats, rowToKarat(row))
	}
	return karats, nil
}

func (s *CatalogService) DeleteKarat(ctx context.Context, name string) error {
	rows, err := s.queries.DeleteKarat(ctx, name)
	if err != nil {
		return fmt.Errorf("delete karat: %w", err)
	}
	if rows == 0 {
		return domain.ErrKaratNotFound
	}
	return nil
}

func (s *CatalogService) ListGeofences(ctx context.Context) ([]*domain.Geofence, error) {
	rows, err := s.queries.ListGeofences(ctx)
	if err != nil {
		return nil, fmt.Errorf("list geofences: %w", err)
	}
	geofences := make([]*domain.Geofence, 0, len(rows))
	for _, row := range rows {
		geofences = append(geofences, rowToGeofence(row))
	}
	return geofences, nil
}
