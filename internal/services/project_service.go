package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"portfolio.dev/internal/metrics"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/storage"
)

// ErrProjectNotFound is returned when no stored record has the requested id.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService reads project records from the key-value store
type ProjectService struct {
	store   storage.Store
	key     string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewProjectService creates a new ProjectService reading the collection at key
func NewProjectService(store storage.Store, key string, logger *zap.Logger, m *metrics.Metrics) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		store:   store,
		key:     key,
		logger:  logger,
		metrics: m,
	}
}

// collection reads and decodes the stored collection. A missing key is an
// empty collection.
func (s *ProjectService) collection(ctx context.Context) ([]models.Project, error) {
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.Project{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.key, err)
	}
	return models.DecodeCollection(raw), nil
}

// GetAll returns every stored record, normalized
func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	stored, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]models.Project, 0, len(stored))
	for _, p := range stored {
		if !p.IsRecord() {
			continue
		}
		projects = append(projects, models.Normalize(p))
	}
	return projects, nil
}

// GetByID returns the first stored record whose id matches, as stored
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	stored, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stored {
		if models.MatchID(stored[i], id) {
			return &stored[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Load finds the record for id and returns its normalized copy
func (s *ProjectService) Load(ctx context.Context, id string) (models.Project, error) {
	found, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			s.metrics.ObserveLoad(metrics.LoadNotFound)
		} else {
			s.metrics.ObserveLoad(metrics.LoadError)
		}
		return models.Project{}, err
	}

	project := models.Normalize(*found)
	s.metrics.ObserveLoad(metrics.LoadLoaded)
	s.logger.Debug("loaded project",
		zap.String("id", project.ID),
		zap.String("title", project.Title),
		zap.Strings("tech_stack", project.TechStack),
		zap.Int("features", len(project.Features)),
		zap.String("github", project.Github),
	)
	return project, nil
}
