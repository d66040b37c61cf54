package implementation

import (
	"context"
	"errors"

	"proofly-be/internal/entity"
	"proofly-be/internal/mapper"
	"proofly-be/internal/model"
	"proofly-be/internal/repository/contract"
	"proofly-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) contract.ProjectRepository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entity.Project) error {
	m := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *entity.Project) error {
	m := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

func (r *ProjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	var m model.Project
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	var models []*model.Project
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
