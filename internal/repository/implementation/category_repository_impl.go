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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	m := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.ToEntity(m)
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) error {
	m := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.ToEntity(m)
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *CategoryRepositoryImpl) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.Category{}).Error
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var m model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CategoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Category{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
