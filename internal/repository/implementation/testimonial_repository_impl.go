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

type TestimonialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TestimonialMapper
}

func NewTestimonialRepository(db *gorm.DB) contract.TestimonialRepository {
	return &TestimonialRepositoryImpl{
		db:     db,
		mapper: mapper.NewTestimonialMapper(),
	}
}

func (r *TestimonialRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	m := r.mapper.ToModel(testimonial)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*testimonial = *r.mapper.ToEntity(m)
	return nil
}

func (r *TestimonialRepositoryImpl) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	m := r.mapper.ToModel(testimonial)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*testimonial = *r.mapper.ToEntity(m)
	return nil
}

func (r *TestimonialRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Testimonial{}, id).Error
}

func (r *TestimonialRepositoryImpl) DeleteAllByCategoryId(ctx context.Context, categoryId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("category_id = ?", categoryId).Delete(&model.Testimonial{}).Error
}

func (r *TestimonialRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Testimonial, error) {
	var m model.Testimonial
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TestimonialRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	var models []*model.Testimonial
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TestimonialRepositoryImpl) FindForProject(ctx context.Context, projectId uuid.UUID, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	var models []*model.Testimonial
	query := r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Joins("JOIN categories ON categories.id = testimonials.category_id").
		Where("categories.project_id = ?", projectId)
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TestimonialRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Testimonial{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
