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

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *entity.Question) error {
	m := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuestionRepositoryImpl) Update(ctx context.Context, question *entity.Question) error {
	m := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuestionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}

func (r *QuestionRepositoryImpl) DeleteAllByCategoryId(ctx context.Context, categoryId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("category_id = ?", categoryId).Delete(&model.Question{}).Error
}

func (r *QuestionRepositoryImpl) SetOrder(ctx context.Context, categoryId, questionId uuid.UUID, order int) error {
	// Scoping by category means foreign ids simply match nothing.
	return r.db.WithContext(ctx).
		Model(&model.Question{}).
		Where("id = ? AND category_id = ?", questionId, categoryId).
		Update("order", order).Error
}

func (r *QuestionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	var m model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var models []*model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Question{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
