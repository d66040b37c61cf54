package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"proofly-be/internal/entity"
	"proofly-be/internal/repository/contract"
	"proofly-be/internal/repository/specification"
	"proofly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory unit of work. Specifications are interpreted by type switch,
// mirroring the SQL each one would produce.

type fakeUow struct {
	projects     []*entity.Project
	categories   []*entity.Category
	questions    []*entity.Question
	testimonials []*entity.Testimonial
	keys         []*entity.ApiKey

	begun     int
	committed int
	rolledBck int
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory() (*fakeFactory, *fakeUow) {
	uow := &fakeUow{}
	return &fakeFactory{uow: uow}, uow
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begun++; return nil }
func (u *fakeUow) Commit() error                   { u.committed++; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBck++; return nil }

func (u *fakeUow) ProjectRepository() contract.ProjectRepository {
	return &fakeProjectRepo{u: u}
}

func (u *fakeUow) CategoryRepository() contract.CategoryRepository {
	return &fakeCategoryRepo{u: u}
}

func (u *fakeUow) QuestionRepository() contract.QuestionRepository {
	return &fakeQuestionRepo{u: u}
}

func (u *fakeUow) TestimonialRepository() contract.TestimonialRepository {
	return &fakeTestimonialRepo{u: u}
}

func (u *fakeUow) ApiKeyRepository() contract.ApiKeyRepository {
	return &fakeApiKeyRepo{u: u}
}

func limitFrom(specs []specification.Specification) int {
	for _, spec := range specs {
		if l, ok := spec.(specification.Limit); ok {
			return l.N
		}
	}
	return 0
}

// Projects

type fakeProjectRepo struct {
	u *fakeUow
}

func projectMatches(p *entity.Project, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if p.OwnerId != s.OwnerID {
				return false
			}
		}
	}
	return true
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	clone := *project
	r.u.projects = append(r.u.projects, &clone)
	return nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	for i, existing := range r.u.projects {
		if existing.Id == project.Id {
			clone := *project
			r.u.projects[i] = &clone
		}
	}
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.u.projects[:0]
	for _, p := range r.u.projects {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.u.projects = kept
	return nil
}

func (r *fakeProjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	for _, p := range r.u.projects {
		if projectMatches(p, specs) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.u.projects {
		if projectMatches(p, specs) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Categories

type fakeCategoryRepo struct {
	u *fakeUow
}

func categoryMatches(c *entity.Category, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if c.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ByProjectID:
			if c.ProjectId != s.ProjectID {
				return false
			}
		case specification.BySlug:
			if c.Slug != s.Slug {
				return false
			}
		case specification.ActiveOnly:
			if !c.IsActive {
				return false
			}
		}
	}
	return true
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	clone := *category
	r.u.categories = append(r.u.categories, &clone)
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	for i, existing := range r.u.categories {
		if existing.Id == category.Id {
			clone := *category
			r.u.categories[i] = &clone
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.u.categories[:0]
	for _, c := range r.u.categories {
		if c.Id != id {
			kept = append(kept, c)
		}
	}
	r.u.categories = kept
	return nil
}

func (r *fakeCategoryRepo) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	kept := r.u.categories[:0]
	for _, c := range r.u.categories {
		if c.ProjectId != projectId {
			kept = append(kept, c)
		}
	}
	r.u.categories = kept
	return nil
}

func (r *fakeCategoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	for _, c := range r.u.categories {
		if categoryMatches(c, specs) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.u.categories {
		if categoryMatches(c, specs) {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Questions

type fakeQuestionRepo struct {
	u *fakeUow
}

func questionMatches(q *entity.Question, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if q.Id != s.ID {
				return false
			}
		case specification.ByCategoryID:
			if q.CategoryId != s.CategoryID {
				return false
			}
		case specification.ByCategoryIDs:
			found := false
			for _, id := range s.CategoryIDs {
				if q.CategoryId == id {
					found = true
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	clone := *question
	r.u.questions = append(r.u.questions, &clone)
	return nil
}

func (r *fakeQuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	for i, existing := range r.u.questions {
		if existing.Id == question.Id {
			clone := *question
			r.u.questions[i] = &clone
		}
	}
	return nil
}

func (r *fakeQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.u.questions[:0]
	for _, q := range r.u.questions {
		if q.Id != id {
			kept = append(kept, q)
		}
	}
	r.u.questions = kept
	return nil
}

func (r *fakeQuestionRepo) DeleteAllByCategoryId(ctx context.Context, categoryId uuid.UUID) error {
	kept := r.u.questions[:0]
	for _, q := range r.u.questions {
		if q.CategoryId != categoryId {
			kept = append(kept, q)
		}
	}
	r.u.questions = kept
	return nil
}

func (r *fakeQuestionRepo) SetOrder(ctx context.Context, categoryId, questionId uuid.UUID, order int) error {
	for _, q := range r.u.questions {
		if q.Id == questionId && q.CategoryId == categoryId {
			q.Order = order
		}
	}
	return nil
}

func (r *fakeQuestionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	for _, q := range r.u.questions {
		if questionMatches(q, specs) {
			clone := *q
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var out []*entity.Question
	for _, q := range r.u.questions {
		if questionMatches(q, specs) {
			clone := *q
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeQuestionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Testimonials

type fakeTestimonialRepo struct {
	u *fakeUow
}

func testimonialMatches(t *entity.Testimonial, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if t.Id != s.ID {
				return false
			}
		case specification.ByTestimonialID:
			if t.Id != s.ID {
				return false
			}
		case specification.ByCategoryID:
			if t.CategoryId != s.CategoryID {
				return false
			}
		case specification.ByStatus:
			if string(t.Status) != s.Status {
				return false
			}
		case specification.CreatedBefore:
			if !beforeCursor(t, s) {
				return false
			}
		}
	}
	return true
}

func beforeCursor(t *entity.Testimonial, s specification.CreatedBefore) bool {
	if t.CreatedAt.Before(s.CreatedAt) {
		return true
	}
	if t.CreatedAt.Equal(s.CreatedAt) {
		return strings.Compare(t.Id.String(), s.ID.String()) < 0
	}
	return false
}

func sortTestimonialsDesc(rows []*entity.Testimonial) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return strings.Compare(rows[i].Id.String(), rows[j].Id.String()) > 0
	})
}

func (r *fakeTestimonialRepo) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	clone := *testimonial
	r.u.testimonials = append(r.u.testimonials, &clone)
	return nil
}

func (r *fakeTestimonialRepo) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	for i, existing := range r.u.testimonials {
		if existing.Id == testimonial.Id {
			clone := *testimonial
			r.u.testimonials[i] = &clone
		}
	}
	return nil
}

func (r *fakeTestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.u.testimonials[:0]
	for _, t := range r.u.testimonials {
		if t.Id != id {
			kept = append(kept, t)
		}
	}
	r.u.testimonials = kept
	return nil
}

func (r *fakeTestimonialRepo) DeleteAllByCategoryId(ctx context.Context, categoryId uuid.UUID) error {
	kept := r.u.testimonials[:0]
	for _, t := range r.u.testimonials {
		if t.CategoryId != categoryId {
			kept = append(kept, t)
		}
	}
	r.u.testimonials = kept
	return nil
}

func (r *fakeTestimonialRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Testimonial, error) {
	for _, t := range r.u.testimonials {
		if testimonialMatches(t, specs) {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeTestimonialRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	var out []*entity.Testimonial
	for _, t := range r.u.testimonials {
		if testimonialMatches(t, specs) {
			clone := *t
			out = append(out, &clone)
		}
	}
	sortTestimonialsDesc(out)
	if limit := limitFrom(specs); limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTestimonialRepo) FindForProject(ctx context.Context, projectId uuid.UUID, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	inProject := make(map[uuid.UUID]bool)
	for _, c := range r.u.categories {
		if c.ProjectId == projectId {
			inProject[c.Id] = true
		}
	}

	var out []*entity.Testimonial
	for _, t := range r.u.testimonials {
		if inProject[t.CategoryId] && testimonialMatches(t, specs) {
			clone := *t
			out = append(out, &clone)
		}
	}
	sortTestimonialsDesc(out)
	if limit := limitFrom(specs); limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTestimonialRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// API keys

type fakeApiKeyRepo struct {
	u *fakeUow
}

func keyMatches(k *entity.ApiKey, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if k.Id != s.ID {
				return false
			}
		case specification.ByProjectID:
			if k.ProjectId != s.ProjectID {
				return false
			}
		case specification.ByTokenHash:
			if k.TokenHash != s.TokenHash {
				return false
			}
		case specification.NotRevoked:
			if k.Revoked {
				return false
			}
		}
	}
	return true
}

func (r *fakeApiKeyRepo) Create(ctx context.Context, key *entity.ApiKey) error {
	clone := *key
	r.u.keys = append(r.u.keys, &clone)
	return nil
}

func (r *fakeApiKeyRepo) Update(ctx context.Context, key *entity.ApiKey) error {
	for i, existing := range r.u.keys {
		if existing.Id == key.Id {
			clone := *key
			r.u.keys[i] = &clone
		}
	}
	return nil
}

func (r *fakeApiKeyRepo) TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	for _, k := range r.u.keys {
		if k.Id == id {
			at := usedAt
			k.LastUsedAt = &at
		}
	}
	return nil
}

func (r *fakeApiKeyRepo) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	kept := r.u.keys[:0]
	for _, k := range r.u.keys {
		if k.ProjectId != projectId {
			kept = append(kept, k)
		}
	}
	r.u.keys = kept
	return nil
}

func (r *fakeApiKeyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ApiKey, error) {
	for _, k := range r.u.keys {
		if keyMatches(k, specs) {
			clone := *k
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeApiKeyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ApiKey, error) {
	var out []*entity.ApiKey
	for _, k := range r.u.keys {
		if keyMatches(k, specs) {
			clone := *k
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Recording publisher for fire-and-forget events.

type fakePublisher struct {
	published [][]byte
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

// No-op logger.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
