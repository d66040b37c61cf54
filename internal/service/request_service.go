package service

import (
	"context"
	"fmt"
	"strings"

	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/mailer"
	"proofly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IRequestService interface {
	Send(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.SendTestimonialRequest) error
}

type requestService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	clientURL    string
}

func NewRequestService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	clientURL string,
) IRequestService {
	return &requestService{
		uowFactory:   uowFactory,
		emailService: emailService,
		clientURL:    clientURL,
	}
}

func (s *requestService) Send(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.SendTestimonialRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := resolveProject(ctx, uow, userId, projectId)
	if err != nil {
		return err
	}
	category, err := resolveCategory(ctx, uow, userId, projectId, req.CategoryId)
	if err != nil {
		return err
	}

	var message string
	if req.Message != nil {
		message = strings.TrimSpace(*req.Message)
	}

	return s.emailService.SendTestimonialRequest(mailer.TestimonialRequest{
		To:           req.Email,
		ProjectName:  project.Name,
		CategoryName: category.Name,
		Link:         fmt.Sprintf("%s/submit/%s", strings.TrimRight(s.clientURL, "/"), category.Id),
		Message:      message,
	})
}
