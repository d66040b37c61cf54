package controller

import (
	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRequestController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
}

type requestController struct {
	service service.IRequestService
}

func NewRequestController(service service.IRequestService) IRequestController {
	return &requestController{service: service}
}

func (c *requestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/v1/:projectId/categories/:categoryId/requests")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Send)
}

func (c *requestController) Send(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	var req dto.SendTestimonialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.CategoryId = categoryId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Send(ctx.Context(), userId, projectId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Testimonial request sent", nil))
}
