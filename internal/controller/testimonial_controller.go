package controller

import (
	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITestimonialController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type testimonialController struct {
	service service.ITestimonialService
}

func NewTestimonialController(service service.ITestimonialService) ITestimonialController {
	return &testimonialController{service: service}
}

func (c *testimonialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/v1/:projectId/categories/:categoryId/testimonials")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get(":testimonialId", c.Show)
	h.Patch(":testimonialId/status", c.UpdateStatus)
	h.Delete(":testimonialId", c.Delete)
}

func (c *testimonialController) GetAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	res, err := c.service.GetAll(ctx.Context(), userId, projectId, categoryId, ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all testimonials", res))
}

func (c *testimonialController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))
	testimonialId, _ := uuid.Parse(ctx.Params("testimonialId"))

	res, err := c.service.Show(ctx.Context(), userId, projectId, categoryId, testimonialId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show testimonial", res))
}

func (c *testimonialController) UpdateStatus(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))
	testimonialId, _ := uuid.Parse(ctx.Params("testimonialId"))

	var req dto.UpdateTestimonialStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = testimonialId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), userId, projectId, categoryId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update testimonial status", res))
}

func (c *testimonialController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))
	testimonialId, _ := uuid.Parse(ctx.Params("testimonialId"))

	if err := c.service.Delete(ctx.Context(), userId, projectId, categoryId, testimonialId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete testimonial", nil))
}
