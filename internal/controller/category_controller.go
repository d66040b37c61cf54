package controller

import (
	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
}

func NewCategoryController(service service.ICategoryService) ICategoryController {
	return &categoryController{service: service}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/v1/:projectId/categories")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":categoryId", c.Show)
	h.Put(":categoryId", c.Update)
	h.Delete(":categoryId", c.Delete)
}

func (c *categoryController) GetAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))

	res, err := c.service.GetAll(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all categories", res))
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))

	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ProjectId = projectId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *categoryController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	res, err := c.service.Show(ctx.Context(), userId, projectId, categoryId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show category", res))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = categoryId

	res, err := c.service.Update(ctx.Context(), userId, projectId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	if err := c.service.Delete(ctx.Context(), userId, projectId, categoryId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete category", nil))
}
