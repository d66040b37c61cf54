package controller

import (
	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type projectController struct {
	service service.IProjectService
}

func NewProjectController(service service.IProjectService) IProjectController {
	return &projectController{service: service}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":projectId", c.Show)
	h.Put(":projectId", c.Update)
	h.Delete(":projectId", c.Delete)
}

func (c *projectController) GetAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all projects", res))
}

func (c *projectController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create project", res))
}

func (c *projectController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))

	res, err := c.service.Show(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show project", res))
}

func (c *projectController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))

	var req dto.UpdateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = projectId

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update project", res))
}

func (c *projectController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))

	if err := c.service.Delete(ctx.Context(), userId, projectId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete project", nil))
}
