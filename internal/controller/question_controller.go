package controller

import (
	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
}

func NewQuestionController(service service.IQuestionService) IQuestionController {
	return &questionController{service: service}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/v1/:projectId/categories/:categoryId/questions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	// "reorder" before ":questionId" so it is not captured as an id.
	h.Put("reorder", c.Reorder)
	h.Put(":questionId", c.Update)
	h.Delete(":questionId", c.Delete)
}

func (c *questionController) GetAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	res, err := c.service.GetAll(ctx.Context(), userId, projectId, categoryId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all questions", res))
}

func (c *questionController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	var req dto.CreateQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.CategoryId = categoryId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, projectId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create question", res))
}

func (c *questionController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))
	questionId, _ := uuid.Parse(ctx.Params("questionId"))

	var req dto.UpdateQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = questionId

	res, err := c.service.Update(ctx.Context(), userId, projectId, categoryId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update question", res))
}

func (c *questionController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))
	questionId, _ := uuid.Parse(ctx.Params("questionId"))

	if err := c.service.Delete(ctx.Context(), userId, projectId, categoryId, questionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete question", nil))
}

func (c *questionController) Reorder(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	var req dto.ReorderQuestionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.CategoryId = categoryId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Reorder(ctx.Context(), userId, projectId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reorder questions", res))
}
