package controller

import (
	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IApiKeyController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Revoke(ctx *fiber.Ctx) error
}

type apiKeyController struct {
	service service.IApiKeyService
}

func NewApiKeyController(service service.IApiKeyService) IApiKeyController {
	return &apiKeyController{service: service}
}

func (c *apiKeyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/v1/:projectId/keys")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Delete(":keyId", c.Revoke)
}

func (c *apiKeyController) GetAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))

	res, err := c.service.GetAll(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all API keys", res))
}

func (c *apiKeyController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))

	var req dto.CreateApiKeyRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create API key", res))
}

func (c *apiKeyController) Revoke(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, _ := uuid.Parse(ctx.Params("projectId"))
	keyId, _ := uuid.Parse(ctx.Params("keyId"))

	if err := c.service.Revoke(ctx.Context(), userId, projectId, keyId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success revoke API key", nil))
}
