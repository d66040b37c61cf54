package controller

import (
	"io"
	"strconv"

	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/ratelimit"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const apiKeyHeader = "x-proofly-api-key"

type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	GetForm(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	UploadImage(ctx *fiber.Ctx) error
	UploadVideo(ctx *fiber.Ctx) error
	GetFeed(ctx *fiber.Ctx) error
}

type publicController struct {
	submissionService service.ISubmissionService
	uploadService     service.IUploadService
	feedService       service.IFeedService
	limiter           *ratelimit.Limiter
}

func NewPublicController(
	submissionService service.ISubmissionService,
	uploadService service.IUploadService,
	feedService service.IFeedService,
	limiter *ratelimit.Limiter,
) IPublicController {
	return &publicController{
		submissionService: submissionService,
		uploadService:     uploadService,
		feedService:       feedService,
		limiter:           limiter,
	}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public/v1")
	h.Get("forms/:categoryId", c.GetForm)
	h.Post("forms/:categoryId/submissions", c.rateLimit, c.Submit)
	h.Post("forms/:categoryId/uploads/image", c.rateLimit, c.UploadImage)
	h.Post("forms/:categoryId/uploads/video", c.rateLimit, c.UploadVideo)
	h.Get("testimonials", c.GetFeed)
}

// rateLimit guards the anonymous write endpoints per client IP.
func (c *publicController) rateLimit(ctx *fiber.Ctx) error {
	if !c.limiter.Allow(ctx.IP()) {
		return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests")
	}
	return ctx.Next()
}

func (c *publicController) GetForm(ctx *fiber.Ctx) error {
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	res, err := c.submissionService.GetForm(ctx.Context(), categoryId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get form", res))
}

func (c *publicController) Submit(ctx *fiber.Ctx) error {
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	var req dto.SubmitTestimonialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.CategoryId = categoryId

	res, err := c.submissionService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Testimonial submitted", res))
}

func (c *publicController) UploadImage(ctx *fiber.Ctx) error {
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	data, contentType, err := readUpload(ctx)
	if err != nil {
		return err
	}

	res, err := c.uploadService.UploadImage(ctx.Context(), categoryId, data, contentType)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Image uploaded", res))
}

func (c *publicController) UploadVideo(ctx *fiber.Ctx) error {
	categoryId, _ := uuid.Parse(ctx.Params("categoryId"))

	data, contentType, err := readUpload(ctx)
	if err != nil {
		return err
	}

	res, err := c.uploadService.UploadVideo(ctx.Context(), categoryId, data, contentType)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Video uploaded", res))
}

func (c *publicController) GetFeed(ctx *fiber.Ctx) error {
	plaintextKey := ctx.Get(apiKeyHeader)
	if plaintextKey == "" {
		plaintextKey = ctx.Query("apiKey")
	}

	key, err := c.feedService.Authenticate(ctx.Context(), plaintextKey)
	if err != nil {
		return err
	}

	query := service.FeedQuery{
		Status: ctx.Query("status"),
	}
	if raw := ctx.Query("limit"); raw != "" {
		query.Limit, _ = strconv.Atoi(raw)
	}
	if raw := ctx.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid categoryId")
		}
		query.CategoryId = &id
	}
	if raw := ctx.Query("cursor"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid cursor")
		}
		query.Cursor = &id
	}

	res, err := c.feedService.GetFeed(ctx.Context(), key, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get testimonials", res))
}

func readUpload(ctx *fiber.Ctx) ([]byte, string, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, fileHeader.Header.Get("Content-Type"), nil
}
