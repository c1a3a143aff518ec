package controller

import (
	"teamspace-be/internal/dto"
	"teamspace-be/internal/pkg/serverutils"
	"teamspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecordController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	BulkDelete(ctx *fiber.Ctx) error
	BulkUpdate(ctx *fiber.Ctx) error
}

type recordController struct {
	recordService service.IRecordService
}

func NewRecordController(recordService service.IRecordService) IRecordController {
	return &recordController{
		recordService: recordService,
	}
}

func (c *recordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workspace/v1/:workspaceId/records")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Post("bulk-delete", c.BulkDelete)
	h.Post("bulk-update", c.BulkUpdate)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *recordController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.Create(ctx.Context(), userId, ctx.Params("workspaceId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create record", res))
}

func (c *recordController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var query dto.ListRecordsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.recordService.List(ctx.Context(), userId, ctx.Params("workspaceId"), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list records", res))
}

func (c *recordController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.recordService.Get(ctx.Context(), userId, ctx.Params("workspaceId"), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show record", res))
}

func (c *recordController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.recordService.Update(ctx.Context(), userId, ctx.Params("workspaceId"), ctx.Params("id"), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update record", nil))
}

func (c *recordController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.recordService.Delete(ctx.Context(), userId, ctx.Params("workspaceId"), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete record", nil))
}

func (c *recordController) BulkDelete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.BulkDeleteRecordsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.recordService.BulkDelete(ctx.Context(), userId, ctx.Params("workspaceId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success bulk delete records", res))
}

func (c *recordController) BulkUpdate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.BulkUpdateRecordsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.recordService.BulkUpdate(ctx.Context(), userId, ctx.Params("workspaceId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success bulk update records", res))
}
