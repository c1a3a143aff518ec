package controller

import (
	"teamspace-be/internal/dto"
	"teamspace-be/internal/pkg/serverutils"
	"teamspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMemberController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Invite(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Promote(ctx *fiber.Ctx) error
}

type memberController struct {
	memberService service.IMemberService
}

func NewMemberController(memberService service.IMemberService) IMemberController {
	return &memberController{
		memberService: memberService,
	}
}

func (c *memberController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workspace/v1/:workspaceId/members")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Invite)
	h.Put(":memberId/promote", c.Promote)
	h.Delete(":memberId", c.Remove)
}

func (c *memberController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.memberService.List(ctx.Context(), userId, ctx.Params("workspaceId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list members", res))
}

func (c *memberController) Invite(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.InviteMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.memberService.Invite(ctx.Context(), userId, ctx.Params("workspaceId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success invite member", res))
}

func (c *memberController) Remove(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.memberService.Remove(ctx.Context(), userId, ctx.Params("workspaceId"), ctx.Params("memberId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove member", nil))
}

func (c *memberController) Promote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.memberService.PromoteOwner(ctx.Context(), userId, ctx.Params("workspaceId"), ctx.Params("memberId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success promote member", nil))
}
