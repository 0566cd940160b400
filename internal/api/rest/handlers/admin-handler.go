package handlers

import (
	"errors"

	"github.com/RationSeva/ration_service/internal/api/rest/middleware"
	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
	"github.com/RationSeva/ration_service/internal/helper/utils"
	"github.com/RationSeva/ration_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	cardSvc   services.CardService
	authSvc   services.AuthService
	notifySvc services.NotifyService
}

func NewAdminHandler(
	cardSvc services.CardService,
	authSvc services.AuthService,
	notifySvc services.NotifyService,
) *AdminHandler {
	return &AdminHandler{
		cardSvc:   cardSvc,
		authSvc:   authSvc,
		notifySvc: notifySvc,
	}
}

func (h *AdminHandler) SetupRoutes(api fiber.Router, authMW fiber.Handler) {
	admin := api.Group("/admin", authMW, middleware.AdminOnly())

	admin.Get("/cards", h.ListCards)
	admin.Put("/cards/:id/approve", h.ApproveCard)
	admin.Put("/cards/:id/reject", h.RejectCard)
	admin.Delete("/cards/:id", h.DeleteCard)
	admin.Post("/distribute-tokens", h.DistributeTokens)
	admin.Get("/users", h.ListUsers)
}

func (h *AdminHandler) ListCards(ctx *fiber.Ctx) error {
	cards, err := h.cardSvc.ListCards(ctx.UserContext())
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, cards)
}

func (h *AdminHandler) ApproveCard(ctx *fiber.Ctx) error {
	cardNumber, err := h.cardSvc.Approve(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Card not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ApproveResponse{
		Message:    "Card approved",
		CardNumber: cardNumber,
	})
}

func (h *AdminHandler) RejectCard(ctx *fiber.Ctx) error {
	if err := h.cardSvc.Reject(ctx.UserContext(), ctx.Params("id")); err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Card rejected",
	})
}

func (h *AdminHandler) DeleteCard(ctx *fiber.Ctx) error {
	if err := h.cardSvc.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Card not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Card deleted",
	})
}

func (h *AdminHandler) DistributeTokens(ctx *fiber.Ctx) error {
	var requestBody dto.TokenDistribution
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	result := h.notifySvc.Distribute(ctx.UserContext(), requestBody)
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AdminHandler) ListUsers(ctx *fiber.Ctx) error {
	users, err := h.authSvc.ListUsers(ctx.UserContext())
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, users)
}
