package handlers

import (
	"errors"

	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
	"github.com/RationSeva/ration_service/internal/helper"
	"github.com/RationSeva/ration_service/internal/helper/utils"
	"github.com/RationSeva/ration_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	svc  services.CardService
	auth helper.Auth
}

func NewCardHandler(svc services.CardService, auth helper.Auth) *CardHandler {
	return &CardHandler{svc: svc, auth: auth}
}

func (h *CardHandler) SetupRoutes(api fiber.Router, authMW fiber.Handler) {
	cards := api.Group("/ration-cards", authMW)

	cards.Post("/apply", h.Apply)
	cards.Get("/my-card", h.MyCard)
	cards.Put("/update", h.Update)
}

func (h *CardHandler) Apply(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.CardApplication
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	resp, err := h.svc.Apply(ctx.UserContext(), claims.UserID, requestBody)
	if err != nil {
		if errors.Is(err, domain.ErrActiveApplication) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *CardHandler) MyCard(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	card, err := h.svc.GetMyCard(ctx.UserContext(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "No ration card found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, card)
}

func (h *CardHandler) Update(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var patch dto.CardUpdate
	if err := ctx.BodyParser(&patch); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.UpdateMyCard(ctx.UserContext(), claims.UserID, patch); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "No active ration card found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Ration card updated successfully",
	})
}
