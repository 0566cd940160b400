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

type AuthHandler struct {
	svc  services.AuthService
	auth helper.Auth
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) SetupRoutes(api fiber.Router, authMW fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/google-session", h.GoogleSession)

	auth.Get("/me", authMW, h.Me)
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if requestBody.Email == "" || requestBody.Password == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	resp, err := h.svc.Register(ctx.UserContext(), requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	resp, err := h.svc.Login(ctx.UserContext(), requestBody)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) GoogleSession(ctx *fiber.Ctx) error {
	var requestBody dto.GoogleSessionRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.SessionID == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "session_id is required")
	}

	resp, err := h.svc.GoogleSession(ctx.UserContext(), requestBody.SessionID)
	if err != nil {
		// the whole OAuth exchange degrades to 400, adapter failures included
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.svc.CurrentUser(ctx.UserContext(), claims.UserID)
	if err != nil {
		// token may outlive the account; treat a missing user as unauthenticated
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "User not found")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}
