package handler

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/service"
)

type otpRequest struct {
	Phone     string `json:"phone"`
	CompanyID string `json:"company_id"`
}

type tokenRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// RequestOTP sends a one-time login code to the user.
//
//	@Summary	Request a login code
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body	otpRequest	true	"Phone and company"
//	@Success	202	{object}	map[string]string
//	@Failure	404	{object}	errorPayload
//	@Router		/auth/otp [post]
func RequestOTP(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req otpRequest
		if err := c.BodyParser(&req); err != nil || req.Phone == "" || req.CompanyID == "" {
			return invalidBody(c)
		}
		if err := auth.RequestOTP(c.UserContext(), req.Phone, req.CompanyID); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "sent"})
	}
}

// VerifyOTP exchanges a login code for a bearer token.
//
//	@Summary	Exchange a login code for a token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		tokenRequest	true	"Phone and code"
//	@Success	200		{object}	service.Token
//	@Failure	401		{object}	errorPayload
//	@Failure	403		{object}	errorPayload
//	@Router		/auth/token [post]
func VerifyOTP(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req tokenRequest
		if err := c.BodyParser(&req); err != nil || req.Phone == "" || req.Code == "" {
			return invalidBody(c)
		}
		tok, err := auth.VerifyOTP(c.UserContext(), req.Phone, req.Code)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tok)
	}
}
