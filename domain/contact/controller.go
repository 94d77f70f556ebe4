package contact

import (
	"time"

	"github.com/altchain/landing-api/config/router"
	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
	apperrors "github.com/altchain/landing-api/pkg/errors"
	"github.com/altchain/landing-api/pkg/ratelimit"
)

func NewContactController(
	logger *log.Logger,
	m mailer.Mailer,
	email EmailConfig,
) *router.RESTController {

	return router.NewRESTController(
		"ContactController",
		"/api/contact",
		func(rs *router.RouterService, c *router.RESTController) {
			service := NewContactService(logger, m, email)

			contactLimiter := createContactRateLimiter(rs)

			rs.AddPostHandler(c, contactLimiter, "", sendMessageHandler(service))
		},
	)
}

func createContactRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	const contactRequestsPerMinute = 10 // Each accepted request costs a provider send

	config := &ratelimit.RateLimitConfig{
		Requests: contactRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil,
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func sendMessageHandler(service ContactService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SendMessageRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.SendMessage(ctx.Request.Context(), &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(SendMessageResponse{Success: true}, "Message sent successfully")
	}
}
