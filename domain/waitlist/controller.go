package waitlist

import (
	"time"

	"github.com/altchain/landing-api/config/router"
	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
	apperrors "github.com/altchain/landing-api/pkg/errors"
	"github.com/altchain/landing-api/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	m mailer.Mailer,
	email EmailConfig,
) *router.RESTController {

	return router.NewRESTController(
		"WaitlistController",
		"/api/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository, m, email)

			signupLimiter := createSignupRateLimiter(rs)

			rs.AddPostHandler(c, signupLimiter, "", joinWaitlistHandler(service))
		},
	)
}

func createSignupRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	const signupRequestsPerMinute = 30 // Public form; abuse-prone but legitimate retries happen

	config := &ratelimit.RateLimitConfig{
		Requests: signupRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil,
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.JoinWaitlist(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		if response.IsExisting {
			return router.OKResult(response, "Email is already on the waitlist")
		}

		return router.CreatedResult(response, "Waitlist entry")
	}
}
