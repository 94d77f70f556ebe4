package monitoring

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/altchain/landing-api/config/router"
	"github.com/altchain/landing-api/internal/lang"
	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
	apperrors "github.com/altchain/landing-api/pkg/errors"
	"github.com/altchain/landing-api/pkg/ratelimit"
	"gorm.io/gorm"
)

type Cache interface {
	Ping(ctx context.Context) error
}

// configuredReporter is implemented by mailers that can say whether a
// real delivery provider backs them.
type configuredReporter interface {
	Configured() bool
}

type HealthStatus struct {
	Database int `json:"database"` // 1 = healthy, 0 = unhealthy
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Mailer   int `json:"mailer"`   // 1 = provider configured, 0 = logging fallback
	Uptime   int `json:"uptime"`   // uptime in seconds
}

type MonitoringController struct {
	db          *gorm.DB
	logger      *log.Logger
	cache       Cache
	mailer      mailer.Mailer
	senderEmail string
	startTime   time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache, m mailer.Mailer, senderEmail string) *router.RESTController {
	ctrl := &MonitoringController{
		db:          db,
		logger:      logger,
		cache:       cache,
		mailer:      m,
		senderEmail: senderEmail,
		startTime:   time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {

			monitoringRateLimiter := createMonitoringRateLimiter(routerService)

			routerService.AddGetHandler(controller, monitoringRateLimiter, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.monitor(c)
			})

			routerService.AddGetHandler(controller, monitoringRateLimiter, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})

			routerService.AddGetHandler(controller, monitoringRateLimiter, "api/test-email", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.testEmail(routerService, c)
			})
		},
	)
}

func createMonitoringRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {

	const monitoringRequestsPerMinute = 10 // More restrictive than default 100

	config := &ratelimit.RateLimitConfig{
		Requests: monitoringRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil,
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")
	healthStatus := ctrl.performHealthChecks(context.Background(), logger)

	return &router.ServiceResult{
		StatusCode: 200,
		Data:       healthStatus,
		Message:    "AltChain landing API health check completed",
	}
}

func (ctrl *MonitoringController) monitor(
	c *router.RequestContext,
) *router.ServiceResult {
	return &router.ServiceResult{
		StatusCode: 200,
		Data:       "Monitoring endpoint is operational.",
		Message:    "Monitoring successful",
	}
}

// testEmail sends a confirmation template to the given address. It is
// a diagnostic for verifying provider credentials and templates;
// delivery errors are surfaced rather than swallowed.
func (ctrl *MonitoringController) testEmail(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)

	to := strings.TrimSpace(c.Query("email"))
	if to == "" {
		return router.BadRequestResult("Query parameter 'email' is required", nil)
	}

	langCode := lang.Resolve(c.Query("language"))

	subject, text, html, err := mailer.RenderConfirmation(langCode, "")
	if err != nil {
		logger.Error("Failed to render test email", "error", err)
		return router.InternalServerErrorResult("Unable to render test email")
	}

	msg := mailer.Message{
		To:      to,
		From:    ctrl.senderEmail,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}

	if err := ctrl.mailer.Send(c.Request.Context(), msg); err != nil {
		logger.Error("Test email send failed", "to", to, "error", err)

		if errors.Is(err, mailer.ErrNotConfigured) {
			return router.ErrorResult(apperrors.StatusInternalServerError, "Email provider is not configured", nil)
		}
		return router.ErrorResult(apperrors.StatusInternalServerError, "Unable to send test email", nil)
	}

	return router.OKResult(map[string]string{"email": to, "language": langCode}, "Test email sent")
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	checkDatabaseConnectivity(ctx, ctrl, &status, logger)

	checkCacheConnectivity(ctx, ctrl, &status, logger)

	checkMailerConfiguration(ctrl, &status, logger)

	return status
}

func checkCacheConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.cache != nil {
		if ctrl.checkCache(ctx) {
			status.Cache = 1
			logger.Info("Cache health check passed")
		} else {
			status.Cache = 0
			logger.Error("Cache health check failed")
		}
	} else {
		status.Cache = 0 // Cache not configured
		logger.Info("Cache not configured, cache health check skipped")
	}
}

func checkDatabaseConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.checkDatabase(ctx) {
		status.Database = 1
		logger.Info("Database health check passed")
	} else {
		status.Database = 0
		logger.Error("Database health check failed")
	}
}

func checkMailerConfiguration(ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.mailer == nil {
		status.Mailer = 0
		logger.Info("Mailer not configured")
		return
	}

	if reporter, ok := ctrl.mailer.(configuredReporter); ok && !reporter.Configured() {
		status.Mailer = 0
		logger.Info("Mailer running on logging fallback")
		return
	}

	status.Mailer = 1
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}

	// Ping the database
	return sqlDB.PingContext(ctx) == nil
}

func (ctrl *MonitoringController) checkCache(ctx context.Context) bool {
	// Ping the cache
	return ctrl.cache.Ping(ctx) == nil
}
