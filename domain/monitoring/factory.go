package monitoring

import (
	"context"

	"github.com/altchain/landing-api/config/router"
	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
	"gorm.io/gorm"
)

// MonitoringCache defines the cache interface for the monitoring controller factory.
type MonitoringCache interface {
	Ping(ctx context.Context) error
}

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	db          *gorm.DB
	logger      *log.Logger
	cache       MonitoringCache
	mailer      mailer.Mailer
	senderEmail string
}

func NewMonitoringControllerFactory(db *gorm.DB, logger *log.Logger, cache MonitoringCache, m mailer.Mailer, senderEmail string) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		db:          db,
		logger:      logger,
		cache:       cache,
		mailer:      m,
		senderEmail: senderEmail,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.db, f.logger, f.cache, f.mailer, f.senderEmail)
}
