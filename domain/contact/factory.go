package contact

import (
	"github.com/altchain/landing-api/config/router"
	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
)

type ContactServiceFactory interface {
	CreateService() ContactService
	CreateController() *router.RESTController
}

type DefaultContactServiceFactory struct {
	logger *log.Logger
	mailer mailer.Mailer
	email  EmailConfig
}

func NewContactServiceFactory(logger *log.Logger, m mailer.Mailer, email EmailConfig) ContactServiceFactory {
	return &DefaultContactServiceFactory{logger: logger, mailer: m, email: email}
}

func (f *DefaultContactServiceFactory) CreateService() ContactService {
	return NewContactService(f.logger, f.mailer, f.email)
}

func (f *DefaultContactServiceFactory) CreateController() *router.RESTController {
	return NewContactController(f.logger, f.mailer, f.email)
}
