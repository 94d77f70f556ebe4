package domain

import (
	"github.com/altchain/landing-api/config"
	"github.com/altchain/landing-api/domain/contact"
	"github.com/altchain/landing-api/domain/language"
	"github.com/altchain/landing-api/domain/monitoring"
	"github.com/altchain/landing-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	mailerCfg := appConfig.MailerConfig

	appConfig.RouterService.MountController(monitoring.NewMonitoringController(
		appConfig.DB, appConfig.Logger, appConfig.Cache, appConfig.Mailer, mailerCfg.SenderEmail,
	))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(
		appConfig.DB, appConfig.Logger, appConfig.Mailer, waitlist.EmailConfig{
			Sender: mailerCfg.SenderEmail,
			Admin:  mailerCfg.AdminEmail,
		},
	))
	appConfig.RouterService.MountController(contact.NewContactController(
		appConfig.Logger, appConfig.Mailer, contact.EmailConfig{
			Sender:  mailerCfg.SenderEmail,
			Contact: mailerCfg.ContactEmail,
		},
	))
	appConfig.RouterService.MountController(language.NewLanguageController())
}
