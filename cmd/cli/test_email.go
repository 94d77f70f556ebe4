package main

import (
	"context"
	"time"

	"github.com/altchain/landing-api/config"
	"github.com/altchain/landing-api/internal/lang"
	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
)

// sendTestEmail exercises the dispatcher end to end outside HTTP:
// render the localized confirmation and hand it to the configured
// provider (or the logging fallback).
func sendTestEmail(logger *log.Logger, to, langCode string) error {
	mailerConfig := config.NewMailerConfig()

	m, err := mailerConfig.NewMailer(logger)
	if err != nil {
		return err
	}

	resolved := lang.Resolve(langCode)

	subject, text, html, err := mailer.RenderConfirmation(resolved, "")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return m.Send(ctx, mailer.Message{
		To:      to,
		From:    mailerConfig.SenderEmail,
		Subject: subject,
		Text:    text,
		HTML:    html,
	})
}
