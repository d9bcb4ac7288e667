package providers

import (
	"github.com/samber/do/v2"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/config"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/logger"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/mail"
)

// ProvideMailer provides the outbound mail sender.
// Without a SendGrid API key, password-reset mail is written to the log instead.
func ProvideMailer(i do.Injector) (mail.Mailer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Mail.SendGridAPIKey == "" {
		log.Info("No SendGrid API key configured, using log mailer")
		return mail.NewLogMailer(log.Logger), nil
	}

	log.Info("SendGrid mailer configured", "from", cfg.Mail.FromAddress)
	return mail.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromAddress, log.Logger), nil
}
