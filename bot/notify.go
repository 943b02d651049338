package bot

import (
	"log/slog"

	"OchiqMuloqot/bot/workflows/registration"
	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/i18n"
	"OchiqMuloqot/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

// AdminNotifier DMs the configured admins. It serves the warning bridge
// of the logger and, as a coordinator observer, announces every saved
// registration the way the reception staff expects.
type AdminNotifier struct {
	log      *slog.Logger
	api      *tgbotapi.Bot
	adminIds []int64
	texts    *i18n.Resolver
}

func NewAdminNotifier(api *tgbotapi.Bot, adminIds []int64, texts *i18n.Resolver, log *slog.Logger) *AdminNotifier {
	return &AdminNotifier{
		log:      log.With(sl.Module("notify")),
		api:      api,
		adminIds: adminIds,
		texts:    texts,
	}
}

// NotifyAdmins sends text to every admin chat. Individual delivery
// failures are logged at Debug only; anything louder would feed the
// log-to-Telegram bridge with its own failures.
func (n *AdminNotifier) NotifyAdmins(text string) {
	for _, id := range n.adminIds {
		if _, err := n.api.SendMessage(id, text, nil); err != nil {
			n.log.With(
				slog.Int64("admin_id", id),
			).Debug("notifying admin", sl.Err(err))
		}
	}
}

// RegistrationSaved sends the new-registration note with the summary.
func (n *AdminNotifier) RegistrationSaved(rec *entity.Registration) {
	note := n.texts.Text(rec.Language, i18n.KeyAdminNewRegistration)
	n.NotifyAdmins(note + registration.Summary(rec))
}
