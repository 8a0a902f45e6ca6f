// internal/app/features/updates/handler.go
package updates

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const maxUploadBytes = 10 << 20

// Word caps for news items, enforced before the backend is asked.
const (
	newsTitleMaxWords   = 10
	newsExcerptMaxWords = 40
)

type Handler struct {
	Backend    *backend.Client
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(client *backend.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend:    client,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

// subscriberRow is a newsletter subscriber with prebuilt outreach links.
type subscriberRow struct {
	backend.Newsletter

	Date        string
	WhatsAppURL string
	MailtoURL   string
}

type pageData struct {
	viewdata.BaseVM

	Tab string

	Marquees []backend.Marquee
	News     []backend.NewsItem
	Videos   []backend.Video

	Subscribers     []subscriberRow
	ActiveCount     int
	EmailCount      int
	PhoneCount      int
	WelcomeSettings backend.NewsletterSettings
	SettingsSaved   bool
}

var tabs = map[string]bool{
	"marquee":     true,
	"news":        true,
	"videos":      true,
	"newsletters": true,
	"settings":    true,
}

// ServePage handles GET /updates with
// ?tab=marquee|news|videos|newsletters|settings.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	tab := query.Get(r, "tab")
	if !tabs[tab] {
		tab = "marquee"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := pageData{
		BaseVM:        viewdata.NewBaseVM(r, "Updates", "/updates"),
		Tab:           tab,
		SettingsSaved: query.Get(r, "saved") == "1",
	}

	var err error
	switch tab {
	case "marquee":
		data.Marquees, err = h.Backend.ListMarquees(ctx, token)
	case "news":
		data.News, err = h.Backend.ListAllNews(ctx, token)
	case "videos":
		data.Videos, err = h.Backend.ListAllVideos(ctx, token)
	case "newsletters":
		err = h.loadSubscribers(ctx, token, &data)
	case "settings":
		data.WelcomeSettings, err = h.Backend.GetNewsletterSettings(ctx, token)
	}
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "load updates failed", err, "Unable to load the updates manager.", "/updates")
		return
	}

	templates.Render(w, r, "updates_page", data)
}

// loadSubscribers pulls the subscriber list plus the welcome settings
// used to prefill each outreach link.
func (h *Handler) loadSubscribers(ctx context.Context, token string, data *pageData) error {
	subs, err := h.Backend.ListNewsletters(ctx, token)
	if err != nil {
		return err
	}

	// Settings failure only degrades the prefilled message.
	settings, err := h.Backend.GetNewsletterSettings(ctx, token)
	if err != nil {
		h.Log.Warn("newsletter settings unavailable", zap.Error(err))
		settings = backend.NewsletterSettings{}
	}

	data.Subscribers = make([]subscriberRow, 0, len(subs))
	for _, s := range subs {
		data.Subscribers = append(data.Subscribers, newSubscriberRow(s, settings))
		if s.Status == "active" {
			data.ActiveCount++
		}
		if s.Email != "" {
			data.EmailCount++
		}
		if s.Phone != "" {
			data.PhoneCount++
		}
	}
	return nil
}

func tabURL(tab string) string {
	return "/updates?tab=" + tab
}
