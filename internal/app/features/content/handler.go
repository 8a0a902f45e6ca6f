// internal/app/features/content/handler.go
package content

import (
	"context"
	"net/http"
	"sort"

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

type pageData struct {
	viewdata.BaseVM

	Tab string

	Pages    []string
	Banners  []backend.Banner
	Timeline []backend.TimelineItem
}

// ServePage handles GET /contents with ?tab=hero|timeline.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	tab := query.Get(r, "tab")
	if tab != "timeline" {
		tab = "hero"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Contents", "/contents"),
		Tab:    tab,
		Pages:  backend.BannerPages,
	}

	var err error
	if tab == "hero" {
		data.Banners, err = h.Backend.ListBanners(ctx, token)
	} else {
		data.Timeline, err = h.Backend.ListTimeline(ctx, token)
		sortTimeline(data.Timeline)
	}
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "load contents failed", err, "Unable to load the content manager.", "/contents")
		return
	}

	templates.Render(w, r, "content_page", data)
}

// sortTimeline orders milestones by year, oldest first.
func sortTimeline(items []backend.TimelineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Year < items[j].Year
	})
}
