package handlers

import (
	"context"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/chart"
	"github.com/zoomie/transations/internal/middleware"
	"github.com/zoomie/transations/internal/view"
)

type dashboardPage struct {
	State view.Kind
	Chart template.HTML
}

// Index renders the dashboard. The primary region holds the placeholder
// control until the transaction history has been loaded, then the chart.
// Fetch failures leave the placeholder in place.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.pageTimeout)
	defer cancel()

	log := middleware.Log(r.Context())
	state, err := view.Load(ctx, h.fetcher, view.WithLogger(log))
	if err != nil {
		log.Warn("dashboard data unavailable", zap.Error(err))
	}

	page := dashboardPage{State: state.Kind()}
	if state.Kind() == view.Chart {
		svg, err := chart.RenderSVG(state.Points())
		if err != nil {
			log.Error("failed to render chart", zap.Error(err))
			page.State = view.Empty
		} else {
			page.Chart = svg
		}
	}

	h.renderTemplate(w, r, "index.html", page)
}
