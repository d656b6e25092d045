// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostbot/internal/app"
	"hostbot/internal/automation"
	"hostbot/internal/domain"
)

const maxBodyBytes = 64 << 10

type Handlers struct {
	Auto *app.AutomationService
	Q    *app.QueryService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/intents", h.detectIntent)
	s.mux.Post("/v1/messages", h.handleMessage)
	s.mux.Post("/v1/prices", h.quotePrice)
	s.mux.Post("/v1/templates/{kind}", h.renderTemplate)
	s.mux.Get("/v1/actions", h.listActions)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Invalid input", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return false
	}
	return true
}

// ---- intents ----

type intentRequest struct {
	Text string `json:"text"`
}

type intentResponse struct {
	Intent   domain.Intent `json:"intent"`
	Response string        `json:"response"`
}

func (h *Handlers) detectIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	i := automation.DetectIntent(req.Text)
	writeJSON(w, http.StatusOK, intentResponse{Intent: i, Response: automation.ResponseFor(i)})
}

// ---- guest messages ----

type messageRequest struct {
	GuestName string `json:"guest_name"`
	Text      string `json:"text"`
	Urgency   string `json:"urgency"`
}

func (h *Handlers) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	m := domain.GuestMessage{GuestName: req.GuestName, Text: req.Text, Urgency: domain.UrgencyNormal}
	switch domain.Urgency(req.Urgency) {
	case "", domain.UrgencyNormal:
	case domain.UrgencyUrgent:
		m.Urgency = domain.UrgencyUrgent
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid urgency", "urgency must be normal or urgent")
		return
	}
	rep, err := h.Auto.HandleMessage(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// ---- pricing ----

type priceRequest struct {
	BasePrice        float64 `json:"base_price"`
	IsWeekend        bool    `json:"is_weekend"`
	Season           string  `json:"season"`
	DaysUntilArrival int     `json:"days_until_arrival"`
	NightsStayed     int     `json:"nights_stayed"`
}

type priceResponse struct {
	Price int `json:"price"`
}

func (h *Handlers) quotePrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	price, err := h.Q.Quote(r.Context(), req.BasePrice, domain.PricingFactors{
		IsWeekend:        req.IsWeekend,
		Season:           domain.Season(req.Season),
		DaysUntilArrival: req.DaysUntilArrival,
		NightsStayed:     req.NightsStayed,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, priceResponse{Price: price})
}

// ---- templates ----

type templateRequest struct {
	GuestName    string  `json:"guest_name"`
	PropertyName string  `json:"property_name"`
	ReviewURL    string  `json:"review_url"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Total        float64 `json:"total"`
}

func (h *Handlers) renderTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.GuestName == "" || req.PropertyName == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid input", "guest_name and property_name are required")
		return
	}
	g := domain.Guest{Name: req.GuestName}
	p := domain.Property{Name: req.PropertyName, ReviewURL: req.ReviewURL}

	var (
		msg domain.Message
		err error
	)
	switch chi.URLParam(r, "kind") {
	case "confirmation":
		msg, err = h.Auto.SendConfirmation(r.Context(), g, p, domain.BookingDates{
			CheckIn: req.CheckIn, CheckOut: req.CheckOut, TotalPrice: req.Total,
		})
	case "checkout-reminder":
		msg, err = h.Auto.SendCheckoutReminder(r.Context(), g, p)
	case "review-request":
		msg, err = h.Auto.SendReviewRequest(r.Context(), g, p)
	default:
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown template kind")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// ---- action log ----

type actionView struct {
	ID        int64   `json:"id"`
	Kind      string  `json:"kind"`
	GuestName string  `json:"guest_name"`
	Property  *string `json:"property,omitempty"`
	Intent    *string `json:"intent,omitempty"`
	Urgent    bool    `json:"urgent"`
	Subject   *string `json:"subject,omitempty"`
	Body      string  `json:"body"`
	CreatedAt string  `json:"created_at"`
}

func (h *Handlers) listActions(w http.ResponseWriter, r *http.Request) {
	q := domain.ActionsQuery{}
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		q.Limit = l
	}
	if k := r.URL.Query().Get("kind"); k != "" {
		kind := domain.ActionKind(k)
		q.Kind = &kind
	}

	page, err := h.Q.RecentActions(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]actionView, 0, len(page.Items))
	for _, a := range page.Items {
		v := actionView{
			ID: a.ID, Kind: string(a.Kind), GuestName: a.GuestName, Property: a.Property,
			Urgent: a.Urgent, Subject: a.Subject, Body: a.Body,
			CreatedAt: a.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		}
		if a.Intent != nil {
			s := string(*a.Intent)
			v.Intent = &s
		}
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}
