// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bookingmx/internal/adapters/observability"
	"bookingmx/internal/app"
	"bookingmx/internal/domain"
)

type Handlers struct {
	Res    *app.ReservationService
	Cities *app.CityQueryService
}

const dateLayout = "2006-01-02"

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type reservationPayload struct {
	GuestName string `json:"guestName"`
	HotelName string `json:"hotelName"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

type reservationResponse struct {
	ID        int64  `json:"id"`
	GuestName string `json:"guestName"`
	HotelName string `json:"hotelName"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Status    string `json:"status"`
}

type nearbyCityResponse struct {
	City     string  `json:"city"`
	Distance float64 `json:"distance"`
}

type graphPayload struct {
	Cities []string      `json:"cities"`
	Edges  []edgePayload `json:"edges"`
}

type edgePayload struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type validationResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/reservations", h.listReservations)
	s.mux.Post("/v1/reservations", h.createReservation)
	s.mux.Get("/v1/reservations/{id}", h.getReservation)
	s.mux.Put("/v1/reservations/{id}", h.updateReservation)
	s.mux.Delete("/v1/reservations/{id}", h.cancelReservation)
	s.mux.Get("/v1/cities/{city}/nearby", h.nearbyCities)
	s.mux.Post("/v1/graph/validate", h.validateGraph)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr translates the domain error taxonomy to HTTP statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		writeProblem(w, http.StatusBadRequest, "Invalid State", err.Error())
	default:
		log.Error().Err(err).Msg("unhandled service error")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "unexpected error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable answers GET requests with an ETag and honors If-None-Match.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func toResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:        res.ID,
		GuestName: res.GuestName,
		HotelName: res.HotelName,
		CheckIn:   res.CheckIn.Format(dateLayout),
		CheckOut:  res.CheckOut.Format(dateLayout),
		Status:    string(res.Status),
	}
}

// parseDate accepts "" as the zero time so that absent dates reach business
// validation instead of being rejected as malformed.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates must be formatted as %s", dateLayout)
	}
	return t, nil
}

func decodeReservation(r *http.Request) (domain.ReservationInput, error) {
	var p reservationPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return domain.ReservationInput{}, errors.New("malformed JSON body")
	}
	in, err := parseDate(p.CheckIn)
	if err != nil {
		return domain.ReservationInput{}, err
	}
	out, err := parseDate(p.CheckOut)
	if err != nil {
		return domain.ReservationInput{}, err
	}
	return domain.ReservationInput{
		GuestName: p.GuestName,
		HotelName: p.HotelName,
		CheckIn:   in,
		CheckOut:  out,
	}, nil
}

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	items, err := h.Res.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	out := make([]reservationResponse, 0, len(items))
	for _, res := range items {
		out = append(out, toResponse(res))
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	req, err := decodeReservation(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	res, err := h.Res.Create(r.Context(), req)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	observability.ObserveReservation("created")
	writeJSON(w, http.StatusCreated, toResponse(res))
}

func (h *Handlers) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	res, err := h.Res.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeCacheable(w, r, toResponse(res))
}

func (h *Handlers) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	req, err := decodeReservation(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	res, err := h.Res.Update(r.Context(), id, req)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	observability.ObserveReservation("updated")
	writeJSON(w, http.StatusOK, toResponse(res))
}

func (h *Handlers) cancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	res, err := h.Res.Cancel(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	observability.ObserveReservation("canceled")
	writeJSON(w, http.StatusOK, toResponse(res))
}

func (h *Handlers) nearbyCities(w http.ResponseWriter, r *http.Request) {
	// chi keeps params percent-encoded when the request path was escaped
	city := chi.URLParam(r, "city")
	if dec, err := url.PathUnescape(city); err == nil {
		city = dec
	}

	within := float64(app.DefaultMaxDistance)
	if ws := r.URL.Query().Get("within"); ws != "" {
		v, err := strconv.ParseFloat(ws, 64)
		if err != nil || math.IsNaN(v) || v < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid Threshold", "within must be a non-negative number")
			return
		}
		within = v
	}

	rows, err := h.Cities.Nearby(r.Context(), city, within)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	out := make([]nearbyCityResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, nearbyCityResponse{City: n.City, Distance: n.Distance})
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) validateGraph(w http.ResponseWriter, r *http.Request) {
	var p graphPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Payload", "malformed JSON body")
		return
	}

	data := domain.GraphData{Cities: p.Cities}
	if p.Edges != nil {
		data.Edges = make([]domain.CityEdge, 0, len(p.Edges))
		for _, e := range p.Edges {
			data.Edges = append(data.Edges, domain.CityEdge{From: e.From, To: e.To, Distance: e.Distance})
		}
	}

	v := app.ValidateGraphData(data)
	writeJSON(w, http.StatusOK, validationResponse{OK: v.OK, Reason: v.Reason})
}
