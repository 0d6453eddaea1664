package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/calendrical/internal/calendar"
	"github.com/zapponejosh/calendrical/internal/database"
	"github.com/zapponejosh/calendrical/internal/logger"
)

type formResponse struct {
	Name string `json:"name"`
	database.Form
}

type calendarResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	MonthsInYear int            `json:"months_in_year"`
	Forms        []formResponse `json:"forms"`
}

// DateResponse describes a date of a calendar.
type DateResponse struct {
	Calendar    string `json:"calendar"`
	Date        string `json:"date"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	DayNumber   int    `json:"day_number"`
	DayOfWeek   string `json:"day_of_week"`
	LeapYear    bool   `json:"leap_year"`
	DaysInMonth int    `json:"days_in_month"`
}

// NewDateResponse builds the response for d.
func NewDateResponse(d calendar.Date) DateResponse {
	s := d.Schema()
	return DateResponse{
		Calendar:    s.ID(),
		Date:        d.String(),
		Year:        d.Year(),
		Month:       d.Month(),
		Day:         d.Day(),
		DayNumber:   d.DayNumber(),
		DayOfWeek:   d.DayOfWeek().String(),
		LeapYear:    s.IsLeapYear(d.Year()),
		DaysInMonth: s.DaysInMonth(d.Year(), d.Month()),
	}
}

// writeCalendarError maps calendar errors to responses.
func writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, calendar.ErrUnknownCalendar):
		WriteNotFound(w, err.Error())
	case errors.Is(err, calendar.ErrInvalidDate):
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_DATE")
	case errors.Is(err, calendar.ErrOutOfRange), errors.Is(err, calendar.ErrOverflow):
		WriteError(w, http.StatusBadRequest, err.Error(), "OUT_OF_RANGE")
	case errors.Is(err, calendar.ErrNoEaster):
		WriteError(w, http.StatusBadRequest, err.Error(), "NO_EASTER")
	default:
		logger.Error(r.Context(), "calendar request failed", err)
		WriteInternalError(w, "Calendar computation failed")
	}
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	schemas := h.catalog.All()
	out := make([]calendarResponse, 0, len(schemas))
	for _, s := range schemas {
		c := calendarResponse{ID: s.ID(), Name: s.Name(), MonthsInYear: s.MonthsInYear(1)}
		for _, nf := range s.Forms() {
			c.Forms = append(c.Forms, formResponse{
				Name: nf.Name,
				Form: database.Form{A: nf.Form.A(), B: nf.Form.B(), R: nf.Form.R()},
			})
		}
		out = append(out, c)
	}
	WriteSuccess(w, out)
}

// GetDayNumber handles GET /api/v1/calendars/{id}/days/{dayNumber}
func (h *Handlers) GetDayNumber(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	n, err := strconv.Atoi(chi.URLParam(r, "dayNumber"))
	if err != nil {
		WriteBadRequest(w, "Invalid day number")
		return
	}

	d, err := calendar.FromDayNumber(s, n)
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, NewDateResponse(d))
}

// GetDate handles GET /api/v1/calendars/{id}/dates/{date}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	d, err := calendar.ParseDate(s, chi.URLParam(r, "date"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, NewDateResponse(d))
}

// GetEaster handles GET /api/v1/calendars/{id}/easter/{year}
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Invalid year")
		return
	}

	f, err := calendar.Feasts(s, year)
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]DateResponse{
		"ash_wednesday": NewDateResponse(f.AshWednesday),
		"easter":        NewDateResponse(f.Easter),
		"ascension":     NewDateResponse(f.Ascension),
		"pentecost":     NewDateResponse(f.Pentecost),
		"advent":        NewDateResponse(f.Advent),
	})
}

// ConvertDate handles GET /api/v1/calendars/{id}/convert/{date}?to={id}
func (h *Handlers) ConvertDate(w http.ResponseWriter, r *http.Request) {
	from, err := h.catalog.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	toID := r.URL.Query().Get("to")
	if toID == "" {
		WriteBadRequest(w, "Query parameter 'to' is required")
		return
	}
	to, err := h.catalog.Lookup(toID)
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	d, err := calendar.ParseDate(from, chi.URLParam(r, "date"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	converted, err := d.ConvertTo(to)
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]DateResponse{
		"from": NewDateResponse(d),
		"to":   NewDateResponse(converted),
	})
}
