package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListAppointmentsParams narrows an appointment list request.
type ListAppointmentsParams struct {
	Page    int
	Limit   int
	Search  string
	Status  string
	Payment string
	Date    string
}

// AppointmentPage is one page of appointments.
type AppointmentPage struct {
	Appointments []Appointment
	Total        int
}

// ListAppointments fetches a page of appointments.
// GET /appointments
func (c *Client) ListAppointments(ctx context.Context, token string, p ListAppointmentsParams) (AppointmentPage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" && p.Status != "all" {
		q.Set("status", p.Status)
	}
	if p.Payment != "" && p.Payment != "all" {
		q.Set("payment", p.Payment)
	}
	if p.Date != "" {
		q.Set("date", p.Date)
	}

	var out struct {
		Appointments []Appointment `json:"appointments"`
		Total        int           `json:"total"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/appointments", q, nil, &out); err != nil {
		return AppointmentPage{}, err
	}
	return AppointmentPage{Appointments: out.Appointments, Total: out.Total}, nil
}

// UpdateAppointment patches the given fields (status, paymentStatus) and
// returns the updated record. Callers refetch or re-render only from the
// response.
// PUT /appointments/{id}
func (c *Client) UpdateAppointment(ctx context.Context, token, id string, fields map[string]string) (Appointment, error) {
	var out struct {
		Appointment Appointment `json:"appointment"`
	}
	err := c.do(ctx, token, http.MethodPut, "/appointments/"+id, nil, fields, &out)
	return out.Appointment, err
}
