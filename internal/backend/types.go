// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"eventhub/cli/internal/api"
)

// Response is the envelope every event-service endpoint wraps its payload in.
type Response[T any] struct {
	Success    bool      `json:"success"`
	StatusCode int       `json:"statusCode,omitempty"`
	Message    string    `json:"message,omitempty"`
	Data       T         `json:"data"`
	Meta       *api.Meta `json:"meta,omitempty"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	AccessToken string `json:"accessToken"`

	// Some deployments use snake_case or a bare "token".
	AccessTokenSnake string `json:"access_token,omitempty"`
	Token            string `json:"token,omitempty"`
}

// SessionToken returns the token to store, trying the known field names.
func (d LoginData) SessionToken() string {
	for _, v := range []string{d.AccessToken, d.AccessTokenSnake, d.Token} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// User is the profile returned by /users/my-profile and signup.
type User struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Event is an event as returned by the service.
type Event struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	CreatorName   string `json:"creatorName"`
	AttendeeCount int    `json:"attendeeCount"`
	IsJoined      bool   `json:"isJoined,omitempty"`
}

// UnmarshalJSON accepts either "_id" or "id" as the identifier.
func (e *Event) UnmarshalJSON(b []byte) error {
	type plain Event
	var aux struct {
		plain
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*e = Event(aux.plain)
	if e.ID == "" {
		e.ID = aux.AltID
	}
	return nil
}

// EventInput is the body of POST /events.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	CreatorName string `json:"creatorName"`
}

// EventPatch is a partial update; nil fields are omitted from the body.
type EventPatch struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Date          *string `json:"date,omitempty"`
	Time          *string `json:"time,omitempty"`
	Location      *string `json:"location,omitempty"`
	CreatorName   *string `json:"creatorName,omitempty"`
	AttendeeCount *int    `json:"attendeeCount,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p EventPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil && p.Time == nil &&
		p.Location == nil && p.CreatorName == nil && p.AttendeeCount == nil
}

// DateRange is a relative date filter understood by GET /events.
type DateRange string

const (
	RangeToday        DateRange = "today"
	RangeCurrentWeek  DateRange = "current-week"
	RangeLastWeek     DateRange = "last-week"
	RangeCurrentMonth DateRange = "current-month"
	RangeLastMonth    DateRange = "last-month"
)

// DateRanges lists the accepted filters in display order.
var DateRanges = []DateRange{RangeToday, RangeCurrentWeek, RangeLastWeek, RangeCurrentMonth, RangeLastMonth}

// ParseDateRange validates s. "" and "all" mean no filter.
func ParseDateRange(s string) (DateRange, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return "", nil
	}
	for _, r := range DateRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown date range %q", s)
}

// EventQuery holds the list filters. Empty fields are not sent.
type EventQuery struct {
	SearchTerm string
	Date       string
	DateRange  DateRange
}

// Values encodes q as query parameters.
func (q EventQuery) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(q.SearchTerm); s != "" {
		v.Set("searchTerm", s)
	}
	if s := strings.TrimSpace(q.Date); s != "" {
		v.Set("date", s)
	}
	if q.DateRange != "" {
		v.Set("dateRange", string(q.DateRange))
	}
	return v
}
