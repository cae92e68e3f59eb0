package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/auth"
	"eventhub/cli/internal/keychain"
)

type hit struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

// fakeService records requests and answers with canned bodies keyed by "METHOD path".
type fakeService struct {
	mu      sync.Mutex
	hits    []hit
	replies map[string]string
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.hits = append(f.hits, hit{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   string(b),
	})
	reply, ok := f.replies[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"message":"Route not found"}`)
		return
	}
	_, _ = io.WriteString(w, reply)
}

func (f *fakeService) last(t *testing.T) hit {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.hits)
	return f.hits[len(f.hits)-1]
}

func setup(t *testing.T, replies map[string]string) (API, *auth.Manager, *fakeService) {
	t.Helper()
	svc := &fakeService{replies: replies}
	srv := httptest.NewServer(svc)
	t.Cleanup(srv.Close)

	sessions := auth.NewManager(keychain.NewMemory())
	client := api.NewClient(api.NewExecutor(sessions), func() string { return srv.URL + "/api/v1" })
	return New(client), sessions, svc
}

func TestLoginThenAuthenticatedCall(t *testing.T) {
	be, sessions, svc := setup(t, map[string]string{
		"POST /api/v1/auth/login":      `{"success":true,"data":{"accessToken":"Bearer xyz"}}`,
		"GET /api/v1/users/my-profile": `{"success":true,"data":{"_id":"u1","name":"Ada","email":"a@b.com"}}`,
	})
	ctx := context.Background()

	res := be.Login(ctx, LoginRequest{Email: "a@b.com", Password: "secret"})
	require.Equal(t, api.KindOK, res.Kind)
	assert.True(t, res.Data.Success)
	assert.Equal(t, "Bearer xyz", res.Data.Data.AccessToken)

	login := svc.last(t)
	assert.Equal(t, http.MethodPost, login.Method)
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret"}`, login.Body)
	assert.Empty(t, login.Auth)

	require.NoError(t, sessions.StoreSession(res.Data.Data.SessionToken()))

	me := be.GetLoggedUser(ctx)
	require.True(t, me.IsOK())
	assert.Equal(t, "Ada", me.Data.Data.Name)
	assert.Equal(t, "Bearer xyz", svc.last(t).Auth)
}

func TestListEvents_Query(t *testing.T) {
	be, _, svc := setup(t, map[string]string{
		"GET /api/v1/events": `{"success":true,"data":[{"_id":"e1","title":"Tech Talk","attendeeCount":3},{"id":"e2","title":"Tech Fair"}],"meta":{"page":1,"limit":10,"total":2}}`,
	})

	res := be.ListEvents(context.Background(), EventQuery{SearchTerm: "tech"})
	require.True(t, res.IsOK())
	require.Len(t, res.Data.Data, 2)
	assert.Equal(t, "e1", res.Data.Data[0].ID)
	assert.Equal(t, 3, res.Data.Data[0].AttendeeCount)
	assert.Equal(t, "e2", res.Data.Data[1].ID, "plain id is accepted")
	require.NotNil(t, res.Meta)
	assert.Equal(t, 2, res.Meta.Total)

	h := svc.last(t)
	assert.Equal(t, http.MethodGet, h.Method)
	assert.Equal(t, "/api/v1/events", h.Path)
	assert.Equal(t, "searchTerm=tech", h.Query)
}

func TestListEvents_AllFilters(t *testing.T) {
	be, _, svc := setup(t, map[string]string{"GET /api/v1/events": `{"success":true,"data":[]}`})

	res := be.ListEvents(context.Background(), EventQuery{SearchTerm: "music", Date: "2024-02-20", DateRange: RangeCurrentWeek})
	require.True(t, res.IsOK())
	assert.Equal(t, "date=2024-02-20&dateRange=current-week&searchTerm=music", svc.last(t).Query)
}

func TestEventOperations(t *testing.T) {
	event := `{"success":true,"data":{"_id":"e1","title":"Meetup"}}`
	be, sessions, svc := setup(t, map[string]string{
		"GET /api/v1/events/e1":       event,
		"POST /api/v1/events":         event,
		"PATCH /api/v1/events/e1":     event,
		"DELETE /api/v1/events/e1":    event,
		"GET /api/v1/events/my-event": `{"success":true,"data":[]}`,
		"POST /api/v1/events/e1/join": event,
	})
	require.NoError(t, sessions.StoreSession("Bearer tok"))
	ctx := context.Background()
	title := "Renamed"

	tests := []struct {
		name       string
		call       func() bool
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		{
			name:       "get",
			call:       func() bool { return be.GetEvent(ctx, "e1").IsOK() },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/events/e1",
		},
		{
			name: "create",
			call: func() bool {
				return be.CreateEvent(ctx, EventInput{
					Title: "Meetup", Description: "Go", Date: "2025-01-01", Time: "18:00", Location: "HQ", CreatorName: "Ada",
				}).IsOK()
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/events",
			wantBody:   `{"title":"Meetup","description":"Go","date":"2025-01-01","time":"18:00","location":"HQ","creatorName":"Ada"}`,
		},
		{
			name:       "partial update",
			call:       func() bool { return be.UpdateEvent(ctx, "e1", EventPatch{Title: &title}).IsOK() },
			wantMethod: http.MethodPatch,
			wantPath:   "/api/v1/events/e1",
			wantBody:   `{"title":"Renamed"}`,
		},
		{
			name:       "delete",
			call:       func() bool { return be.DeleteEvent(ctx, "e1").IsOK() },
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/events/e1",
		},
		{
			name:       "my events",
			call:       func() bool { return be.MyEvents(ctx, EventQuery{}).IsOK() },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/events/my-event",
		},
		{
			name:       "join",
			call:       func() bool { return be.JoinEvent(ctx, "e1").IsOK() },
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/events/e1/join",
			wantBody:   `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.call())
			h := svc.last(t)
			assert.Equal(t, tt.wantMethod, h.Method)
			assert.Equal(t, tt.wantPath, h.Path)
			assert.Equal(t, "Bearer tok", h.Auth)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, h.Body)
			}
		})
	}
}

func TestSignup_ServerRejects(t *testing.T) {
	be, _, _ := setup(t, nil)

	res := be.Signup(context.Background(), SignupRequest{Name: "Ada", Email: "a@b.com", Password: "secret1"})
	require.Equal(t, api.KindErr, res.Kind)
	assert.Equal(t, http.StatusNotFound, res.Err.Status)
	assert.Equal(t, "Route not found", res.Err.Message())
}

func TestEventPath_Escapes(t *testing.T) {
	assert.Equal(t, "/events/a%2Fb", EventPath("a/b"))
	assert.Equal(t, "/events/x/join", JoinEventPath("x"))
}

func TestLoginData_SessionToken(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"accessToken":"Bearer a"}`, "Bearer a"},
		{`{"access_token":"b"}`, "b"},
		{`{"token":"c"}`, "c"},
		{`{}`, ""},
	}
	for _, tt := range tests {
		var d LoginData
		require.NoError(t, json.Unmarshal([]byte(tt.body), &d))
		assert.Equal(t, tt.want, d.SessionToken(), tt.body)
	}
}

func TestParseDateRange(t *testing.T) {
	for _, r := range DateRanges {
		got, err := ParseDateRange(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	got, err := ParseDateRange("all")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseDateRange("next-year")
	assert.Error(t, err)
}

func TestEventPatch_Empty(t *testing.T) {
	assert.True(t, EventPatch{}.Empty())
	n := 3
	assert.False(t, EventPatch{AttendeeCount: &n}.Empty())
}
