package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"press-kit.backend/internal/domain/entities"
	domainerrors "press-kit.backend/internal/domain/errors"
	"press-kit.backend/internal/interfaces/http/middleware"
	"press-kit.backend/pkg/jwt"
	"press-kit.backend/pkg/policy"
)

type teamMemberRepoStub struct {
	items map[uuid.UUID]*entities.TeamMember
}

func newTeamMemberRepoStub() *teamMemberRepoStub {
	return &teamMemberRepoStub{items: map[uuid.UUID]*entities.TeamMember{}}
}

func (s *teamMemberRepoStub) Create(_ context.Context, member *entities.TeamMember) error {
	s.items[member.ID] = member
	return nil
}

func (s *teamMemberRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *teamMemberRepoStub) List(_ context.Context) ([]*entities.TeamMember, error) {
	out := make([]*entities.TeamMember, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *teamMemberRepoStub) Update(_ context.Context, member *entities.TeamMember) error {
	if _, ok := s.items[member.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[member.ID] = member
	return nil
}

func (s *teamMemberRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func newTeamMemberRouter(repo *teamMemberRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTeamMemberHandler(repo)
	r := gin.New()
	r.GET("/team-members", h.List)
	r.GET("/team-members/:id", h.Get)
	r.POST("/team-members", h.Create)
	r.PUT("/team-members/:id", h.Update)
	r.DELETE("/team-members/:id", h.Delete)
	return r
}

func TestTeamMemberHandler_FullFlow(t *testing.T) {
	repo := newTeamMemberRepoStub()
	r := newTeamMemberRouter(repo)

	createPayload := map[string]any{
		"name":         "Maya Ortega",
		"bio":          "Founder and lead author.",
		"photoUrl":     "https://cdn.example.com/images/maya.jpg",
		"connectEmail": "maya@example.com",
		"bookLinks": []map[string]any{
			{"title": "First Light", "url": "https://shop.example.com/first-light"},
		},
		"socialLinks": []map[string]any{
			{"platform": "twitter", "url": "https://x.com/maya", "username": "maya"},
		},
	}
	body, _ := json.Marshal(createPayload)
	req := httptest.NewRequest(http.MethodPost, "/team-members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a non-nil id")
	}

	req = httptest.NewRequest(http.MethodGet, "/team-members", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []entities.TeamMember
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Maya Ortega" {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	req = httptest.NewRequest(http.MethodGet, "/team-members/"+created.ID.String(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got entities.TeamMember
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if got.ConnectEmail.String != "maya@example.com" {
		t.Fatalf("unexpected connectEmail: %q", got.ConnectEmail.String)
	}
	if len(got.BookLinks) != 1 || got.BookLinks[0].Title != "First Light" {
		t.Fatalf("unexpected bookLinks: %+v", got.BookLinks)
	}

	updatePayload := map[string]any{"bio": "Founder, lead author, and editor."}
	body, _ = json.Marshal(updatePayload)
	req = httptest.NewRequest(http.MethodPut, "/team-members/"+created.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if repo.items[created.ID].Bio != "Founder, lead author, and editor." {
		t.Fatalf("bio not merged: %q", repo.items[created.ID].Bio)
	}
	if repo.items[created.ID].Name != "Maya Ortega" {
		t.Fatalf("name should survive a partial update, got %q", repo.items[created.ID].Name)
	}

	req = httptest.NewRequest(http.MethodDelete, "/team-members/"+created.ID.String(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var deleted struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if !deleted.Success {
		t.Fatal("expected success=true")
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected empty store, got %d items", len(repo.items))
	}
}

func TestTeamMemberHandler_AnonymousCreateLeavesStoreUntouched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newTeamMemberRepoStub()
	h := NewTeamMemberHandler(repo)

	jwtService := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	adminPolicy := policy.NewAllowList([]string{"admin@example.com"})

	r := gin.New()
	r.GET("/team-members", h.List)
	r.POST("/team-members", middleware.AuthMiddleware(jwtService), middleware.RequireAdmin(adminPolicy), h.Create)

	body := []byte(`{"name":"Intruder","bio":"should never persist"}`)
	req := httptest.NewRequest(http.MethodPost, "/team-members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}

	// A subsequent listing confirms nothing was written.
	req = httptest.NewRequest(http.MethodGet, "/team-members", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []entities.TeamMember
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("store must be unchanged after a rejected create, got %+v", listed)
	}

	// A verified identity outside the allow-list is rejected the same way.
	pair, err := jwtService.GenerateTokenPair(uuid.New(), "writer@example.com")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}
	req = httptest.NewRequest(http.MethodPost, "/team-members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin identity, got %d", rec.Code)
	}
	if len(repo.items) != 0 {
		t.Fatalf("store must be unchanged, got %d items", len(repo.items))
	}
}

func TestTeamMemberHandler_ValidationAndNotFound(t *testing.T) {
	repo := newTeamMemberRepoStub()
	r := newTeamMemberRouter(repo)

	// Missing required fields.
	req := httptest.NewRequest(http.MethodPost, "/team-members", bytes.NewReader([]byte(`{"name":"only-name"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// A relative photo URL is rejected.
	req = httptest.NewRequest(http.MethodPost, "/team-members", bytes.NewReader([]byte(`{"name":"n","bio":"b","photoUrl":"/images/x.png"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for relative URL, got %d", rec.Code)
	}

	// Malformed id.
	req = httptest.NewRequest(http.MethodGet, "/team-members/not-a-uuid", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Missing records map to 404 on every verb.
	missing := uuid.New().String()
	for _, tc := range []struct {
		method string
		body   []byte
	}{
		{http.MethodGet, nil},
		{http.MethodPut, []byte(`{"name":"x"}`)},
		{http.MethodDelete, nil},
	} {
		var req *http.Request
		if tc.body != nil {
			req = httptest.NewRequest(tc.method, "/team-members/"+missing, bytes.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, "/team-members/"+missing, nil)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", tc.method, rec.Code)
		}
	}
}
