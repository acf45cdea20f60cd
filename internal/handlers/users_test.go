package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookslist/internal/models"
	"bookslist/internal/service"
)

func TestUserHandlers_ListAndGet(t *testing.T) {
	auth := &mockAuth{parseClaims: claimsFor(1, "alice")}
	users := &mockUsers{
		listResp: []models.User{
			{ID: 1, Name: "alice", Books: []models.Book{}},
			{ID: 2, Name: "bob", Books: []models.Book{}},
		},
		getResp: &models.User{ID: 2, Name: "bob", Books: []models.Book{}},
	}
	r := newTestRouter(&service.Service{Authorization: auth, Users: users})

	// list
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
	if _, leaked := list[0]["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}

	// reading another user's profile is allowed
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/2", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}
}

func TestUserHandlers_GetNotFound(t *testing.T) {
	auth := &mockAuth{parseClaims: claimsFor(1, "alice")}
	users := &mockUsers{getErr: fmt.Errorf("user id=99: %w", service.ErrNotFound)}
	r := newTestRouter(&service.Service{Authorization: auth, Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUserHandlers_CurrentUser_VanishedAccountIs500(t *testing.T) {
	auth := &mockAuth{parseClaims: claimsFor(7, "alice")}
	users := &mockUsers{getErr: fmt.Errorf("user id=7: %w", service.ErrNotFound)}
	r := newTestRouter(&service.Service{Authorization: auth, Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when token user vanished, got %d", w.Code)
	}
}

func TestUserHandlers_UpdateSelfOnly(t *testing.T) {
	auth := &mockAuth{parseClaims: claimsFor(1, "alice")}
	users := &mockUsers{updResp: &models.User{ID: 1, Name: "newname", Books: []models.Book{}}}
	r := newTestRouter(&service.Service{Authorization: auth, Users: users})

	// renaming yourself works
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewBufferString(`{"name":"newname"}`))
	req.Header = authHeader("tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d (%s)", w.Code, w.Body.String())
	}
	if users.lastUpdID != 1 || users.lastUpdName != "newname" {
		t.Fatalf("unexpected update args: %d %q", users.lastUpdID, users.lastUpdName)
	}

	// renaming someone else is forbidden
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/users/2", bytes.NewBufferString(`{"name":"x"}`))
	req.Header = authHeader("tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign profile, got %d", w.Code)
	}
}

func TestUserHandlers_DeleteSelfOnly(t *testing.T) {
	auth := &mockAuth{parseClaims: claimsFor(1, "alice")}
	users := &mockUsers{}
	r := newTestRouter(&service.Service{Authorization: auth, Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body on delete, got %q", w.Body.String())
	}
	if users.deleteCalls != 1 || users.lastDeleteID != 1 {
		t.Fatalf("unexpected delete calls: %d id=%d", users.deleteCalls, users.lastDeleteID)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/users/2", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 deleting another user, got %d", w.Code)
	}
	if users.deleteCalls != 1 {
		t.Fatalf("service must not be called on a forbidden delete")
	}
}
