package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/strahovochka/insurance-system/internal/api/middleware"
	"github.com/strahovochka/insurance-system/internal/core/domain"
)

type stubUserService struct {
	profile   *domain.User
	users     []domain.User
	managers  []domain.Manager
	updateErr error
	deleteErr error

	lastUpdateID int64
	lastUpdate   domain.UserUpdate
	lastDeleteID int64
}

func (s *stubUserService) Profile(_ context.Context, userID int64) (*domain.User, error) {
	if s.profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.profile, nil
}

func (s *stubUserService) List(_ context.Context) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubUserService) Managers(_ context.Context) ([]domain.Manager, error) {
	return s.managers, nil
}

func (s *stubUserService) Update(_ context.Context, actor domain.Session, targetID int64, upd domain.UserUpdate) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.lastUpdateID = targetID
	s.lastUpdate = upd
	return nil
}

func (s *stubUserService) Delete(_ context.Context, actor domain.Session, targetID int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.lastDeleteID = targetID
	return nil
}

func TestUserHandler_Me(t *testing.T) {
	svc := &stubUserService{profile: &domain.User{ID: 42, Username: "client1", Role: domain.RoleClient}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/me", "")
	c.Set(middleware.SessionKey, clientSession())

	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User.Username != "client1" {
		t.Fatalf("unexpected profile: %+v", resp.User)
	}
}

func TestUserHandler_Managers(t *testing.T) {
	svc := &stubUserService{managers: []domain.Manager{{ID: 2, FullName: "Manager One"}}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/managers", "")
	if err := h.Managers(c); err != nil {
		t.Fatalf("managers failed: %v", err)
	}
	var resp managersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Managers) != 1 || resp.Managers[0].FullName != "Manager One" {
		t.Fatalf("unexpected managers: %+v", resp.Managers)
	}
}

func TestUserHandler_Update(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/users/42", `{"phone":"+7 900 000 00 00"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	c.Set(middleware.SessionKey, clientSession())

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastUpdateID != 42 {
		t.Fatalf("target id not forwarded: %d", svc.lastUpdateID)
	}
	if svc.lastUpdate.Phone == nil || *svc.lastUpdate.Phone != "+7 900 000 00 00" {
		t.Fatalf("phone not forwarded: %+v", svc.lastUpdate)
	}
	if svc.lastUpdate.FullName != nil {
		t.Fatalf("absent field bound as set: %+v", svc.lastUpdate)
	}
}

func TestUserHandler_Update_BadID(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/users/abc", `{"phone":"1"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	c.Set(middleware.SessionKey, clientSession())

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %v", err)
	}
}

func TestUserHandler_Update_Forbidden(t *testing.T) {
	h := NewUserHandler(&stubUserService{updateErr: domain.ErrForbidden})

	c, _ := newTestContext(t, http.MethodPut, "/api/users/8", `{"phone":"1"}`)
	c.SetParamNames("id")
	c.SetParamValues("8")
	c.Set(middleware.SessionKey, clientSession())

	if err := h.Update(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden passthrough, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	c.Set(middleware.SessionKey, domain.Session{UserID: 1, Role: domain.RoleAdmin})

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastDeleteID != 9 {
		t.Fatalf("target id not forwarded: %d", svc.lastDeleteID)
	}
}

func TestUserHandler_Delete_Self(t *testing.T) {
	h := NewUserHandler(&stubUserService{deleteErr: domain.ErrSelfDelete})

	c, _ := newTestContext(t, http.MethodDelete, "/api/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set(middleware.SessionKey, domain.Session{UserID: 1, Role: domain.RoleAdmin})

	if err := h.Delete(c); err != domain.ErrSelfDelete {
		t.Fatalf("expected ErrSelfDelete passthrough, got %v", err)
	}
}
