package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTodayPuzzle_DecodesAndAuthenticates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/puzzle/today" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected request id header")
		}
		json.NewEncoder(w).Encode(Puzzle{ID: "p1", Date: "2026-08-30", Letters: "CARTES", MinLength: 3})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-1")
	p, err := c.TodayPuzzle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "p1" || p.Letters != "CARTES" {
		t.Fatalf("unexpected puzzle %+v", p)
	}
}

func TestSubmitGuess_PostsWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/puzzle/p1/guess" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req guessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if req.Word != "TRACE" {
			t.Errorf("expected TRACE, got %q", req.Word)
		}
		json.NewEncoder(w).Encode(GuessResult{Valid: true, Score: 8})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-1")
	res, err := c.SubmitGuess(context.Background(), "p1", "TRACE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid || res.Score != 8 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestDo_UnauthorizedSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "stale")
	_, err := c.TodayPuzzle(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDo_ServerErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(errorResponse{Error: "hint limit reached"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.Hint(context.Background(), "p1")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "hint limit reached"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in error, got %v", want, err)
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.DeviceID == "" {
			t.Error("expected device id in login request")
		}
		json.NewEncoder(w).Encode(loginResponse{Token: "tok-2"})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	tok, err := c.Login(context.Background(), "ada", "pw", "dev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "tok-2" {
		t.Fatalf("expected tok-2, got %q", tok)
	}
}
