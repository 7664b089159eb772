package bagclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
)

type staticTokens struct {
	session Session
	err     error
}

func (s staticTokens) Session(ctx context.Context) (Session, error) {
	return s.session, s.err
}

var signedIn = staticTokens{session: Session{UID: "u1", Token: "tok"}}
var signedOut = staticTokens{err: errors.New("no session")}

func TestSignedOutShortCircuits(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, signedOut)
	ctx := context.Background()

	data, err := c.GetBagItems(ctx)
	if err != nil {
		t.Fatalf("GetBagItems signed out must not error, got %v", err)
	}
	if len(data.Items) != 0 || data.TotalItems != 0 {
		t.Errorf("expected empty bag, got %+v", data)
	}
	if data.Items == nil {
		t.Error("empty bag items must not be nil")
	}

	if err := c.AddToBag(ctx, structs.AddToBag{ItemID: "i1", ShopID: "s1"}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("AddToBag = %v, want ErrNotAuthenticated", err)
	}
	if err := c.ClearBag(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("ClearBag = %v, want ErrNotAuthenticated", err)
	}
	if _, err := c.ConfirmBooking(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("ConfirmBooking = %v, want ErrNotAuthenticated", err)
	}
	if n := c.GetBagCount(ctx); n != 0 {
		t.Errorf("GetBagCount signed out = %d, want 0", n)
	}

	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Errorf("signed-out operations made %d network calls, want 0", got)
	}
}

func TestAddToBagDefaults(t *testing.T) {
	var received structs.AddToBag
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bag/add" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("missing bearer token, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatal(err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, signedIn)
	if err := c.AddToBag(context.Background(), structs.AddToBag{ItemID: "i1", ShopID: "s1"}); err != nil {
		t.Fatal(err)
	}

	if received.Quantity != 1 {
		t.Errorf("quantity should default to 1, got %d", received.Quantity)
	}
	if received.Unit != structs.DefaultUnit {
		t.Errorf("unit should default to %q, got %q", structs.DefaultUnit, received.Unit)
	}
	if received.LineKey == "" {
		t.Error("a lineKey should be generated when absent")
	}

	if err := c.AddToBag(context.Background(), structs.AddToBag{ItemID: "i1", ShopID: "s1", LineKey: "retry-key"}); err != nil {
		t.Fatal(err)
	}
	if received.LineKey != "retry-key" {
		t.Errorf("caller-supplied lineKey must be kept, got %q", received.LineKey)
	}
}

func TestGetBagCountSwallowsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, signedIn)
	if n := c.GetBagCount(context.Background()); n != 0 {
		t.Errorf("count on server error = %d, want 0", n)
	}

	srv.Close()
	if n := c.GetBagCount(context.Background()); n != 0 {
		t.Errorf("count on transport error = %d, want 0", n)
	}
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "empty bag"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, signedIn)
	err := c.UpdateQuantity(context.Background(), "i1", 3)

	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if serr.StatusCode != http.StatusBadRequest || serr.Message != "empty bag" {
		t.Errorf("got %d %q", serr.StatusCode, serr.Message)
	}
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid quantity")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, signedIn)
	if err := c.UpdateQuantity(context.Background(), "i1", 0); err == nil {
		t.Error("quantity 0 must be rejected locally")
	}
}

func TestConfirmBookingProceedsWithoutProfile(t *testing.T) {
	var confirmReq structs.ConfirmBooking
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/user/profile", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"profile not found"}`, http.StatusNotFound)
	})
	mux.HandleFunc("/api/bag/confirm", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&confirmReq); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(structs.BookingConfirmation{
			Success:    true,
			BookingID:  "bk-1",
			TotalShops: 2,
			Links: []structs.WhatsAppLink{
				{ShopID: "s1"},
				{ShopID: "s2"},
			},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, signedIn)
	conf, err := c.ConfirmBooking(context.Background())
	if err != nil {
		t.Fatalf("confirm must survive a profile failure, got %v", err)
	}

	if confirmReq.UserName != "" || confirmReq.UserPhone != "" {
		t.Errorf("customer fields should be empty on profile failure, got %+v", confirmReq)
	}
	if !conf.Success || conf.BookingID != "bk-1" {
		t.Errorf("unexpected confirmation %+v", conf)
	}
	if int64(len(conf.Links)) != conf.TotalShops {
		t.Errorf("links (%d) must match totalShops (%d)", len(conf.Links), conf.TotalShops)
	}
}

func TestConfirmBookingIncompleteProfileShortCircuits(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/user/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]structs.Profile{
			"profile": {UID: "u1", Name: "Ravi"},
		})
	})
	mux.HandleFunc("/api/bag/confirm", func(w http.ResponseWriter, r *http.Request) {
		t.Error("confirm must not be called with an incomplete profile")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, signedIn)
	if _, err := c.ConfirmBooking(context.Background()); !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("ConfirmBooking = %v, want ErrProfileIncomplete", err)
	}
}

func TestConfirmBookingSendsProfile(t *testing.T) {
	var confirmReq structs.ConfirmBooking
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/user/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]structs.Profile{
			"profile": {UID: "u1", Name: "Ravi", PhoneNumber: "+919876543210"},
		})
	})
	mux.HandleFunc("/api/bag/confirm", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&confirmReq); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(structs.BookingConfirmation{Success: true, BookingID: "bk-2"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, signedIn)
	if _, err := c.ConfirmBooking(context.Background()); err != nil {
		t.Fatal(err)
	}
	if confirmReq.UserName != "Ravi" || confirmReq.UserPhone != "+919876543210" {
		t.Errorf("profile fields not forwarded, got %+v", confirmReq)
	}
}

func TestMessageText(t *testing.T) {
	link := "https://wa.me/919876543210?text=Namaste%21+Order+no+5"
	got, err := MessageText(link)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Namaste! Order no 5" {
		t.Errorf("MessageText = %q", got)
	}

	got, err = MessageText("https://wa.me/919876543210")
	if err != nil || got != "" {
		t.Errorf("link without text should yield empty string, got %q err %v", got, err)
	}

	if _, err = MessageText("://not a url"); err == nil {
		t.Error("unparsable link must return an error")
	}
}
