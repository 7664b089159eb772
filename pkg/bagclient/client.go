package bagclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// ErrNotAuthenticated is returned before any network call when no
// session is available.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrProfileIncomplete is returned by ConfirmBooking when the profile
// loads fine but has no name or phone; the caller should route the user
// to profile setup instead of confirming anonymously.
var ErrProfileIncomplete = errors.New("profile incomplete")

// Session is a signed-in user as the token provider sees it.
type Session struct {
	UID   string
	Token string
}

// TokenProvider supplies the current session. Implementations may refresh
// tokens under the hood; returning an error or an empty token means the
// user is signed out.
type TokenProvider interface {
	Session(ctx context.Context) (Session, error)
}

// ServerError carries the body's error string for a non-2xx response.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// Client talks to the bag API. It never retries and never panics; every
// operation guards on the session before touching the network.
type Client struct {
	baseURL string
	tokens  TokenProvider
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) session(ctx context.Context) (Session, error) {
	s, err := c.tokens.Session(ctx)
	if err != nil || s.Token == "" {
		return Session{}, ErrNotAuthenticated
	}
	return s, nil
}

// AddToBag adds one line to the bag. Quantity defaults to 1, unit to
// piece. An empty LineKey gets a fresh ksuid, which only dedupes replays
// of that one request. Callers that retry by calling AddToBag again must
// pass their own LineKey to avoid double-counting.
func (c *Client) AddToBag(ctx context.Context, item structs.AddToBag) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	if item.ItemID == "" || item.ShopID == "" {
		return errors.New("itemId and shopId are required")
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.Unit == "" {
		item.Unit = structs.DefaultUnit
	}
	if item.LineKey == "" {
		item.LineKey = ksuid.New().String()
	}

	return c.do(ctx, s, http.MethodPost, "/api/bag/add", item, nil)
}

// GetBagItems fetches the current bag. A signed-out user gets the
// canonical empty bag with no error and no network traffic.
func (c *Client) GetBagItems(ctx context.Context) (structs.BagData, error) {
	s, err := c.session(ctx)
	if err != nil {
		return structs.EmptyBagData(), nil
	}

	var out struct {
		Bag structs.BagData `json:"bag"`
	}
	if err = c.do(ctx, s, http.MethodGet, "/api/bag/"+url.PathEscape(s.UID), nil, &out); err != nil {
		return structs.BagData{}, err
	}
	return out.Bag, nil
}

func (c *Client) UpdateQuantity(ctx context.Context, itemID string, quantity int64) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	body := structs.UpdateBagItem{Quantity: quantity}
	return c.do(ctx, s, http.MethodPut, "/api/bag/item/"+url.PathEscape(itemID), body, nil)
}

func (c *Client) RemoveFromBag(ctx context.Context, itemID string) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, s, http.MethodDelete, "/api/bag/item/"+url.PathEscape(itemID), nil, nil)
}

func (c *Client) ClearBag(ctx context.Context) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, s, http.MethodDelete, "/api/bag/"+url.PathEscape(s.UID), nil, nil)
}

// GetBagCount returns the badge count. Any failure, including being
// signed out, degrades to 0.
func (c *Client) GetBagCount(ctx context.Context) int64 {
	s, err := c.session(ctx)
	if err != nil {
		return 0
	}

	var out struct {
		Count int64 `json:"count"`
	}
	if err = c.do(ctx, s, http.MethodGet, "/api/bag/count/"+url.PathEscape(s.UID), nil, &out); err != nil {
		c.logger.Warn("bag count fetch failed", zap.Error(err))
		return 0
	}
	return out.Count
}

// ConfirmBooking settles the bag into per-shop WhatsApp links. A
// loaded-but-incomplete profile short-circuits to ErrProfileIncomplete;
// a failed profile fetch is best effort and the confirm proceeds with
// empty customer fields rather than blocking the booking.
func (c *Client) ConfirmBooking(ctx context.Context) (structs.BookingConfirmation, error) {
	s, err := c.session(ctx)
	if err != nil {
		return structs.BookingConfirmation{}, err
	}

	var req structs.ConfirmBooking
	var prof struct {
		Profile structs.Profile `json:"profile"`
	}
	if err = c.do(ctx, s, http.MethodGet, "/api/auth/user/profile", nil, &prof); err != nil {
		c.logger.Warn("profile fetch failed, confirming without customer details", zap.Error(err))
	} else if !prof.Profile.IsComplete() {
		return structs.BookingConfirmation{}, ErrProfileIncomplete
	} else {
		req.UserName = prof.Profile.Name
		req.UserPhone = prof.Profile.PhoneNumber
	}

	var out structs.BookingConfirmation
	if err = c.do(ctx, s, http.MethodPost, "/api/bag/confirm", req, &out); err != nil {
		return structs.BookingConfirmation{}, err
	}
	return out, nil
}

// MessageText extracts the prefilled message from a wa.me link. A link
// without a text parameter yields "" with no error.
func MessageText(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse whatsapp link: %w", err)
	}
	return u.Query().Get("text"), nil
}

func (c *Client) do(ctx context.Context, s Session, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bag api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func readErrorMessage(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Error == "" {
		return "request failed"
	}
	return body.Error
}
