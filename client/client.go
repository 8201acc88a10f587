package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrSessionNotReady is returned when a call that depends on the session
// fires before Bootstrap has completed
var ErrSessionNotReady = errors.New("session bootstrap has not completed")

// retryWait is how long to sit out before the single retry. Long enough
// for a cold-started backend to come up
const retryWait = 2 * time.Second

// User mirrors the server's non-secret user fields
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Link mirrors the server's link records
type Link struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type userEnvelope struct {
	User User `json:"user"`
}

type tokenEnvelope struct {
	Token string `json:"token"`
}

type apiError struct {
	Message string `json:"error"`
}

// Client wraps all calls to the backend. It attaches the session's bearer
// token to every request and retries exactly once when the server is
// unreachable, never on a received HTTP error status
type Client struct {
	http    *resty.Client
	session *Session
}

func New(baseURL string, session *Session) *Client {
	h := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(1).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			// A transport error never produced a response. Anything the
			// server actually answered, 4xx and 5xx included, stands
			return err != nil && (resp == nil || resp.RawResponse == nil)
		})

	h.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok := session.Token(); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}

		return nil
	})

	return &Client{
		http:    h,
		session: session,
	}
}

// Session exposes the session store this client feeds
func (c *Client) Session() *Session {
	return c.session
}

// Register creates a new account. It does not log the user in
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	var out userEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/api/users")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, decodeErr(resp)
	}

	return &out.User, nil
}

// Login exchanges credentials for a token, fetches the profile with it
// and persists both through the session store
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out tokenEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return decodeErr(resp)
	}

	// The login response only carries the token, the mirrored user record
	// comes from the profile endpoint
	var prof userEnvelope

	resp, err = c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+out.Token).
		SetResult(&prof).
		Get("/api/profile")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return decodeErr(resp)
	}

	return c.session.Login(out.Token, StoredUser{
		ID:    prof.User.ID,
		Email: prof.User.Email,
	})
}

// Profile returns the authenticated user's record
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out userEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/profile")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, decodeErr(resp)
	}

	return &out.User, nil
}

// Links returns the user's links, newest first. It refuses to fire before
// the session bootstrap has settled
func (c *Client) Links(ctx context.Context) ([]Link, error) {
	if !c.session.Ready() {
		return nil, ErrSessionNotReady
	}

	var out []Link

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/links")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, decodeErr(resp)
	}

	return out, nil
}

func (c *Client) CreateLink(ctx context.Context, title, url string) (*Link, error) {
	var out Link

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"title": title, "url": url}).
		SetResult(&out).
		Post("/api/links")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, decodeErr(resp)
	}

	return &out, nil
}

func (c *Client) DeleteLink(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/links/" + id)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return decodeErr(resp)
	}

	return nil
}

// decodeErr surfaces the server's {error} message when there is one and
// falls back to a generic status line otherwise
func decodeErr(resp *resty.Response) error {
	var e apiError

	if err := json.Unmarshal(resp.Body(), &e); err == nil && e.Message != "" {
		return errors.New(e.Message)
	}

	return fmt.Errorf("request failed with status %d", resp.StatusCode())
}
