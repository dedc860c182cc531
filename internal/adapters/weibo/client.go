package weibo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/luoyen/weibot/internal/adapters/httpclient"
	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

const (
	DefaultBaseURL = "https://weibo.com"

	profilePath = "/ajax/profile/info"
	postsPath   = "/ajax/statuses/mymblog"
	detailPath  = "/ajax/statuses/show"
	commentPath = "/ajax/comments/create"

	maxResponseBytes = 1 << 20
)

// Client talks to the platform's ajax endpoints. Credentials are loaded
// per request so a rotated cookie takes effect without a restart.
type Client struct {
	baseURL string
	creds   ports.CredentialSource
	http    *http.Client
}

var _ ports.FeedClient = (*Client)(nil)

func NewClient(baseURL string, creds ports.CredentialSource, logger *slog.Logger, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    httpclient.New(logger, timeout),
	}
}

func (c *Client) ProfileName(ctx context.Context, id domain.AccountID) (string, error) {
	query := url.Values{}
	query.Set("custom", string(id))

	var payload profileResponse
	if err := c.getJSON(ctx, profilePath, query, &payload); err != nil {
		return "", err
	}

	return payload.Data.User.ScreenName, nil
}

func (c *Client) RecentPosts(ctx context.Context, id domain.AccountID) ([]domain.Post, error) {
	query := url.Values{}
	query.Set("uid", string(id))
	query.Set("page", "1")
	query.Set("feature", "0")

	var payload postsResponse
	if err := c.getJSON(ctx, postsPath, query, &payload); err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(payload.Data.List))
	for _, entry := range payload.Data.List {
		posts = append(posts, domain.Post{ID: entry.ID, CreatedAt: entry.CreatedAt})
	}

	return posts, nil
}

func (c *Client) PostText(ctx context.Context, mid int64) (string, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(mid, 10))
	query.Set("locale", "zh-CN")
	query.Set("isGetLongText", "true")

	var payload detailResponse
	if err := c.getJSON(ctx, detailPath, query, &payload); err != nil {
		return "", err
	}

	return payload.TextRaw, nil
}

func (c *Client) CreateComment(ctx context.Context, mid int64, text string) (domain.ReplyOutcome, error) {
	header, err := c.headers(ctx)
	if err != nil {
		return domain.ReplyOutcome{}, err
	}

	form := url.Values{}
	form.Set("id", strconv.FormatInt(mid, 10))
	form.Set("comment", text)
	form.Set("pic_id", "")
	form.Set("is_repost", "0")
	form.Set("comment_ori", "0")
	form.Set("is_comment", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+commentPath, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.ReplyOutcome{}, fmt.Errorf("build comment request: %w", err)
	}
	req.Header = header
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, commentPath)
	if err != nil {
		return domain.ReplyOutcome{}, err
	}

	var payload commentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.ReplyOutcome{}, fmt.Errorf("decode %s response: %w", commentPath, err)
	}

	return domain.ReplyOutcome{Success: payload.OK == 1, Message: payload.Msg}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	header, err := c.headers(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header = header

	body, err := c.do(req, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func (c *Client) do(req *http.Request, path string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}

	return body, nil
}

// headers builds the authenticated header set. A cookie without the
// anti-forgery marker fails here, before anything goes on the wire.
func (c *Client) headers(ctx context.Context) (http.Header, error) {
	bundle, err := c.creds.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	return bundle.Headers()
}
