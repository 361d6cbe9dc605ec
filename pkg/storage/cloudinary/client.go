package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/weavemart/weavemart-backend/pkg/config"
	"github.com/weavemart/weavemart-backend/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// UploadResult is the subset of the upload response the catalog cares about.
type UploadResult struct {
	URL      string `json:"secure_url"`
	PublicID string `json:"public_id"`
}

// Uploader is the consumer-side surface exposed to the catalog service.
type Uploader interface {
	Upload(ctx context.Context, dataURI string) (*UploadResult, error)
}

// Client talks to the Cloudinary upload API over plain HTTP.
type Client struct {
	httpClient *http.Client
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	baseURL    string
	now        func() time.Time
}

// New validates the configuration and returns a ready client.
func New(cfg config.CloudinaryConfig, logg *logger.Logger) (*Client, error) {
	if cfg.CloudName == "" {
		return nil, errors.New("cloudinary cloud name is required")
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary api credentials are required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.cloudinary.com"
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		folder:     cfg.UploadFolder,
		baseURL:    baseURL,
		now:        time.Now,
	}

	if logg != nil {
		logg.Info(context.Background(), "cloudinary client initialized")
	}

	return client, nil
}

// Upload posts a base64 data URI to the image upload endpoint and returns
// the hosted URL plus the public ID needed to delete it later.
func (c *Client) Upload(ctx context.Context, dataURI string) (*UploadResult, error) {
	if strings.TrimSpace(dataURI) == "" {
		return nil, errors.New("image payload is empty")
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	form := url.Values{}
	form.Set("file", dataURI)
	form.Set("timestamp", timestamp)
	if c.folder != "" {
		form.Set("folder", c.folder)
	}
	form.Set("signature", c.sign(form))
	form.Set("api_key", c.apiKey)

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	result := &UploadResult{}
	if err := c.postForm(ctx, endpoint, form, result); err != nil {
		return nil, err
	}
	if result.URL == "" {
		return nil, errors.New("upload response missing secure_url")
	}
	return result, nil
}

// Destroy removes a previously uploaded image by public ID.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return errors.New("public id is required")
	}

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", strconv.FormatInt(c.now().Unix(), 10))
	form.Set("signature", c.sign(form))
	form.Set("api_key", c.apiKey)

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", c.baseURL, c.cloudName)
	var result struct {
		Result string `json:"result"`
	}
	if err := c.postForm(ctx, endpoint, form, &result); err != nil {
		return err
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("destroy %s: %s", publicID, result.Result)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if len(b) > 0 {
			return fmt.Errorf("cloudinary request failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
		}
		return fmt.Errorf("cloudinary request failed: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// sign builds the SHA-1 request signature over the sorted parameters.
// The file and api_key fields are excluded per the upload API contract.
func (c *Client) sign(form url.Values) string {
	keys := make([]string, 0, len(form))
	for key := range form {
		if key == "file" || key == "api_key" || key == "signature" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+form.Get(key))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
