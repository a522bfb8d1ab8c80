// Package imagegen calls the public Pollinations-style image endpoint: one
// GET per image with a URL-encoded prompt, fixed dimensions and a uniqueness
// seed so repeated prompts do not hit an upstream cache.
package imagegen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rix-app/rix-backend/internal/assets"
)

const (
	imageWidth  = 1280
	imageHeight = 720

	schematicQualifiers = ", detailed electronic circuit schematic, black and white, technical drawing, clean lines, component labels, professional diagram, high resolution"
	defaultQualifiers   = ", photorealistic, 8k, detailed, professional photography, cinematic lighting"

	negativePrompt = "blurry, ugly, cartoon, drawing, sketch, deformed, watermark, text, logo, 3d render, illustration"
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("image generation failed: %s", e.Status)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client

	limiter *rate.Limiter
	// seed seam so tests can pin the uniqueness parameter
	seed func() int64
}

func New(baseURL string, rps float64, burst int) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		seed:    func() int64 { return time.Now().UnixMilli() },
	}
}

// EnhancePrompt appends the style qualifiers: schematic prompts get the
// technical-drawing treatment, everything else the photographic one.
func EnhancePrompt(prompt string) string {
	if strings.Contains(strings.ToLower(prompt), "schematic") {
		return prompt + schematicQualifiers
	}
	return prompt + defaultQualifiers
}

// Generate requests one rendered image and returns it as a base64 data URL
// suitable for the upload step. A non-2xx response becomes a *StatusError;
// transport errors propagate unchanged. There are no retries.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("width", strconv.Itoa(imageWidth))
	q.Set("height", strconv.Itoa(imageHeight))
	q.Set("seed", strconv.FormatInt(c.seed(), 10))
	q.Set("nologo", "true")
	q.Set("negative_prompt", negativePrompt)

	endpoint := fmt.Sprintf("%s/prompt/%s?%s",
		c.BaseURL, url.PathEscape(EnhancePrompt(prompt)), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image body: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/png"
	}
	return assets.EncodeDataURL(mimeType, body), nil
}
