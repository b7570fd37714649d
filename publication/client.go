// Package publication fetches article metadata from the NCBI PubMed efetch
// service.
package publication

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nodeadmin/geneweaver-core/schema"
)

// DefaultURL is the efetch endpoint. "{0}" is replaced with the PubMed id.
const DefaultURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi?db=pubmed&id={0}&retmode=xml"

const maxResponseBytes = 10 << 20 // 10 MB

var (
	ErrExternalAPI     = errors.New("pubmed api error")
	ErrInvalidPubmedID = errors.New("invalid pubmed id")
)

// Client talks to the efetch service. The zero value uses DefaultURL,
// http.DefaultClient and a discarding logger.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

// NewClient returns a client for baseURL with its own transport and an
// overall request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Transport: tr, Timeout: timeout},
		Logger:  logger,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func (c *Client) url(pubmedID string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultURL
	}
	return strings.ReplaceAll(base, "{0}", url.QueryEscape(pubmedID))
}

func parseID(pubmedID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(pubmedID))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPubmedID, pubmedID)
	}
	return id, nil
}

// FetchXML downloads the efetch document for pubmedID.
func (c *Client) FetchXML(ctx context.Context, pubmedID string) ([]byte, error) {
	id, err := parseID(pubmedID)
	if err != nil {
		return nil, err
	}
	target := c.url(strconv.Itoa(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, err)
	}
	defer resp.Body.Close()

	c.logger().Debug("pubmed fetch",
		"pubmed_id", id,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrExternalAPI, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrExternalAPI, err)
	}
	return body, nil
}

// GetPublication fetches and parses the publication for pubmedID.
func (c *Client) GetPublication(ctx context.Context, pubmedID string) (schema.PublicationInfo, error) {
	id, err := parseID(pubmedID)
	if err != nil {
		return schema.PublicationInfo{}, err
	}
	body, err := c.FetchXML(ctx, pubmedID)
	if err != nil {
		return schema.PublicationInfo{}, err
	}
	f, err := ExtractFields(bytes.NewReader(body))
	if err != nil {
		return schema.PublicationInfo{}, err
	}
	return f.Publication(id)
}

// Publication converts extracted fields into a validated PublicationInfo.
func (f Fields) Publication(pubmedID int) (schema.PublicationInfo, error) {
	info := schema.PublicationInfo{
		Authors:  f.Authors,
		Title:    f.Title,
		Abstract: f.Abstract,
		Journal:  f.Journal,
		Volume:   f.Volume,
		Pages:    f.Pages,
		Month:    f.Month,
		Day:      f.Day,
		PubmedID: pubmedID,
	}
	if f.Year != "" {
		year, err := strconv.Atoi(f.Year)
		if err != nil {
			return info, fmt.Errorf("publication year %q: %w", f.Year, schema.ErrValidation)
		}
		info.Year = year
	}
	if err := info.Validate(); err != nil {
		return info, err
	}
	return info, nil
}
