package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	DefaultBaseUrl = "https://api.openweathermap.org"
	DefaultTimeout = 15 * time.Second

	UnitsMetric   = "metric"
	UnitsImperial = "imperial"

	currentPath = "/data/2.5/weather"
)

// Provider looks up current conditions.
type Provider interface {
	CurrentByCity(ctx context.Context, city, units string) (*Current, error)
	CurrentByCoords(ctx context.Context, lat, lon float64, units string) (*Current, error)
}

type Conf struct {
	BaseUrl string        `json:",default=https://api.openweathermap.org"`
	APIKey  string        `json:",optional"`
	Timeout time.Duration `json:",default=15s"`
}

type Client struct {
	baseUrl string
	apiKey  string
	timeout time.Duration
	svc     httpc.Service
}

type cityRequest struct {
	City  string `form:"q"`
	AppId string `form:"appid"`
	Units string `form:"units"`
}

type coordsRequest struct {
	Lat   string `form:"lat"`
	Lon   string `form:"lon"`
	AppId string `form:"appid"`
	Units string `form:"units"`
}

// Current is one observation. Raw keeps the upstream document as returned.
type Current struct {
	Raw         map[string]any
	Main        string
	Description string
	Temp        *float64
}

func NewClient(c Conf) *Client {
	baseUrl := strings.TrimRight(c.BaseUrl, "/")
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseUrl: baseUrl,
		apiKey:  c.APIKey,
		timeout: timeout,
		svc:     httpc.NewServiceWithClient("openweather", &http.Client{Timeout: timeout}),
	}
}

func (c *Client) CurrentByCity(ctx context.Context, city, units string) (*Current, error) {
	return c.fetch(ctx, cityRequest{
		City:  city,
		AppId: c.apiKey,
		Units: normalizeUnits(units),
	})
}

func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64, units string) (*Current, error) {
	return c.fetch(ctx, coordsRequest{
		Lat:   strconv.FormatFloat(lat, 'f', -1, 64),
		Lon:   strconv.FormatFloat(lon, 'f', -1, 64),
		AppId: c.apiKey,
		Units: normalizeUnits(units),
	})
}

func (c *Client) fetch(ctx context.Context, req any) (*Current, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Do(ctx, http.MethodGet, c.baseUrl+currentPath, req)
	if err != nil {
		return nil, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("weather: decode response: %w", err)
	}
	return newCurrent(raw), nil
}

func newCurrent(raw map[string]any) *Current {
	cur := &Current{Raw: raw}

	if list, ok := raw["weather"].([]any); ok && len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			cur.Main = cast.ToString(first["main"])
			cur.Description = cast.ToString(first["description"])
		}
	}
	if main, ok := raw["main"].(map[string]any); ok {
		if temp, err := cast.ToFloat64E(main["temp"]); err == nil && main["temp"] != nil {
			cur.Temp = &temp
		}
	}
	return cur
}

// Summary renders the one-line weather context used in prompts.
func (c *Current) Summary(units string) string {
	if c == nil {
		return "unknown"
	}

	temp := "None"
	if c.Temp != nil {
		temp = strconv.FormatFloat(*c.Temp, 'f', -1, 64)
	}
	symbol := "°F"
	if normalizeUnits(units) == UnitsMetric {
		symbol = "°C"
	}
	return fmt.Sprintf("%s (%s), temp=%s %s", orNone(c.Main), orNone(c.Description), temp, symbol)
}

func normalizeUnits(units string) string {
	units = strings.ToLower(strings.TrimSpace(units))
	if units == "" {
		return UnitsMetric
	}
	return units
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
