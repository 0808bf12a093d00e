package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/onerm"
)

// HTTPClient implements DataSource by calling the onerm REST API.
// Used when the MCP binary runs locally over stdio against a remote server.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is the body the server sends with 4xx responses.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		var e apiError
		if json.Unmarshal(body, &e) == nil {
			switch e.Code {
			case "unknown_formula":
				return nil, fmt.Errorf("%w: %s", onerm.ErrUnknownFormula, e.Error)
			case "invalid_input":
				return nil, fmt.Errorf("%w: %s", onerm.ErrInvalidInput, e.Error)
			}
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func inputParams(weight float64, reps int) url.Values {
	v := url.Values{}
	v.Set("weight", strconv.FormatFloat(weight, 'f', -1, 64))
	v.Set("reps", strconv.Itoa(reps))
	return v
}

func (c *HTTPClient) Estimate(ctx context.Context, weight float64, reps int, f onerm.Formula) (calculator.View, error) {
	params := inputParams(weight, reps)
	params.Set("formula", f.String())

	body, err := c.get(ctx, "/api/v1/estimate", params)
	if err != nil {
		return calculator.View{}, err
	}

	var view calculator.View
	if err := json.Unmarshal(body, &view); err != nil {
		return calculator.View{}, fmt.Errorf("httpclient: decode estimate: %w", err)
	}
	return view, nil
}

func (c *HTTPClient) Compare(ctx context.Context, weight float64, reps int) ([]calculator.View, error) {
	body, err := c.get(ctx, "/api/v1/compare", inputParams(weight, reps))
	if err != nil {
		return nil, err
	}

	var views []calculator.View
	if err := json.Unmarshal(body, &views); err != nil {
		return nil, fmt.Errorf("httpclient: decode compare: %w", err)
	}
	return views, nil
}

func (c *HTTPClient) Formulas(ctx context.Context) ([]calculator.FormulaInfo, error) {
	body, err := c.get(ctx, "/api/v1/formulas", nil)
	if err != nil {
		return nil, err
	}

	var formulas []calculator.FormulaInfo
	if err := json.Unmarshal(body, &formulas); err != nil {
		return nil, fmt.Errorf("httpclient: decode formulas: %w", err)
	}
	return formulas, nil
}
