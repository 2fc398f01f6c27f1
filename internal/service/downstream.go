package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/autochef/recipe-gateway/internal/types"
)

// GeneratorClient calls the downstream recipe generation service over HTTP.
// Every call is bounded by the configured timeout; failures are classified
// into the LLM_DOWN / LLM_TIMEOUT taxonomy.
type GeneratorClient struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

// NewGeneratorClient creates a new GeneratorClient for the given endpoint.
func NewGeneratorClient(endpoint string, timeout time.Duration) *GeneratorClient {
	return &GeneratorClient{
		endpoint: endpoint,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

// Generate sends the request to the downstream service and returns its
// response. A successful response with zero recipes is not an error.
func (c *GeneratorClient) Generate(ctx context.Context, req types.GenerateRecipeRequest) (*types.RecipeResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Every non-success status maps to LLM_DOWN: the request was already
		// validated upstream, so from the caller's perspective the generation
		// service did not produce a recipe.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &types.DownstreamError{
			Code:  types.CodeLLMDown,
			Cause: fmt.Errorf("generator returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var out types.RecipeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &types.DownstreamError{
			Code:  types.CodeLLMDown,
			Cause: fmt.Errorf("failed to decode generator response: %w", err),
		}
	}

	return &out, nil
}

// classifyTransportError maps a transport-level failure to the downstream
// error taxonomy. Timeouts can arrive wrapped (url.Error around a net error
// around a context deadline), so this walks the cause chain rather than
// checking the outermost type.
func classifyTransportError(err error) *types.DownstreamError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &types.DownstreamError{Code: types.CodeLLMTimeout, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &types.DownstreamError{Code: types.CodeLLMTimeout, Cause: err}
	}

	// DNS failures, connection refused, resets and anything else that kept a
	// response from arriving.
	return &types.DownstreamError{Code: types.CodeLLMDown, Cause: err}
}
