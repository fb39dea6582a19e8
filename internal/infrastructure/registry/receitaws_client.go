package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL = "https://receitaws.com.br/v1"

	// ReceitaWS throttles anonymous clients hard, so valid lookups are cached.
	cacheTTL       = 24 * time.Hour
	cacheKeyPrefix = "cnpj:"

	requestTimeout = 5 * time.Second
	maxRedirects   = 5
)

// ReceitaWSClient validates CNPJ numbers against the ReceitaWS public
// registry. It is the process-wide singleton behind ICnpjValidator; the
// HTTP client carries a fixed timeout and redirect cap for all outbound
// calls.
//
// The cache client may be nil, in which case every lookup goes to the
// registry.

type ReceitaWSClient struct {
	httpClient *http.Client
	baseURL    string
	cache      *redis.Client
}

var _ interfaces.ICnpjValidator = (*ReceitaWSClient)(nil)

func NewReceitaWSClient(baseURL string, cache *redis.Client) *ReceitaWSClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &ReceitaWSClient{
		httpClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   cache,
	}
}

// Validate normalizes rawCnpj and queries the registry. It fails fast with
// ErrCnpjFormat before any network call when the normalized string is not 14
// digits. Registry outcomes map to ErrCnpjNotFoundOrInvalid,
// ErrCnpjRateLimited, or *RegistryError.
func (c *ReceitaWSClient) Validate(ctx context.Context, rawCnpj string) (map[string]interface{}, error) {
	cnpj := NormalizeCnpj(rawCnpj)
	if len(cnpj) != 14 {
		return nil, interfaces.ErrCnpjFormat
	}

	if cached, ok := c.fromCache(ctx, cnpj); ok {
		return cached, nil
	}

	url := c.baseURL + "/cnpj/" + cnpj
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &interfaces.RegistryError{Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &interfaces.RegistryError{Message: err.Error()}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, interfaces.ErrCnpjRateLimited
	case resp.StatusCode == http.StatusBadRequest:
		return nil, interfaces.ErrCnpjNotFoundOrInvalid
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &interfaces.RegistryError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &interfaces.RegistryError{StatusCode: resp.StatusCode, Message: "malformed registry response"}
	}

	// ReceitaWS answers 200 with {"status":"ERROR"} for unknown numbers.
	if status, _ := payload["status"].(string); strings.EqualFold(status, "ERROR") {
		return nil, interfaces.ErrCnpjNotFoundOrInvalid
	}

	c.toCache(ctx, cnpj, payload)
	return payload, nil
}

// NormalizeCnpj strips every non-digit character.
func NormalizeCnpj(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *ReceitaWSClient) fromCache(ctx context.Context, cnpj string) (map[string]interface{}, bool) {
	if c.cache == nil {
		return nil, false
	}
	data, err := c.cache.Get(ctx, cacheKeyPrefix+cnpj).Bytes()
	if err != nil {
		return nil, false
	}
	var payload map[string]interface{}
	if json.Unmarshal(data, &payload) != nil {
		return nil, false
	}
	return payload, true
}

func (c *ReceitaWSClient) toCache(ctx context.Context, cnpj string, payload map[string]interface{}) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKeyPrefix+cnpj, data, cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("cnpj", cnpj).Msg("cnpj cache write failed")
	}
}
