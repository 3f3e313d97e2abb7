package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/litescript/ls-skydome/internal/astro"
	"github.com/litescript/ls-skydome/internal/logging"
	"github.com/litescript/ls-skydome/internal/version"
)

const (
	// DefaultTAPURL is the SIMBAD synchronous TAP endpoint.
	DefaultTAPURL = "https://simbad.cds.unistra.fr/simbad/sim-tap/sync"

	// DefaultTAPTimeout bounds a single TAP query.
	DefaultTAPTimeout = 30 * time.Second
)

const userAgent = "ls-skydome/" + version.Version + " (github.com/litescript/ls-skydome)"

// TAP resolves star names against a SIMBAD TAP service. Successful
// lookups are cached for the lifetime of the resolver, so a name shared
// by several constellations costs one query.
type TAP struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	cache map[string]astro.Star
}

// TAPOption configures a TAP resolver.
type TAPOption func(*TAP)

// WithBaseURL points the resolver at a different TAP endpoint.
func WithBaseURL(u string) TAPOption {
	return func(t *TAP) {
		t.baseURL = u
	}
}

// WithTimeout overrides the per-query timeout.
func WithTimeout(d time.Duration) TAPOption {
	return func(t *TAP) {
		t.client.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(c *http.Client) TAPOption {
	return func(t *TAP) {
		if c != nil {
			t.client = c
		}
	}
}

// NewTAP builds a resolver against the SIMBAD TAP service.
func NewTAP(opts ...TAPOption) *TAP {
	t := &TAP{
		baseURL: DefaultTAPURL,
		client:  &http.Client{Timeout: DefaultTAPTimeout},
		cache:   make(map[string]astro.Star),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Resolve implements Resolver. As with the built-in table, the returned
// star keeps the requested spelling; the catalog identifier only shows
// up in debug logs.
func (t *TAP) Resolve(ctx context.Context, name string) (astro.Star, error) {
	key := normalizeName(name)

	t.mu.RLock()
	star, ok := t.cache[key]
	t.mu.RUnlock()
	if ok {
		star.Name = name
		return star, nil
	}

	star, err := t.query(ctx, name)
	if err != nil {
		return astro.Star{}, err
	}

	logging.Debug(ctx, "resolved star via tap",
		zap.String("star", name),
		zap.String("main_id", star.Name),
		zap.Float64("ra_deg", star.RAdeg),
		zap.Float64("dec_deg", star.DecDeg),
		zap.Float64("mag", star.Mag),
	)

	star.Name = name
	t.mu.Lock()
	t.cache[key] = star
	t.mu.Unlock()
	return star, nil
}

func (t *TAP) query(ctx context.Context, name string) (astro.Star, error) {
	params := url.Values{}
	params.Set("REQUEST", "doQuery")
	params.Set("LANG", "ADQL")
	params.Set("FORMAT", "json")
	params.Set("QUERY", buildADQL(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return astro.Star{}, fmt.Errorf("building tap request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return astro.Star{}, fmt.Errorf("querying tap service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return astro.Star{}, fmt.Errorf("tap service returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return astro.Star{}, fmt.Errorf("reading tap response: %w", err)
	}
	return parseTAPResponse(body, name)
}

// buildADQL forms the lookup query for one identifier. ADQL escapes
// single quotes by doubling them.
func buildADQL(name string) string {
	escaped := strings.ReplaceAll(name, "'", "''")
	return "SELECT TOP 1 basic.main_id, basic.ra, basic.dec, allfluxes.V " +
		"FROM ident JOIN basic ON basic.oid = ident.oidref " +
		"LEFT JOIN allfluxes ON allfluxes.oidref = basic.oid " +
		"WHERE ident.id = '" + escaped + "'"
}

// tapResponse is the JSON envelope SIMBAD returns for FORMAT=json.
type tapResponse struct {
	Metadata []tapColumn `json:"metadata"`
	Data     [][]any     `json:"data"`
}

type tapColumn struct {
	Name string `json:"name"`
}

// parseTAPResponse extracts the first result row. Columns are matched
// by name because the service controls their order.
func parseTAPResponse(data []byte, name string) (astro.Star, error) {
	var resp tapResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return astro.Star{}, fmt.Errorf("decoding tap response: %w", err)
	}

	cols := make(map[string]int, len(resp.Metadata))
	for i, c := range resp.Metadata {
		cols[strings.ToLower(c.Name)] = i
	}
	for _, required := range []string{"ra", "dec", "v"} {
		if _, ok := cols[required]; !ok {
			return astro.Star{}, fmt.Errorf("tap response has no %s column", required)
		}
	}

	if len(resp.Data) == 0 {
		return astro.Star{}, fmt.Errorf("star %q: %w", name, ErrUnknownStar)
	}
	row := resp.Data[0]

	ra, err := cellFloat(row, cols["ra"])
	if err != nil {
		return astro.Star{}, fmt.Errorf("star %q ra: %w", name, err)
	}
	dec, err := cellFloat(row, cols["dec"])
	if err != nil {
		return astro.Star{}, fmt.Errorf("star %q dec: %w", name, err)
	}
	mag, err := cellFloat(row, cols["v"])
	if err != nil {
		return astro.Star{}, fmt.Errorf("star %q has no usable V magnitude: %w", name, err)
	}

	star := astro.Star{Name: name, RAdeg: ra, DecDeg: dec, Mag: mag}
	if i, ok := cols["main_id"]; ok && i < len(row) {
		if id, ok := row[i].(string); ok && id != "" {
			star.Name = id
		}
	}
	return star, nil
}

// cellFloat reads one numeric cell. SIMBAD emits numbers, but TAP
// services are allowed to stringify them.
func cellFloat(row []any, i int) (float64, error) {
	if i < 0 || i >= len(row) {
		return 0, fmt.Errorf("column %d out of range", i)
	}
	switch v := row[i].(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", v, err)
		}
		return f, nil
	case nil:
		return 0, errors.New("null value")
	default:
		return 0, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}
