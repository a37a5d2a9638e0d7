package elastic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/tidwall/gjson"
)

const (
	// maxSearchHits is the largest result window the engine serves by default.
	maxSearchHits = 10000
	refreshTrue   = "true"
)

var tasksMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"title":       map[string]any{"type": "text"},
			"description": map[string]any{"type": "text"},
			"userId":      map[string]any{"type": "keyword"},
		},
	},
}

var usersMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"name":  map[string]any{"type": "keyword"},
			"token": map[string]any{"type": "keyword"},
		},
	},
}

// Indices names the documents indices used by the repositories.
type Indices struct {
	Tasks string
	Users string
}

// Connection wraps a search engine client with index names and a per-request timeout.
type Connection struct {
	es      *elasticsearch.Client
	indices Indices
	timeout time.Duration
	fields  map[string]lookupField
}

// lookupField is the indexed field an exact-value lookup targets.
// Analysed text fields without a keyword subfield are matched as a phrase
// and the hits filtered on _source.
type lookupField struct {
	name  string
	exact bool
}

// NewConnection creates a client for the given addresses and makes sure both indices exist.
func NewConnection(ctx context.Context, addresses []string, indices Indices, timeout time.Duration) (*Connection, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return NewConnectionWithClient(ctx, es, indices, timeout)
}

// NewConnectionWithClient allows injecting a preconfigured client.
func NewConnectionWithClient(ctx context.Context, es *elasticsearch.Client, indices Indices, timeout time.Duration) (*Connection, error) {
	c := &Connection{
		es:      es,
		indices: indices,
		timeout: timeout,
		fields:  make(map[string]lookupField),
	}

	if err := c.EnsureIndices(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indices exist: %w", err)
	}

	return c, nil
}

// EnsureIndices creates the tasks and users indices if they do not exist.
func (c *Connection) EnsureIndices(ctx context.Context) error {
	for _, idx := range []struct {
		name     string
		mapping  map[string]any
		keywords []string
	}{
		{c.indices.Tasks, tasksMapping, []string{"userId"}},
		{c.indices.Users, usersMapping, []string{"name", "token"}},
	} {
		for _, f := range idx.keywords {
			c.fields[f] = lookupField{name: f, exact: true}
		}

		res, err := c.perform(ctx, esapi.IndicesExistsRequest{Index: []string{idx.name}})
		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}
		if res.status == http.StatusOK {
			if err := c.resolveFields(ctx, idx.name, idx.keywords); err != nil {
				return err
			}
			continue
		}
		if !res.notFound() {
			return res.err("check index " + idx.name)
		}

		res, err = c.perform(ctx, esapi.IndicesCreateRequest{
			Index: idx.name,
			Body:  esutil.NewJSONReader(idx.mapping),
		})
		if err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		if res.failed() && res.errorType() != "resource_already_exists_exception" {
			return res.err("create index " + idx.name)
		}
	}

	return nil
}

// resolveFields adapts lookups to an index created elsewhere, for example by
// dynamic mapping where strings are text with a ".keyword" subfield.
// Lookup fields the index does not map yet are added as keywords.
func (c *Connection) resolveFields(ctx context.Context, index string, keywords []string) error {
	res, err := c.perform(ctx, esapi.IndicesGetMappingRequest{Index: []string{index}})
	if err != nil {
		return fmt.Errorf("failed to get mapping of %s: %w", index, err)
	}
	if res.failed() {
		return res.err("get mapping of " + index)
	}

	props := gjson.GetBytes(res.body, "*.mappings.properties")
	missing := make(map[string]any)
	for _, f := range keywords {
		prop := props.Get(f)
		switch {
		case !prop.Exists():
			missing[f] = map[string]any{"type": "keyword"}
		case prop.Get("type").String() == "keyword":
		case prop.Get("fields.keyword.type").String() == "keyword":
			c.fields[f] = lookupField{name: f + ".keyword", exact: true}
		default:
			c.fields[f] = lookupField{name: f, exact: false}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	res, err = c.perform(ctx, esapi.IndicesPutMappingRequest{
		Index: []string{index},
		Body:  esutil.NewJSONReader(map[string]any{"properties": missing}),
	})
	if err != nil {
		return fmt.Errorf("failed to update mapping of %s: %w", index, err)
	}
	if res.failed() {
		return res.err("update mapping of " + index)
	}

	return nil
}

// lookup returns the documents of index whose field equals value exactly.
func (c *Connection) lookup(ctx context.Context, index, field, value string) ([]gjson.Result, error) {
	lf, ok := c.fields[field]
	if !ok {
		lf = lookupField{name: field, exact: true}
	}

	query := termQuery(lf.name, value)
	if !lf.exact {
		query = map[string]any{
			"query": map[string]any{
				"match_phrase": map[string]any{lf.name: value},
			},
		}
	}

	hits, err := c.search(ctx, index, query)
	if err != nil {
		return nil, err
	}

	matched := hits[:0]
	for _, hit := range hits {
		if hit.Get("_source." + field).String() == value {
			matched = append(matched, hit)
		}
	}
	return matched, nil
}

// search runs query against index. A missing index yields no hits.
func (c *Connection) search(ctx context.Context, index string, query map[string]any) ([]gjson.Result, error) {
	size := maxSearchHits
	res, err := c.perform(ctx, esapi.SearchRequest{
		Index: []string{index},
		Body:  esutil.NewJSONReader(query),
		Size:  &size,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", index, err)
	}
	if res.notFound() {
		return nil, nil
	}
	if res.failed() {
		return nil, res.err("search " + index)
	}

	return gjson.GetBytes(res.body, "hits.hits").Array(), nil
}

func termQuery(field, value string) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"term": map[string]any{field: value},
		},
	}
}

type response struct {
	status int
	body   []byte
}

func (c *Connection) perform(ctx context.Context, req esapi.Request) (response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return response{}, fmt.Errorf("failed to perform request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return response{}, fmt.Errorf("failed to read response body: %w", err)
	}

	return response{status: res.StatusCode, body: body}, nil
}

func (r response) notFound() bool {
	return r.status == http.StatusNotFound
}

func (r response) failed() bool {
	return r.status < 200 || r.status > 299
}

func (r response) errorType() string {
	return gjson.GetBytes(r.body, "error.type").String()
}

func (r response) err(op string) error {
	reason := gjson.GetBytes(r.body, "error.reason").String()
	if reason == "" {
		reason = http.StatusText(r.status)
	}
	return fmt.Errorf("failed to %s: elasticsearch responded %d: %s", op, r.status, reason)
}
