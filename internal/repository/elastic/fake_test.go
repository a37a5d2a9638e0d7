package elastic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// fakeEngine is a minimal in-process stand-in for the search engine REST API.
type fakeEngine struct {
	mu          sync.Mutex
	indices     map[string]map[string]map[string]any
	mappings    map[string]map[string]any
	order       map[string][]string
	seq         int
	forceStatus int
	requests    []string
}

func newFakeEngine(indices ...string) *fakeEngine {
	f := &fakeEngine{
		indices:  make(map[string]map[string]map[string]any),
		mappings: make(map[string]map[string]any),
		order:    make(map[string][]string),
	}
	for _, idx := range indices {
		f.indices[idx] = make(map[string]map[string]any)
	}
	return f
}

func (f *fakeEngine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	if f.forceStatus != 0 && r.Method != http.MethodHead {
		writeJSON(w, f.forceStatus, map[string]any{
			"error":  map[string]any{"type": "internal", "reason": "forced failure"},
			"status": f.forceStatus,
		})
		return
	}

	body, _ := io.ReadAll(r.Body)
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	index := parts[0]
	docs, exists := f.indices[index]

	switch {
	case len(parts) == 1 && r.Method == http.MethodHead:
		if exists {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	case len(parts) == 1 && r.Method == http.MethodPut:
		if exists {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": map[string]any{"type": "resource_already_exists_exception", "reason": "exists"},
			})
			return
		}
		f.indices[index] = make(map[string]map[string]any)
		f.mappings[index] = make(map[string]any)
		gjson.GetBytes(body, "mappings.properties").ForEach(func(key, value gjson.Result) bool {
			f.mappings[index][key.String()] = value.Value()
			return true
		})
		writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true})
	case !exists:
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":  map[string]any{"type": "index_not_found_exception", "reason": "no such index [" + index + "]"},
			"status": http.StatusNotFound,
		})
	case parts[1] == "_mapping" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			index: map[string]any{"mappings": map[string]any{"properties": f.mappings[index]}},
		})
	case parts[1] == "_mapping" && r.Method == http.MethodPut:
		if f.mappings[index] == nil {
			f.mappings[index] = make(map[string]any)
		}
		gjson.GetBytes(body, "properties").ForEach(func(key, value gjson.Result) bool {
			f.mappings[index][key.String()] = value.Value()
			return true
		})
		writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true})
	case parts[1] == "_search":
		f.search(w, index, docs, body)
	case parts[1] == "_doc" && len(parts) == 2:
		f.seq++
		id := fmt.Sprintf("doc-%d", f.seq)
		var src map[string]any
		_ = json.Unmarshal(body, &src)
		docs[id] = src
		f.order[index] = append(f.order[index], id)
		writeJSON(w, http.StatusCreated, map[string]any{"_index": index, "_id": id, "result": "created"})
	case parts[1] == "_doc" && r.Method == http.MethodGet:
		id := parts[2]
		src, ok := docs[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"_index": index, "_id": id, "found": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "found": true, "_source": src})
	case parts[1] == "_doc" && r.Method == http.MethodDelete:
		id := parts[2]
		if _, ok := docs[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"_index": index, "_id": id, "result": "not_found"})
			return
		}
		delete(docs, id)
		writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "result": "deleted"})
	case parts[1] == "_update":
		id := parts[2]
		src, ok := docs[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error": map[string]any{"type": "document_missing_exception", "reason": "[" + id + "]: document missing"},
			})
			return
		}
		gjson.GetBytes(body, "doc").ForEach(func(key, value gjson.Result) bool {
			src[key.String()] = value.Value()
			return true
		})
		writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "result": "updated"})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": map[string]any{"reason": "unsupported " + r.URL.Path}})
	}
}

func (f *fakeEngine) search(w http.ResponseWriter, index string, docs map[string]map[string]any, body []byte) {
	var field, value string
	term := gjson.GetBytes(body, "query.term")
	query := term
	if !term.Exists() {
		query = gjson.GetBytes(body, "query.match_phrase")
	}
	query.ForEach(func(key, val gjson.Result) bool {
		field, value = key.String(), val.String()
		return false
	})

	// A term query on an analysed text field never matches a whole value.
	if term.Exists() && f.fieldType(index, field) == "text" {
		field = ""
	}
	field = strings.TrimSuffix(field, ".keyword")

	hits := make([]map[string]any, 0)
	for _, id := range f.order[index] {
		src, ok := docs[id]
		if !ok || field == "" {
			continue
		}
		if fmt.Sprint(src[field]) == value {
			hits = append(hits, map[string]any{"_index": index, "_id": id, "_source": src})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"hits": map[string]any{"hits": hits}})
}

func (f *fakeEngine) fieldType(index, field string) string {
	prop, _ := f.mappings[index][field].(map[string]any)
	t, _ := prop["type"].(string)
	return t
}

// withMapping replaces the mapping of an existing index, as if it was created
// by another writer.
func (f *fakeEngine) withMapping(index string, properties map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mappings[index] = properties
}

// addDoc stores a document directly, bypassing the API.
func (f *fakeEngine) addDoc(index, id string, src map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indices[index][id] = src
	f.order[index] = append(f.order[index], id)
}

func (f *fakeEngine) dropIndex(index string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.indices, index)
}

func (f *fakeEngine) failWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forceStatus = status
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T, f *fakeEngine) (*httptest.Server, *elasticsearch.Client) {
	t.Helper()

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:  []string{srv.URL},
		MaxRetries: 1,
	})
	require.NoError(t, err)

	return srv, es
}

func newTestConnection(t *testing.T, f *fakeEngine) *Connection {
	t.Helper()

	_, es := newTestServer(t, f)
	conn, err := NewConnectionWithClient(context.Background(), es, Indices{Tasks: "tasks", Users: "users"}, time.Second)
	require.NoError(t, err)

	return conn
}
