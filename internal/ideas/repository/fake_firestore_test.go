package repository

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"golang-stock-ideas/pkg/firestore"
	"golang-stock-ideas/pkg/logger"
)

const fakeProject = "demo"

// fakeFirestore is an in-memory stand-in for the documents endpoint of one collection.
type fakeFirestore struct {
	mu       sync.Mutex
	docs     map[string]firestore.Fields
	order    []string
	seq      int
	down     bool
	calls    int
	masks    [][]string
	bodies   []firestore.Document
}

func newFakeFirestore(t *testing.T) (*fakeFirestore, firestore.Client) {
	t.Helper()
	f := &fakeFirestore{docs: map[string]firestore.Fields{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	client := firestore.NewClient(firestore.Config{
		BaseURL:   srv.URL,
		ProjectID: fakeProject,
		APIKey:    "test-key",
	}, logger.NewNop(), firestore.WithHTTPClient(srv.Client()))
	return f, client
}

func (f *fakeFirestore) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *fakeFirestore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeFirestore) stored(id string) (firestore.Fields, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields, ok := f.docs[id]
	return fields, ok
}

func (f *fakeFirestore) lastMask() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.masks) == 0 {
		return nil
	}
	return f.masks[len(f.masks)-1]
}

func (f *fakeFirestore) lastBody() firestore.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[len(f.bodies)-1]
}

func (f *fakeFirestore) docName(collection, id string) string {
	return fmt.Sprintf("projects/%s/databases/(default)/documents/%s/%s", fakeProject, collection, id)
}

func (f *fakeFirestore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.down {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"backend unavailable","status":"UNAVAILABLE"}}`))
		return
	}
	if r.URL.Query().Get("key") != "test-key" {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"bad key","status":"PERMISSION_DENIED"}}`))
		return
	}

	prefix := fmt.Sprintf("/v1/projects/%s/databases/(default)/documents/", fakeProject)
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, prefix), "/")
	collection := parts[0]
	id := ""
	if len(parts) > 1 {
		id = parts[1]
	}

	switch {
	case r.Method == http.MethodGet && id == "":
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
		resp := struct {
			Documents []firestore.Document `json:"documents,omitempty"`
		}{}
		for _, docID := range f.order {
			if pageSize > 0 && len(resp.Documents) == pageSize {
				break
			}
			resp.Documents = append(resp.Documents, firestore.Document{Name: f.docName(collection, docID), Fields: f.docs[docID]})
		}
		writeJSON(w, http.StatusOK, resp)

	case r.Method == http.MethodGet:
		fields, ok := f.docs[id]
		if !ok {
			writeNotFound(w)
			return
		}
		writeJSON(w, http.StatusOK, firestore.Document{Name: f.docName(collection, id), Fields: fields})

	case r.Method == http.MethodPost:
		var body firestore.Document
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bodies = append(f.bodies, body)
		f.seq++
		newID := fmt.Sprintf("doc%d", f.seq)
		f.docs[newID] = body.Fields
		f.order = append(f.order, newID)
		writeJSON(w, http.StatusOK, firestore.Document{Name: f.docName(collection, newID), Fields: body.Fields})

	case r.Method == http.MethodPatch:
		var body firestore.Document
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bodies = append(f.bodies, body)
		mask := r.URL.Query()["updateMask.fieldPaths"]
		f.masks = append(f.masks, mask)

		fields, ok := f.docs[id]
		if !ok {
			writeNotFound(w)
			return
		}
		merged := firestore.Fields{}
		for k, v := range fields {
			merged[k] = v
		}
		for _, name := range mask {
			if v, ok := body.Fields[name]; ok {
				merged[name] = v
			} else {
				delete(merged, name)
			}
		}
		f.docs[id] = merged
		writeJSON(w, http.StatusOK, firestore.Document{Name: f.docName(collection, id), Fields: merged})

	case r.Method == http.MethodDelete:
		if _, ok := f.docs[id]; ok {
			delete(f.docs, id)
			for i, docID := range f.order {
				if docID == id {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
		}
		writeJSON(w, http.StatusOK, struct{}{})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":{"code":404,"message":"document not found","status":"NOT_FOUND"}}`))
}
