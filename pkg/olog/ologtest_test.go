package olog

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sligara7/phoebus-golog/pkg/types"
)

// recordedPart captures one multipart field received by the fake server.
type recordedPart struct {
	Field       string
	Filename    string
	ContentType string
	Content     string
}

// fakeOlog is an in-memory stand-in for the Olog service, mounted on a chi
// router behind httptest. It records the request sequence and the query of
// the last search so tests can assert on call ordering and aliasing.
type fakeOlog struct {
	t *testing.T

	logbooks   map[string]Logbook
	tags       map[string]Tag
	properties map[string]Property
	levels     map[string]Level
	templates  map[string]Template
	logs       map[int64]Log
	nextLogID  int64

	requests        []string
	lastSearchQuery url.Values
	lastParts       []recordedPart

	srv *httptest.Server
}

func newFakeOlog(t *testing.T) *fakeOlog {
	f := &fakeOlog{
		t:          t,
		logbooks:   map[string]Logbook{},
		tags:       map[string]Tag{},
		properties: map[string]Property{},
		levels:     map[string]Level{},
		templates:  map[string]Template{},
		logs:       map[int64]Log{},
		nextLogID:  1,
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.requests = append(f.requests, req.Method+" "+req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/Olog", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"name": "Olog Service", "version": "5.0.0"})
	})
	r.Get("/Olog/configuration", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"defaultMarkup": "commonmark"})
	})
	r.Get("/Olog/help/{topic}", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintf(w, "help for %s lang=%s", chi.URLParam(req, "topic"), req.URL.Query().Get("lang"))
	})

	f.mountLogbooks(r)
	f.mountTags(r)
	f.mountProperties(r)
	f.mountLevels(r)
	f.mountTemplates(r)
	f.mountLogs(r)

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

// client returns a resource client pointed at the fake server, with the
// environment layer disabled so host test environments cannot interfere.
func (f *fakeOlog) client(t *testing.T) *Client {
	client, err := NewClient(Options{
		BaseURL:    types.StringFrom(f.srv.URL),
		DisableEnv: true,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func (f *fakeOlog) mountLogbooks(r chi.Router) {
	r.Get("/Olog/logbooks", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, mapValues(f.logbooks))
	})
	r.Put("/Olog/logbooks", func(w http.ResponseWriter, req *http.Request) {
		var logbooks []Logbook
		readJSON(f.t, req, &logbooks)
		for _, lb := range logbooks {
			f.logbooks[lb.Name] = lb
		}
		writeJSON(w, logbooks)
	})
	r.Get("/Olog/logbooks/{name}", func(w http.ResponseWriter, req *http.Request) {
		lb, ok := f.logbooks[chi.URLParam(req, "name")]
		if !ok {
			notFound(w, "logbook not found")
			return
		}
		writeJSON(w, lb)
	})
	r.Put("/Olog/logbooks/{name}", func(w http.ResponseWriter, req *http.Request) {
		var lb Logbook
		readJSON(f.t, req, &lb)
		f.logbooks[lb.Name] = lb
		writeJSON(w, lb)
	})
	r.Delete("/Olog/logbooks/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		if _, ok := f.logbooks[name]; !ok {
			notFound(w, "logbook not found")
			return
		}
		delete(f.logbooks, name)
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeOlog) mountTags(r chi.Router) {
	r.Get("/Olog/tags", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, mapValues(f.tags))
	})
	r.Put("/Olog/tags", func(w http.ResponseWriter, req *http.Request) {
		var tags []Tag
		readJSON(f.t, req, &tags)
		for _, tag := range tags {
			f.tags[tag.Name] = tag
		}
		writeJSON(w, tags)
	})
	r.Get("/Olog/tags/{name}", func(w http.ResponseWriter, req *http.Request) {
		tag, ok := f.tags[chi.URLParam(req, "name")]
		if !ok {
			notFound(w, "tag not found")
			return
		}
		writeJSON(w, tag)
	})
	r.Put("/Olog/tags/{name}", func(w http.ResponseWriter, req *http.Request) {
		var tag Tag
		readJSON(f.t, req, &tag)
		f.tags[tag.Name] = tag
		writeJSON(w, tag)
	})
	r.Delete("/Olog/tags/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		if _, ok := f.tags[name]; !ok {
			notFound(w, "tag not found")
			return
		}
		delete(f.tags, name)
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeOlog) mountProperties(r chi.Router) {
	r.Get("/Olog/properties", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, mapValues(f.properties))
	})
	r.Put("/Olog/properties", func(w http.ResponseWriter, req *http.Request) {
		var properties []Property
		readJSON(f.t, req, &properties)
		for _, p := range properties {
			f.properties[p.Name] = p
		}
		writeJSON(w, properties)
	})
	r.Get("/Olog/properties/{name}", func(w http.ResponseWriter, req *http.Request) {
		p, ok := f.properties[chi.URLParam(req, "name")]
		if !ok {
			notFound(w, "property not found")
			return
		}
		writeJSON(w, p)
	})
	r.Put("/Olog/properties/{name}", func(w http.ResponseWriter, req *http.Request) {
		var p Property
		readJSON(f.t, req, &p)
		f.properties[p.Name] = p
		writeJSON(w, p)
	})
	r.Delete("/Olog/properties/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		if _, ok := f.properties[name]; !ok {
			notFound(w, "property not found")
			return
		}
		delete(f.properties, name)
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeOlog) mountLevels(r chi.Router) {
	r.Get("/Olog/levels", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, mapValues(f.levels))
	})
	r.Put("/Olog/levels", func(w http.ResponseWriter, req *http.Request) {
		var levels []Level
		readJSON(f.t, req, &levels)
		for _, lvl := range levels {
			f.levels[lvl.Name] = lvl
		}
		writeJSON(w, levels)
	})
	r.Get("/Olog/levels/{name}", func(w http.ResponseWriter, req *http.Request) {
		lvl, ok := f.levels[chi.URLParam(req, "name")]
		if !ok {
			notFound(w, "level not found")
			return
		}
		writeJSON(w, lvl)
	})
	r.Put("/Olog/levels/{name}", func(w http.ResponseWriter, req *http.Request) {
		var lvl Level
		readJSON(f.t, req, &lvl)
		f.levels[lvl.Name] = lvl
		writeJSON(w, lvl)
	})
	r.Delete("/Olog/levels/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		if _, ok := f.levels[name]; !ok {
			notFound(w, "level not found")
			return
		}
		delete(f.levels, name)
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeOlog) mountTemplates(r chi.Router) {
	r.Get("/Olog/templates", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, mapValues(f.templates))
	})
	r.Put("/Olog/templates", func(w http.ResponseWriter, req *http.Request) {
		var tpl Template
		readJSON(f.t, req, &tpl)
		tpl.ID = strconv.Itoa(len(f.templates) + 1)
		f.templates[tpl.ID] = tpl
		writeJSON(w, tpl)
	})
	r.Get("/Olog/templates/{id}", func(w http.ResponseWriter, req *http.Request) {
		tpl, ok := f.templates[chi.URLParam(req, "id")]
		if !ok {
			notFound(w, "template not found")
			return
		}
		writeJSON(w, tpl)
	})
	r.Delete("/Olog/templates/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		if _, ok := f.templates[id]; !ok {
			notFound(w, "template not found")
			return
		}
		delete(f.templates, id)
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeOlog) mountLogs(r chi.Router) {
	r.Get("/Olog/logs/search", func(w http.ResponseWriter, req *http.Request) {
		f.lastSearchQuery = req.URL.Query()
		writeJSON(w, SearchResult{HitCount: int64(len(f.logs)), Logs: logValues(f.logs)})
	})
	r.Get("/Olog/logs/archived/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.serveLog(w, req)
	})
	r.Get("/Olog/logs/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.serveLog(w, req)
	})
	r.Put("/Olog/logs", func(w http.ResponseWriter, req *http.Request) {
		var entry Log
		readJSON(f.t, req, &entry)
		entry.ID = f.nextLogID
		f.nextLogID++
		f.logs[entry.ID] = entry
		writeJSON(w, entry)
	})
	r.Post("/Olog/logs/group", func(w http.ResponseWriter, req *http.Request) {
		var ids []int64
		readJSON(f.t, req, &ids)
		for _, id := range ids {
			if _, ok := f.logs[id]; !ok {
				notFound(w, "log not found")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Put("/Olog/logs/multipart", func(w http.ResponseWriter, req *http.Request) {
		parts := f.recordMultipart(req)
		if len(parts) == 0 || parts[0].Field != "logEntry" {
			http.Error(w, "missing logEntry part", http.StatusBadRequest)
			return
		}
		var entry Log
		if err := json.Unmarshal([]byte(parts[0].Content), &entry); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, part := range parts[1:] {
			entry.Attachments = append(entry.Attachments, Attachment{Filename: part.Filename})
		}
		entry.ID = f.nextLogID
		f.nextLogID++
		f.logs[entry.ID] = entry
		writeJSON(w, entry)
	})
	r.Post("/Olog/logs/attachments-multi/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.attachParts(w, req)
	})
	r.Get("/Olog/logs/attachments/{id}/{name}", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintf(w, "content of %s", chi.URLParam(req, "name"))
	})
	r.Post("/Olog/logs/attachments/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.attachParts(w, req)
	})
	r.Get("/Olog/attachment/{id}", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintf(w, "attachment %s", chi.URLParam(req, "id"))
	})
	r.Post("/Olog/logs/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		if _, ok := f.logs[id]; !ok {
			notFound(w, "log not found")
			return
		}
		var entry Log
		readJSON(f.t, req, &entry)
		entry.ID = id
		f.logs[id] = entry
		writeJSON(w, entry)
	})
}

func (f *fakeOlog) serveLog(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	entry, ok := f.logs[id]
	if !ok {
		notFound(w, "log not found")
		return
	}
	writeJSON(w, entry)
}

func (f *fakeOlog) attachParts(w http.ResponseWriter, req *http.Request) {
	parts := f.recordMultipart(req)
	id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	entry, ok := f.logs[id]
	if !ok {
		notFound(w, "log not found")
		return
	}
	for _, part := range parts {
		if part.Field == "file" {
			entry.Attachments = append(entry.Attachments, Attachment{Filename: part.Filename})
		}
	}
	f.logs[id] = entry
	writeJSON(w, entry)
}

func (f *fakeOlog) recordMultipart(req *http.Request) []recordedPart {
	f.lastParts = nil
	_, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil {
		f.t.Fatalf("invalid multipart content type: %v", err)
	}
	mr := multipart.NewReader(req.Body, params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			f.t.Fatalf("failed to read multipart body: %v", err)
		}
		content, _ := io.ReadAll(p)
		f.lastParts = append(f.lastParts, recordedPart{
			Field:       p.FormName(),
			Filename:    p.FileName(),
			ContentType: p.Header.Get("Content-Type"),
			Content:     string(content),
		})
	}
	return f.lastParts
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func readJSON(t *testing.T, req *http.Request, v any) {
	t.Helper()
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
}

func notFound(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]any{"status": http.StatusNotFound, "message": msg})
}

func mapValues[V any](m map[string]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

func logValues(m map[int64]Log) []Log {
	values := make([]Log, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}
