package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/julienschmidt/httprouter"
)

// RecordedRequest is what the fake server saw of one request
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// Server is an in-process DataScribe service. It answers the data and materials routes with fixed data,
// records every request and lets tests override any route.
type Server struct {
	*httptest.Server
	APIKey string

	mu        sync.Mutex
	router    *httprouter.Router
	overrides map[string]http.HandlerFunc
	requests  []RecordedRequest
}

// NewServer starts a fake service accepting "Authorization: Bearer <apiKey>"
func NewServer(apiKey string) *Server {
	s := &Server{
		APIKey:    apiKey,
		router:    httprouter.New(),
		overrides: map[string]http.HandlerFunc{},
	}
	s.router.GET("/data/data-tables", s.dataTables)
	s.router.GET("/data/data-tables-for-user", s.dataTables)
	s.router.GET("/data/data-table", s.dataTableRows)
	s.router.GET("/data/data-table-rows", s.dataTableRows)
	s.router.GET("/data/data-table-columns", s.dataTableColumns)
	s.router.GET("/data/data-table-metadata", s.dataTableMetadata)
	s.router.GET("/data/data-table-rows-count", s.dataTableRowsCount)
	s.router.GET("/materials", s.materialByID)
	s.router.GET("/materials/search", s.searchMaterials)

	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// Handle replaces the handler of path
func (s *Server) Handle(path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = handler
}

// RespondJSON makes path answer with status and body encoded as JSON
func (s *Server) RespondJSON(path string, status int, body interface{}) {
	s.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})
}

func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestCount returns the number of requests received on path
func (s *Server) RequestCount(path string) int {
	count := 0
	for _, req := range s.Requests() {
		if req.Path == path {
			count++
		}
	}
	return count
}

// LastRequest returns the most recent request, or an empty one when nothing was received
func (s *Server) LastRequest() RecordedRequest {
	requests := s.Requests()
	if len(requests) == 0 {
		return RecordedRequest{}
	}
	return requests[len(requests)-1]
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
	override := s.overrides[r.URL.Path]
	s.mu.Unlock()

	if override != nil {
		override(w, r)
		return
	}

	if s.APIKey != "" && r.Header.Get("Authorization") != "Bearer "+s.APIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"detail": "Invalid API key"})
		return
	}
	s.router.ServeHTTP(w, r)
}

func (s *Server) dataTables(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeResults(w, Tables)
}

func (s *Server) dataTableRows(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rows, ok := Rows[r.URL.Query().Get("tableName")]
	if !ok {
		writeNotFound(w)
		return
	}
	if filters := r.URL.Query().Get("filters"); filters != "" {
		var predicates []map[string]interface{}
		if err := json.Unmarshal([]byte(filters), &predicates); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"detail": "Malformed filters"})
			return
		}
	}
	if columns := r.URL.Query().Get("columns"); columns != "" {
		rows = project(rows, strings.Split(columns, ","))
	}
	writeResults(w, rows)
}

func (s *Server) dataTableColumns(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := r.URL.Query().Get("tableName")
	columns, ok := Columns[name]
	if !ok {
		writeNotFound(w)
		return
	}
	writeResults(w, map[string]interface{}{
		"table_name":   name,
		"display_name": displayName(name),
		"columns":      columns,
	})
}

func (s *Server) dataTableMetadata(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := r.URL.Query().Get("tableName")
	for _, table := range Tables {
		if table["table_name"] == name {
			writeResults(w, table)
			return
		}
	}
	writeNotFound(w)
}

func (s *Server) dataTableRowsCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rows, ok := Rows[r.URL.Query().Get("tableName")]
	if !ok {
		writeNotFound(w)
		return
	}
	writeResults(w, map[string]interface{}{"total_rows": len(rows)})
}

func (s *Server) materialByID(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	provider := r.URL.Query().Get("provider")
	id := r.URL.Query().Get("id")
	for _, material := range Materials[provider] {
		if material["id"] == id {
			writeResults(w, []map[string]interface{}{material})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]interface{}{"detail": fmt.Sprintf("Material %s not found", id)})
}

func (s *Server) searchMaterials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	provider := r.URL.Query().Get("provider")
	formula := r.URL.Query().Get("formula")
	results := make([]map[string]interface{}, 0)
	for _, material := range Materials[provider] {
		if formula == "" || material["formula"] == formula {
			results = append(results, material)
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "results": results, "total": len(results)})
}

func writeResults(w http.ResponseWriter, results interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "results": results})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{"message": "Table not found"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func project(rows []map[string]interface{}, columns []string) []map[string]interface{} {
	result := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		projected := map[string]interface{}{}
		for key, value := range row {
			if strings.HasPrefix(key, "_datascribe_") {
				projected[key] = value
			}
		}
		for _, column := range columns {
			if value, ok := row[column]; ok {
				projected[column] = value
			}
		}
		result[i] = projected
	}
	return result
}

func displayName(tableName string) string {
	for _, table := range Tables {
		if table["table_name"] == tableName {
			return table["display_name"].(string)
		}
	}
	return ""
}
