package cli

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/edgekit/edgekit/pkg/errors"
	"github.com/edgekit/edgekit/pkg/graph"
	"github.com/edgekit/edgekit/pkg/graphio"
	"github.com/edgekit/edgekit/pkg/store"
)

// server exposes stored graphs over HTTP. Graphs are submitted and returned
// in their serialization format; derived queries (incident edges, edge
// weight) are computed on reconstructed representations per request.
type server struct {
	store  store.Store
	logger *log.Logger
}

// newRouter builds the chi router for the graph API.
func newRouter(s store.Store, logger *log.Logger) http.Handler {
	srv := &server{store: s, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", srv.handleHealth)
	r.Route("/graphs", func(r chi.Router) {
		r.Post("/", srv.handleCreate)
		r.Get("/", srv.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", srv.handleGet)
			r.Delete("/", srv.handleDelete)
			r.Get("/edges", srv.handleEdges)
			r.Get("/weight", srv.handleWeight)
			r.Get("/nodes/{node}/edges", srv.handleNodeEdges)
		})
	})

	return r
}

// createRequest is the POST /graphs body.
type createRequest struct {
	Name  string           `json:"name"`
	Graph graphio.Document `json:"graph"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidFormat, "request body is not valid JSON"))
		return
	}

	// Reject malformed documents before they reach the store.
	if _, err := graphio.ToList(req.Graph); err != nil {
		s.writeError(w, err)
		return
	}

	rec := store.NewRecord(req.Name, req.Graph)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("stored graph", "id", rec.ID, "nodes", req.Graph.Nodes, "edges", len(req.Graph.Edges))
	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleEdges(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.loadGraph(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, graphio.FromGraph(g).Edges)
}

func (s *server) handleNodeEdges(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.loadGraph(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	node, err := parseNodeParam(chi.URLParam(r, "node"), g.NodeCount())
	if err != nil {
		s.writeError(w, err)
		return
	}

	edges := graph.NodeEdges(g, node)
	out := make([]graphio.Edge, len(edges))
	for i, e := range edges {
		out[i] = graphio.Edge{A: e.A + 1, B: e.B + 1, Weight: int64(e.Weight)}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// weightResponse is the GET /graphs/{id}/weight body.
type weightResponse struct {
	A       int   `json:"a"`
	B       int   `json:"b"`
	Weight  int64 `json:"weight"`
	Present bool  `json:"present"`
}

func (s *server) handleWeight(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.loadGraph(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	a, err := parseNodeParam(r.URL.Query().Get("a"), g.NodeCount())
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := parseNodeParam(r.URL.Query().Get("b"), g.NodeCount())
	if err != nil {
		s.writeError(w, err)
		return
	}

	weight, ok := graph.EdgeWeight(g, a, b)
	s.writeJSON(w, http.StatusOK, weightResponse{
		A: a + 1, B: b + 1, Weight: int64(weight), Present: ok,
	})
}

// loadGraph fetches the record named by the id route param and reconstructs
// its matrix representation, which serves the O(1) weight lookup.
func (s *server) loadGraph(r *http.Request) (graph.Graph, *store.Record, error) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, nil, err
	}
	g, err := graphio.ToMatrix(rec.Graph)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "stored graph %s is corrupt", rec.ID)
	}
	return g, rec, nil
}

// parseNodeParam converts a 1-indexed node parameter to the zero-indexed
// identifier, validating it against the node count.
func parseNodeParam(s string, nodeCount int) (graph.Node, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > nodeCount {
		return 0, apperrors.New(apperrors.ErrCodeUnknownNode, "node %q is not in 1..%d", s, nodeCount)
	}
	return n - 1, nil
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps an error to an HTTP status and writes the JSON error body.
func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperrors.GetCode(err)

	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
		code = apperrors.ErrCodeNotFound
	case code == apperrors.ErrCodeUnknownNode,
		code == apperrors.ErrCodeInvalidInput,
		code == apperrors.ErrCodeInvalidFormat,
		code == apperrors.ErrCodeInvalidHeader,
		code == apperrors.ErrCodeInvalidEdgeRow,
		code == apperrors.ErrCodeTruncatedInput:
		status = http.StatusBadRequest
	}
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorResponse{Code: string(code), Message: apperrors.UserMessage(err)})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
