package server

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/layout"
	"github.com/matzehuels/navgrid/pkg/nav"
)

// RowsRequest asks for the rows of a container's children.
type RowsRequest struct {
	Layout layout.Document `json:"layout"`
	// Parent is the container id. Empty selects the document root.
	Parent string `json:"parent,omitempty"`
}

// NavigateRequest asks for the neighbor of From in Direction.
type NavigateRequest struct {
	Layout    layout.Document `json:"layout"`
	From      string          `json:"from"`
	Direction string          `json:"direction"`
	CarryX    *float64        `json:"carry_x,omitempty"`
	Root      bool            `json:"root,omitempty"`
}

// NavigateResponse names the neighbor, or null when there is none.
type NavigateResponse struct {
	From      string  `json:"from"`
	Direction string  `json:"direction"`
	Target    *string `json:"target"`
}

// Response is the envelope of every reply.
type Response struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Error  string      `json:"error,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondWithSuccess(w, http.StatusOK, map[string]string{"message": "ok"})
}

func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	var req RowsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Layout.Prepare(); err != nil {
		s.respondWithErr(w, err)
		return
	}

	parent, err := req.Layout.Container(req.Parent)
	if err != nil {
		s.respondWithErr(w, err)
		return
	}

	g := s.navigator(nil).Grid(parent.Children())
	s.respondWithSuccess(w, http.StatusOK, layout.NewSnapshot(g))
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Layout.Prepare(); err != nil {
		s.respondWithErr(w, err)
		return
	}
	if err := errors.ValidateDirection(req.Direction); err != nil {
		s.respondWithErr(w, err)
		return
	}
	dir, err := nav.ParseDirection(req.Direction)
	if err != nil {
		s.respondWithErr(w, errors.Wrap(errors.ErrCodeInvalidDirection, err, "direction"))
		return
	}

	from, err := req.Layout.Lookup(req.From)
	if err != nil {
		s.respondWithErr(w, err)
		return
	}
	parent, ok := req.Layout.Parent(req.From)
	if !ok {
		s.respondWithErr(w, errors.New(errors.ErrCodeInvalidInput, "element %q is the root and has no neighbors", req.From))
		return
	}

	carry := &nav.MapCarry{}
	if req.CarryX != nil {
		carry.SetCarryX(from, *req.CarryX)
	}

	resp := NavigateResponse{From: from.ID, Direction: dir.String()}
	if target, ok := s.navigator(carry).Neighbor(parent, from, dir, req.Root); ok {
		id := layout.OwnerID(target)
		resp.Target = &id
	}
	s.respondWithSuccess(w, http.StatusOK, resp)
}

func (s *Server) navigator(carry nav.CarryStore) *nav.Navigator {
	return nav.New(nav.Options{Distance: s.opts.Distance, Carry: carry, Logger: s.logger})
}

// decode reads a JSON body into v, replying with an error if it cannot.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.respondWithErr(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body"))
		return false
	}
	return true
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDirection, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeElementNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// respondWithErr sends err with the status matching its code.
func (s *Server) respondWithErr(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	msg := strings.TrimPrefix(err.Error(), string(code)+": ")
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		msg = "internal error"
	}
	s.respondWithError(w, status, string(code), msg)
}

// respondWithError sends a standardized JSON error response.
func (s *Server) respondWithError(w http.ResponseWriter, statusCode int, code, message string) {
	s.respondWithStatus(w, statusCode, Response{Status: "error", Code: code, Error: message})
}

// respondWithSuccess sends a standardized JSON success response.
func (s *Server) respondWithSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	s.respondWithStatus(w, statusCode, Response{Status: "success", Data: data})
}

func (s *Server) respondWithStatus(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
