package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/toastify/pkg/toast"
	"github.com/vango-dev/toastify/pkg/vdom"
)

const maxBodyBytes = 64 << 10

// ToastRequest is the JSON body of POST /api/toasts and
// PATCH /api/toasts/{id}. Omitted fields keep their defaults (show) or
// current values (update).
type ToastRequest struct {
	Content         string `json:"content"`
	Title           string `json:"title,omitempty"`
	Type            string `json:"type,omitempty"`
	Position        string `json:"position,omitempty"`
	Order           *int   `json:"order,omitempty"`
	AutoCloseMs     *int64 `json:"autoCloseMs,omitempty"`
	Theme           string `json:"theme,omitempty"`
	ToastID         string `json:"toastId,omitempty"`
	ClassName       string `json:"className,omitempty"`
	Role            string `json:"role,omitempty"`
	Transition      string `json:"transition,omitempty"`
	HideProgressBar *bool  `json:"hideProgressBar,omitempty"`
	CloseButton     *bool  `json:"closeButton,omitempty"`
	ActionLabel     string `json:"actionLabel,omitempty"`
	ActionID        string `json:"actionId,omitempty"`
}

// ToastResponse is returned by POST /api/toasts.
type ToastResponse struct {
	ID string `json:"id"`
}

func decodeRequest(r *http.Request) (ToastRequest, error) {
	var req ToastRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return req, nil
}

// options converts the request into toast options. Only fields present in
// the request produce an option.
func (req ToastRequest) options() ([]toast.Option, error) {
	var opts []toast.Option

	if req.Type != "" {
		t, err := toast.ParseType(req.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		opts = append(opts, toast.WithType(t))
	}
	if req.Position != "" {
		pos, err := toast.ParsePosition(req.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		opts = append(opts, toast.WithPosition(pos))
	}
	if req.Theme != "" {
		theme, err := toast.ParseTheme(req.Theme)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		opts = append(opts, toast.WithTheme(theme))
	}
	if req.Transition != "" {
		tr, ok := toast.TransitionByName(req.Transition)
		if !ok {
			return nil, fmt.Errorf("%w: unknown transition %q", ErrBadRequest, req.Transition)
		}
		opts = append(opts, toast.WithTransition(tr))
	}
	if req.Order != nil {
		opts = append(opts, toast.WithOrder(*req.Order))
	}
	if req.AutoCloseMs != nil {
		if *req.AutoCloseMs < 0 {
			return nil, fmt.Errorf("%w: autoCloseMs must not be negative", ErrBadRequest)
		}
		opts = append(opts, toast.WithAutoClose(time.Duration(*req.AutoCloseMs)*time.Millisecond))
	}
	if req.ToastID != "" {
		opts = append(opts, toast.WithToastID(toast.ID(req.ToastID)))
	}
	if req.ClassName != "" {
		opts = append(opts, toast.WithClassName(req.ClassName))
	}
	if req.Role != "" {
		opts = append(opts, toast.WithRole(req.Role))
	}
	if req.HideProgressBar != nil {
		hide := *req.HideProgressBar
		opts = append(opts, func(p *toast.Props) { p.HideProgressBar = hide })
	}
	if req.CloseButton != nil && !*req.CloseButton {
		opts = append(opts, toast.WithoutCloseButton())
	}
	if req.ActionID != "" {
		opts = append(opts, toast.WithData("action", req.ActionID))
	}
	return opts, nil
}

// content builds the toast body; nil when the request carries no text.
func (req ToastRequest) content() *vdom.VNode {
	message := strings.TrimSpace(req.Content)
	title := strings.TrimSpace(req.Title)
	if message == "" && title == "" {
		return nil
	}

	label := req.ActionLabel
	if label == "" {
		label = req.ActionID
	}
	return vdom.Fragment(
		vdom.If(title != "", vdom.Strong(vdom.Class(toast.CSSNamespace+"__toast-title"), vdom.Text(title))),
		vdom.If(message != "", vdom.Div(vdom.Class(toast.CSSNamespace+"__toast-message"), vdom.Text(message))),
		vdom.When(req.ActionID != "", func() *vdom.VNode { return toast.ActionButton(label, req.ActionID) }),
	)
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	content := req.content()
	if content == nil {
		writeError(w, s.logger, fmt.Errorf("%w: content or title is required", ErrBadRequest))
		return
	}
	opts, err := req.options()
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	id := s.engine.Show(content, opts...)
	writeJSON(w, http.StatusCreated, ToastResponse{ID: string(id)})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if req.ToastID != "" {
		writeError(w, s.logger, fmt.Errorf("%w: toastId cannot be changed", ErrBadRequest))
		return
	}
	opts, err := req.options()
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	if err := s.engine.Update(toastID(r), req.content(), opts...); err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.engine.Dismiss(toastID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDismissAll(w http.ResponseWriter, r *http.Request) {
	s.engine.DismissAll()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.engine.Pause(toastID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.engine.Resume(toastID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	s.engine.Remove(toastID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.RenderPage(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleContainer(w http.ResponseWriter, r *http.Request) {
	html, err := s.RenderContainer(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}

func toastID(r *http.Request) toast.ID {
	return toast.ID(chi.URLParam(r, "id"))
}
