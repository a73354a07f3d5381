package app

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"heritage/api/internal/ontology"
	"heritage/api/internal/resource"
	"heritage/api/internal/util"
)

type HTTPServer struct {
	service    *Service
	corsOrigin string
}

func NewHTTPServer(service *Service, corsOrigin string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	readOnly := r.Method == http.MethodGet || r.Method == http.MethodHead

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if readOnly && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if readOnly && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := "ready"
		statusCode := http.StatusOK
		checks := map[string]any{
			"knowledge_store": map[string]any{"status": "ok"},
		}

		if err := s.service.Ping(ctx); err != nil {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			checks["knowledge_store"] = map[string]any{
				"status": "error",
				"error":  err.Error(),
			}
		}

		writeJSON(w, statusCode, map[string]any{
			"ok":     status == "ready",
			"status": status,
			"checks": checks,
		})
		return
	}

	if readOnly && r.URL.Path == "/metrics" && s.service.Metrics() != nil {
		s.service.Metrics().Handler().ServeHTTP(w, r)
		return
	}

	if strings.HasPrefix(r.URL.Path, ontology.ResourcePathPrefix+"/") {
		s.handleResource(w, r)
		return
	}

	if strings.HasPrefix(r.URL.Path, ontology.CanonicalPathPrefix+"/") {
		s.handleCanonical(w, r)
		return
	}

	writeText(w, http.StatusNotFound, "Not found")
}

// handleResource dereferences /resource/{type}/{id...}[.ext].
func (s *HTTPServer) handleResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		s.fail(w, r, domainError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil))
		return
	}

	rawPath := r.URL.EscapedPath()
	path, err := resource.ParsePath(splitPath(strings.TrimPrefix(rawPath, ontology.ResourcePathPrefix)))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	format := resource.Negotiate(path.Extension, r.URL.Query().Get("format"), r.Header.Get("Accept"))
	setFormat(r, format)
	ref := ontology.EntityRef{Type: ontology.NormalizeDetailType(path.Type), ID: path.ID}
	w.Header().Set("Vary", "Accept")

	if format == resource.FormatHTML {
		target := ontology.DetailHref(ref.Type, ref.ID) + "?from=" + url.QueryEscape(rawPath)
		redirect(w, target)
		return
	}

	doc, err := s.service.Describe(r.Context(), ref, format)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Location", doc.ContentLocation)
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(doc.Body)
	}
}

// handleCanonical sends /id/... to the matching document under /resource/.
func (s *HTTPServer) handleCanonical(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		s.fail(w, r, domainError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil))
		return
	}

	target := ontology.ResourcePathPrefix + strings.TrimPrefix(r.URL.EscapedPath(), ontology.CanonicalPathPrefix)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	w.Header().Set("Vary", "Accept")
	redirect(w, target)
}

func (s *HTTPServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := mapError(err)
	if status == statusClientClosedRequest {
		// Nobody is listening; keep the status for the access log only.
		if recorder, ok := w.(*statusRecorder); ok {
			recorder.status = status
		}
		return
	}
	if status >= http.StatusInternalServerError {
		log.Printf("resolver: %s %s: %s: %v", r.Method, r.URL.Path, code, err)
	}
	writeText(w, status, message)
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = util.NewID("req")
		}
		info := &requestInfo{}
		ctx := context.WithValue(r.Context(), requestInfoKey{}, info)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		if strings.HasPrefix(r.URL.Path, ontology.ResourcePathPrefix+"/") {
			s.service.Metrics().ObserveRequest(info.format, writer.status)
		}

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","format":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			info.format,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

type requestInfoKey struct{}

// requestInfo is filled in by handlers for the access log.
type requestInfo struct {
	format string
}

func setFormat(r *http.Request, format resource.Format) {
	if info, ok := r.Context().Value(requestInfoKey{}).(*requestInfo); ok {
		info.format = string(format)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Headers", "Accept, X-Request-ID")
	header.Set("Access-Control-Allow-Methods", "GET,HEAD,OPTIONS")
	header.Set("Access-Control-Expose-Headers", "Content-Location, X-Request-ID")
	header.Set("Cache-Control", "no-store")
}

// redirect answers 303 with target verbatim. http.Redirect would clean the
// path and collapse ids such as "..".
func redirect(w http.ResponseWriter, target string) {
	w.Header().Set("Location", target)
	w.WriteHeader(http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
