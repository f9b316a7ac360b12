package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rregexd/pkg/types"
)

// maxStateWait caps the ?wait= parameter of GET /state.
const maxStateWait = time.Minute

type handlers struct {
	svc Service
}

// versions godoc
// @Summary      List engine versions
// @Tags         versions
// @Produce      json
// @Success      200  {object}  types.VersionsResponse
// @Router       /versions [get]
func (h *handlers) versions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListVersions())
}

// state godoc
// @Summary      Current load state
// @Description  With wait, blocks until the current version stops loading or the duration passes.
// @Tags         versions
// @Produce      json
// @Param        wait  query     string  false  "max wait, e.g. 2s"
// @Success      200   {object}  types.LoadState
// @Failure      400   {object}  types.ErrorResponse
// @Router       /state [get]
func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("wait")
	if raw == "" {
		writeJSON(w, http.StatusOK, h.svc.State())
		return
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid wait duration")
		return
	}
	if d > maxStateWait {
		d = maxStateWait
	}
	ctx, cancel := context.WithTimeout(r.Context(), d)
	defer cancel()
	// A timeout still reports the state at that moment.
	st, _ := h.svc.WaitState(ctx)
	writeJSON(w, http.StatusOK, st)
}

// switchVersion godoc
// @Summary      Switch the current version
// @Description  Starts loading the version in the background. A version that was loaded before settles immediately.
// @Tags         versions
// @Accept       json
// @Produce      json
// @Param        body  body      types.SwitchRequest  true  "version to load"
// @Success      202   {object}  types.LoadState
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Router       /version [put]
func (h *handlers) switchVersion(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	lvl := requestLogLevel(r)
	var req types.SwitchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Version) == "" {
		writeJSONError(w, http.StatusBadRequest, "version is required")
		return
	}
	st, err := h.svc.Switch(req.Version)
	if err != nil {
		status := writeServiceError(w, err)
		switchTotal.WithLabelValues(outcomeFor(status)).Inc()
		logRequestEnd(r, lvl, "switch", status, start, err)
		return
	}
	switchTotal.WithLabelValues(outcomeOK).Inc()
	writeJSON(w, http.StatusAccepted, st)
	logRequestEnd(r, lvl, "switch", http.StatusAccepted, start, nil)
}

// exec godoc
// @Summary      Run a regex against an engine version
// @Description  Engine-reported input problems (invalid regex) come back as 200 with error set.
// @Tags         playground
// @Accept       json
// @Produce      json
// @Param        body  body      types.ExecRequest  true  "playground input"
// @Success      200   {object}  types.ExecResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      503   {object}  types.ErrorResponse
// @Router       /exec [post]
func (h *handlers) exec(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	lvl := requestLogLevel(r)
	var req types.ExecRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Method != "" && req.Method != "find" && req.Method != "replace" {
		writeJSONError(w, http.StatusBadRequest, "method must be find or replace")
		return
	}
	if lvl >= LevelDebug {
		logger().Debug().Str("version", req.Version).Str("method", req.Method).Str("regex", req.Regex).Msg("exec start")
	}

	// Join server base context with request context so shutdown cancels work too.
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	if execTimeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, execTimeout)
		defer tcancel()
	}

	resp, err := h.svc.Exec(ctx, req)
	if err != nil {
		// Client went away; nobody to answer.
		if r.Context().Err() != nil {
			return
		}
		status := writeServiceError(w, err)
		observeExec(req.Version, req.Method, outcomeFor(status), start)
		logRequestEnd(r, lvl, "exec", status, start, err)
		return
	}
	outcome := outcomeOK
	if resp.Error != "" {
		outcome = outcomeInputError
	}
	observeExec(resp.Version, resp.Method, outcome, start)
	writeJSON(w, http.StatusOK, resp)
	logRequestEnd(r, lvl, "exec", http.StatusOK, start, nil)
}

// share godoc
// @Summary      Canonical share query
// @Tags         playground
// @Produce      json
// @Param        version  query     string  false  "engine version"
// @Param        method   query     string  false  "find or replace"
// @Param        regex    query     string  false  "regex"
// @Param        replace  query     string  false  "replacement"
// @Param        text     query     string  false  "haystack"
// @Success      200      {object}  types.ShareResponse
// @Router       /share [get]
func (h *handlers) share(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Share(r.URL.Query()))
}

// status godoc
// @Summary      Loader status
// @Tags         ops
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// events godoc
// @Summary      Stream load state changes
// @Description  Server-Sent Events; each "state" event carries a LoadState. The current state is sent first.
// @Tags         versions
// @Produce      text/event-stream
// @Success      200  {object}  types.LoadState
// @Router       /events [get]
func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	fl, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	lvl := requestLogLevel(r)

	// Coalesce bursts: subscribers only signal, the stream reads the latest state.
	notify := make(chan struct{}, 1)
	cancelSub := h.svc.Subscribe(func(types.LoadState) {
		select {
		case notify <- struct{}{}:
		default:
		}
	})
	defer cancelSub()
	eventsSubscribers.Inc()
	defer eventsSubscribers.Dec()

	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	var out io.Writer = w
	if lvl >= LevelDebug {
		out = &teeWriter{w: w, lw: &loggingLineWriter{prefix: "events> "}}
	}

	last := h.svc.State()
	if writeEvent(out, last) != nil {
		return
	}
	fl.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-notify:
			st := h.svc.State()
			if st == last {
				continue
			}
			last = st
			if writeEvent(out, st) != nil {
				return
			}
			fl.Flush()
		}
	}
}

func writeEvent(w io.Writer, st types.LoadState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: state\ndata: %s\n\n", b)
	return err
}

// requireJSON rejects non-JSON request bodies with 415.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	return true
}

// decodeJSON enforces content type and body size, then decodes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if !requireJSON(w, r) {
		return false
	}
	// Limit body size (configurable, default 1MiB)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		// Oversized bodies also land here; report 400 without size details.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(b, '\n'))
}
