package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"rregexd/internal/manager"
	"rregexd/pkg/types"
)

func TestExecHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", manager.ErrVersionNotFound("0.1"), http.StatusNotFound},
		{"unavailable", manager.ErrDependencyUnavailable("engine 1.10 unavailable", errors.New("compile")), http.StatusServiceUnavailable},
		{"http error", mockHTTPError{msg: "teapot", code: http.StatusTeapot}, http.StatusTeapot},
		{"wrapped http error", fmt.Errorf("exec: %w", mockHTTPError{msg: "gone", code: http.StatusGone}), http.StatusGone},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{execFn: func(context.Context, types.ExecRequest) (types.ExecResponse, error) {
				return types.ExecResponse{}, tc.err
			}}
			w := do(t, NewMux(svc), http.MethodPost, "/exec", "application/json", `{"regex":"a"}`)
			if w.Code != tc.want {
				t.Fatalf("status=%d want %d", w.Code, tc.want)
			}
			if e := decodeError(t, w); e.Code != tc.want || e.Error != tc.err.Error() {
				t.Fatalf("unexpected payload: %+v", e)
			}
		})
	}
}

func TestStatusFor_DeadlineExceeded(t *testing.T) {
	if got := statusFor(fmt.Errorf("wrap: %w", context.DeadlineExceeded)); got != http.StatusGatewayTimeout {
		t.Fatalf("deadline status=%d", got)
	}
}
