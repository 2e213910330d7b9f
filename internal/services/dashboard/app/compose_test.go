package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
)

type stubModule struct {
	id     string
	prefix string
	err    error
	nilH   bool
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	if m.err != nil {
		return module.Mount{}, m.err
	}
	if m.nilH {
		return module.Mount{Prefix: m.prefix}, nil
	}
	return module.Mount{Prefix: m.prefix, Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(m.id))
	})}, nil
}

func TestComposeRoutesSubtreesAndExactPaths(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "charts", prefix: "/charts/"},
		stubModule{id: "live", prefix: "live"},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/charts/proportion.svg", http.StatusOK, "charts"},
		{"/live", http.StatusOK, "live"},
		{"/live/extra", http.StatusNotFound, ""},
		{"/other", http.StatusNotFound, ""},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.status {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.status)
		}
		if tc.body != "" && rr.Body.String() != tc.body {
			t.Fatalf("GET %s body = %q, want %q", tc.path, rr.Body.String(), tc.body)
		}
	}
}

func TestComposeRejectsDuplicatePrefixes(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "a", prefix: "/api/v1/"},
		stubModule{id: "b", prefix: "api/v1/"},
	}})
	if err == nil || !strings.Contains(err.Error(), "duplicates prefix") {
		t.Fatalf("Compose() error = %v, want duplicate prefix", err)
	}
}

func TestComposeRejectsBrokenModules(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name    string
		modules []module.Module
	}{
		{name: "nil module", modules: []module.Module{nil}},
		{name: "mount error", modules: []module.Module{stubModule{id: "x", prefix: "/x/", err: boom}}},
		{name: "blank prefix", modules: []module.Module{stubModule{id: "x", prefix: " "}}},
		{name: "nil handler", modules: []module.Module{stubModule{id: "x", prefix: "/x/", nilH: true}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := (Composer{}).Compose(ComposeInput{Modules: tc.modules}); err == nil {
				t.Fatal("Compose() error = nil")
			}
		})
	}
}
