package client_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"todo-backend/pkg/client"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/router"
	"todo-backend/pkg/registry"
	"todo-backend/testutil"
)

type backend struct {
	api     *client.API
	gateway *datastore.Gateway
	calls   *atomic.Int32
	url     string
}

// newBackend serves the real router over a fresh test database and counts
// the requests it receives.
func newBackend(t *testing.T, strict bool) *backend {
	t.Helper()
	testutil.ReadConfig()

	g := testutil.NewDBClient(t)
	ctrl := registry.NewWithOptions(g, registry.RegistryOptions{StrictNotFound: strict}).NewController()
	e := router.New(ctrl, router.Options{})

	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		e.ServeHTTP(w, r)
	}))
	t.Cleanup(func() {
		srv.Close()
		g.Close()
	})

	return &backend{
		api:     client.NewAPIWithClient(srv.URL+"/", srv.Client()),
		gateway: g,
		calls:   calls,
		url:     srv.URL,
	}
}
