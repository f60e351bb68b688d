package e2e

import (
	"net/http/httptest"
	"testing"

	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/router"
	"todo-backend/pkg/registry"
	"todo-backend/testutil"

	"github.com/gavv/httpexpect/v2"
)

// SetupOption is an option of Setup
type SetupOption struct {
	StrictNotFound bool
	TearDown       func(t *testing.T, g *datastore.Gateway)
}

// Setup starts the router against a fresh test database.
func Setup(t *testing.T, option SetupOption) (expect *httpexpect.Expect, g *datastore.Gateway, teardown func()) {
	t.Helper()
	testutil.ReadConfigE2E()

	g = testutil.NewDBClient(t)
	ctrl := registry.NewWithOptions(g, registry.RegistryOptions{
		StrictNotFound: option.StrictNotFound,
	}).NewController()

	srv := httptest.NewServer(router.New(ctrl, router.Options{}))

	return httpexpect.Default(t, srv.URL), g, func() {
		if option.TearDown != nil {
			option.TearDown(t, g)
		}
		srv.Close()
		g.Close()
	}
}
