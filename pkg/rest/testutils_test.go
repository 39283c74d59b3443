package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoconfigd/autoconfigd/pkg/config"
	"github.com/autoconfigd/autoconfigd/pkg/provider"
	"github.com/autoconfigd/autoconfigd/pkg/server/web"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const testDefs = `
provider:
  id: example
  display_name: Example Mail
  domains:
    - example.com
  incoming:
    hostname: imap.example.com
  outgoing:
    hostname: smtp.example.com
domains:
  other.example.org:
    display_name: Other
`

// setupWebServer loads the test provider definitions and returns a router
// with the REST routes populated. A fresh router per test avoids duplicate
// route registrations on the shared web.Router.
func setupWebServer(t *testing.T) *mux.Router {
	t.Helper()
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)
	conf := &config.Root{
		Web: config.Web{Addr: "0.0.0.0:8000"},
	}
	web.Initialize(conf, make(chan bool), reg)
	r := mux.NewRouter()
	SetupRoutes(r)
	return r
}

func testRestGet(r *mux.Router, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
