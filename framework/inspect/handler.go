// Package inspect exposes a container's service definitions over HTTP for
// debugging.
//
//	GET /services       → {"data": [{"id": "clock.now", "kinds": ["method"]}, ...]}
//	GET /services/{id}  → {"data": {"id": "clock.now", "type": "time.Time", "value": "..."}}
package inspect

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-provider/framework/container"
	gohttp "github.com/km-arc/go-provider/framework/http"
	"github.com/km-arc/go-provider/framework/routing"
)

// ServiceInfo describes the definitions registered under one id.
type ServiceInfo struct {
	ID    string   `json:"id"`
	Kinds []string `json:"kinds"`
}

// Resolved is the result of invoking an id's definitions.
type Resolved struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Mount registers the inspection routes under /services. Responses are
// marked uncacheable since every request resolves afresh.
func Mount(r *routing.Router, c *container.Container) {
	r.Prefix("/services", func(sr *routing.Router) {
		sr.Middleware(middleware.NoCache)
		sr.Get("/", List(c))
		sr.Get("/{id}", Show(c))
	})
}

// List returns every id with the kinds of its definitions.
func List(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ids := c.IDs()
		out := make([]ServiceInfo, 0, len(ids))
		for _, id := range ids {
			defs := c.Definitions(id)
			kinds := make([]string, len(defs))
			for i, def := range defs {
				kinds[i] = def.Kind()
			}
			out = append(out, ServiceInfo{ID: id, Kinds: kinds})
		}
		gohttp.NewResponse(w).Success(out)
	}
}

// Show resolves one id through the container.
func Show(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		id := routing.Param(req, "id")
		if !c.Has(id) {
			res.NotFound(fmt.Sprintf("No service registered for [%s].", id))
			return
		}
		v, err := c.Get(id)
		if err != nil {
			res.ServerError(err.Error())
			return
		}
		res.Success(Resolved{ID: id, Type: fmt.Sprintf("%T", v), Value: fmt.Sprintf("%v", v)})
	}
}
