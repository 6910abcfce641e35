// Package router maps client paths to page handlers and gates protected
// subtrees behind authentication and admin checks. Resolution returns an
// explicit redirect instead of mutating any global location state.
package router

import (
	"context"
	"io"
	"net/url"
	"strings"
)

// Page renders one view. Params carries values bound from :param path
// segments.
type Page func(ctx context.Context, w io.Writer, params map[string]string) error

// Guard inspects the session before a page mounts. A non-empty redirect
// wins over the page.
type Guard func(path string) (redirect string)

// Session is the slice of session state the guards need.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Resolution is the outcome of resolving a path: either a page to render
// or a redirect to follow.
type Resolution struct {
	Redirect string
	Page     Page
	Params   map[string]string
}

type route struct {
	segments []string
	guard    Guard
	page     Page
}

type Router struct {
	session  Session
	routes   []route
	notFound Page
}

func New(session Session, notFound Page) *Router {
	return &Router{session: session, notFound: notFound}
}

// Handle registers a public route. Patterns are static segments plus
// :param placeholders, e.g. "/products/:id".
func (r *Router) Handle(pattern string, page Page) {
	r.routes = append(r.routes, route{segments: split(pattern), page: page})
}

// HandleAuth registers a route that requires an authenticated session.
// Unauthenticated visits redirect to the login view with the original
// path as the return target.
func (r *Router) HandleAuth(pattern string, page Page) {
	r.routes = append(r.routes, route{
		segments: split(pattern),
		page:     page,
		guard: func(path string) string {
			if !r.session.IsAuthenticated() {
				return "/login?returnTo=" + url.QueryEscape(path)
			}
			return ""
		},
	})
}

// HandleAdmin registers a route that additionally requires the admin
// role. Authenticated non-admins are sent home; unauthenticated visitors
// go through the login redirect.
func (r *Router) HandleAdmin(pattern string, page Page) {
	r.routes = append(r.routes, route{
		segments: split(pattern),
		page:     page,
		guard: func(path string) string {
			if !r.session.IsAuthenticated() {
				return "/login?returnTo=" + url.QueryEscape(path)
			}
			if !r.session.IsAdmin() {
				return "/"
			}
			return ""
		},
	})
}

// Resolve matches path against the route table in registration order.
// Unmatched paths resolve to the not-found page.
func (r *Router) Resolve(path string) Resolution {
	segments := split(path)
	for _, rt := range r.routes {
		params, ok := match(rt.segments, segments)
		if !ok {
			continue
		}
		if rt.guard != nil {
			if redirect := rt.guard(path); redirect != "" {
				return Resolution{Redirect: redirect}
			}
		}
		return Resolution{Page: rt.page, Params: params}
	}
	return Resolution{Page: r.notFound, Params: map[string]string{}}
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			params[p[1:]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}
