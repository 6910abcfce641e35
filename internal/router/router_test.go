package router

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	authenticated bool
	admin         bool
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f *fakeSession) IsAdmin() bool         { return f.admin }

func namedPage(name string) Page {
	return func(ctx context.Context, w io.Writer, params map[string]string) error {
		_, err := io.WriteString(w, name)
		return err
	}
}

func render(t *testing.T, res Resolution) string {
	t.Helper()
	require.NotNil(t, res.Page)
	var sb strings.Builder
	require.NoError(t, res.Page(context.Background(), &sb, res.Params))
	return sb.String()
}

func newTestRouter(session *fakeSession) *Router {
	r := New(session, namedPage("not-found"))
	r.Handle("/", namedPage("home"))
	r.Handle("/products", namedPage("products"))
	r.Handle("/products/:id", namedPage("product-detail"))
	r.HandleAuth("/checkout", namedPage("checkout"))
	r.HandleAuth("/orders", namedPage("orders"))
	r.HandleAdmin("/admin/products", namedPage("admin-products"))
	return r
}

func TestResolvePublicRoutes(t *testing.T) {
	r := newTestRouter(&fakeSession{})

	assert.Equal(t, "home", render(t, r.Resolve("/")))
	assert.Equal(t, "products", render(t, r.Resolve("/products")))
}

func TestResolveBindsPathParams(t *testing.T) {
	r := newTestRouter(&fakeSession{})

	res := r.Resolve("/products/42")
	assert.Empty(t, res.Redirect)
	assert.Equal(t, map[string]string{"id": "42"}, res.Params)
	assert.Equal(t, "product-detail", render(t, res))
}

func TestAuthRouteRedirectsAnonymousToLogin(t *testing.T) {
	r := newTestRouter(&fakeSession{})

	res := r.Resolve("/checkout")
	assert.Nil(t, res.Page)
	assert.Equal(t, "/login?returnTo=%2Fcheckout", res.Redirect)
}

func TestAuthRoutePassesAuthenticatedUser(t *testing.T) {
	r := newTestRouter(&fakeSession{authenticated: true})

	res := r.Resolve("/checkout")
	assert.Empty(t, res.Redirect)
	assert.Equal(t, "checkout", render(t, res))
}

func TestAdminRouteSendsNonAdminHome(t *testing.T) {
	r := newTestRouter(&fakeSession{authenticated: true})

	res := r.Resolve("/admin/products")
	assert.Nil(t, res.Page)
	assert.Equal(t, "/", res.Redirect)
}

func TestAdminRouteRedirectsAnonymousToLogin(t *testing.T) {
	r := newTestRouter(&fakeSession{})

	res := r.Resolve("/admin/products")
	assert.Equal(t, "/login?returnTo=%2Fadmin%2Fproducts", res.Redirect)
}

func TestAdminRoutePassesAdmin(t *testing.T) {
	r := newTestRouter(&fakeSession{authenticated: true, admin: true})

	assert.Equal(t, "admin-products", render(t, r.Resolve("/admin/products")))
}

func TestGuardReevaluatesPerResolve(t *testing.T) {
	session := &fakeSession{}
	r := newTestRouter(session)

	assert.NotEmpty(t, r.Resolve("/orders").Redirect)

	session.authenticated = true
	res := r.Resolve("/orders")
	assert.Empty(t, res.Redirect)
	assert.Equal(t, "orders", render(t, res))

	session.authenticated = false
	assert.Equal(t, "/login?returnTo=%2Forders", r.Resolve("/orders").Redirect)
}

func TestUnknownPathResolvesToNotFound(t *testing.T) {
	r := newTestRouter(&fakeSession{})

	res := r.Resolve("/does/not/exist")
	assert.Empty(t, res.Redirect)
	assert.Equal(t, "not-found", render(t, res))
}

func TestTrailingSlashMatches(t *testing.T) {
	r := newTestRouter(&fakeSession{})

	assert.Equal(t, "products", render(t, r.Resolve("/products/")))
}
