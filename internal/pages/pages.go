// Package pages renders the client's views as text. Pages read from the
// state containers and contain no logic beyond fetching and formatting.
package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/models"
	"golang-shop-client/internal/router"
	"golang-shop-client/internal/store"
)

const defaultPageSize = 12

// Pages binds every view to the stores it renders from.
type Pages struct {
	Session    *store.Session
	Cart       *store.Cart
	Products   *store.Products
	Categories *store.Categories
	Orders     *store.Orders
	Users      *store.Users

	// PageRequested lets the front end steer list pagination; zero
	// means first page.
	PageRequested int
}

// Register installs the full route surface on r.
func (p *Pages) Register(r *router.Router) {
	r.Handle("/", p.Home)
	r.Handle("/products", p.ProductList)
	r.Handle("/products/:id", p.ProductDetail)
	r.Handle("/cart", p.CartView)
	r.Handle("/login", p.Login)
	r.Handle("/register", p.RegisterView)

	r.HandleAuth("/checkout", p.Checkout)
	r.HandleAuth("/profile", p.Profile)
	r.HandleAuth("/orders", p.OrderHistory)

	r.HandleAdmin("/admin", p.AdminDashboard)
	r.HandleAdmin("/admin/products", p.AdminProducts)
	r.HandleAdmin("/admin/orders", p.AdminOrders)
	r.HandleAdmin("/admin/users", p.AdminUsers)
}

func (p *Pages) pageRequest() api.PageRequest {
	return api.PageRequest{Page: p.PageRequested, Size: defaultPageSize}
}

func (p *Pages) Home(ctx context.Context, w io.Writer, _ map[string]string) error {
	fmt.Fprintln(w, "== Shop ==")
	if user := p.Session.User(); user != nil {
		fmt.Fprintf(w, "Signed in as %s\n", user.Email)
	} else {
		fmt.Fprintln(w, "Browsing as guest")
	}
	fmt.Fprintf(w, "Cart: %d item(s), %.2f\n", p.Cart.TotalItems(), p.Cart.TotalAmount())

	if err := p.Categories.Fetch(ctx); err != nil {
		fmt.Fprintf(w, "Categories unavailable: %s\n", p.Categories.Error())
		return nil
	}
	fmt.Fprintln(w, "Categories:")
	for _, c := range p.Categories.Content() {
		fmt.Fprintf(w, "  [%d] %s (%d products)\n", c.ID, c.Name, c.ProductCount)
	}
	return nil
}

func (p *Pages) ProductList(ctx context.Context, w io.Writer, _ map[string]string) error {
	if err := p.Products.FetchList(ctx, p.pageRequest(), api.ProductFilter{}); err != nil {
		fmt.Fprintf(w, "Error: %s\n", p.Products.Error())
		return nil
	}
	renderProductTable(w, p.Products.Content())
	renderPagination(w, p.Products.Pagination())
	return nil
}

func (p *Pages) ProductDetail(ctx context.Context, w io.Writer, params map[string]string) error {
	id, err := strconv.ParseInt(params["id"], 10, 64)
	if err != nil {
		return errors.New("invalid product id")
	}
	if err := p.Products.FetchByID(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %s\n", p.Products.Error())
		return nil
	}
	product := p.Products.Current()
	if product == nil {
		fmt.Fprintln(w, "Product not found")
		return nil
	}
	fmt.Fprintf(w, "%s (#%d)\n", product.Name, product.ID)
	fmt.Fprintf(w, "%.2f %s | stock %d | category %s\n",
		product.Price, product.Currency, product.StockQuantity, product.CategoryName)
	fmt.Fprintln(w, product.Description)
	return nil
}

func (p *Pages) CartView(_ context.Context, w io.Writer, _ map[string]string) error {
	lines := p.Cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, line := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%.2f %s\t%d\t%.2f\n",
			line.ProductID, line.Name, line.UnitPrice, line.Currency,
			line.Quantity, line.UnitPrice*float64(line.Quantity))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %d item(s), %.2f\n", p.Cart.TotalItems(), p.Cart.TotalAmount())
	return nil
}

func (p *Pages) Login(_ context.Context, w io.Writer, _ map[string]string) error {
	if p.Session.IsAuthenticated() {
		fmt.Fprintln(w, "Already signed in")
		return nil
	}
	if msg := p.Session.Error(); msg != "" {
		fmt.Fprintf(w, "Login failed: %s\n", msg)
	}
	fmt.Fprintln(w, "Use: shop login -email <email> -password <password>")
	return nil
}

func (p *Pages) RegisterView(_ context.Context, w io.Writer, _ map[string]string) error {
	if msg := p.Session.Error(); msg != "" {
		fmt.Fprintf(w, "Registration failed: %s\n", msg)
	}
	fmt.Fprintln(w, "Use: shop register -email <email> -password <password> -first <name> -last <name>")
	return nil
}

func (p *Pages) Checkout(ctx context.Context, w io.Writer, _ map[string]string) error {
	if p.Cart.TotalItems() == 0 {
		fmt.Fprintln(w, "Cart is empty; nothing to check out")
		return nil
	}
	order, err := p.Orders.Create(ctx, p.Cart.OrderRequest())
	if err != nil {
		fmt.Fprintf(w, "Checkout failed: %s\n", p.Orders.Error())
		return nil
	}
	// The cart is destroyed only on successful checkout.
	p.Cart.Clear()
	fmt.Fprintf(w, "Order #%d placed, total %.2f, status %s\n",
		order.ID, order.TotalAmount, order.Status)
	return nil
}

func (p *Pages) Profile(ctx context.Context, w io.Writer, _ map[string]string) error {
	if err := p.Users.FetchMe(ctx); err != nil {
		fmt.Fprintf(w, "Error: %s\n", p.Users.Error())
		return nil
	}
	user := p.Users.Me()
	if user == nil {
		fmt.Fprintln(w, "Profile unavailable")
		return nil
	}
	fmt.Fprintf(w, "%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	fmt.Fprintf(w, "Roles: %v, active: %t\n", user.Roles, user.IsActive)
	return nil
}

func (p *Pages) OrderHistory(ctx context.Context, w io.Writer, _ map[string]string) error {
	if err := p.Orders.FetchMine(ctx, p.pageRequest()); err != nil {
		fmt.Fprintf(w, "Error: %s\n", p.Orders.Error())
		return nil
	}
	renderOrderTable(w, p.Orders.Content())
	renderPagination(w, p.Orders.Pagination())
	return nil
}

func (p *Pages) AdminDashboard(_ context.Context, w io.Writer, _ map[string]string) error {
	fmt.Fprintln(w, "== Admin ==")
	fmt.Fprintln(w, "Sections: /admin/products, /admin/orders, /admin/users")
	return nil
}

func (p *Pages) AdminProducts(ctx context.Context, w io.Writer, _ map[string]string) error {
	if err := p.Products.FetchAdminList(ctx, p.pageRequest()); err != nil {
		fmt.Fprintf(w, "Error: %s\n", p.Products.Error())
		return nil
	}
	renderProductTable(w, p.Products.Content())
	renderPagination(w, p.Products.Pagination())
	return nil
}

func (p *Pages) AdminOrders(ctx context.Context, w io.Writer, _ map[string]string) error {
	if err := p.Orders.FetchAdminList(ctx, p.pageRequest()); err != nil {
		fmt.Fprintf(w, "Error: %s\n", p.Orders.Error())
		return nil
	}
	renderOrderTable(w, p.Orders.Content())
	renderPagination(w, p.Orders.Pagination())
	return nil
}

func (p *Pages) AdminUsers(ctx context.Context, w io.Writer, _ map[string]string) error {
	if err := p.Users.FetchAdminList(ctx, p.pageRequest()); err != nil {
		fmt.Fprintf(w, "Error: %s\n", p.Users.Error())
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLES\tACTIVE")
	for _, u := range p.Users.Content() {
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%v\t%t\n",
			u.ID, u.Email, u.FirstName, u.LastName, u.Roles, u.IsActive)
	}
	tw.Flush()
	renderPagination(w, p.Users.Pagination())
	return nil
}

func (p *Pages) NotFound(_ context.Context, w io.Writer, _ map[string]string) error {
	fmt.Fprintln(w, "Page not found")
	return nil
}

func renderProductTable(w io.Writer, products []models.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY")
	for _, product := range products {
		fmt.Fprintf(tw, "%d\t%s\t%.2f %s\t%d\t%s\n",
			product.ID, product.Name, product.Price, product.Currency,
			product.StockQuantity, product.CategoryName)
	}
	tw.Flush()
}

func renderOrderTable(w io.Writer, orders []models.Order) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tITEMS\tTOTAL\tSTATUS")
	for _, order := range orders {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%s\n",
			order.ID, order.UserEmail, len(order.OrderItems), order.TotalAmount, order.Status)
	}
	tw.Flush()
}

func renderPagination(w io.Writer, p store.Pagination) {
	fmt.Fprintf(w, "Page %d/%d (%d total)\n", p.Page+1, p.TotalPages, p.TotalElements)
}
