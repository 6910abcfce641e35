package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"golang-shop-client/internal/models"
)

// command is one CLI verb. The registry dispatches on the first
// argument; everything after it belongs to the command's flag set.
type command struct {
	name        string
	description string
	usage       string
	run         func(a *app, args []string) error
}

type commandRegistry struct {
	app      *app
	commands map[string]*command
	order    []string
}

func newCommandRegistry(a *app) *commandRegistry {
	r := &commandRegistry{app: a, commands: map[string]*command{}}
	for _, cmd := range []*command{
		openCommand(),
		loginCommand(),
		registerCommand(),
		logoutCommand(),
		cartCommand(),
		checkoutCommand(),
		adminCommand(),
	} {
		r.commands[cmd.name] = cmd
		r.order = append(r.order, cmd.name)
	}
	return r
}

func (r *commandRegistry) Execute(args []string) error {
	if len(args) < 1 {
		r.printHelp(os.Stdout)
		return errors.New("no command specified")
	}

	switch args[0] {
	case "help", "-h", "--help":
		r.printHelp(os.Stdout)
		return nil
	}

	cmd, ok := r.commands[args[0]]
	if !ok {
		r.printHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd.run(r.app, args[1:])
}

func (r *commandRegistry) printHelp(w io.Writer) {
	fmt.Fprintln(w, "shop - terminal client for the shop backend")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    shop <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "COMMANDS:")
	for _, name := range r.order {
		cmd := r.commands[name]
		fmt.Fprintf(w, "    %-10s %s\n", cmd.name, cmd.description)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Routes for 'open': /, /products, /products/<id>, /cart, /orders,")
	fmt.Fprintln(w, "/profile, /admin, /admin/products, /admin/orders, /admin/users")
}

// navigate resolves a path and renders the resulting page, following
// guard redirects (at most a few hops; the table has no redirect cycles).
func navigate(a *app, path string) error {
	ctx := context.Background()
	for hops := 0; hops < 3; hops++ {
		resolution := a.router.Resolve(stripQuery(path))
		if resolution.Redirect != "" {
			fmt.Printf("-> redirected to %s\n", resolution.Redirect)
			path = resolution.Redirect
			continue
		}
		return resolution.Page(ctx, os.Stdout, resolution.Params)
	}
	return errors.New("too many redirects")
}

func stripQuery(path string) string {
	if u, err := url.Parse(path); err == nil {
		return u.Path
	}
	return path
}

func openCommand() *command {
	return &command{
		name:        "open",
		description: "Open a page by path",
		usage:       "shop open <path> [-page n]",
		run: func(a *app, args []string) error {
			fs := flag.NewFlagSet("open", flag.ExitOnError)
			page := fs.Int("page", 1, "1-based page number for list views")
			if len(args) < 1 {
				return errors.New("usage: shop open <path> [-page n]")
			}
			path := args[0]
			if err := fs.Parse(args[1:]); err != nil {
				return err
			}
			if *page > 0 {
				a.pages.PageRequested = *page - 1
			}
			return navigate(a, path)
		},
	}
}

func loginCommand() *command {
	return &command{
		name:        "login",
		description: "Authenticate and persist the session",
		usage:       "shop login -email <email> -password <password> [-to <path>]",
		run: func(a *app, args []string) error {
			fs := flag.NewFlagSet("login", flag.ExitOnError)
			email := fs.String("email", "", "account email")
			password := fs.String("password", "", "account password")
			returnTo := fs.String("to", "", "path to open after login")
			if err := fs.Parse(args); err != nil {
				return err
			}

			err := a.session.Login(context.Background(), &models.LoginRequest{
				Email:    *email,
				Password: *password,
			})
			if err != nil {
				return fmt.Errorf("login failed: %s", a.session.Error())
			}

			fmt.Printf("Signed in as %s\n", *email)
			switch {
			case *returnTo != "":
				return navigate(a, *returnTo)
			case a.session.IsAdmin():
				return navigate(a, "/admin")
			default:
				return navigate(a, "/")
			}
		},
	}
}

func registerCommand() *command {
	return &command{
		name:        "register",
		description: "Create an account",
		usage:       "shop register -email <email> -password <password> -first <name> -last <name>",
		run: func(a *app, args []string) error {
			fs := flag.NewFlagSet("register", flag.ExitOnError)
			email := fs.String("email", "", "account email")
			password := fs.String("password", "", "account password")
			first := fs.String("first", "", "first name")
			last := fs.String("last", "", "last name")
			if err := fs.Parse(args); err != nil {
				return err
			}

			err := a.session.Register(context.Background(), &models.RegisterRequest{
				Email:     *email,
				Password:  *password,
				FirstName: *first,
				LastName:  *last,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %s", a.session.Error())
			}

			// Registration never signs the caller in.
			fmt.Println("Registered. Sign in with 'shop login'.")
			return navigate(a, "/login")
		},
	}
}

func logoutCommand() *command {
	return &command{
		name:        "logout",
		description: "Clear the persisted session",
		usage:       "shop logout",
		run: func(a *app, _ []string) error {
			a.session.Logout()
			fmt.Println("Signed out")
			return nil
		},
	}
}

func cartCommand() *command {
	return &command{
		name:        "cart",
		description: "Manage the local cart (add/remove/set/clear/show)",
		usage:       "shop cart <add|remove|set|clear|show> [arguments]",
		run: func(a *app, args []string) error {
			if len(args) < 1 {
				return errors.New("usage: shop cart <add|remove|set|clear|show>")
			}

			switch args[0] {
			case "add":
				fs := flag.NewFlagSet("cart add", flag.ExitOnError)
				qty := fs.Int("qty", 1, "quantity to add")
				if len(args) < 2 {
					return errors.New("usage: shop cart add <productID> [-qty n]")
				}
				id, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return errors.New("invalid product id")
				}
				if err := fs.Parse(args[2:]); err != nil {
					return err
				}
				if err := a.pages.Products.FetchByID(context.Background(), id); err != nil {
					return fmt.Errorf("cannot add to cart: %s", a.pages.Products.Error())
				}
				product := a.pages.Products.Current()
				if product == nil {
					return errors.New("product not found")
				}
				a.cart.Add(*product, *qty)
			case "remove":
				if len(args) < 2 {
					return errors.New("usage: shop cart remove <productID>")
				}
				id, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return errors.New("invalid product id")
				}
				a.cart.Remove(id)
			case "set":
				if len(args) < 3 {
					return errors.New("usage: shop cart set <productID> <quantity>")
				}
				id, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return errors.New("invalid product id")
				}
				qty, err := strconv.Atoi(args[2])
				if err != nil || qty < 1 {
					// The UI floor is 1; removal goes through 'cart remove'.
					return errors.New("quantity must be a positive integer")
				}
				a.cart.SetQuantity(id, qty)
			case "clear":
				a.cart.Clear()
			case "show":
				// fallthrough to the render below
			default:
				return fmt.Errorf("unknown cart action: %s", args[0])
			}

			return navigate(a, "/cart")
		},
	}
}

func checkoutCommand() *command {
	return &command{
		name:        "checkout",
		description: "Place an order from the cart",
		usage:       "shop checkout",
		run: func(a *app, _ []string) error {
			return navigate(a, "/checkout")
		},
	}
}

func adminCommand() *command {
	return &command{
		name:        "admin",
		description: "Admin mutations (order-status, user-deactivate, product-delete)",
		usage:       "shop admin <order-status|user-deactivate|product-delete> <id> [status]",
		run: func(a *app, args []string) error {
			if !a.session.IsAdmin() {
				return errors.New("admin commands require an admin session")
			}
			if len(args) < 2 {
				return errors.New("usage: shop admin <action> <id> [status]")
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.New("invalid id")
			}

			ctx := context.Background()
			switch args[0] {
			case "order-status":
				if len(args) < 3 {
					return errors.New("usage: shop admin order-status <orderID> <status>")
				}
				order, err := a.pages.Orders.UpdateStatus(ctx, id, models.OrderStatus(args[2]))
				if err != nil {
					return fmt.Errorf("update failed: %s", a.pages.Orders.Error())
				}
				fmt.Printf("Order #%d is now %s\n", order.ID, order.Status)
			case "user-deactivate":
				if err := a.pages.Users.Deactivate(ctx, id); err != nil {
					return fmt.Errorf("deactivation failed: %s", a.pages.Users.Error())
				}
				fmt.Printf("User #%d deactivated\n", id)
			case "product-delete":
				if err := a.pages.Products.Delete(ctx, id); err != nil {
					return fmt.Errorf("deletion failed: %s", a.pages.Products.Error())
				}
				fmt.Printf("Product #%d deleted\n", id)
			default:
				return fmt.Errorf("unknown admin action: %s", args[0])
			}
			return nil
		},
	}
}
