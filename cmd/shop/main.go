package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang-shop-client/configs"
	"golang-shop-client/internal/api"
	"golang-shop-client/internal/pages"
	"golang-shop-client/internal/router"
	"golang-shop-client/internal/storage"
	"golang-shop-client/internal/store"
)

// app holds the wired client: storage, resource clients, state
// containers, and the route table. Everything is constructed here and
// passed down explicitly; there is no ambient global state.
type app struct {
	session *store.Session
	cart    *store.Cart
	pages   *pages.Pages
	router  *router.Router
}

func newApp(config *configs.Config) (*app, error) {
	var stateStore storage.Store
	switch config.State.Backend {
	case "redis":
		redisStore := storage.NewRedisStore(config.Redis.URL, config.Redis.Password, config.Redis.DB, config.State.Profile)
		if redisStore == nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s", config.Redis.URL)
		}
		stateStore = redisStore
	default:
		fileStore, err := storage.NewFileStore(config.State.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open state dir %s: %w", config.State.Dir, err)
		}
		stateStore = fileStore
	}

	client := api.NewClient(config.API.BaseURL, time.Duration(config.API.TimeoutSeconds)*time.Second)

	session := store.NewSession(stateStore, api.NewAuthClient(client))
	client.TokenSource = session.Token
	client.OnUnauthorized = session.HandleUnauthorized
	session.OnExpired = func() {
		log.Println("Session expired; sign in again with 'shop login'")
	}

	cart := store.NewCart(stateStore)

	p := &pages.Pages{
		Session:    session,
		Cart:       cart,
		Products:   store.NewProducts(api.NewProductClient(client)),
		Categories: store.NewCategories(api.NewCategoryClient(client)),
		Orders:     store.NewOrders(api.NewOrderClient(client)),
		Users:      store.NewUsers(api.NewUserClient(client)),
	}

	r := router.New(session, p.NotFound)
	p.Register(r)

	return &app{session: session, cart: cart, pages: p, router: r}, nil
}

func main() {
	config := configs.LoadConfig()

	a, err := newApp(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	registry := newCommandRegistry(a)
	if err := registry.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
