//go:build js && wasm

// Command cartwasm is the in-page cart controller, built with
// GOOS=js GOARCH=wasm and loaded by web/static/loader.js.
package main

import (
	"context"
	"net/http"

	"github.com/utafrali/storefront/internal/client"
	"github.com/utafrali/storefront/internal/controller"
	"github.com/utafrali/storefront/internal/page/dom"
	"github.com/utafrali/storefront/internal/store"
	"github.com/utafrali/storefront/pkg/httpclient"
	"github.com/utafrali/storefront/pkg/logger"
)

// rootURL is overridden at link time with -ldflags "-X main.rootURL=...".
var rootURL = "/"

// logLevel is overridden at link time like rootURL.
var logLevel = "info"

func main() {
	ctx := context.Background()
	log := logger.New("cartwasm", logLevel)

	doc := dom.NewDocument()
	defer doc.Release()

	cartStore := store.NewCartStore(dom.NewLocalStorage(), log)

	// The browser transport routes requests through fetch.
	cfg := httpclient.SingleShotConfig()
	cfg.Transport = http.DefaultTransport
	orders := client.NewOrderClient("", cfg)

	controller.New(ctx, doc, cartStore, orders, controller.Options{
		RootURL: rootURL,
		Logger:  log,
	})

	// Event callbacks run on this program; keep it alive for the page's lifetime.
	select {}
}
