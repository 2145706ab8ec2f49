//go:build js && wasm

// Package dom adapts the browser DOM and localStorage to the page and store
// interfaces.
package dom

import (
	"context"
	"syscall/js"

	"github.com/utafrali/storefront/internal/page"
)

// Document wraps window.document.
type Document struct {
	window js.Value
	doc    js.Value
	funcs  []js.Func
}

// NewDocument returns the document of the current window.
func NewDocument() *Document {
	w := js.Global()
	return &Document{window: w, doc: w.Get("document")}
}

func (d *Document) ElementByID(id string) (page.Element, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &element{v: v, doc: d}, true
}

func (d *Document) ElementsByClass(class string) []page.Element {
	return d.query("." + class)
}

func (d *Document) RequiredInputs(formID string) []page.Element {
	return d.query("#" + formID + " [required]")
}

func (d *Document) query(selector string) []page.Element {
	list := d.doc.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]page.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &element{v: list.Index(i), doc: d})
	}
	return out
}

func (d *Document) Alert(message string) {
	d.window.Call("alert", message)
}

func (d *Document) Navigate(url string) {
	d.window.Get("location").Set("href", url)
}

// Release frees the Go callbacks registered with the browser.
func (d *Document) Release() {
	for _, f := range d.funcs {
		f.Release()
	}
	d.funcs = nil
}

type element struct {
	v   js.Value
	doc *Document
}

func (e *element) ID() string { return e.v.Get("id").String() }

func (e *element) Value() string {
	v := e.v.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *element) SetText(text string)       { e.v.Set("textContent", text) }
func (e *element) SetHTML(html string)       { e.v.Set("innerHTML", html) }
func (e *element) Disabled() bool            { return e.v.Get("disabled").Truthy() }
func (e *element) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }
func (e *element) AddClass(class string)     { e.v.Get("classList").Call("add", class) }

func (e *element) On(event string, fn func()) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if event == page.EventSubmit && len(args) > 0 {
			args[0].Call("preventDefault")
		}
		fn()
		return nil
	})
	e.doc.funcs = append(e.doc.funcs, cb)
	e.v.Call("addEventListener", event, cb)
}

// LocalStorage is window.localStorage as a store.KeyValue.
type LocalStorage struct {
	storage js.Value
}

// NewLocalStorage returns the window's localStorage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{storage: js.Global().Get("localStorage")}
}

func (s *LocalStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	v := s.storage.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (s *LocalStorage) SetItem(_ context.Context, key, value string) error {
	s.storage.Call("setItem", key, value)
	return nil
}
