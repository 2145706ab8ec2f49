// Package memdoc is an in-memory page.Document for headless use and tests.
package memdoc

import (
	"slices"
	"sync"

	"github.com/utafrali/storefront/internal/page"
)

// Element is an in-memory page element. The With* builders seed it before it
// is added to a Document.
type Element struct {
	mu sync.Mutex

	id       string
	value    string
	text     string
	html     string
	disabled bool
	required bool
	form     string
	attrs    map[string]string
	classes  []string
	handlers map[string][]func()
}

// NewElement creates an element with id.
func NewElement(id string) *Element {
	return &Element{id: id, attrs: map[string]string{}, handlers: map[string][]func(){}}
}

// WithValue sets the input value.
func (e *Element) WithValue(v string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
	return e
}

// WithAttr sets an attribute.
func (e *Element) WithAttr(name, v string) *Element { e.attrs[name] = v; return e }

// WithClass adds a class.
func (e *Element) WithClass(c string) *Element { e.classes = append(e.classes, c); return e }

// Required marks the element as a required input of form.
func (e *Element) Required(form string) *Element { e.required, e.form = true, form; return e }

// Disable sets the initial disabled state.
func (e *Element) Disable() *Element { e.disabled = true; return e }

func (e *Element) ID() string { return e.id }

func (e *Element) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *Element) Attr(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attrs[name]
}

func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

func (e *Element) SetHTML(html string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.html = html
}

func (e *Element) Disabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disabled
}

func (e *Element) SetDisabled(disabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disabled = disabled
}

func (e *Element) AddClass(class string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !slices.Contains(e.classes, class) {
		e.classes = append(e.classes, class)
	}
}

func (e *Element) On(event string, fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[event] = append(e.handlers[event], fn)
}

// Text returns the text content.
func (e *Element) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// HTML returns the inner HTML.
func (e *Element) HTML() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.html
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Contains(e.classes, class)
}

// HandlerCount returns how many handlers are bound to event.
func (e *Element) HandlerCount(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers[event])
}

// Fire runs the handlers bound to event. Disabled controls ignore clicks and
// submits, as in a browser.
func (e *Element) Fire(event string) {
	e.mu.Lock()
	if e.disabled && (event == page.EventClick || event == page.EventSubmit) {
		e.mu.Unlock()
		return
	}
	hs := slices.Clone(e.handlers[event])
	e.mu.Unlock()
	for _, h := range hs {
		h()
	}
}

// Click fires a click.
func (e *Element) Click() { e.Fire(page.EventClick) }

// Type replaces the value and fires an input event.
func (e *Element) Type(v string) {
	e.mu.Lock()
	e.value = v
	e.mu.Unlock()
	e.Fire(page.EventInput)
}

// Document holds elements in insertion order and records alerts and
// navigations.
type Document struct {
	mu          sync.Mutex
	elements    []*Element
	alerts      []string
	navigations []string
}

// New returns a document containing elems.
func New(elems ...*Element) *Document {
	d := &Document{}
	d.Add(elems...)
	return d
}

// Add appends elements to the document.
func (d *Document) Add(elems ...*Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements = append(d.elements, elems...)
}

// Get returns the element with id, or nil.
func (d *Document) Get(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.elements {
		if e.id == id {
			return e
		}
	}
	return nil
}

func (d *Document) ElementByID(id string) (page.Element, bool) {
	if e := d.Get(id); e != nil {
		return e, true
	}
	return nil, false
}

func (d *Document) ElementsByClass(class string) []page.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []page.Element
	for _, e := range d.elements {
		if e.HasClass(class) {
			out = append(out, e)
		}
	}
	return out
}

func (d *Document) RequiredInputs(formID string) []page.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []page.Element
	for _, e := range d.elements {
		if e.required && e.form == formID {
			out = append(out, e)
		}
	}
	return out
}

func (d *Document) Alert(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, message)
}

func (d *Document) Navigate(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.navigations = append(d.navigations, url)
}

// Alerts returns the messages shown so far.
func (d *Document) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.alerts)
}

// Navigations returns the URLs navigated to so far.
func (d *Document) Navigations() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.navigations)
}
