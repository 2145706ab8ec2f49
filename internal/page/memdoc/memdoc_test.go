package memdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/page"
)

func TestDocument_Lookup(t *testing.T) {
	doc := New(
		NewElement("a").WithClass(page.ClassAddToCart),
		NewElement("name").Required(page.IDCheckoutForm),
		NewElement("b").WithClass(page.ClassAddToCart),
		NewElement("other").Required("search-form"),
	)

	_, ok := doc.ElementByID("missing")
	assert.False(t, ok)

	el, ok := doc.ElementByID("name")
	require.True(t, ok)
	assert.Equal(t, "name", el.ID())

	buttons := doc.ElementsByClass(page.ClassAddToCart)
	require.Len(t, buttons, 2)
	assert.Equal(t, "a", buttons[0].ID())
	assert.Equal(t, "b", buttons[1].ID())

	inputs := doc.RequiredInputs(page.IDCheckoutForm)
	require.Len(t, inputs, 1)
	assert.Equal(t, "name", inputs[0].ID())
}

func TestElement_DisabledIgnoresClick(t *testing.T) {
	el := NewElement("btn")
	clicks := 0
	el.On(page.EventClick, func() { clicks++ })

	el.Click()
	el.SetDisabled(true)
	el.Click()

	assert.Equal(t, 1, clicks)
}

func TestElement_TypeFiresInput(t *testing.T) {
	el := NewElement("customerName")
	var seen string
	el.On(page.EventInput, func() { seen = el.Value() })

	el.Type("Ada")
	assert.Equal(t, "Ada", seen)
}

func TestDocument_RecordsAlertsAndNavigations(t *testing.T) {
	doc := New()
	doc.Alert("hi")
	doc.Navigate("/")

	assert.Equal(t, []string{"hi"}, doc.Alerts())
	assert.Equal(t, []string{"/"}, doc.Navigations())
}
