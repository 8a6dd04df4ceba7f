//go:build js && wasm

// Package dom connects the navigator and the contact form controller to the
// browser document through syscall/js.
package dom

import (
	"syscall/js"

	"go.uber.org/zap"

	"recon-landing/pkg/contactform"
	"recon-landing/pkg/models"
	"recon-landing/pkg/navigator"
	"recon-landing/pkg/views"
)

type element struct {
	v js.Value
}

func (e element) ScrollIntoView(opts navigator.ScrollOptions) {
	e.v.Call("scrollIntoView", map[string]interface{}{
		"behavior": opts.Behavior,
		"block":    opts.Block,
	})
}

type document struct {
	v js.Value
}

// Document returns the global document, or nil when the host has none
func Document() navigator.Document {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil
	}
	return document{v: doc}
}

func (d document) ElementByID(id string) (navigator.Element, bool) {
	el := d.v.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return element{v: el}, true
}

type event struct {
	v js.Value
}

func (e event) PreventDefault() {
	e.v.Call("preventDefault")
}

// Binding keeps the js callbacks alive for the lifetime of the page
type Binding struct {
	funcs []js.Func
}

// Release frees every registered callback
func (b *Binding) Release() {
	for _, f := range b.funcs {
		f.Release()
	}
	b.funcs = nil
}

func (b *Binding) listen(target js.Value, kind string, fn func(this js.Value, args []js.Value) interface{}) {
	f := js.FuncOf(fn)
	b.funcs = append(b.funcs, f)
	target.Call("addEventListener", kind, f)
}

// Bind wires every scroll link and the contact form of the rendered page
func Bind(nav *navigator.Navigator, form *contactform.Controller, logger *zap.Logger) *Binding {
	b := &Binding{}
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return b
	}

	links := doc.Call("querySelectorAll", "["+views.ScrollTargetAttr+"]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		target := navigator.Target(link.Call("getAttribute", views.ScrollTargetAttr).String())
		b.listen(link, "click", func(this js.Value, args []js.Value) interface{} {
			if len(args) > 0 {
				args[0].Call("preventDefault")
			}
			nav.ScrollTo(target)
			return nil
		})
	}

	formEl := doc.Call("getElementById", views.ContactFormID)
	if formEl.IsNull() || formEl.IsUndefined() {
		logger.Warn("contact form not found", zap.String("id", views.ContactFormID))
		return b
	}

	inputs := formEl.Call("querySelectorAll", "["+views.FieldAttr+"]")
	for i := 0; i < inputs.Length(); i++ {
		input := inputs.Index(i)
		field, err := models.ParseField(input.Call("getAttribute", views.FieldAttr).String())
		if err != nil {
			logger.Warn("skipping unknown form field", zap.Error(err))
			continue
		}
		b.listen(input, "input", func(this js.Value, args []js.Value) interface{} {
			if err := form.UpdateField(field, input.Get("value").String()); err != nil {
				logger.Warn("update rejected", zap.Error(err))
			}
			return nil
		})
	}

	b.listen(formEl, "submit", func(this js.Value, args []js.Value) interface{} {
		var ev contactform.Event
		if len(args) > 0 {
			ev = event{v: args[0]}
		}
		form.Submit(ev)
		syncInputs(inputs, form.Record())
		return nil
	})

	return b
}

// syncInputs writes the controller's record back into the rendered inputs
func syncInputs(inputs js.Value, record models.ContactFormRecord) {
	for i := 0; i < inputs.Length(); i++ {
		input := inputs.Index(i)
		field, err := models.ParseField(input.Call("getAttribute", views.FieldAttr).String())
		if err != nil {
			continue
		}
		value, _ := record.Get(field)
		input.Set("value", value)
	}
}
