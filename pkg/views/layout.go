// Package views renders the landing page markup with gomponents.
package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ScrollTargetAttr marks links the browser client binds to the section navigator
const ScrollTargetAttr = "data-scroll-target"

// FieldAttr marks inputs the browser client binds to the contact form controller
const FieldAttr = "data-field"

// ContactFormID is the id of the contact <form>
const ContactFormID = "contact-form"

// PageConfig carries the per-deployment values of the page shell
type PageConfig struct {
	Title       string
	Description string
	Year        int
	// Stylesheet is optional. An empty value renders no <link>.
	Stylesheet string
	// StaticPrefix is where wasm_exec.js and app.wasm are served from.
	// An empty value renders the page without the browser client.
	StaticPrefix string
}

// Layout wraps body nodes in the html document shell
func Layout(cfg PageConfig, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("es"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(cfg.Title)),
				g.If(cfg.Description != "", Meta(Name("description"), Content(cfg.Description))),
				g.If(cfg.Stylesheet != "", Link(Rel("stylesheet"), Href(cfg.Stylesheet))),
			),
			Body(
				Div(Class("app"), g.Group(body)),
				g.If(cfg.StaticPrefix != "", clientScripts(cfg.StaticPrefix)),
			),
		),
	)
}

func clientScripts(prefix string) g.Node {
	return g.Group([]g.Node{
		Script(Src(prefix + "/wasm_exec.js")),
		Script(g.Raw(`const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + prefix + `/app.wasm"), go.importObject)
  .then((result) => go.run(result.instance));`)),
	})
}
