package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"recon-landing/pkg/content"
	"recon-landing/pkg/models"
	"recon-landing/pkg/navigator"
)

// scrollLink renders an in-page anchor that the client turns into a smooth scroll.
// Without the client the plain #fragment still jumps to the section.
func scrollLink(target navigator.Target, class string, children ...g.Node) g.Node {
	return A(
		g.If(class != "", Class(class)),
		Href("#"+string(target)),
		g.Attr(ScrollTargetAttr, string(target)),
		g.Group(children),
	)
}

func sectionHeader(eyebrow, title string, body ...g.Node) g.Node {
	return Div(Class("section-header"),
		Span(Class("eyebrow"), g.Text(eyebrow)),
		H2(g.Text(title)),
		g.Group(body),
	)
}

// Navigation renders the brand link and the section menu
func Navigation() g.Node {
	return Nav(Class("nav"),
		scrollLink(content.HomeTarget, "brand", g.Text(content.Brand)),
		Div(Class("nav-links"),
			g.Group(g.Map(content.NavItems, func(item content.NavItem) g.Node {
				class := ""
				if item.IsCta {
					class = "nav-cta"
				}
				return scrollLink(item.Target, class, g.Text(item.Label))
			})),
		),
	)
}

// Hero renders the header banner with navigation and call-to-action links
func Hero() g.Node {
	return Header(Class("hero"), ID(string(content.HomeTarget)),
		Navigation(),
		Div(Class("hero-content"),
			Div(Class("hero-text"),
				Span(Class("eyebrow"), g.Text("Reciclaje Circular de Hormigón")),
				H1(g.Text("Transformamos Hormigón en Futuro Sostenible")),
				P(g.Text("Reciclaje avanzado de hormigón con biocarbonatación y carbonatación acelerada. "+
					"Reducimos el impacto ambiental y cerramos el ciclo de la construcción.")),
				Div(Class("hero-actions"),
					scrollLink("servicios", "btn primary", g.Text("Conoce Nuestros Servicios")),
					scrollLink("contacto", "btn secondary", g.Text("Contáctanos")),
				),
			),
			Div(Class("hero-image"),
				Img(Src(content.HeroImage), Alt("Planta de procesamiento de hormigón reciclado")),
			),
		),
	)
}

// Innovation renders the process highlights section
func Innovation() g.Node {
	return Section(Class("section innovation"), ID("innovacion"),
		sectionHeader("Innovación en Reciclaje de Hormigón", "Nuestro Proceso Tecnológico",
			P(g.Text("Aplicamos técnicas avanzadas de biocarbonatación y carbonatación acelerada con CO₂ "+
				"para mejorar las propiedades mecánicas del árido reciclado y capturar emisiones de "+
				"carbono en el proceso. Este proceso innovador permite que el material cumpla con los "+
				"estándares más exigentes de la industria de la construcción, ofreciendo una "+
				"alternativa competitiva y sostenible.")),
		),
		Div(Class("innovation-grid"),
			Div(Class("innovation-image"),
				Img(Src(content.AggregateImage), Alt("Áridos reciclados con certificación")),
			),
			Div(Class("cards-grid"),
				g.Group(g.Map(content.ProcessHighlights, func(item content.ProcessHighlight) g.Node {
					return Article(Class("card"),
						H3(g.Text(item.Title)),
						P(g.Text(item.Description)),
					)
				})),
			),
		),
	)
}

// Services renders one card per service section
func Services() g.Node {
	return Section(Class("section services"), ID("servicios"),
		sectionHeader("Nuestros Servicios",
			"Ofrecemos un servicio integral desde la recolección hasta la entrega del material certificado"),
		Div(Class("service-columns"),
			g.Group(g.Map(content.ServiceSections, func(s content.ServiceSection) g.Node {
				return Article(Class("service-card"), ID(string(s.ID)),
					H3(g.Text(s.Title)),
					P(Class("service-description"), g.Text(s.Description)),
					Ul(g.Group(g.Map(s.Features, func(f string) g.Node {
						return Li(g.Text(f))
					}))),
				)
			})),
		),
	)
}

// Impact renders the metrics grid and the benefits list
func Impact() g.Node {
	return Section(Class("section impact"), ID("impacto"),
		sectionHeader("Impacto Ambiental",
			"Contribuimos activamente a la reducción del impacto ambiental de la industria de la construcción"),
		Div(Class("impact-content"),
			Div(Class("metrics-grid"),
				g.Group(g.Map(content.ImpactMetrics, func(m content.ImpactMetric) g.Node {
					return Article(Class("metric-card"),
						H3(g.Text(m.Title)),
						P(g.Text(m.Description)),
					)
				})),
			),
			Div(Class("benefits"),
				H3(g.Text("Beneficios de Trabajar con ReCon")),
				Ul(g.Group(g.Map(content.ImpactBenefits, func(b string) g.Node {
					return Li(g.Text(b))
				}))),
			),
		),
	)
}

// Contact renders the contact cards and the form. The form values come from
// record so a server render always reflects the controller's current state.
func Contact(record models.ContactFormRecord) g.Node {
	return Section(Class("section contact"), ID("contacto"),
		sectionHeader("Contáctanos",
			"¿Tienes un proyecto? Hablemos sobre cómo podemos ayudarte con soluciones sostenibles"),
		Div(Class("contact-grid"),
			Div(Class("contact-cards"),
				g.Group(g.Map(content.ContactCards, func(card content.ContactCard) g.Node {
					return Article(Class("contact-card"),
						H3(g.Text(card.Title)),
						g.Group(g.Map(card.Lines, func(line string) g.Node {
							return P(g.Text(line))
						})),
					)
				})),
			),
			g.El("form", Class("contact-form"), ID(ContactFormID),
				H3(g.Text("Envíanos un mensaje")),
				g.Group(g.Map(models.Fields(), func(f models.Field) g.Node {
					value, _ := record.Get(f)
					return formGroup(f, value)
				})),
				Button(Class("btn primary"), Type("submit"), g.Text("Enviar Mensaje")),
			),
		),
	)
}

func formGroup(field models.Field, value string) g.Node {
	info := content.FormFields[field]
	attrs := []g.Node{
		ID(string(field)),
		Name(string(field)),
		Placeholder(info.Placeholder),
		g.Attr(FieldAttr, string(field)),
		g.If(field.Required(), Required()),
	}

	var input g.Node
	if info.Multiline {
		input = Textarea(g.Group(attrs), g.Text(value))
	} else {
		input = Input(Type(info.Type), Value(value), g.Group(attrs))
	}

	return Div(Class("form-group"),
		g.El("label", g.Attr("for", string(field)), g.Text(info.Label)),
		input,
	)
}

// PageFooter renders the footer link columns and the copyright line for year
func PageFooter(year int) g.Node {
	return Footer(Class("footer"),
		Div(Class("footer-main"),
			Div(Class("footer-brand"),
				Span(Class("footer-logo"), g.Text(content.Brand)),
				P(g.Text("Innovación ambiental que convierte residuos de hormigón en materiales de "+
					"construcción sostenibles.")),
			),
			Div(Class("footer-links"),
				g.Group(g.Map(content.FooterColumns, func(col content.FooterColumn) g.Node {
					return Div(Class("footer-column"),
						H4(g.Text(col.Heading)),
						Ul(g.Group(g.Map(col.Links, func(link content.FooterLink) g.Node {
							return Li(A(Href(link.Href), g.Text(link.Label)))
						}))),
					)
				})),
			),
		),
		Div(Class("footer-bottom"),
			P(g.Textf("© %d %s. Todos los derechos reservados.", year, content.BrandLong)),
		),
	)
}

// LandingPage assembles the full page
func LandingPage(cfg PageConfig, record models.ContactFormRecord) g.Node {
	return Layout(cfg,
		Hero(),
		Main(
			Innovation(),
			Services(),
			Impact(),
			Contact(record),
		),
		PageFooter(cfg.Year),
	)
}
