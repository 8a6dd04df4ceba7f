// Package content holds the static copy rendered on the ReCon landing page.
package content

import (
	"recon-landing/pkg/models"
	"recon-landing/pkg/navigator"
)

const (
	Brand          = "ReCon"
	BrandLong      = "ReCon - Recycled Concrete"
	HomeTarget     = navigator.Target("inicio")
	HeroImage      = "https://recon-circular-concrete.lovable.app/assets/process-plant-BCt89j0G.jpg"
	AggregateImage = "https://images.unsplash.com/photo-1503389152951-9f343605f61e?auto=format&fit=crop&w=1200&q=80"
)

type NavItem struct {
	Label  string
	Target navigator.Target
	IsCta  bool
}

type ProcessHighlight struct {
	Title       string
	Description string
}

type ServiceSection struct {
	ID          navigator.Target
	Title       string
	Description string
	Features    []string
}

type ImpactMetric struct {
	Title       string
	Description string
}

type ContactCard struct {
	Title string
	Lines []string
}

type FooterLink struct {
	Label string
	Href  string
}

type FooterColumn struct {
	Heading string
	Links   []FooterLink
}

var NavItems = []NavItem{
	{Label: "Innovación", Target: "innovacion"},
	{Label: "Servicios", Target: "servicios"},
	{Label: "Impacto", Target: "impacto"},
	{Label: "Contáctanos", Target: "contacto", IsCta: true},
}

var ProcessHighlights = []ProcessHighlight{
	{
		Title:       "Economía Circular",
		Description: "Convertimos residuos de hormigón en áridos reciclados de alta calidad",
	},
	{
		Title:       "Captura de CO₂",
		Description: "Utilizamos carbonatación acelerada para reducir emisiones",
	},
	{
		Title:       "Certificación NCh 163:2024",
		Description: "Material certificado para uso en hormigones estructurales",
	},
	{
		Title:       "Proceso Innovador",
		Description: "Tecnología de biocarbonatación de última generación",
	},
}

var ServiceSections = []ServiceSection{
	{
		ID:          "recoleccion",
		Title:       "Recolección y Recepción",
		Description: "Retiramos o recibimos escombros de hormigón directamente desde tus obras o demoliciones",
		Features: []string{
			"Servicio de recolección en obra",
			"Recepción en planta",
			"Gestión de documentación",
			"Trazabilidad completa",
		},
	},
	{
		ID:          "procesamiento",
		Title:       "Procesamiento en Planta",
		Description: "Transformamos el hormigón en áridos reciclados mediante tecnología avanzada",
		Features: []string{
			"Trituración y clasificación",
			"Biocarbonatación",
			"Carbonatación acelerada con CO₂",
			"Control de calidad continuo",
		},
	},
	{
		ID:          "certificacion",
		Title:       "Certificación y Entrega",
		Description: "Material certificado NCh 163:2024 listo para usar en hormigones estructurales",
		Features: []string{
			"Certificación según norma chilena",
			"Análisis de laboratorio",
			"Despacho a obra",
			"Soporte técnico",
		},
	},
}

var ImpactMetrics = []ImpactMetric{
	{Title: "100% Hormigón Reciclado", Description: "Transformamos todos los residuos en material útil"},
	{Title: "60% Reducción de CO₂", Description: "Comparado con áridos naturales"},
	{Title: "NCh 163:2024 Certificación", Description: "Cumple normas chilenas de calidad"},
	{Title: "0 Residuos al Vertedero", Description: "Economía circular completa"},
}

var ImpactBenefits = []string{
	"Reducción del impacto ambiental de la construcción",
	"Disminución de la extracción de áridos naturales",
	"Captura y reutilización de CO₂ industrial",
	"Solución competitiva en precio y calidad",
	"Contribución a certificaciones ambientales (LEED, CES)",
	"Cumplimiento de normativas de economía circular",
}

var ContactCards = []ContactCard{
	{Title: "Email", Lines: []string{"contacto@recon.cl", "ventas@recon.cl"}},
	{Title: "Teléfono", Lines: []string{"+56 2 2XXX XXXX", "+56 9 XXXX XXXX"}},
	{Title: "Ubicación", Lines: []string{"Santiago, Chile", "Región Metropolitana"}},
	{Title: "Horario de Atención", Lines: []string{"Lunes a Viernes: 8:00 - 18:00", "Sábados: 9:00 - 14:00"}},
}

var FooterColumns = []FooterColumn{
	{
		Heading: "Empresa",
		Links: []FooterLink{
			{Label: "Nosotros", Href: "#innovacion"},
			{Label: "Servicios", Href: "#servicios"},
			{Label: "Impacto", Href: "#impacto"},
		},
	},
	{
		Heading: "Servicios",
		Links: []FooterLink{
			{Label: "Recolección de Escombros", Href: "#recoleccion"},
			{Label: "Procesamiento de Hormigón", Href: "#procesamiento"},
			{Label: "Áridos Reciclados", Href: "#servicios"},
			{Label: "Certificación NCh 163:2024", Href: "#certificacion"},
		},
	},
	{
		Heading: "Contacto",
		Links: []FooterLink{
			{Label: "contacto@recon.cl", Href: "mailto:contacto@recon.cl"},
			{Label: "+56 2 2XXX XXXX", Href: "tel:+5622000000"},
			{Label: "Santiago, Chile", Href: "#contacto"},
		},
	},
}

// FormField describes how one contact form input is rendered
type FormField struct {
	Label       string
	Type        string
	Placeholder string
	Multiline   bool
}

// FormFields maps each contact field to its label, input type and placeholder
var FormFields = map[models.Field]FormField{
	models.FieldName:    {Label: "Nombre", Type: "text", Placeholder: "Nombre completo"},
	models.FieldEmail:   {Label: "Email", Type: "email", Placeholder: "correo@empresa.com"},
	models.FieldCompany: {Label: "Empresa", Type: "text", Placeholder: "Nombre de la empresa"},
	models.FieldMessage: {Label: "Mensaje", Placeholder: "Cuéntanos sobre tu proyecto", Multiline: true},
}

// Targets returns every section id the page exposes for navigation
func Targets() []navigator.Target {
	targets := []navigator.Target{HomeTarget}
	for _, item := range NavItems {
		targets = append(targets, item.Target)
	}
	for _, s := range ServiceSections {
		targets = append(targets, s.ID)
	}
	return targets
}
