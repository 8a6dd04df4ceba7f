package views

import (
	"strings"
	"testing"

	"recon-landing/pkg/content"
	"recon-landing/pkg/models"
)

func render(t *testing.T, cfg PageConfig, record models.ContactFormRecord) string {
	t.Helper()
	out, err := Render(cfg, record)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(out)
}

func TestLandingPageHasEverySection(t *testing.T) {
	html := render(t, PageConfig{Title: "ReCon", Year: 2026}, models.ContactFormRecord{})

	if !strings.HasPrefix(html, "<!doctype html>") {
		t.Errorf("expected doctype prefix, got %q", html[:20])
	}
	for _, target := range content.Targets() {
		if !strings.Contains(html, `id="`+string(target)+`"`) {
			t.Errorf("missing element with id %q", target)
		}
	}
	if !strings.Contains(html, "© 2026 ReCon - Recycled Concrete. Todos los derechos reservados.") {
		t.Error("missing footer copyright line")
	}
}

func TestNavLinksCarryScrollTargets(t *testing.T) {
	html := render(t, PageConfig{Year: 2026}, models.ContactFormRecord{})

	for _, item := range content.NavItems {
		want := `href="#` + string(item.Target) + `" data-scroll-target="` + string(item.Target) + `"`
		if !strings.Contains(html, want) {
			t.Errorf("nav item %q: missing %s", item.Label, want)
		}
	}
	if !strings.Contains(html, `class="nav-cta"`) {
		t.Error("missing nav CTA class")
	}
}

func TestContactFormFields(t *testing.T) {
	html := render(t, PageConfig{Year: 2026}, models.ContactFormRecord{Name: "Ana", Message: "Hola"})

	for _, f := range models.Fields() {
		if !strings.Contains(html, `data-field="`+string(f)+`"`) {
			t.Errorf("missing bound input for %s", f)
		}
	}
	if got := strings.Count(html, " required"); got != len(models.RequiredFields()) {
		t.Errorf("expected %d required inputs, got %d", len(models.RequiredFields()), got)
	}
	if !strings.Contains(html, `value="Ana"`) {
		t.Error("name value not rendered")
	}
	if !strings.Contains(html, ">Hola</textarea>") {
		t.Error("message value not rendered")
	}
	if !strings.Contains(html, `id="`+ContactFormID+`"`) {
		t.Error("missing contact form id")
	}
}

func TestClientScriptsOptional(t *testing.T) {
	without := render(t, PageConfig{Year: 2026}, models.ContactFormRecord{})
	if strings.Contains(without, "wasm_exec.js") {
		t.Error("client scripts rendered without a static prefix")
	}

	with := render(t, PageConfig{Year: 2026, StaticPrefix: "/static"}, models.ContactFormRecord{})
	if !strings.Contains(with, `src="/static/wasm_exec.js"`) || !strings.Contains(with, "/static/app.wasm") {
		t.Error("client scripts missing with static prefix")
	}
}

func TestUserInputIsEscaped(t *testing.T) {
	html := render(t, PageConfig{Year: 2026}, models.ContactFormRecord{Company: `"><script>x</script>`})
	if strings.Contains(html, "<script>x</script>") {
		t.Error("form value was not escaped")
	}
}
