package navigator

import (
	"testing"
)

type fakeElement struct {
	calls []ScrollOptions
}

func (e *fakeElement) ScrollIntoView(opts ScrollOptions) {
	e.calls = append(e.calls, opts)
}

type fakeDocument struct {
	elements map[string]*fakeElement
	lookups  []string
}

func (d *fakeDocument) ElementByID(id string) (Element, bool) {
	d.lookups = append(d.lookups, id)
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func TestScrollToExistingTarget(t *testing.T) {
	servicios := &fakeElement{}
	contacto := &fakeElement{}
	doc := &fakeDocument{elements: map[string]*fakeElement{
		"servicios": servicios,
		"contacto":  contacto,
	}}

	New(doc, nil).ScrollTo("servicios")

	if len(servicios.calls) != 1 {
		t.Fatalf("expected exactly 1 scroll call, got %d", len(servicios.calls))
	}
	want := ScrollOptions{Behavior: "smooth", Block: "start"}
	if servicios.calls[0] != want {
		t.Errorf("scroll options: got %+v, want %+v", servicios.calls[0], want)
	}
	if len(contacto.calls) != 0 {
		t.Errorf("expected no scroll on other elements, got %d", len(contacto.calls))
	}
}

func TestScrollToMissingTarget(t *testing.T) {
	servicios := &fakeElement{}
	doc := &fakeDocument{elements: map[string]*fakeElement{"servicios": servicios}}

	New(doc, nil).ScrollTo("no-such-id")

	if len(servicios.calls) != 0 {
		t.Errorf("expected no scroll calls, got %d", len(servicios.calls))
	}
	if len(doc.lookups) != 1 || doc.lookups[0] != "no-such-id" {
		t.Errorf("expected one lookup of no-such-id, got %v", doc.lookups)
	}
}

func TestScrollToWithoutDocument(t *testing.T) {
	// must not panic
	New(nil, nil).ScrollTo("servicios")

	var n *Navigator
	n.ScrollTo("servicios")
}
