package content

import (
	"testing"

	"recon-landing/pkg/models"
)

func TestTargetsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, target := range Targets() {
		if target == "" {
			t.Error("empty target")
		}
		if seen[string(target)] {
			t.Errorf("duplicate target %q", target)
		}
		seen[string(target)] = true
	}
}

func TestFooterAnchorsPointAtTargets(t *testing.T) {
	known := map[string]bool{}
	for _, target := range Targets() {
		known["#"+string(target)] = true
	}
	for _, col := range FooterColumns {
		for _, link := range col.Links {
			if link.Href[0] != '#' {
				continue
			}
			if !known[link.Href] {
				t.Errorf("footer link %q points at unknown section %s", link.Label, link.Href)
			}
		}
	}
}

func TestEveryFieldHasRenderInfo(t *testing.T) {
	for _, f := range models.Fields() {
		info, ok := FormFields[f]
		if !ok {
			t.Fatalf("no render info for %s", f)
		}
		if info.Label == "" || info.Placeholder == "" {
			t.Errorf("incomplete render info for %s: %+v", f, info)
		}
	}
}
