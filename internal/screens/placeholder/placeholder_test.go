package placeholder

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hayakil/internal/content"
)

func TestPlaceholder(t *testing.T) {
	p := New("🔍 شجرة البحث الثنائية")

	if p.Title() != "🔍 شجرة البحث الثنائية" {
		t.Errorf("Title() = %q", p.Title())
	}
	if !strings.Contains(p.View(80, 20), content.UnderConstructionLabel) {
		t.Error("view should carry the under construction label")
	}
	if _, cmd := p.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("placeholder ignores keys")
	}
}
