package portfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandozarate/portfolio/internal/theme"
)

func TestProjectLookup(t *testing.T) {
	s := NewService(Default(""))

	p, err := s.Project("unexo")
	require.NoError(t, err)
	assert.Equal(t, "Unexo", p.Title)

	_, err = s.Project("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.Equal(t, []string{"unexo", "nodo"}, s.ProjectIDs())
}

func TestUnexoLinks(t *testing.T) {
	p, err := NewService(Default("")).Project("unexo")
	require.NoError(t, err)

	var active []Link
	for _, l := range p.Links {
		if l.Active() {
			active = append(active, l)
		}
	}
	require.Len(t, active, 2)
	assert.Equal(t, "Código Frontend", active[0].Label)
	assert.Equal(t, "https://github.com/FernandoAvZarate/unexo-showcase-frontend", active[0].Href)
	assert.Equal(t, "Proyecto en Figma", active[1].Label)
	assert.True(t, strings.HasPrefix(active[1].Href, "https://www.figma.com/"))
}

func TestLinkActive(t *testing.T) {
	assert.False(t, Link{Label: "Código Backend", Disabled: true}.Active())
	assert.False(t, Link{Label: "no href"}.Active())
	assert.False(t, Link{Label: "x", Href: "https://a", Disabled: true}.Active())
	assert.True(t, Link{Label: "x", Href: "https://a"}.Active())
}

func TestFeatureIDsUnique(t *testing.T) {
	for _, p := range Default("").Projects {
		seen := map[string]bool{}
		for _, id := range p.FeatureIDs() {
			assert.False(t, seen[id], "%s: duplicate feature %s", p.ID, id)
			seen[id] = true
		}
		assert.Len(t, seen, len(p.Features))
	}
}

func TestMediaSourceFollowsTheme(t *testing.T) {
	m := Media{Kind: Image, Illustration: theme.Unexo, Src: "ignored"}
	light, _ := theme.URL(theme.Light, theme.Unexo)
	dark, _ := theme.URL(theme.Dark, theme.Unexo)

	assert.Equal(t, light, m.Source(theme.Light))
	assert.Equal(t, dark, m.Source(theme.Dark))

	plain := Media{Kind: Video, Src: "https://cdn.example/v.mp4"}
	assert.Equal(t, plain.Src, plain.Source(theme.Dark))
}

func TestDefaultContactEmail(t *testing.T) {
	assert.Len(t, Default("").Contacts, 2)

	c := Default("me@example.com").Contacts
	require.Len(t, c, 3)
	assert.Equal(t, "mailto:me@example.com", c[2].Href)
	assert.Len(t, defaultContacts, 2, "Default must not grow the shared table")
}

func TestStatusHTMLOpensLinksInNewContext(t *testing.T) {
	out := string(Status{Text: "Visita [Unexo](https://www.unexoapp.com)."}.HTML())
	assert.Contains(t, out, `href="https://www.unexoapp.com"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `rel="noopener noreferrer"`)
}

func TestStatusHTMLDropsRawHTML(t *testing.T) {
	out := string(Status{Text: "hola <script>alert(1)</script>"}.HTML())
	assert.NotContains(t, out, "<script>")
}
