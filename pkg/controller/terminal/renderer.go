package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/model"
)

// DefaultWidth is the column width used when the terminal size is unknown.
const DefaultWidth = 80

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	notice lipgloss.Color
}

var (
	darkPalette = palette{
		text:   lipgloss.Color("#F5F5F5"),
		muted:  lipgloss.Color("#A3A3A3"),
		accent: lipgloss.Color("#FFFFFF"),
		border: lipgloss.Color("#404040"),
		notice: lipgloss.Color("#FBBF24"),
	}
	lightPalette = palette{
		text:   lipgloss.Color("#171717"),
		muted:  lipgloss.Color("#525252"),
		accent: lipgloss.Color("#000000"),
		border: lipgloss.Color("#D4D4D4"),
		notice: lipgloss.Color("#B45309"),
	}
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	tag     lipgloss.Style
	card    lipgloss.Style
	notice  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, p palette, width int) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(p.accent),
		heading: r.NewStyle().Bold(true).Foreground(p.accent).MarginTop(1).Underline(true),
		text:    r.NewStyle().Foreground(p.text),
		muted:   r.NewStyle().Foreground(p.muted),
		tag:     r.NewStyle().Foreground(p.muted).Italic(true),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			Width(width - 2),
		notice: r.NewStyle().Foreground(p.notice),
	}
}

// Renderer draws a portfolio as styled text in the visitor's theme.
type Renderer struct {
	width int
}

type Option func(*Renderer)

func WithWidth(width int) Option {
	return func(x *Renderer) {
		if width > 20 {
			x.width = width
		}
	}
}

func New(options ...Option) *Renderer {
	r := &Renderer{width: DefaultWidth}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (x *Renderer) Render(w io.Writer, p *model.Portfolio) error {
	lr := lipgloss.NewRenderer(w)
	lr.SetHasDarkBackground(p.Preference.IsDark)

	pal := lightPalette
	if p.Preference.IsDark {
		pal = darkPalette
	}
	st := newStyles(lr, pal, x.width)

	var b strings.Builder
	if p.Profile != nil {
		renderProfile(&b, st, p.Profile)
	}

	section(&b, st, "Writing")
	if p.Notices.Articles != "" {
		b.WriteString(st.notice.Render(p.Notices.Articles) + "\n")
	}
	for _, article := range p.Articles {
		b.WriteString(st.card.Render(articleCard(st, article)) + "\n")
	}

	if p.Profile != nil && len(p.Profile.Experience) > 0 {
		section(&b, st, "Experience")
		for _, exp := range p.Profile.Experience {
			b.WriteString(st.card.Render(experienceCard(st, &exp)) + "\n")
		}
	}

	section(&b, st, "Projects")
	if p.Notices.Projects != "" {
		b.WriteString(st.notice.Render(p.Notices.Projects) + "\n")
	}
	for _, project := range p.Projects {
		b.WriteString(st.card.Render(projectCard(st, project)) + "\n")
	}

	if p.Profile != nil && len(p.Profile.Skills) > 0 {
		section(&b, st, "Skills")
		for _, group := range p.Profile.Skills {
			b.WriteString(st.title.Render(group.Group) + "  " + st.tag.Render(strings.Join(group.Items, " · ")) + "\n")
		}
	}

	if p.Profile != nil && (p.Profile.ContactEmail != "" || p.Profile.Phone != "") {
		section(&b, st, "Contact")
		if p.Profile.ContactEmail != "" {
			b.WriteString(st.text.Render("Email: "+p.Profile.ContactEmail.String()) + "\n")
		}
		if p.Profile.Phone != "" {
			b.WriteString(st.text.Render("Call/text: "+p.Profile.Phone) + "\n")
		}
	}

	b.WriteString("\n" + st.muted.Render(fmt.Sprintf("Theme: %s", p.Preference.Theme())) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write portfolio")
	}
	return nil
}

func section(b *strings.Builder, st styles, title string) {
	b.WriteString(st.heading.Render(title) + "\n")
}

func renderProfile(b *strings.Builder, st styles, profile *model.Profile) {
	b.WriteString(st.title.Render(profile.Name) + "\n")
	if profile.Headline != "" {
		b.WriteString(st.muted.Render(profile.Headline) + "\n")
	}
	var links []string
	for _, link := range profile.Links {
		links = append(links, link.Label+": "+link.URL)
	}
	if len(links) > 0 {
		b.WriteString(st.text.Render(strings.Join(links, "  ")) + "\n")
	}
}

func articleCard(st styles, card *model.ArticleCard) string {
	lines := []string{st.title.Render(card.Title)}

	meta := card.Published
	if len(card.Labels) > 0 {
		if meta != "" {
			meta += " · "
		}
		meta += strings.Join(card.Labels, ", ")
	}
	if meta != "" {
		lines = append(lines, st.tag.Render(meta))
	}
	if card.Excerpt != "" {
		lines = append(lines, st.text.Render(card.Excerpt))
	}
	if card.Cover != "" {
		lines = append(lines, st.muted.Render("Cover: "+card.Cover))
	}
	lines = append(lines, st.muted.Render(card.Link))
	return strings.Join(lines, "\n")
}

func experienceCard(st styles, exp *model.Experience) string {
	lines := []string{
		st.title.Render(exp.Role),
		st.muted.Render(exp.Company + " · " + exp.Period),
	}
	for _, sentence := range exp.Sentences {
		lines = append(lines, st.text.Render("• "+sentence))
	}
	return strings.Join(lines, "\n")
}

func projectCard(st styles, project *model.Project) string {
	header := st.title.Render(string(project.Name)) + " " + st.muted.Render(fmt.Sprintf("★ %d", project.StarCount))
	lines := []string{header}
	if project.Updated != "" {
		lines = append(lines, st.muted.Render("Updated "+project.Updated))
	}
	if len(project.Tags) > 0 {
		lines = append(lines, st.tag.Render(strings.Join(project.Tags, " · ")))
	}
	if project.Description != "" {
		lines = append(lines, st.text.Render(project.Description))
	}
	lines = append(lines, st.muted.Render(project.URL))
	return strings.Join(lines, "\n")
}
