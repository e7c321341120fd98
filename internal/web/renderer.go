package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/lifting"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// NavLink is one entry of the header or sidebar navigation.
type NavLink struct {
	Title  string
	Path   string
	Active bool
}

// RangeButton is one of the lifting page time window buttons.
type RangeButton struct {
	ID     string
	Label  string
	Window lifting.Window
	Style  lifting.ButtonStyle
}

type liftingView struct {
	Title    string
	Nav      []NavLink
	Palette  config.Palette
	Muscles  []string
	Selected map[string]bool
	Buttons  []RangeButton
	Initial  *lifting.CallbackResponse
}

// Renderer renders the page shells for the configured layout.
type Renderer struct {
	layout  string
	lifting *template.Template
}

func NewRenderer(layout string) (*Renderer, error) {
	if layout != config.LayoutSidebar {
		layout = config.LayoutHeader
	}

	liftingTmpl, err := template.New("lifting").
		Funcs(template.FuncMap{
			"json":  toJSON,
			"style": buttonStyle,
			"css":   trustedCSS,
		}).
		ParseFS(templatesFS, "templates/layout_"+layout+".html", "templates/lifting.html")
	if err != nil {
		return nil, fmt.Errorf("parse lifting templates [%s]: %w", layout, err)
	}

	return &Renderer{
		layout:  layout,
		lifting: liftingTmpl,
	}, nil
}

func (r *Renderer) Layout() string {
	return r.layout
}

func (r *Renderer) RenderLifting(w io.Writer, page lifting.PageData) error {
	view := liftingView{
		Title:    "Lifting",
		Nav:      navLinks("/lifting"),
		Palette:  page.Palette,
		Muscles:  page.Muscles,
		Selected: make(map[string]bool, len(page.Selected)),
		Initial:  page.Initial,
	}
	for _, m := range page.Selected {
		view.Selected[m] = true
	}

	active := lifting.DefaultWindow
	if page.Initial != nil {
		active = page.Initial.ActiveWindow
	}
	all, ytd, l6w := lifting.ButtonStyles(active, page.Palette.Active)
	view.Buttons = []RangeButton{
		{ID: string(lifting.TriggerAllButton), Label: "All Time", Window: lifting.WindowAll, Style: all},
		{ID: string(lifting.TriggerYTDButton), Label: "Year to Date", Window: lifting.WindowYTD, Style: ytd},
		{ID: string(lifting.TriggerL6WButton), Label: "Last 6 Weeks", Window: lifting.WindowL6W, Style: l6w},
	}

	return r.lifting.ExecuteTemplate(w, "layout", view)
}

// StaticHandler serves the embedded css and js under prefix.
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at build time, a missing dir is a programming error
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

func navLinks(activePath string) []NavLink {
	links := []NavLink{
		{Title: "Lifting", Path: "/lifting"},
		{Title: "Refresh status", Path: "/refresh/status"},
	}
	for i := range links {
		links[i].Active = links[i].Path == activePath
	}
	return links
}

func toJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// trustedCSS marks a configured color as safe for a style attribute.
func trustedCSS(s string) template.CSS {
	return template.CSS(s)
}

func buttonStyle(s lifting.ButtonStyle) template.CSS {
	parts := []string{"margin-right: " + s.MarginRight}
	if s.Color != "" {
		parts = append(parts, "color: "+s.Color)
	}
	if s.BorderColor != "" {
		parts = append(parts, "border-color: "+s.BorderColor)
	}
	return template.CSS(strings.Join(parts, "; "))
}
