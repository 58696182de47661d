package dom

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/artem13815/resumeboard/pkg/card"
	"github.com/artem13815/resumeboard/pkg/filterbar"
	"github.com/artem13815/resumeboard/pkg/settings"
)

// Element ids the page binds to.
const (
	SearchID    = "search"
	CategoryID  = "category"
	SortID      = "sort"
	ContainerID = "resume-container"
	FlashID     = "flash"
	CountID     = "resume-count"
)

// PageState is everything one page render shows.
type PageState struct {
	Filters  filterbar.State
	Settings settings.Settings
	Cards    []card.View
	Total    int
	Flash    string
}

// Page renders the bootstrapped document with the current state.
// Elements missing from the document are skipped.
type Page struct {
	base *html.Node
	card *CardTemplate
}

func NewPage(base *html.Node, tpl *CardTemplate) *Page {
	if tpl == nil {
		tpl = FallbackCardTemplate()
	}
	return &Page{base: base, card: tpl}
}

// Build returns a fresh document for st; the base document is left untouched.
func (p *Page) Build(st PageState) *html.Node {
	doc := Clone(p.base)

	if n := FindByID(doc, SearchID); n != nil {
		SetAttr(n, "value", st.Filters.Search)
	}
	if n := FindByID(doc, CategoryID); n != nil {
		fillSelect(n, st.Filters.Category)
	}
	if n := FindByID(doc, SortID); n != nil {
		fillSelect(n, st.Filters.Sort)
	}
	bindSettings(doc, st.Settings)

	if n := FindByID(doc, FlashID); n != nil {
		SetText(n, st.Flash)
		SetBool(n, "hidden", st.Flash == "")
	}
	if n := FindByID(doc, CountID); n != nil {
		SetText(n, strconv.Itoa(len(st.Cards))+" of "+strconv.Itoa(st.Total))
	}
	if n := FindByID(doc, ContainerID); n != nil {
		RemoveChildren(n)
		for _, v := range st.Cards {
			n.AppendChild(p.card.Bind(v))
		}
	}
	return doc
}

func (p *Page) Render(w io.Writer, st PageState) error {
	return Render(w, p.Build(st))
}

func fillSelect(sel *html.Node, s filterbar.Select) {
	RemoveChildren(sel)
	for _, o := range s.Options {
		opt := Element(atom.Option, html.Attribute{Key: "value", Val: o.Value})
		SetBool(opt, "selected", o.Value == s.Selected)
		SetText(opt, o.Label)
		sel.AppendChild(opt)
	}
}

func bindSettings(doc *html.Node, s settings.Settings) {
	setValue(doc, "settings-items-per-page", strconv.Itoa(s.ItemsPerPage))
	setValue(doc, "settings-default-sort", s.DefaultSort)
	setValue(doc, "settings-excellent-threshold", strconv.Itoa(s.ScoreThresholds.Excellent))
	setValue(doc, "settings-good-threshold", strconv.Itoa(s.ScoreThresholds.Good))
	// fair is everything below good
	setValue(doc, "settings-fair-threshold", strconv.Itoa(s.ScoreThresholds.Good))
	setValue(doc, "settings-api-base-url", s.APIBaseURL)
	if n := FindByID(doc, "settings-demo-upload"); n != nil {
		SetBool(n, "checked", s.DemoUpload)
	}
}

// setValue sets an input's value or selects the matching option of a select.
func setValue(doc *html.Node, id, val string) {
	n := FindByID(doc, id)
	if n == nil {
		return
	}
	if n.DataAtom != atom.Select {
		SetAttr(n, "value", val)
		return
	}
	for _, opt := range FindAll(n, ByTag(atom.Option)) {
		SetBool(opt, "selected", Attr(opt, "value") == val)
	}
}
