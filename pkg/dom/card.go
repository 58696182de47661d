package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/artem13815/resumeboard/pkg/card"
)

// fallbackCard is used when no card template could be loaded.
const fallbackCard = `<div class="resume-card p-4 bg-white rounded shadow">
<img data-field="img" alt="">
<span data-field="score" class="bg-white"></span>
<h3 data-field="name"></h3>
<p data-field="id"></p>
<p data-field="overview"></p>
<p data-field="categories"></p>
</div>`

var ErrNoCardRoot = errors.New("card template has no element")

// CardTemplate clones a card element and fills its data-field markers.
type CardTemplate struct {
	root *html.Node
}

// NewCardTemplate picks the card root from a fragment: the first element of a
// <template>, else #resumeCard-wrapper, else #resumeCard, else the first element.
func NewCardTemplate(fragment []byte) (*CardTemplate, error) {
	body := Element(atom.Body)
	nodes, err := html.ParseFragment(strings.NewReader(string(fragment)), body)
	if err != nil {
		return nil, fmt.Errorf("parse card template: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	var root *html.Node
	if tpl := Find(body, ByTag(atom.Template)); tpl != nil {
		root = FirstElement(tpl)
	}
	if root == nil {
		root = FindByID(body, "resumeCard-wrapper")
	}
	if root == nil {
		root = FindByID(body, "resumeCard")
	}
	if root == nil {
		root = FirstElement(body)
	}
	if root == nil {
		return nil, ErrNoCardRoot
	}
	return &CardTemplate{root: Clone(root)}, nil
}

// FallbackCardTemplate is a minimal built-in card.
func FallbackCardTemplate() *CardTemplate {
	t, err := NewCardTemplate([]byte(fallbackCard))
	if err != nil {
		panic(err)
	}
	return t
}

// Bind returns a fresh card node for v. The template is not modified.
func (t *CardTemplate) Bind(v card.View) *html.Node {
	n := Clone(t.root)
	for _, x := range FindAll(n, func(x *html.Node) bool { return x.Type == html.ElementNode && HasAttr(x, "id") }) {
		RemoveAttr(x, "id")
	}
	AddClass(n, "resume-card")
	SetAttr(n, "data-resume-id", v.ID)
	if v.Status != "" {
		SetAttr(n, "data-status", string(v.Status))
	}

	if img := Find(n, ByField("img")); img != nil {
		if v.Image != "" {
			SetAttr(img, "src", v.Image)
		}
		if v.ImageAlt != "" {
			SetAttr(img, "alt", v.ImageAlt)
		}
	}
	if s := Find(n, ByField("score")); s != nil {
		SetText(s, v.ScoreLabel)
		ApplyBadge(s, v.Badge)
	}
	setField(n, "name", v.Name)
	setField(n, "id", v.IDLabel)
	setField(n, "overview", v.Overview)
	setField(n, "categories", v.Categories)
	return n
}

// ApplyBadge drops any previous bg-/text-/border- classes (bg-white stays) and adds the badge's.
func ApplyBadge(n *html.Node, b card.Badge) {
	kept := make([]string, 0, 4)
	for _, c := range Classes(n) {
		if c != "bg-white" && (strings.HasPrefix(c, "bg-") || strings.HasPrefix(c, "text-") || strings.HasPrefix(c, "border-")) {
			continue
		}
		kept = append(kept, c)
	}
	SetClasses(n, kept)
	AddClass(n, b.Classes()...)
	SetAttr(n, "data-level", string(b.Level))
}

func setField(n *html.Node, field, text string) {
	if x := Find(n, ByField(field)); x != nil {
		SetText(x, text)
	}
}
