// Package card maps a resume record to the view model of one dashboard card.
// Nothing here touches the store or the page: binding to markup happens in pkg/dom.
package card

import (
	"fmt"

	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/settings"
)

// UnnamedPlaceholder is shown when a record carries no name.
const UnnamedPlaceholder = "Unnamed"

// ThresholdSource supplies the badge thresholds at render time.
type ThresholdSource interface {
	Thresholds() settings.Thresholds
}

// View: всё, что нужно шаблону карточки.
type View struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	IDLabel    string        `json:"idLabel"`
	Overview   string        `json:"overview"`
	Categories string        `json:"categories"`
	Position   string        `json:"position,omitempty"`
	Image      string        `json:"image,omitempty"`
	ImageAlt   string        `json:"imageAlt,omitempty"`
	Score      *int          `json:"score"`
	ScoreLabel string        `json:"scoreLabel"`
	Status     resume.Status `json:"status,omitempty"`
	Badge      Badge         `json:"badge"`
}

// Recolor recomputes the badge for an already rendered card.
func (v *View) Recolor(th settings.Thresholds) {
	v.Badge = BadgeFor(v.Score, th)
}

// Render is a pure function of the record and the thresholds; r is not modified.
func Render(r resume.Record, th settings.Thresholds) View {
	v := View{
		ID:         r.ID,
		Name:       r.Name,
		Overview:   r.Overview,
		Categories: r.Categories.Display(),
		Image:      r.Image,
		ImageAlt:   r.ImageAlt,
		Status:     r.Status,
		ScoreLabel: "Score: N/A",
	}
	if v.Name == "" {
		v.Name = UnnamedPlaceholder
	}
	if r.ID != "" {
		v.IDLabel = "ID: " + r.ID
	}
	if r.Position != nil {
		v.Position = *r.Position
	}
	if r.Score != nil {
		s := Clamp(*r.Score)
		v.Score = &s
		v.ScoreLabel = fmt.Sprintf("Score: %d%%", *r.Score)
	}
	v.Badge = BadgeFor(v.Score, th)
	return v
}

// Renderer binds Render to a live threshold source. Thresholds are read on every
// call, never cached.
type Renderer struct {
	src ThresholdSource
}

func NewRenderer(src ThresholdSource) *Renderer { return &Renderer{src: src} }

func (r *Renderer) Render(rec resume.Record) View {
	th := settings.Defaults().ScoreThresholds
	if r != nil && r.src != nil {
		th = r.src.Thresholds()
	}
	return Render(rec, th)
}
