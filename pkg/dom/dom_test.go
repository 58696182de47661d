package dom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/artem13815/resumeboard/pkg/card"
	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/settings"
)

const tpl = `<template id="resume-card-template"><div id="resumeCard" class="card">
<img data-field="img" src="placeholder.png">
<span data-field="score" class="bg-white bg-red-500 text-red-600 rounded">Score</span>
<h3 data-field="name" id="n"></h3><p data-field="id"></p><p data-field="overview"></p><p data-field="categories"></p>
</div></template>`

func TestBindFillsFields(t *testing.T) {
	ct, err := NewCardTemplate([]byte(tpl))
	require.NoError(t, err)

	v := card.Render(resume.Record{ID: "X9", Image: "https://img/x.png", ImageAlt: "X", Overview: "Go dev",
		Categories: resume.Categories{"Go"}, Status: resume.StatusUploading}, settings.Defaults().ScoreThresholds)
	n := ct.Bind(v)

	assert.Equal(t, "X9", Attr(n, "data-resume-id"))
	assert.Equal(t, "uploading", Attr(n, "data-status"))
	assert.False(t, HasAttr(n, "id"))
	assert.Nil(t, Find(n, func(x *html.Node) bool { return HasAttr(x, "id") }))
	assert.Contains(t, Classes(n), "resume-card")

	img := Find(n, ByField("img"))
	assert.Equal(t, "https://img/x.png", Attr(img, "src"))
	assert.Equal(t, "X", Attr(img, "alt"))
	assert.Equal(t, "Unnamed", Text(Find(n, ByField("name"))))
	assert.Equal(t, "ID: X9", Text(Find(n, ByField("id"))))
	assert.Equal(t, "Go", Text(Find(n, ByField("categories"))))

	score := Find(n, ByField("score"))
	assert.Equal(t, "Score: N/A", Text(score))
	assert.Equal(t, []string{"bg-white", "rounded", "text-gray-700", "border-gray-300", "border-2"}, Classes(score))

	again := ct.Bind(v)
	var a, b bytes.Buffer
	require.NoError(t, Render(&a, n))
	require.NoError(t, Render(&b, again))
	assert.Equal(t, a.String(), b.String())
}

func TestApplyBadgeRecolors(t *testing.T) {
	ct, err := NewCardTemplate([]byte(tpl))
	require.NoError(t, err)
	score := 75
	v := card.Render(resume.Record{ID: "a", Score: &score}, settings.Thresholds{Excellent: 85, Good: 70})
	n := ct.Bind(v)
	s := Find(n, ByField("score"))
	assert.Equal(t, "good", Attr(s, "data-level"))

	v.Recolor(settings.Thresholds{Excellent: 70, Good: 50})
	ApplyBadge(s, v.Badge)
	assert.Equal(t, "excellent", Attr(s, "data-level"))
	assert.Contains(t, Classes(s), "text-green-700")
	assert.NotContains(t, Classes(s), "text-yellow-700")
}

func TestFallbackTemplate(t *testing.T) {
	n := FallbackCardTemplate().Bind(card.View{ID: "z", Name: "Zed", ScoreLabel: "Score: 1%"})
	assert.Equal(t, "Zed", Text(Find(n, ByField("name"))))

	_, err := NewCardTemplate([]byte("just text"))
	assert.ErrorIs(t, err, ErrNoCardRoot)
}

func TestPageSkipsMissingElements(t *testing.T) {
	doc, err := Parse([]byte(`<html><body><div id="resume-container"><p>stale</p></div></body></html>`))
	require.NoError(t, err)
	p := NewPage(doc, nil)

	out := p.Build(PageState{Cards: []card.View{{ID: "1"}, {ID: "2"}}})
	c := FindByID(out, ContainerID)
	assert.Len(t, FindAll(c, func(x *html.Node) bool { return HasAttr(x, "data-resume-id") }), 2)
	assert.Equal(t, "stale", Text(FindByID(doc, ContainerID)))
}
