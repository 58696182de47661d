// Package include fetches HTML fragments and splices them into page placeholders.
package include

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/artem13815/resumeboard/pkg/dom"
)

// Fetcher returns the raw bytes of a fragment path such as "includes/header.html".
type Fetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

// FSFetcher reads fragments from a file system, usually the embedded web assets.
type FSFetcher struct {
	FS fs.FS
}

func (f FSFetcher) Fetch(_ context.Context, src string) ([]byte, error) {
	return fs.ReadFile(f.FS, strings.TrimPrefix(src, "/"))
}

// HTTPFetcher downloads fragments relative to BaseURL.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (f HTTPFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	u := strings.TrimRight(f.BaseURL, "/") + "/" + strings.TrimPrefix(src, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: %d", src, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Include pairs a fragment with the id of the element it fills.
type Include struct {
	Src         string
	Placeholder string
}

// Page layout of the dashboard.
const (
	IndexSrc        = "index.html"
	CardTemplateSrc = "includes/templates/resume-card.html"
)

var PageIncludes = []Include{
	{Src: "includes/header.html", Placeholder: "header-placeholder"},
	{Src: "includes/settings.html", Placeholder: "settings-placeholder"},
	{Src: "includes/filterBar.html", Placeholder: "filterbar-placeholder"},
}

type Loader struct {
	fetch Fetcher
	log   logrus.FieldLogger
}

func New(f Fetcher, log logrus.FieldLogger) *Loader {
	return &Loader{fetch: f, log: log.WithField("component", "include")}
}

// Load fetches src and splices it into the element with id placeholderID.
// A fragment with exactly one top-level element replaces the placeholder;
// anything else becomes the placeholder's content. A missing placeholder is a no-op
// and fetch failures are logged. It reports whether the document changed.
func (l *Loader) Load(ctx context.Context, doc *html.Node, src, placeholderID string) bool {
	data, err := l.fetch.Fetch(ctx, src)
	if err != nil {
		l.log.WithError(err).WithField("src", src).Error("loadInclude error")
		return false
	}
	target := dom.FindByID(doc, placeholderID)
	if target == nil {
		l.log.WithField("placeholder", placeholderID).Debug("placeholder not found")
		return false
	}
	if err := Splice(target, data); err != nil {
		l.log.WithError(err).WithField("src", src).Error("loadInclude error")
		return false
	}
	return true
}

// Splice inserts fragment HTML at target following the single-root rule.
func Splice(target *html.Node, fragment []byte) error {
	ctxNode := target.Parent
	if ctxNode == nil || ctxNode.Type != html.ElementNode {
		ctxNode = dom.Element(atom.Body)
	}
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), ctxNode)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}

	var root *html.Node
	elements := 0
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements++
			root = n
		}
	}
	if elements == 1 && target.Parent != nil {
		target.Parent.InsertBefore(root, target)
		target.Parent.RemoveChild(target)
		return nil
	}
	dom.RemoveChildren(target)
	for _, n := range nodes {
		target.AppendChild(n)
	}
	return nil
}

// Bootstrap builds the dashboard document: index page, its includes and the card template.
// Only a missing index page is fatal; a missing card template falls back to the built-in one.
func (l *Loader) Bootstrap(ctx context.Context) (*dom.Page, error) {
	index, err := l.fetch.Fetch(ctx, IndexSrc)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", IndexSrc, err)
	}
	doc, err := dom.Parse(index)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", IndexSrc, err)
	}
	for _, inc := range PageIncludes {
		l.Load(ctx, doc, inc.Src, inc.Placeholder)
	}

	var tpl *dom.CardTemplate
	if data, err := l.fetch.Fetch(ctx, CardTemplateSrc); err != nil {
		l.log.WithError(err).Warn("card template not loaded, using fallback")
	} else if tpl, err = dom.NewCardTemplate(data); err != nil {
		l.log.WithError(err).Warn("card template invalid, using fallback")
		tpl = nil
	}
	return dom.NewPage(doc, tpl), nil
}
