// Package filterbar binds the search, category and sort controls to the store.
package filterbar

import (
	"strings"
	"sync"

	"github.com/artem13815/resumeboard/pkg/settings"
	"github.com/artem13815/resumeboard/pkg/store"
)

// AllPositionsLabel is the label of the empty category option.
const AllPositionsLabel = "All Positions"

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Select is a drop-down control: its options and the selected value.
type Select struct {
	Options  []Option `json:"options"`
	Selected string   `json:"selected"`
}

func (s Select) has(v string) bool {
	for _, o := range s.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// lookup matches v against option values ignoring case and returns the option value.
func (s Select) lookup(v string) (string, bool) {
	for _, o := range s.Options {
		if strings.EqualFold(o.Value, v) {
			return o.Value, true
		}
	}
	return "", false
}

func (s Select) clone() Select {
	s.Options = append([]Option(nil), s.Options...)
	return s
}

// SortOptions is the fixed content of the sort control.
func SortOptions() []Option {
	return []Option{
		{Value: "", Label: "Default"},
		{Value: "date DESC", Label: "Newest first"},
		{Value: "date ASC", Label: "Oldest first"},
		{Value: "score DESC", Label: "Score: high to low"},
		{Value: "score ASC", Label: "Score: low to high"},
		{Value: "name ASC", Label: "Name: A-Z"},
		{Value: "name DESC", Label: "Name: Z-A"},
	}
}

// State is a snapshot of the three controls.
type State struct {
	Search   string `json:"search"`
	Category Select `json:"category"`
	Sort     Select `json:"sort"`
}

// Filter combines the controls into a store filter.
func (s State) Filter() store.Filter {
	return store.Filter{Search: s.Search, Category: s.Category.Selected, Sort: s.Sort.Selected}
}

type Bar struct {
	mu       sync.Mutex
	search   string
	category Select
	sort     Select

	store       *store.Store
	settings    *settings.Manager
	storeSub    int
	settingsSub int
}

// New attaches a bar to the store and, when sm is not nil, to settings.
// The sort control follows defaultSort only after a settings save; until then
// the board keeps insertion order.
func New(st *store.Store, sm *settings.Manager) *Bar {
	b := &Bar{
		store:    st,
		settings: sm,
		category: Select{Options: []Option{{Value: "", Label: AllPositionsLabel}}},
		sort:     Select{Options: SortOptions()},
	}
	b.storeSub = st.Subscribe(func(store.Event) { b.onItemsChanged() })
	if sm != nil {
		b.settingsSub = sm.Subscribe(b.onSettingsChanged)
	}
	b.onItemsChanged()
	return b
}

// Close detaches the bar from its sources.
func (b *Bar) Close() {
	b.store.Unsubscribe(b.storeSub)
	if b.settings != nil {
		b.settings.Unsubscribe(b.settingsSub)
	}
}

func (b *Bar) SetSearch(q string) {
	b.mu.Lock()
	b.search = q
	b.mu.Unlock()
	b.Apply()
}

// SetCategory selects a category or position; unknown values reset the control to "".
func (b *Bar) SetCategory(v string) {
	b.mu.Lock()
	b.category.Selected = selectable(b.category, v)
	b.mu.Unlock()
	b.Apply()
}

// SetSort selects a sort option; unknown values reset the control to "".
func (b *Bar) SetSort(v string) {
	b.mu.Lock()
	b.sort.Selected = selectable(b.sort, v)
	b.mu.Unlock()
	b.Apply()
}

// Set submits all three controls at once, the way a form post does.
func (b *Bar) Set(f store.Filter) {
	b.mu.Lock()
	b.search = f.Search
	b.category.Selected = selectable(b.category, f.Category)
	b.sort.Selected = selectable(b.sort, f.Sort)
	b.mu.Unlock()
	b.Apply()
}

// Apply re-reads every control and redraws the store's container.
func (b *Bar) Apply() {
	b.store.RenderCurrent(b.Filter())
}

func (b *Bar) Filter() store.Filter {
	return b.State().Filter()
}

func (b *Bar) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return State{
		Search:   b.search,
		Category: b.category.clone(),
		Sort:     b.sort.clone(),
	}
}

// Populate rebuilds the category control. Positions are preferred when any record has one;
// the current selection survives only if it is still offered.
func (b *Bar) Populate() {
	values := b.store.Positions()
	if len(values) == 0 {
		values = b.store.Categories()
	}
	opts := make([]Option, 0, len(values)+1)
	opts = append(opts, Option{Value: "", Label: AllPositionsLabel})
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.category.Options = opts
	if !b.category.has(b.category.Selected) {
		b.category.Selected = ""
	}
}

func (b *Bar) onItemsChanged() {
	b.Populate()
	b.Apply()
}

func (b *Bar) onSettingsChanged(s settings.Settings) {
	if opt, ok := s.SortOption(); ok {
		b.mu.Lock()
		if v, found := b.sort.lookup(opt); found {
			b.sort.Selected = v
		}
		b.mu.Unlock()
	}
	b.onItemsChanged()
}

// selectable returns the option matching v, ignoring case, or "" when there is none.
func selectable(s Select, v string) string {
	if s.has(v) {
		return v
	}
	if opt, ok := s.lookup(v); ok {
		return opt
	}
	return ""
}
