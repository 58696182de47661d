package settings

import (
	"errors"
	"strings"
)

// StorageKey is the fixed key the settings blob is persisted under.
const StorageKey = "resumeAppSettings"

var (
	// ErrThresholdOrder: порог «excellent» должен быть строго выше порога «good».
	ErrThresholdOrder = errors.New("excellent threshold must be higher than good threshold")
	ErrItemsPerPage   = errors.New("items per page must be a positive number")
)

// Thresholds drive badge coloring of scored cards.
type Thresholds struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
}

// Settings: пользовательская конфигурация дашборда.
type Settings struct {
	ItemsPerPage    int        `json:"itemsPerPage"`
	DefaultSort     string     `json:"defaultSort"`
	ScoreThresholds Thresholds `json:"scoreThresholds"`
	DemoUpload      bool       `json:"demoUpload"`
	APIBaseURL      string     `json:"apiBaseUrl,omitempty"`
	APIToken        string     `json:"apiToken,omitempty"`
}

// Defaults returns the values every process starts with.
func Defaults() Settings {
	return Settings{
		ItemsPerPage: 12,
		// newest uploaded first
		DefaultSort: "date-desc",
		ScoreThresholds: Thresholds{
			Excellent: 85,
			Good:      70,
		},
		DemoUpload: true,
	}
}

// SortOption maps DefaultSort ("date-desc") to a sort select value ("date DESC").
// ok is false when the value is not in "<field>-<dir>" form.
func (s Settings) SortOption() (string, bool) {
	parts := strings.Split(strings.TrimSpace(s.DefaultSort), "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + " " + strings.ToUpper(parts[1]), true
}

// Edit is a partial update submitted by the user. Nil fields are left unchanged.
type Edit struct {
	ItemsPerPage *int    `json:"itemsPerPage,omitempty" form:"itemsPerPage"`
	DefaultSort  *string `json:"defaultSort,omitempty" form:"defaultSort"`
	Excellent    *int    `json:"excellent,omitempty" form:"excellent"`
	Good         *int    `json:"good,omitempty" form:"good"`
	DemoUpload   *bool   `json:"demoUpload,omitempty" form:"demoUpload"`
	APIBaseURL   *string `json:"apiBaseUrl,omitempty" form:"apiBaseUrl"`
	APIToken     *string `json:"apiToken,omitempty" form:"apiToken"`
}

// applyTo returns s with the edit merged in, validated the same way the settings form is.
func (e Edit) applyTo(s Settings) (Settings, error) {
	if e.ItemsPerPage != nil {
		if *e.ItemsPerPage <= 0 {
			return s, ErrItemsPerPage
		}
		s.ItemsPerPage = *e.ItemsPerPage
	}
	if e.DefaultSort != nil {
		s.DefaultSort = strings.TrimSpace(*e.DefaultSort)
	}
	if e.Excellent != nil {
		s.ScoreThresholds.Excellent = *e.Excellent
	}
	if e.Good != nil {
		s.ScoreThresholds.Good = *e.Good
	}
	if s.ScoreThresholds.Excellent <= s.ScoreThresholds.Good {
		return s, ErrThresholdOrder
	}
	if e.DemoUpload != nil {
		s.DemoUpload = *e.DemoUpload
	}
	if e.APIBaseURL != nil {
		s.APIBaseURL = strings.TrimRight(strings.TrimSpace(*e.APIBaseURL), "/")
	}
	if e.APIToken != nil {
		s.APIToken = strings.TrimSpace(*e.APIToken)
	}
	return s, nil
}
