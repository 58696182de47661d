package resume

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Status: стадия жизненного цикла записи, загружаемой асинхронно.
type Status string

const (
	StatusUploading Status = "uploading"
	StatusReady     Status = "ready"
)

// Record: одна запись резюме в том виде, в каком её отдаёт бэкенд.
// Необязательные поля выражены указателями: nil означает «значения нет».
type Record struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Score      *int       `json:"score"`
	Date       string     `json:"date,omitempty"`
	Position   *string    `json:"position,omitempty"`
	Overview   string     `json:"overview,omitempty"`
	Categories Categories `json:"categories,omitempty"`
	Image      string     `json:"image,omitempty"`
	ImageAlt   string     `json:"imageAlt,omitempty"`
	Status     Status     `json:"status,omitempty"`
}

// Clone returns a deep copy so callers can't mutate shared state through pointers or slices.
func (r Record) Clone() Record {
	out := r
	if r.Score != nil {
		s := *r.Score
		out.Score = &s
	}
	if r.Position != nil {
		p := *r.Position
		out.Position = &p
	}
	if r.Categories != nil {
		out.Categories = append(Categories(nil), r.Categories...)
	}
	return out
}

// HasPosition reports whether the record names a non-empty job role.
func (r Record) HasPosition() bool {
	return r.Position != nil && *r.Position != ""
}

func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	aux := struct {
		*plain
		Score json.RawMessage `json:"score"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Score = decodeScore(aux.Score)
	return nil
}

// decodeScore accepts numbers, numeric strings ("92", "92%") and null.
// Anything else is treated as "not yet scored".
func decodeScore(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return IntPtr(int(math.Round(f)))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return IntPtr(int(math.Round(f)))
}

// Categories: упорядоченный список тегов. В JSON может прийти как массив или как одна строка.
type Categories []string

func (c *Categories) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*c = nil
			return nil
		}
		*c = Categories{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*c = list
	return nil
}

// Display joins the tags with " / "; a single scalar tag renders as-is.
func (c Categories) Display() string {
	return strings.Join(c, " / ")
}

func IntPtr(v int) *int { return &v }

func StringPtr(v string) *string { return &v }
