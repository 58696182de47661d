package upload

import (
	"net/url"
	"time"

	"github.com/artem13815/resumeboard/pkg/resume"
)

var samples = []resume.Record{
	{
		ID:         "sample-001",
		Name:       "Alice Chen",
		Score:      resume.IntPtr(92),
		Position:   resume.StringPtr("Frontend Engineer"),
		Overview:   "Frontend engineer with 6 years of React and design-system work.",
		Categories: resume.Categories{"JavaScript", "React", "CSS"},
	},
	{
		ID:         "sample-002",
		Name:       "Bob Lin",
		Score:      resume.IntPtr(78),
		Position:   resume.StringPtr("Data Analyst"),
		Overview:   "Analyst building SQL pipelines and Python dashboards.",
		Categories: resume.Categories{"Data", "SQL", "Python"},
	},
	{
		ID:         "sample-003",
		Name:       "Carol Wu",
		Position:   resume.StringPtr("Backend Engineer"),
		Overview:   "Node and AWS developer, not scored yet.",
		Categories: resume.Categories{"Node", "AWS", "Docker"},
	},
	{
		ID:         "sample-004",
		Name:       "David Ho",
		Score:      resume.IntPtr(64),
		Position:   resume.StringPtr("QA Engineer"),
		Overview:   "Test automation and CI maintenance.",
		Categories: resume.Categories{"Testing", "CI"},
	},
}

// AppendSamples appends the demo records without replacing existing cards.
// Ids get a timestamp suffix so repeated loads do not collide.
func (u *Uploader) AppendSamples() []resume.Record {
	now := u.now().UTC()
	suffix := now.Format("150405.000")
	out := make([]resume.Record, 0, len(samples))
	for i, s := range samples {
		rec := s.Clone()
		rec.ID = s.ID + "-" + suffix
		rec.Date = now.Add(-time.Duration(i) * 24 * time.Hour).Format(time.RFC3339)
		rec.Image = placeholderImage + url.PathEscape(rec.Name)
		rec.ImageAlt = rec.Name
		rec.Status = resume.StatusReady
		out = append(out, rec)
	}
	u.store.Update(func(items []resume.Record) []resume.Record {
		return append(items, out...)
	})
	return out
}
