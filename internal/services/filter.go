package services

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const dueDateLayout = "2006-01-02"

// likeEscaper neutralizes LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// TaskFilter is the parsed form of the task listing query parameters.
// Every criterion is optional; set criteria combine with AND.
//
// TaskListID is not applied by Scope: the caller resolves it through
// the ownership guard before the task query runs.
type TaskFilter struct {
	TaskListID *uint
	Completed  *bool
	Priority   string
	Tags       []string
	DueOn      *time.Time
	Search     string
}

// ParseTaskFilter reads criteria from query parameters. Values that do
// not parse are dropped, not rejected: an unparseable dueDate or
// taskListId simply does not constrain the result.
func ParseTaskFilter(query url.Values) TaskFilter {
	var filter TaskFilter

	if raw := query.Get("taskListId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			listID := uint(id)
			filter.TaskListID = &listID
		}
	}

	if raw := query.Get("completed"); raw != "" {
		// Only the literal "true" selects completed tasks.
		completed := raw == "true"
		filter.Completed = &completed
	}

	filter.Priority = strings.TrimSpace(query.Get("priority"))

	if raw := query.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				filter.Tags = append(filter.Tags, trimmed)
			}
		}
	}

	if raw := query.Get("dueDate"); raw != "" {
		if day, err := time.ParseInLocation(dueDateLayout, raw, time.Local); err == nil {
			filter.DueOn = &day
		}
	}

	filter.Search = strings.TrimSpace(query.Get("search"))

	return filter
}

// Scope applies the set criteria to a task query.
//
// An unknown priority value matches zero rows rather than erroring.
// Tags match on overlap: a task qualifies when it carries at least one
// of the requested tags. DueOn covers the whole local calendar day,
// midnight through 23:59:59.999. Search is a case-insensitive substring
// match against title and description.
func (f TaskFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Completed != nil {
			db = db.Where("completed = ?", *f.Completed)
		}

		if f.Priority != "" {
			db = db.Where("priority = ?", f.Priority)
		}

		if len(f.Tags) > 0 {
			db = db.Where("id IN (SELECT task_id FROM task_tags WHERE name IN ?)", f.Tags)
		}

		if f.DueOn != nil {
			start := *f.DueOn
			// Derive the end from the next midnight; the day is not
			// always 24 hours.
			end := time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, start.Location()).Add(-time.Millisecond)
			db = db.Where("due_date BETWEEN ? AND ?", start, end)
		}

		if f.Search != "" {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Search)) + "%"
			db = db.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
		}

		return db
	}
}
