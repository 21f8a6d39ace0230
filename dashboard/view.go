// Package dashboard holds the author's article table: a working set of
// articles with client-local sorting, filtering and row actions. The visible
// rows are a pure function of (working set, sort spec, filter query); the
// working set itself only changes on load or on a confirmed delete.
package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"blog-cms/models"
)

type Column string

const (
	ColumnTitle     Column = "title"
	ColumnPerex     Column = "perex"
	ColumnComments  Column = "comments"
	ColumnCreatedAt Column = "createdAt"
)

// Columns is the fixed column set of the table, in display order.
var Columns = []Column{ColumnTitle, ColumnPerex, ColumnComments, ColumnCreatedAt}

type SortSpec struct {
	Column Column
	Desc   bool
}

// DefaultSort matches the table's initial state: newest articles first.
var DefaultSort = SortSpec{Column: ColumnCreatedAt, Desc: true}

const createdAtFormat = "Jan 2, 2006"

// Row is one rendered table row. PlaceholderRow stands in when nothing
// matches, so the table body is never empty.
type Row struct {
	ID           uint
	Title        string
	Perex        string
	CommentCount int
	CreatedAt    string
	ImageID      string
	Placeholder  bool
}

var PlaceholderRow = Row{Title: "No articles found", Placeholder: true}

// ViewLink is the detail route every non-action cell links to.
func (r Row) ViewLink() string {
	return fmt.Sprintf("articles/%d/view", r.ID)
}

func (r Row) EditLink() string {
	return fmt.Sprintf("articles/%d/edit", r.ID)
}

// cells returns the row's visible column values as rendered strings,
// in Columns order. The filter matches against exactly these.
func (r Row) cells() []string {
	return []string{r.Title, r.Perex, strconv.Itoa(r.CommentCount), r.CreatedAt}
}

func (r Row) matches(query string) bool {
	for _, cell := range r.cells() {
		if strings.Contains(strings.ToLower(cell), query) {
			return true
		}
	}
	return false
}

// VisibleRows filters then sorts. Because sorting is a total order over the
// remaining rows, applying the filter before or after the sort yields the
// same visible ordering; filtering first just does less work.
func VisibleRows(articles []models.Article, spec SortSpec, query string) []Row {
	query = strings.ToLower(strings.TrimSpace(query))

	rows := make([]Row, 0, len(articles))
	for _, a := range articles {
		row := Row{
			ID:           a.ID,
			Title:        a.Title,
			Perex:        a.Perex,
			CommentCount: len(a.Comments),
			CreatedAt:    a.CreatedAt.Format(createdAtFormat),
			ImageID:      a.FeaturedImage.ID,
		}
		if query == "" || row.matches(query) {
			rows = append(rows, row)
		}
	}

	// Sort on the underlying article values, not the rendered cells, so
	// createdAt orders chronologically rather than lexically.
	createdAt := make(map[uint]int64, len(articles))
	for _, a := range articles {
		createdAt[a.ID] = a.CreatedAt.UnixNano()
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool
		switch spec.Column {
		case ColumnTitle:
			less = strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case ColumnPerex:
			less = strings.ToLower(a.Perex) < strings.ToLower(b.Perex)
		case ColumnComments:
			less = a.CommentCount < b.CommentCount
		default:
			less = createdAt[a.ID] < createdAt[b.ID]
		}
		if spec.Desc {
			return !less && !equalOn(spec.Column, a, b, createdAt)
		}
		return less
	})

	return rows
}

func equalOn(col Column, a, b Row, createdAt map[uint]int64) bool {
	switch col {
	case ColumnTitle:
		return strings.EqualFold(a.Title, b.Title)
	case ColumnPerex:
		return strings.EqualFold(a.Perex, b.Perex)
	case ColumnComments:
		return a.CommentCount == b.CommentCount
	default:
		return createdAt[a.ID] == createdAt[b.ID]
	}
}
