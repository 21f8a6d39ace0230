package dashboard

import (
	"testing"
	"time"

	"blog-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticles() []models.Article {
	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	return []models.Article{
		{
			ID:        1,
			Title:     "Intro to Go",
			Perex:     "Getting started",
			Comments:  models.CommentList{{ID: "c1"}, {ID: "c2"}},
			CreatedAt: base,
		},
		{
			ID:        2,
			Title:     "Advanced concurrency",
			Perex:     "Channels and friends",
			Comments:  models.CommentList{{ID: "c3"}},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID:        3,
			Title:     "Deploying services",
			Perex:     "An introduction to shipping",
			Comments:  models.CommentList{},
			CreatedAt: base.Add(24 * time.Hour),
		},
	}
}

func rowIDs(rows []Row) []uint {
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestVisibleRowsDefaultSortNewestFirst(t *testing.T) {
	rows := VisibleRows(sampleArticles(), DefaultSort, "")
	assert.Equal(t, []uint{2, 3, 1}, rowIDs(rows))
}

func TestVisibleRowsSortToggleIsInvolution(t *testing.T) {
	articles := sampleArticles()

	original := VisibleRows(articles, DefaultSort, "")

	toggled := VisibleRows(articles, SortSpec{Column: ColumnCreatedAt, Desc: false}, "")
	assert.NotEqual(t, rowIDs(original), rowIDs(toggled))

	back := VisibleRows(articles, DefaultSort, "")
	assert.Equal(t, rowIDs(original), rowIDs(back))
}

func TestVisibleRowsSortByTitle(t *testing.T) {
	rows := VisibleRows(sampleArticles(), SortSpec{Column: ColumnTitle}, "")
	assert.Equal(t, []uint{2, 3, 1}, rowIDs(rows))

	rows = VisibleRows(sampleArticles(), SortSpec{Column: ColumnTitle, Desc: true}, "")
	assert.Equal(t, []uint{1, 3, 2}, rowIDs(rows))
}

func TestVisibleRowsSortByCommentCount(t *testing.T) {
	rows := VisibleRows(sampleArticles(), SortSpec{Column: ColumnComments, Desc: true}, "")
	assert.Equal(t, []uint{1, 2, 3}, rowIDs(rows))
}

func TestVisibleRowsEmptyQueryReturnsAll(t *testing.T) {
	articles := sampleArticles()

	unfiltered := VisibleRows(articles, DefaultSort, "")
	filtered := VisibleRows(articles, DefaultSort, "   ")

	require.Len(t, filtered, len(articles))
	assert.Equal(t, rowIDs(unfiltered), rowIDs(filtered))
}

func TestVisibleRowsFilterMatchesAnyColumn(t *testing.T) {
	articles := sampleArticles()

	// Title match, case-insensitive.
	rows := VisibleRows(articles, DefaultSort, "intro")
	assert.Equal(t, []uint{3, 1}, rowIDs(rows))

	// Perex match.
	rows = VisibleRows(articles, DefaultSort, "channels")
	assert.Equal(t, []uint{2}, rowIDs(rows))

	// Comment count rendered as string.
	rows = VisibleRows(articles, DefaultSort, "2")
	require.NotEmpty(t, rows)
	assert.Contains(t, rowIDs(rows), uint(1))

	// Rendered date.
	rows = VisibleRows(articles, DefaultSort, "may 3")
	assert.Equal(t, []uint{2}, rowIDs(rows))

	// No match.
	rows = VisibleRows(articles, DefaultSort, "zzz-not-there")
	assert.Empty(t, rows)
}

func TestVisibleRowsFilterAndSortCommute(t *testing.T) {
	articles := sampleArticles()
	spec := SortSpec{Column: ColumnTitle}

	combined := VisibleRows(articles, spec, "intro")

	// Sorting the full set first and then dropping non-matching rows must
	// produce the same visible ordering.
	sortedAll := VisibleRows(articles, spec, "")
	var manual []uint
	for _, r := range sortedAll {
		if r.matches("intro") {
			manual = append(manual, r.ID)
		}
	}

	assert.Equal(t, manual, rowIDs(combined))
}

func TestRowLinks(t *testing.T) {
	row := Row{ID: 12}
	assert.Equal(t, "articles/12/view", row.ViewLink())
	assert.Equal(t, "articles/12/edit", row.EditLink())
}

func TestVisibleRowsSortIsStable(t *testing.T) {
	ts := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	articles := []models.Article{
		{ID: 1, Title: "Same", CreatedAt: ts},
		{ID: 2, Title: "Same", CreatedAt: ts},
		{ID: 3, Title: "Same", CreatedAt: ts},
	}

	asc := VisibleRows(articles, SortSpec{Column: ColumnTitle}, "")
	desc := VisibleRows(articles, SortSpec{Column: ColumnTitle, Desc: true}, "")

	// Equal keys keep working-set order in both directions.
	assert.Equal(t, []uint{1, 2, 3}, rowIDs(asc))
	assert.Equal(t, []uint{1, 2, 3}, rowIDs(desc))
}
