package dashboard

import (
	"context"
	"sync"

	"blog-cms/models"

	"github.com/rs/zerolog"
)

// Client is the slice of the server API the controller needs.
type Client interface {
	DeleteArticle(ctx context.Context, articleID uint) error
	DeleteImage(ctx context.Context, imageID string) error
}

// Notifier surfaces the outcome of a mutating action to the user. Every
// delete ends in exactly one Success or Error call.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ConfirmFunc asks the user to approve a destructive action.
type ConfirmFunc func(prompt string) bool

const (
	deleteConfirmPrompt = "Are you sure to delete this article? This action is irreversible."
	deleteFailedMessage = "Something went wrong, please try again later"
)

// Controller keeps the dashboard's working set of articles and applies
// state transitions one event at a time. It never re-fetches on its own;
// the working set changes only via Load and confirmed deletes.
type Controller struct {
	mu       sync.Mutex
	articles []models.Article
	sort     SortSpec
	query    string
	closed   bool

	client  Client
	confirm ConfirmFunc
	notify  Notifier
	log     zerolog.Logger
}

func NewController(client Client, confirm ConfirmFunc, notify Notifier, log zerolog.Logger) *Controller {
	return &Controller{
		sort:    DefaultSort,
		client:  client,
		confirm: confirm,
		notify:  notify,
		log:     log,
	}
}

// Load replaces the working set with a caller-supplied list.
func (c *Controller) Load(articles []models.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = make([]models.Article, len(articles))
	copy(c.articles, articles)
}

func (c *Controller) SetFilter(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

// ToggleSort flips the direction when the column is already active and
// otherwise starts the column ascending.
func (c *Controller) ToggleSort(col Column) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sort.Column == col {
		c.sort.Desc = !c.sort.Desc
	} else {
		c.sort = SortSpec{Column: col}
	}
}

func (c *Controller) Sort() SortSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

// Rows recomputes the visible rows from the current working set, sort and
// filter. An empty result is replaced by the placeholder row so the table
// body always renders something.
func (c *Controller) Rows() []Row {
	c.mu.Lock()
	articles := c.articles
	spec := c.sort
	query := c.query
	c.mu.Unlock()

	rows := VisibleRows(articles, spec, query)
	if len(rows) == 0 {
		return []Row{PlaceholderRow}
	}
	return rows
}

// DeleteArticle orders: confirm, delete article, delete image (best effort),
// then drop the row. The row is removed only after the article delete is
// confirmed; an image-delete failure is logged and tolerated since the
// article is already gone and an orphaned image must not block cleanup.
func (c *Controller) DeleteArticle(ctx context.Context, articleID uint, imageID string) error {
	if !c.confirm(deleteConfirmPrompt) {
		return nil
	}

	if err := c.client.DeleteArticle(ctx, articleID); err != nil {
		c.log.Error().Err(err).Uint("article_id", articleID).Msg("article delete failed")
		c.notify.Error(deleteFailedMessage)
		return err
	}

	if imageID != "" {
		if err := c.client.DeleteImage(ctx, imageID); err != nil {
			c.log.Warn().Err(err).Str("image_id", imageID).Msg("image delete failed, leaving orphaned image")
		}
	}

	c.mu.Lock()
	if !c.closed {
		kept := c.articles[:0]
		for _, a := range c.articles {
			if a.ID != articleID {
				kept = append(kept, a)
			}
		}
		c.articles = kept
	}
	c.mu.Unlock()

	c.notify.Success("Article deleted")
	return nil
}

// Close marks the controller torn down. Responses that arrive afterwards
// must not mutate the working set of a destroyed view.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
