package catalog

import (
	"context"
	"sync"

	"github.com/ndnb/architecture-web-gateway/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CategoryState tracks the catalog's load lifecycle.
type CategoryState int

const (
	CategoryIdle CategoryState = iota
	CategoryLoading
	CategoryLoaded
	CategoryFailed
)

// Category is an active project type as shown in the filter bar.
type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ProjectTypeSource provides the raw project types. *upstream.ProjectsAPI
// satisfies it.
type ProjectTypeSource interface {
	ActiveProjectTypes(ctx context.Context) ([]models.ProjectType, error)
}

// CategoryCatalog holds the active project categories and the current
// selection. Each successful Load replaces the snapshot wholesale; observers
// receive the selected category id whenever the selection changes.
type CategoryCatalog struct {
	source ProjectTypeSource
	logger zerolog.Logger

	mu          sync.Mutex
	state       CategoryState
	categories  []Category
	selected    int64 // 0 means no selection yet
	subscribers []func(categoryID int64)
}

func NewCategoryCatalog(source ProjectTypeSource) *CategoryCatalog {
	logger := log.With().Str("component", "categoryCatalog").Logger()
	return &CategoryCatalog{source: source, logger: logger}
}

// Subscribe registers fn to run on every selection change. Registration is
// expected before Load; subscribers are invoked without the catalog lock
// held.
func (c *CategoryCatalog) Subscribe(fn func(categoryID int64)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Load fetches all project types, keeps the active ones in API order, and
// transitions to CategoryLoaded. When the list is non-empty and nothing is
// selected yet, the first category is auto-selected and announced. A fetch
// failure transitions to CategoryFailed and is logged; an empty category bar
// is the accepted degraded state, so the error is returned but safe to
// ignore.
func (c *CategoryCatalog) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state == CategoryLoading {
		c.mu.Unlock()
		return nil
	}
	c.state = CategoryLoading
	c.mu.Unlock()

	types, err := c.source.ActiveProjectTypes(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("loading project types failed")
		c.mu.Lock()
		c.state = CategoryFailed
		c.mu.Unlock()
		return err
	}

	categories := make([]Category, 0, len(types))
	for _, t := range types {
		if !t.Status {
			continue
		}
		categories = append(categories, Category{ID: t.ID, Title: t.Title})
	}

	c.mu.Lock()
	c.categories = categories
	c.state = CategoryLoaded

	var announce int64
	if c.selected == 0 && len(categories) > 0 {
		c.selected = categories[0].ID
		announce = c.selected
	}
	subscribers := c.snapshotSubscribersLocked()
	c.mu.Unlock()

	if announce != 0 {
		for _, fn := range subscribers {
			fn(announce)
		}
	}
	return nil
}

// Select changes the current category. Selecting the already-selected
// category is a no-op so rapid re-clicks never trigger duplicate fetches; an
// id outside the loaded snapshot is ignored with a warning.
func (c *CategoryCatalog) Select(categoryID int64) {
	c.mu.Lock()
	if c.state != CategoryLoaded || categoryID == c.selected {
		c.mu.Unlock()
		return
	}

	known := false
	for _, cat := range c.categories {
		if cat.ID == categoryID {
			known = true
			break
		}
	}
	if !known {
		c.mu.Unlock()
		c.logger.Warn().Int64("categoryID", categoryID).Msg("ignoring selection of unknown category")
		return
	}

	c.selected = categoryID
	subscribers := c.snapshotSubscribersLocked()
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(categoryID)
	}
}

// State returns the current lifecycle state.
func (c *CategoryCatalog) State() CategoryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Categories returns a copy of the loaded snapshot, in API order.
func (c *CategoryCatalog) Categories() []Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Selected returns the current category id, or 0 before the first load
// completes.
func (c *CategoryCatalog) Selected() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

func (c *CategoryCatalog) snapshotSubscribersLocked() []func(int64) {
	out := make([]func(int64), len(c.subscribers))
	copy(out, c.subscribers)
	return out
}
