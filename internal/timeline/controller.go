package timeline

import (
	"net/url"
	"sync"

	"github.com/airis-ai/airis-billing/internal/observe"
)

// NavigateOptions mirror the history-friendly navigation flags used
// for filter changes: replace the current history entry, keep focus,
// and do not scroll.
type NavigateOptions struct {
	ReplaceState bool
	KeepFocus    bool
	NoScroll     bool
}

// GotoFunc performs a navigation to target with the given options.
type GotoFunc func(target string, opts NavigateOptions)

// ControllerOptions configure a Controller.
type ControllerOptions struct {
	// BasePath is the history page path, e.g. "/billing/history".
	BasePath string
	// InitialURL seeds the active filter from its filter query
	// parameter. Nil starts at FilterAll.
	InitialURL *url.URL
	// SyncWithURL enables writing filter changes back to the URL and
	// adopting external URL changes.
	SyncWithURL bool
	// Goto performs URL updates for user-initiated filter changes.
	// Required when SyncWithURL is set.
	Goto GotoFunc
	// OnFilterChange is invoked once per user-initiated filter change,
	// never for URL-driven updates. Optional.
	OnFilterChange func(Filter)
}

// Controller owns the active history filter and keeps it in sync with
// the page URL. Filter-change handling and URL-change handling may be
// interleaved in any order by the caller's scheduler; the controller
// tracks the last filter it requested itself and ignores URL echoes
// of older requests, so a delayed echo cannot revert a newer
// selection.
type Controller struct {
	mu sync.Mutex

	basePath       string
	syncWithURL    bool
	navigate       GotoFunc
	onFilterChange func(Filter)

	filter Filter
	// requested is the filter of the most recent self-issued
	// navigation still awaiting its URL echo, or nil.
	requested *Filter

	subject observe.Subject[Filter]
}

// NewController builds a Controller seeded from opts.InitialURL.
func NewController(opts ControllerOptions) *Controller {
	c := &Controller{
		basePath:       opts.BasePath,
		syncWithURL:    opts.SyncWithURL,
		navigate:       opts.Goto,
		onFilterChange: opts.OnFilterChange,
		filter:         FilterAll,
	}
	if opts.SyncWithURL && opts.InitialURL != nil {
		c.filter = ParseFilter(opts.InitialURL.Query().Get("filter"))
	}
	return c
}

// Filter returns the active filter.
func (c *Controller) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Subscribe registers fn for filter updates and returns an
// unsubscribe function.
func (c *Controller) Subscribe(fn func(Filter)) func() {
	return c.subject.Subscribe(fn)
}

// SelectFilter applies a user-initiated filter change: the filter
// switches immediately, the URL is updated through Goto, and
// OnFilterChange fires once. Selecting the active filter is a no-op.
func (c *Controller) SelectFilter(filter Filter) {
	c.mu.Lock()
	if filter == c.filter {
		c.mu.Unlock()
		return
	}
	c.filter = filter
	var navigate GotoFunc
	var target string
	if c.syncWithURL && c.navigate != nil {
		requested := filter
		c.requested = &requested
		navigate = c.navigate
		target = c.filterURL(filter)
	}
	notify := c.onFilterChange
	c.mu.Unlock()

	if navigate != nil {
		navigate(target, NavigateOptions{ReplaceState: true, KeepFocus: true, NoScroll: true})
	}
	if notify != nil {
		notify(filter)
	}
	c.subject.Emit(filter)
}

// HandleURL processes an externally observed URL change. A change
// matching the pending self-issued request settles it; a change not
// matching a pending request is a stale echo and is ignored. With no
// request pending the URL's filter is adopted without navigation or
// OnFilterChange.
func (c *Controller) HandleURL(pageURL *url.URL) {
	if !c.syncWithURL || pageURL == nil {
		return
	}
	urlFilter := ParseFilter(pageURL.Query().Get("filter"))

	c.mu.Lock()
	if c.requested != nil {
		if urlFilter != *c.requested {
			c.mu.Unlock()
			return
		}
		c.requested = nil
		c.mu.Unlock()
		return
	}
	if urlFilter == c.filter {
		c.mu.Unlock()
		return
	}
	c.filter = urlFilter
	c.mu.Unlock()

	c.subject.Emit(urlFilter)
}

func (c *Controller) filterURL(filter Filter) string {
	if filter == FilterAll {
		return c.basePath
	}
	return c.basePath + "?filter=" + string(filter)
}
