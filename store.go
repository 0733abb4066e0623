package relsort

import (
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/woozymasta/relsort/internal/log"
)

// State is one consistent snapshot of a session: the dataset, the
// inputs the view was derived from, and the view itself.
// A published State is never modified; treat its slices as read-only.
type State struct {
	// Err is the most recent acquisition failure, nil after a successful load.
	Err error

	// Records is the full dataset in load order.
	Records []Release

	// Filtered holds the records passing every filter, in load order,
	// before sorting and Limit.
	Filtered []Release

	// View is Filtered sorted by Sort and capped by Limit.
	View []Release

	Query string
	Sort  SortKey

	// pinned is set once a sort key was chosen explicitly; the default-sort
	// heuristic no longer runs on load.
	pinned bool
}

// Store owns the session state. Writers are serialized and every write
// publishes a fresh State, so readers always see a view that matches the
// query and sort key it was derived from.
type Store struct {
	log   log.Logger
	state atomic.Pointer[State]
	base  Options
	mu    sync.Mutex
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the store logger.
func WithLogger(l log.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// WithSlog sets the store logger from a *slog.Logger. A nil logger keeps
// the current one.
func WithSlog(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l == nil {
			return
		}
		s.log = log.New(l.Handler())
	}
}

// WithOptions sets the filters applied on every recomputation:
// Channel, Include, Exclude, Range, Constraint and Limit.
// Query and Sort are ignored; they are session state.
func WithOptions(opt Options) StoreOption {
	return func(s *Store) {
		opt.Query = ""
		opt.Sort = SortNone
		s.base = opt
	}
}

// WithSort seeds the sort key. Invalid keys are ignored.
func WithSort(k SortKey) StoreOption {
	return func(s *Store) {
		if !k.Valid() {
			return
		}
		st := s.state.Load()
		st.Sort, st.pinned = k, true
	}
}

// WithSortFromQuery seeds the sort key from a "sort=<name>" URL query parameter.
func WithSortFromQuery(rawQuery string) StoreOption {
	return func(s *Store) {
		if k, ok := SortFromQuery(rawQuery); ok {
			WithSort(k)(s)
		}
	}
}

// NewStore returns an empty store. The first Load picks a default sort key
// unless one was seeded.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{log: log.Default()}
	s.state.Store(&State{})

	for _, o := range opts {
		o(s)
	}

	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() *State {
	return s.state.Load()
}

// View returns a copy of the current filtered and sorted records.
func (s *Store) View() []Release {
	return slices.Clone(s.state.Load().View)
}

// Load replaces the dataset and recomputes the view with the current query.
// The default-sort heuristic runs here, once per dataset, unless a sort key
// was selected explicitly.
func (s *Store) Load(records []Release) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.state.Load()
	next := &State{
		Records: slices.Clone(records),
		Query:   cur.Query,
		Sort:    cur.Sort,
		pinned:  cur.pinned,
	}

	if !next.pinned {
		next.Sort = PickDefaultSort(next.Records)
		s.log.Debug("default sort picked", "sort", next.Sort.String(), "records", len(next.Records))
	}

	s.publish(next, true)
	s.log.Info("dataset loaded", "records", len(next.Records), "matched", len(next.Filtered), "sort", next.Sort.String())
}

// LoadFrom runs fetch and loads its result. A failed fetch leaves the
// dataset and view untouched, records the error in State.Err and returns it.
func (s *Store) LoadFrom(fetch func() ([]Release, error)) error {
	records, err := fetch()
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()

		next := *s.state.Load()
		next.Err = err
		s.state.Store(&next)
		s.log.Warn("dataset load failed", "error", err)

		return err
	}

	s.Load(records)

	return nil
}

// SelectSort switches to the named comparator. Unknown names are ignored
// and leave the view as it is; the return value reports whether the key
// was accepted.
func (s *Store) SelectSort(name string) bool {
	k, ok := ParseSortKey(name)
	if !ok {
		s.log.Debug("sort key ignored", "name", name)
		return false
	}

	return s.SetSort(k)
}

// SetSort is SelectSort for an already parsed key.
// Only the filtered set is re-sorted; filters are not re-run.
func (s *Store) SetSort(k SortKey) bool {
	if !k.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.state.Load()
	next.Sort, next.pinned = k, true
	s.publish(&next, false)
	s.log.Info("sort changed", "sort", k.String())

	return true
}

// SetQuery changes the text query and re-filters the dataset.
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.state.Load()
	next.Query = query
	s.publish(&next, true)
	s.log.Debug("query changed", "query", query, "matched", len(next.Filtered))
}

// publish derives Filtered (when refilter is set) and View for next, then swaps it in.
// Callers hold s.mu.
func (s *Store) publish(next *State, refilter bool) {
	opt := s.base
	opt.Query = next.Query

	if refilter {
		next.Filtered = narrow(next.Records, opt)
	}
	next.View = capReleases(Sort(next.Filtered, next.Sort), opt.Limit)

	s.state.Store(next)
}

// SortFromQuery reads the "sort" parameter of a URL query string such as
// "?sort=date-asc&q=beta". Missing or unknown names report false.
func SortFromQuery(rawQuery string) (SortKey, bool) {
	// ParseQuery returns what it could parse alongside the first error
	q, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))

	return ParseSortKey(q.Get("sort"))
}
