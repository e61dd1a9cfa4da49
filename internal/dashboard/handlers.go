package dashboard

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/zfdash/internal/aggregate"
	"github.com/leapstack-labs/zfdash/internal/dashboard/notifier"
	"github.com/leapstack-labs/zfdash/internal/filter"
	"github.com/leapstack-labs/zfdash/internal/loader"
	"github.com/starfederation/datastar-go/datastar"
)

// Handlers serves the dashboard API.
type Handlers struct {
	store    *Store
	notifier *notifier.Notifier
	params   aggregate.Params
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *Store, notify *notifier.Notifier, params aggregate.Params, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{store: store, notifier: notify, params: params, logger: logger}
}

// SetupRoutes registers the API routes on router.
func (h *Handlers) SetupRoutes(router chi.Router) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/dataset", h.Dataset)
		r.Get("/filters", h.Filters)
		r.Get("/queries", h.Queries)
		r.Get("/queries/{name}", h.Query)
		r.Get("/report", h.Report)
		r.Get("/sections/{section}", h.Section)
		r.Get("/updates", h.Updates)
	})
}

// snapshot returns the current dataset or writes a 503.
func (h *Handlers) snapshot(w http.ResponseWriter) (*loader.Dataset, bool) {
	ds := h.store.Current()
	if ds == nil {
		writeError(w, http.StatusServiceUnavailable, "no dataset loaded")
		return nil, false
	}
	return ds, true
}

// Health reports liveness and whether a dataset is loaded.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"dataset": h.store.Current() != nil,
	})
}

// Dataset describes the current snapshot.
func (h *Handlers) Dataset(w http.ResponseWriter, _ *http.Request) {
	ds, ok := h.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

type filtersResponse struct {
	Options filter.Options `json:"options"`
	Default filter.Set     `json:"default"`
}

// Filters lists the selectable filter values and the default selection.
func (h *Handlers) Filters(w http.ResponseWriter, _ *http.Request) {
	ds, ok := h.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, filtersResponse{
		Options: filter.AvailableOptions(ds.Table),
		Default: filter.Default(ds.Table),
	})
}

// Queries lists the query catalogue.
func (h *Handlers) Queries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, aggregate.Catalogue())
}

// Query evaluates one named query.
func (h *Handlers) Query(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, found := aggregate.Lookup(name); !found {
		writeError(w, http.StatusNotFound, "unknown query: "+name)
		return
	}
	ds, ok := h.snapshot(w)
	if !ok {
		return
	}
	p, err := decodeParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := aggregate.Run(name, ds.Table, p.filterSet(ds.Table), p.params(h.params))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Report evaluates every section.
func (h *Handlers) Report(w http.ResponseWriter, r *http.Request) {
	h.bundle(w, r)
}

// Section evaluates the queries of one section.
func (h *Handlers) Section(w http.ResponseWriter, r *http.Request) {
	h.bundle(w, r, aggregate.Section(chi.URLParam(r, "section")))
}

func (h *Handlers) bundle(w http.ResponseWriter, r *http.Request, sections ...aggregate.Section) {
	ds, ok := h.snapshot(w)
	if !ok {
		return
	}
	p, err := decodeParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := aggregate.Build(ds.Table, p.filterSet(ds.Table), p.params(h.params), sections...)
	if errors.Is(err, aggregate.ErrUnknownSection) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(sections) == 1 {
		writeJSON(w, http.StatusOK, b.Sections[0])
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// filterSignals is the filter state a datastar client sends along.
type filterSignals struct {
	Country []string `json:"country"`
	City    []string `json:"city"`
	Cuisine []string `json:"cuisine"`
}

// updateSignals is pushed to clients after every reload.
type updateSignals struct {
	DatasetID string    `json:"datasetId"`
	Rows      int       `json:"rows"`
	Selected  int       `json:"selected"`
	LoadedAt  time.Time `json:"loadedAt"`
	Error     string    `json:"error"`
}

// Updates is the long-lived SSE endpoint. It pushes dataset signals after
// each reload; the initial state is served by /api/dataset.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	var signals filterSignals
	if r.URL.Query().Has("datastar") {
		if err := datastar.ReadSignals(r, &signals); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	p := requestParams{Country: signals.Country, City: signals.City, Cuisine: signals.Cuisine}

	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-updates:
			if err := h.sendUpdate(sse, ev, p); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

func (h *Handlers) sendUpdate(sse *datastar.ServerSentEventGenerator, ev notifier.Event, p requestParams) error {
	sig := updateSignals{Error: ev.Err}
	if ds := h.store.Current(); ds != nil {
		sig.DatasetID = ds.ID.String()
		sig.Rows = ds.Rows
		sig.LoadedAt = ds.LoadedAt
		sig.Selected = filter.Apply(ds.Table, p.filterSet(ds.Table)).Len()
	}
	return sse.MarshalAndPatchSignals(sig)
}
