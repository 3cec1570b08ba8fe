package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

const defaultSize = 10

// document is one indexed listing. Numbers are kept as json.Number so ids
// and prices compare exactly.
type document map[string]any

type searchRequest struct {
	Query struct {
		Bool struct {
			Must []map[string]map[string]any `json:"must"`
		} `json:"bool"`
	} `json:"query"`
	Sort []map[string]any `json:"sort"`
}

type hit struct {
	Index  string   `json:"_index"`
	ID     string   `json:"_id"`
	Source document `json:"_source"`
}

type searchResponse struct {
	Took     int  `json:"took"`
	TimedOut bool `json:"timed_out"`
	Hits     struct {
		Total struct {
			Value    int    `json:"value"`
			Relation string `json:"relation"`
		} `json:"total"`
		Hits []hit `json:"hits"`
	} `json:"hits"`
}

// sortKey is one level of the requested ordering.
type sortKey struct {
	field string
	desc  bool
}

func searchHandler(logger *slog.Logger, docs []document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index := r.PathValue("index")

		size, from, err := paging(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "illegal_argument_exception", err.Error())
			return
		}

		var req searchRequest
		if r.Body != nil && r.ContentLength != 0 {
			dec := json.NewDecoder(r.Body)
			dec.UseNumber()
			if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				writeError(w, http.StatusBadRequest, "parsing_exception", err.Error())
				return
			}
		}

		keys, err := sortKeys(req.Sort)
		if err != nil {
			writeError(w, http.StatusBadRequest, "parsing_exception", err.Error())
			return
		}

		var matched []document
		for _, d := range docs {
			ok, err := matchesAll(d, req.Query.Bool.Must)
			if err != nil {
				writeError(w, http.StatusBadRequest, "parsing_exception", err.Error())
				return
			}
			if ok {
				matched = append(matched, d)
			}
		}

		slices.SortStableFunc(matched, func(a, b document) int {
			for _, k := range keys {
				c := compareValues(a[k.field], b[k.field])
				if k.desc {
					c = -c
				}
				if c != 0 {
					return c
				}
			}
			return 0
		})

		total := len(matched)
		if from >= len(matched) {
			matched = nil
		} else {
			matched = matched[from:min(from+size, len(matched))]
		}

		var resp searchResponse
		resp.Hits.Total.Value = total
		resp.Hits.Total.Relation = "eq"
		resp.Hits.Hits = make([]hit, 0, len(matched))
		for _, d := range matched {
			resp.Hits.Hits = append(resp.Hits.Hits, hit{Index: index, ID: fmt.Sprint(d["id"]), Source: d})
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("search", "index", index, "matched", total, "returned", len(matched), "from", from, "size", size)
	}
}

func paging(r *http.Request) (size, from int, err error) {
	size = defaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		if size, err = strconv.Atoi(s); err != nil || size < 0 {
			return 0, 0, fmt.Errorf("invalid size %q", s)
		}
	}
	if s := r.URL.Query().Get("from"); s != "" {
		if from, err = strconv.Atoi(s); err != nil || from < 0 {
			return 0, 0, fmt.Errorf("invalid from %q", s)
		}
	}
	return size, from, nil
}

// sortKeys accepts both {"field":"asc"} and {"field":{"order":"desc"}}.
func sortKeys(sort []map[string]any) ([]sortKey, error) {
	keys := make([]sortKey, 0, len(sort))
	for _, entry := range sort {
		for field, spec := range entry {
			order := ""
			switch v := spec.(type) {
			case string:
				order = v
			case map[string]any:
				order, _ = v["order"].(string)
			}
			switch order {
			case "asc":
				keys = append(keys, sortKey{field: field})
			case "desc":
				keys = append(keys, sortKey{field: field, desc: true})
			default:
				return nil, fmt.Errorf("invalid sort order %q for field %q", order, field)
			}
		}
	}
	return keys, nil
}

func matchesAll(d document, must []map[string]map[string]any) (bool, error) {
	for _, clause := range must {
		for kind, body := range clause {
			ok, err := matches(d, kind, body)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

func matches(d document, kind string, body map[string]any) (bool, error) {
	for field, want := range body {
		got, present := d[field]
		if !present {
			return false, nil
		}

		switch kind {
		case "term":
			if compareValues(got, want) != 0 {
				return false, nil
			}
		case "terms":
			values, ok := want.([]any)
			if !ok {
				return false, fmt.Errorf("terms clause for %q must be an array", field)
			}
			if !slices.ContainsFunc(values, func(v any) bool { return compareValues(got, v) == 0 }) {
				return false, nil
			}
		case "range":
			bounds, ok := want.(map[string]any)
			if !ok {
				return false, fmt.Errorf("range clause for %q must be an object", field)
			}
			in, err := inRange(got, bounds)
			if err != nil {
				return false, fmt.Errorf("range clause for %q: %w", field, err)
			}
			if !in {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unsupported query clause %q", kind)
		}
	}
	return true, nil
}

func inRange(got any, bounds map[string]any) (bool, error) {
	for op, bound := range bounds {
		c := compareValues(got, bound)
		switch op {
		case "gte":
			if c < 0 {
				return false, nil
			}
		case "gt":
			if c <= 0 {
				return false, nil
			}
		case "lte":
			if c > 0 {
				return false, nil
			}
		case "lt":
			if c >= 0 {
				return false, nil
			}
		default:
			return false, errors.New("unsupported range operator " + strconv.Quote(op))
		}
	}
	return true, nil
}

// compareValues orders two values numerically when both are numbers and
// lexically otherwise.
func compareValues(a, b any) int {
	da, aErr := decimal.NewFromString(fmt.Sprint(a))
	db, bErr := decimal.NewFromString(fmt.Sprint(b))
	if aErr == nil && bErr == nil {
		return da.Cmp(db)
	}
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func writeError(w http.ResponseWriter, status int, kind, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"error":  map[string]string{"type": kind, "reason": reason},
		"status": status,
	})
}
