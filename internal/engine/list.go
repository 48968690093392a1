package engine

import (
	"github.com/laulijun/udo/internal/domain"
)

// runList builds the item list for the intent's query: the full store,
// the items carrying a tag, or the items inside a date range. Results
// are sorted chronologically with ties broken by ID. An unrecognized
// query kind yields a failed result, never a nil one.
func (e *Engine) runList(in *domain.Intent) *domain.Result {
	var items []domain.Item
	switch in.Query.Kind {
	case domain.QueryAll:
		items = e.cache.All()
	case domain.QueryHashtag:
		for _, it := range e.cache.All() {
			if it.HasTag(in.Query.Tag) {
				items = append(items, it)
			}
		}
	case domain.QueryRange:
		items = e.cache.ItemsBetween(in.Query.From, in.Query.To)
	default:
		return &domain.Result{Command: domain.CmdList, Exec: domain.ExecFail}
	}

	domain.SortItems(items)
	return &domain.Result{Command: domain.CmdList, Exec: domain.ExecSuccess, Items: items}
}
