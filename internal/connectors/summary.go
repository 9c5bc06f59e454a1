package connectors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Summary is the kind-erased row view used by the driving surfaces
// when an operation spans entity kinds.
type Summary struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// Kinds lists the collection names in the set's stable order.
func (s *Set) Kinds() []string {
	return []string{
		s.Megatrends.Kind(),
		s.ValueTemplates.Kind(),
		s.HiddenNeeds.Kind(),
		s.SuccessCases.Kind(),
		s.Seeds.Kind(),
		s.Partners.Kind(),
		s.Trends.Kind(),
		s.Competitors.Kind(),
	}
}

// SearchKind runs free-text search against one collection and returns
// kind-erased summaries. Returns domain.ErrUnsupportedType for an
// unknown kind.
func (s *Set) SearchKind(ctx context.Context, kind, query string, limit int) ([]Summary, error) {
	switch kind {
	case s.Megatrends.Kind():
		return searchSummaries(ctx, s.Megatrends, kind, query, limit)
	case s.ValueTemplates.Kind():
		return searchSummaries(ctx, s.ValueTemplates, kind, query, limit)
	case s.HiddenNeeds.Kind():
		return searchSummaries(ctx, s.HiddenNeeds, kind, query, limit)
	case s.SuccessCases.Kind():
		return searchSummaries(ctx, s.SuccessCases, kind, query, limit)
	case s.Seeds.Kind():
		return searchSummaries(ctx, s.Seeds, kind, query, limit)
	case s.Partners.Kind():
		return searchSummaries(ctx, s.Partners, kind, query, limit)
	case s.Trends.Kind():
		return searchSummaries(ctx, s.Trends, kind, query, limit)
	case s.Competitors.Kind():
		return searchSummaries(ctx, s.Competitors, kind, query, limit)
	default:
		return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrUnsupportedType)
	}
}

// SearchAll runs free-text search against every collection and
// concatenates the summaries in the set's stable kind order.
func (s *Set) SearchAll(ctx context.Context, query string, limit int) ([]Summary, error) {
	var all []Summary
	for _, kind := range s.Kinds() {
		hits, err := s.SearchKind(ctx, kind, query, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, hits...)
	}
	return all, nil
}

// AnalyzeKind runs the analysis heuristic for one entity of an
// analyzable kind. Returns domain.ErrAnalysisUnsupported for kinds
// without a heuristic.
func (s *Set) AnalyzeKind(ctx context.Context, kind, id string) (*domain.AnalysisResult, error) {
	switch kind {
	case s.Megatrends.Kind():
		return s.Megatrends.Analyze(ctx, id)
	case s.HiddenNeeds.Kind():
		return s.HiddenNeeds.Analyze(ctx, id)
	case s.Competitors.Kind():
		return s.Competitors.Analyze(ctx, id)
	default:
		return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrAnalysisUnsupported)
	}
}

// GetKind retrieves one entity as a kind-erased field map. Returns
// domain.ErrUnsupportedType for an unknown kind and domain.ErrNotFound
// for a missing identifier.
func (s *Set) GetKind(ctx context.Context, kind, id string) (map[string]any, error) {
	switch kind {
	case s.Megatrends.Kind():
		return getFields(ctx, s.Megatrends, id)
	case s.ValueTemplates.Kind():
		return getFields(ctx, s.ValueTemplates, id)
	case s.HiddenNeeds.Kind():
		return getFields(ctx, s.HiddenNeeds, id)
	case s.SuccessCases.Kind():
		return getFields(ctx, s.SuccessCases, id)
	case s.Seeds.Kind():
		return getFields(ctx, s.Seeds, id)
	case s.Partners.Kind():
		return getFields(ctx, s.Partners, id)
	case s.Trends.Kind():
		return getFields(ctx, s.Trends, id)
	case s.Competitors.Kind():
		return getFields(ctx, s.Competitors, id)
	default:
		return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrUnsupportedType)
	}
}

// ListKind returns one page of a collection as kind-erased field maps.
// Returns domain.ErrUnsupportedType for an unknown kind.
func (s *Set) ListKind(ctx context.Context, kind string, filters []domain.QueryFilter, params domain.PaginationParams) (domain.Paginated[map[string]any], error) {
	switch kind {
	case s.Megatrends.Kind():
		return listFields(ctx, s.Megatrends, filters, params)
	case s.ValueTemplates.Kind():
		return listFields(ctx, s.ValueTemplates, filters, params)
	case s.HiddenNeeds.Kind():
		return listFields(ctx, s.HiddenNeeds, filters, params)
	case s.SuccessCases.Kind():
		return listFields(ctx, s.SuccessCases, filters, params)
	case s.Seeds.Kind():
		return listFields(ctx, s.Seeds, filters, params)
	case s.Partners.Kind():
		return listFields(ctx, s.Partners, filters, params)
	case s.Trends.Kind():
		return listFields(ctx, s.Trends, filters, params)
	case s.Competitors.Kind():
		return listFields(ctx, s.Competitors, filters, params)
	default:
		return domain.Paginated[map[string]any]{}, fmt.Errorf("kind %q: %w", kind, domain.ErrUnsupportedType)
	}
}

// searcher is the typed capability searchSummaries dispatches through.
type searcher[T any] interface {
	Search(ctx context.Context, query string, limit int) ([]T, error)
}

// getter is the typed capability getFields dispatches through.
type getter[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
}

// lister is the typed capability listFields dispatches through.
type lister[T any] interface {
	FindMany(ctx context.Context, filters []domain.QueryFilter, params domain.PaginationParams) (domain.Paginated[T], error)
}

// getFields runs one kind's lookup and erases the record.
func getFields[T any](ctx context.Context, conn getter[T], id string) (map[string]any, error) {
	record, err := conn.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return fieldMap(record)
}

// listFields runs one kind's paginated listing and erases the rows.
func listFields[T any](ctx context.Context, conn lister[T], filters []domain.QueryFilter, params domain.PaginationParams) (domain.Paginated[map[string]any], error) {
	page, err := conn.FindMany(ctx, filters, params)
	if err != nil {
		return domain.Paginated[map[string]any]{}, err
	}

	rows := make([]map[string]any, 0, len(page.Data))
	for i := range page.Data {
		fields, err := fieldMap(page.Data[i])
		if err != nil {
			return domain.Paginated[map[string]any]{}, err
		}
		rows = append(rows, fields)
	}

	return domain.Paginated[map[string]any]{
		Data:       rows,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, nil
}

// searchSummaries runs one kind's search and erases the rows.
func searchSummaries[T any](ctx context.Context, conn searcher[T], kind, query string, limit int) ([]Summary, error) {
	records, err := conn.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(records))
	for _, record := range records {
		fields, err := fieldMap(record)
		if err != nil {
			return nil, err
		}
		id, _ := fields["id"].(string)
		title, _ := fields["title"].(string)
		if title == "" {
			title, _ = fields["name"].(string)
		}
		summaries = append(summaries, Summary{ID: id, Kind: kind, Title: title})
	}
	return summaries, nil
}
