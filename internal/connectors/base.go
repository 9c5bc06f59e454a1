package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
)

// Default limits for capability operations.
const (
	defaultSearchLimit  = 10
	defaultRelatedLimit = 5
)

// Spec declares the kind-specific behaviour the generic Base needs.
type Spec[T any, C any, U any] struct {
	// Kind names the collection (e.g., "megatrends").
	Kind string

	// New builds a full entity from a creation input.
	New func(input C, id string, now time.Time) T

	// Apply copies the non-nil fields of a partial update onto an
	// existing entity.
	Apply func(entity T, input U, now time.Time) T

	// ValidateCreate checks a creation input. Pure; no I/O.
	ValidateCreate func(input C) domain.DataValidationResult

	// ValidateUpdate checks an update input. Rules never reject absent
	// optional fields. Pure; no I/O.
	ValidateUpdate func(input U) domain.DataValidationResult

	// RequiredFields lists the JSON field names counted by the
	// completeness dimension.
	RequiredFields []string

	// Accurate is the kind's secondary evidentiary condition.
	Accurate func(entity T) bool

	// InaccuracyIssue renders the issue string for a record failing
	// the accuracy condition, identifying it by name or title.
	InaccuracyIssue func(entity T) string

	// SearchFields lists the JSON text fields free-text search covers.
	SearchFields []string

	// KeywordFields lists the JSON fields keyword lookup covers.
	KeywordFields []string
}

// Base is the shared realisation of the access contract. Entity kind
// connectors embed it and add capabilities.
type Base[T any, C any, U any] struct {
	spec  Spec[T, C, U]
	store driven.RecordStore[T]
}

// NewBase creates a connector base over one collection's record store.
func NewBase[T any, C any, U any](spec Spec[T, C, U], store driven.RecordStore[T]) *Base[T, C, U] {
	return &Base[T, C, U]{spec: spec, store: store}
}

// Kind names the collection.
func (b *Base[T, C, U]) Kind() string {
	return b.spec.Kind
}

// FindByID retrieves one entity. Returns domain.ErrNotFound if absent.
func (b *Base[T, C, U]) FindByID(ctx context.Context, id string) (*T, error) {
	return b.store.Get(ctx, id)
}

// FindMany returns one page of entities matching the ANDed filters.
func (b *Base[T, C, U]) FindMany(ctx context.Context, filters []domain.QueryFilter, params domain.PaginationParams) (domain.Paginated[T], error) {
	records, total, err := b.store.Find(ctx, filters, params)
	if err != nil {
		return domain.Paginated[T]{}, fmt.Errorf("listing %s: %w", b.spec.Kind, err)
	}
	return domain.NewPaginated(records, total, params), nil
}

// Create assigns an identifier, persists the entity, and returns it.
func (b *Base[T, C, U]) Create(ctx context.Context, input C) (*T, error) {
	entity := b.spec.New(input, uuid.NewString(), time.Now().UTC())
	fields, err := fieldMap(entity)
	if err != nil {
		return nil, err
	}
	id, _ := fields["id"].(string)
	if err := b.store.Insert(ctx, id, entity); err != nil {
		return nil, fmt.Errorf("creating %s record: %w", b.spec.Kind, err)
	}
	return &entity, nil
}

// CreateMany creates entities concurrently, one request per input.
// Not atomic: the policy is fail-fast; the first failure is propagated
// and no partial results are returned. Result order matches input order.
func (b *Base[T, C, U]) CreateMany(ctx context.Context, inputs []C) ([]T, error) {
	results := make([]T, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		g.Go(func() error {
			created, err := b.Create(gctx, input)
			if err != nil {
				return err
			}
			results[i] = *created
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Update applies the non-nil fields of the partial input.
func (b *Base[T, C, U]) Update(ctx context.Context, id string, input U) (*T, error) {
	existing, err := b.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	entity := b.spec.Apply(*existing, input, time.Now().UTC())
	if err := b.store.Update(ctx, id, entity); err != nil {
		return nil, fmt.Errorf("updating %s record: %w", b.spec.Kind, err)
	}
	return &entity, nil
}

// Delete removes the entity. Hard delete; no tombstone.
func (b *Base[T, C, U]) Delete(ctx context.Context, id string) error {
	return b.store.Delete(ctx, id)
}

// ValidateCreate checks a creation input against the kind's rules.
func (b *Base[T, C, U]) ValidateCreate(input C) domain.DataValidationResult {
	return b.spec.ValidateCreate(input)
}

// ValidateUpdate checks an update input against the kind's rules.
func (b *Base[T, C, U]) ValidateUpdate(input U) domain.DataValidationResult {
	return b.spec.ValidateUpdate(input)
}

// QualityMetrics scans the full collection and scores it.
//
// Completeness is the mean required-field fill ratio (an empty
// collection scores 0, not an error). Accuracy is the fraction of
// records satisfying the kind's evidentiary condition; each failing
// record contributes an issue string. Consistency and timeliness are
// fixed at 1.0.
func (b *Base[T, C, U]) QualityMetrics(ctx context.Context) (domain.DataQualityMetrics, error) {
	records, err := b.store.All(ctx)
	if err != nil {
		return domain.DataQualityMetrics{}, fmt.Errorf("scanning %s: %w", b.spec.Kind, err)
	}

	completeness := 0.0
	accuracy := 1.0
	var issues []string

	if len(records) > 0 {
		var fillSum float64
		accurate := 0
		for _, record := range records {
			fields, err := fieldMap(record)
			if err != nil {
				return domain.DataQualityMetrics{}, err
			}
			fillSum += fillRatio(fields, b.spec.RequiredFields)
			if b.spec.Accurate(record) {
				accurate++
			} else {
				issues = append(issues, b.spec.InaccuracyIssue(record))
			}
		}
		completeness = fillSum / float64(len(records))
		accuracy = float64(accurate) / float64(len(records))
	}

	return domain.NewQualityMetrics(completeness, accuracy, 1.0, 1.0, issues), nil
}

// Search performs a case-insensitive substring match over the kind's
// fixed text fields. Results are ordered newest first.
func (b *Base[T, C, U]) Search(ctx context.Context, query string, limit int) ([]T, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []T{}, nil
	}

	return b.scan(ctx, limit, func(fields map[string]any) bool {
		for _, field := range b.spec.SearchFields {
			if textMatches(fields[field], query) {
				return true
			}
		}
		return false
	})
}

// FindByKeywords returns entities matching any of the keywords: an OR
// of per-keyword substring and membership matches over the kind's
// keyword fields.
func (b *Base[T, C, U]) FindByKeywords(ctx context.Context, keywords []string) ([]T, error) {
	lowered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			lowered = append(lowered, keyword)
		}
	}
	if len(lowered) == 0 {
		return []T{}, nil
	}

	return b.scan(ctx, 0, func(fields map[string]any) bool {
		for _, keyword := range lowered {
			for _, field := range b.spec.KeywordFields {
				if textMatches(fields[field], keyword) {
					return true
				}
			}
		}
		return false
	})
}

// scan filters the full collection with a field predicate, newest
// first. A limit <= 0 means unbounded.
func (b *Base[T, C, U]) scan(ctx context.Context, limit int, match func(fields map[string]any) bool) ([]T, error) {
	records, err := b.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", b.spec.Kind, err)
	}

	type hit struct {
		record T
		fields map[string]any
	}
	var hits []hit
	for _, record := range records {
		fields, err := fieldMap(record)
		if err != nil {
			return nil, err
		}
		if match(fields) {
			hits = append(hits, hit{record: record, fields: fields})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, _ := hits[i].fields["createdAt"].(string)
		b, _ := hits[j].fields["createdAt"].(string)
		if cmp := compareTimestamps(a, b); cmp != 0 {
			return cmp > 0 // newest first
		}
		ai, _ := hits[i].fields["id"].(string)
		bi, _ := hits[j].fields["id"].(string)
		return ai < bi
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	result := make([]T, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.record)
	}
	return result, nil
}

// compareTimestamps orders two RFC 3339 strings as instants, so values
// with and without fractional seconds interleave correctly. Values
// that do not parse fall back to string comparison.
func compareTimestamps(a, b string) int {
	at, aerr := time.Parse(time.RFC3339Nano, a)
	bt, berr := time.Parse(time.RFC3339Nano, b)
	if aerr == nil && berr == nil {
		return at.Compare(bt)
	}
	return strings.Compare(a, b)
}

// analyzeMany fans out Analyze calls concurrently with the same
// fail-fast policy as CreateMany. Result order matches input order.
func analyzeMany(ctx context.Context, ids []string, analyze func(ctx context.Context, id string) (*domain.AnalysisResult, error)) ([]domain.AnalysisResult, error) {
	results := make([]domain.AnalysisResult, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			result, err := analyze(gctx, id)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// related returns up to limit entities similar to the subject,
// excluding the subject itself.
func related[T any, C any, U any](ctx context.Context, b *Base[T, C, U], id string, limit int, similar func(subject, candidate T) bool) ([]T, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	subject, err := b.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	records, err := b.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", b.spec.Kind, err)
	}

	subjectFields, err := fieldMap(*subject)
	if err != nil {
		return nil, err
	}
	subjectID, _ := subjectFields["id"].(string)

	var matches []T
	for _, candidate := range records {
		fields, err := fieldMap(candidate)
		if err != nil {
			return nil, err
		}
		if candidateID, _ := fields["id"].(string); candidateID == subjectID {
			continue
		}
		if similar(*subject, candidate) {
			matches = append(matches, candidate)
			if len(matches) == limit {
				break
			}
		}
	}
	if matches == nil {
		matches = []T{}
	}
	return matches, nil
}

// fieldMap returns the JSON field representation of a record.
func fieldMap(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshalling record fields: %w", err)
	}
	return fields, nil
}

// fillRatio is the fraction of required fields that are filled.
// A sequence counts as filled only when non-empty; a string only when
// non-blank.
func fillRatio(fields map[string]any, required []string) float64 {
	if len(required) == 0 {
		return 1
	}
	filled := 0
	for _, name := range required {
		if isFilled(fields[name]) {
			filled++
		}
	}
	return float64(filled) / float64(len(required))
}

func isFilled(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		// Numbers and booleans are filled when present.
		return true
	}
}

// textMatches reports whether a string field, or any element of a
// string-sequence field, contains the lowercase needle.
func textMatches(value any, needle string) bool {
	switch v := value.(type) {
	case string:
		return strings.Contains(strings.ToLower(v), needle)
	case []any:
		for _, element := range v {
			if s, ok := element.(string); ok && strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
	}
	return false
}

// sharedKeyword reports whether two keyword lists overlap,
// case-insensitively.
func sharedKeyword(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, keyword := range a {
		set[strings.ToLower(keyword)] = struct{}{}
	}
	for _, keyword := range b {
		if _, ok := set[strings.ToLower(keyword)]; ok {
			return true
		}
	}
	return false
}
