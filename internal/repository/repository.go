// Package repository implements data access over GORM. The generic
// Repository[T] carries the behavior shared by every entity — CRUD, soft
// delete and restore, filtered lookups, criteria operators and pagination —
// and the per-entity repositories in this package compose it with their own
// query helpers.
//
// Two conventions hold across the whole layer:
//   - Absence is a result, not an error: single-row lookups return (nil, nil)
//     when nothing matches. Callers decide whether absence is a failure.
//   - Derived fields are recomputed immediately before every insert and save,
//     so whatever a caller stuffed into them never reaches the database.
package repository

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// softDeletable matches models whose delete is a flag flip on a named column.
type softDeletable interface {
	SoftDeleteColumn() string
}

// recalculable matches models carrying derived fields.
type recalculable interface {
	Recalcular()
}

// DefaultPageSize is used when a caller asks for pagination without a size.
const DefaultPageSize = 10

// Page is one page of results plus the counters the envelope needs.
type Page[T any] struct {
	Data        []T
	TotalItems  int64
	TotalPages  int
	CurrentPage int
	PageSize    int
	HasNext     bool
	HasPrevious bool
}

// Repository provides generic persistence for one entity type.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository builds a Repository for T over the given connection.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying handle for entity-specific queries.
func (r *Repository[T]) DB() *gorm.DB { return r.db }

// softColumn returns T's soft-delete flag column, or "" when T is hard-delete
// only. The capability is declared by the model itself.
func (r *Repository[T]) softColumn() string {
	var t T
	if s, ok := any(&t).(softDeletable); ok {
		return s.SoftDeleteColumn()
	}
	return ""
}

// recalc recomputes the entity's derived fields when it declares any.
func recalc(entity interface{}) {
	if rc, ok := entity.(recalculable); ok {
		rc.Recalcular()
	}
}

// activeScope filters out soft-deleted rows when requested. Entities without
// a soft-delete column are unaffected.
func (r *Repository[T]) activeScope(q *gorm.DB, activeOnly bool) *gorm.DB {
	col := r.softColumn()
	if activeOnly && col != "" {
		q = q.Where(col+" = ?", true)
	}
	return q
}

// Create inserts the entity inside a transaction, recomputing derived fields
// first. The entity's ID is populated on success.
func (r *Repository[T]) Create(entity *T) error {
	recalc(entity)
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
}

// CreateAll inserts all entities in one transaction: either every row is
// persisted or none is.
func (r *Repository[T]) CreateAll(entities []*T) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, e := range entities {
			recalc(e)
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID returns the entity with the given primary key, or (nil, nil) when
// no such row exists. Soft-deleted rows are still found; callers filter with
// the scoped lookups when they need active rows only.
func (r *Repository[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindByField returns the first entity whose column equals value, ordered by
// primary key so duplicates resolve deterministically. (nil, nil) on absence.
func (r *Repository[T]) FindByField(field string, value interface{}) (*T, error) {
	var entity T
	err := r.db.Where(field+" = ?", value).Order("id").First(&entity).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindAll returns every row, optionally restricted to active ones.
func (r *Repository[T]) FindAll(activeOnly bool) ([]T, error) {
	var entities []T
	err := r.activeScope(r.db, activeOnly).Order("id").Find(&entities).Error
	return entities, err
}

// FindByFilters returns rows matching every column=value pair (AND).
func (r *Repository[T]) FindByFilters(filters map[string]interface{}, activeOnly bool) ([]T, error) {
	var entities []T
	q := r.activeScope(r.db, activeOnly)
	if len(filters) > 0 {
		q = q.Where(filters)
	}
	err := q.Order("id").Find(&entities).Error
	return entities, err
}

// FindByCriteria returns rows matching every criterion (AND). Keys may carry
// a lookup suffix: campo__gte, campo__lte, campo__gt, campo__lt or
// campo__icontains (case-insensitive substring); a bare key means equality.
// Entries whose value is nil or an empty string are skipped, so callers can
// pass optional query parameters straight through. Numeric zero is a real
// bound and is applied.
func (r *Repository[T]) FindByCriteria(criteria map[string]interface{}, activeOnly bool) ([]T, error) {
	var entities []T
	q := applyCriteria(r.activeScope(r.db, activeOnly), criteria)
	err := q.Order("id").Find(&entities).Error
	return entities, err
}

// FindScoped runs a query under arbitrary gorm scopes, the escape hatch for
// conditions the criteria map cannot express (joins, OR groups, preloads).
func (r *Repository[T]) FindScoped(activeOnly bool, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var entities []T
	err := r.activeScope(r.db, activeOnly).Scopes(scopes...).Order("id").Find(&entities).Error
	return entities, err
}

// FindByIDScoped is FindByID under extra scopes, typically preloads.
func (r *Repository[T]) FindByIDScoped(id uint, scopes ...func(*gorm.DB) *gorm.DB) (*T, error) {
	var entity T
	err := r.db.Scopes(scopes...).First(&entity, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// CriteriaScope packages a criteria map (same lookup syntax as
// FindByCriteria) as a scope for the scoped lookups.
func CriteriaScope(criteria map[string]interface{}) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB { return applyCriteria(q, criteria) }
}

// Preload returns a scope eager-loading the named association.
func Preload(association string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB { return q.Preload(association) }
}

// Exists reports whether a row with the given primary key exists.
func (r *Repository[T]) Exists(id uint) (bool, error) {
	return r.ExistsByField("id", id)
}

// ExistsByField reports whether any row has column field equal to value.
func (r *Repository[T]) ExistsByField(field string, value interface{}) (bool, error) {
	var count int64
	var t T
	err := r.db.Model(&t).Where(field+" = ?", value).Count(&count).Error
	return count > 0, err
}

// Count returns the number of rows, optionally active ones only.
func (r *Repository[T]) Count(activeOnly bool) (int64, error) {
	var count int64
	var t T
	err := r.activeScope(r.db.Model(&t), activeOnly).Count(&count).Error
	return count, err
}

// CountByFilters counts rows matching every column=value pair.
func (r *Repository[T]) CountByFilters(filters map[string]interface{}, activeOnly bool) (int64, error) {
	var count int64
	var t T
	q := r.activeScope(r.db.Model(&t), activeOnly)
	if len(filters) > 0 {
		q = q.Where(filters)
	}
	err := q.Count(&count).Error
	return count, err
}

// schemaCache backs schema.Parse across Update calls.
var schemaCache = &sync.Map{}

// Update loads the row, applies the known columns from values, recomputes
// derived fields and saves. Keys may be either struct field names or column
// names; keys that match neither are silently ignored, as are attempts to
// set the primary key. Returns (nil, nil) when the row does not exist.
func (r *Repository[T]) Update(id uint, values map[string]interface{}) (*T, error) {
	entity, err := r.FindByID(id)
	if err != nil || entity == nil {
		return nil, err
	}

	sch, err := schema.Parse(entity, schemaCache, r.db.NamingStrategy)
	if err != nil {
		return nil, err
	}

	ctx := r.db.Statement.Context
	for key, value := range values {
		field := sch.LookUpField(key)
		if field == nil || field.PrimaryKey {
			continue
		}
		if err := field.Set(ctx, reflect.ValueOf(entity), value); err != nil {
			return nil, fmt.Errorf("no se puede asignar el campo %s: %w", key, err)
		}
	}

	recalc(entity)
	if err := r.db.Save(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes the row. With soft=true and a soft-deletable entity the flag
// column is set to false; otherwise the row is deleted outright. Returns
// whether a row was affected.
func (r *Repository[T]) Delete(id uint, soft bool) (bool, error) {
	col := r.softColumn()
	if soft && col != "" {
		var t T
		res := r.db.Model(&t).Where("id = ?", id).Update(col, false)
		return res.RowsAffected > 0, res.Error
	}
	return r.HardDelete(id)
}

// HardDelete removes the row unconditionally.
func (r *Repository[T]) HardDelete(id uint) (bool, error) {
	var t T
	res := r.db.Delete(&t, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Restore flips the soft-delete flag back on. Returns false for entities
// without a soft-delete column or when the row does not exist.
func (r *Repository[T]) Restore(id uint) (bool, error) {
	col := r.softColumn()
	if col == "" {
		return false, nil
	}
	var t T
	res := r.db.Model(&t).Where("id = ?", id).Update(col, true)
	return res.RowsAffected > 0, res.Error
}

// First returns the first row under the given ordering ("id" when empty),
// or (nil, nil) when the table is empty.
func (r *Repository[T]) First(orderBy string) (*T, error) {
	return r.edge(orderBy, false)
}

// Last returns the last row under the given ordering, or (nil, nil).
func (r *Repository[T]) Last(orderBy string) (*T, error) {
	return r.edge(orderBy, true)
}

func (r *Repository[T]) edge(orderBy string, desc bool) (*T, error) {
	if orderBy == "" {
		orderBy = "id"
	}
	if desc {
		orderBy += " DESC"
	}
	var entity T
	err := r.db.Order(orderBy).First(&entity).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Paginate returns the 1-indexed page under a stable ordering. Out-of-range
// inputs are clamped: page < 1 becomes 1, pageSize < 1 becomes
// DefaultPageSize. Requesting a page past the end yields an empty data slice
// with the counters intact, never an error.
func (r *Repository[T]) Paginate(page, pageSize int, activeOnly bool, orderBy string) (*Page[T], error) {
	return r.PaginateScoped(page, pageSize, activeOnly, orderBy)
}

// PaginateScoped is Paginate with extra scopes applied to both the count and
// the page query, so filtered lists keep accurate counters.
func (r *Repository[T]) PaginateScoped(page, pageSize int, activeOnly bool, orderBy string, scopes ...func(*gorm.DB) *gorm.DB) (*Page[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if orderBy == "" {
		orderBy = "id"
	}

	var t T
	var total int64
	err := r.activeScope(r.db.Model(&t), activeOnly).Scopes(scopes...).Count(&total).Error
	if err != nil {
		return nil, err
	}

	var entities []T
	err = r.activeScope(r.db, activeOnly).
		Scopes(scopes...).
		Order(orderBy).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&entities).Error
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return &Page[T]{
		Data:        entities,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// applyCriteria translates a criteria map into WHERE clauses. Shared by the
// generic and entity-specific repositories.
func applyCriteria(q *gorm.DB, criteria map[string]interface{}) *gorm.DB {
	for key, value := range criteria {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		column, op := splitLookup(key)
		switch op {
		case "gte":
			q = q.Where(column+" >= ?", value)
		case "lte":
			q = q.Where(column+" <= ?", value)
		case "gt":
			q = q.Where(column+" > ?", value)
		case "lt":
			q = q.Where(column+" < ?", value)
		case "icontains":
			q = q.Where("LOWER("+column+") LIKE LOWER(?)", "%"+fmt.Sprintf("%v", value)+"%")
		default:
			q = q.Where(column+" = ?", value)
		}
	}
	return q
}

// splitLookup separates "campo__gte" into ("campo", "gte"). A key without a
// recognized suffix is plain equality.
func splitLookup(key string) (column, op string) {
	idx := strings.LastIndex(key, "__")
	if idx < 0 {
		return key, ""
	}
	switch suffix := key[idx+2:]; suffix {
	case "gte", "lte", "gt", "lt", "icontains":
		return key[:idx], suffix
	}
	return key, ""
}
