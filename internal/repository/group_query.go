package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"eperson-backend/internal/database/models"
	apperrors "eperson-backend/internal/errors"

	"gorm.io/gorm"
)

const groupAlias = "g"

// filterOperator decides how the query value is compared with the joined metadata values
type filterOperator int

const (
	// operatorEquals matches the exact, case-sensitive value
	operatorEquals filterOperator = iota
	// operatorContains matches a case-insensitive substring
	operatorContains
)

// sortColumns maps the accepted plain sort columns onto group columns
var sortColumns = map[string]string{
	"name":       groupAlias + ".name",
	"id":         groupAlias + ".id",
	"created_at": groupAlias + ".created_at",
	"updated_at": groupAlias + ".updated_at",
}

// groupQuery is a query plan over groups, optionally joined to metadata values.
// Apply turns it into a gorm session; the value is always bound as @query.
type groupQuery struct {
	count       bool
	queryFields []models.MetadataField
	sortFields  []models.MetadataField
	sortColumn  string
	operator    filterOperator
	value       string
	offset      int
	limit       int
}

func newGroupQuery() *groupQuery {
	return &groupQuery{offset: -1, limit: -1}
}

func (q *groupQuery) Count() *groupQuery {
	q.count = true
	return q
}

// Filter restricts the result to groups where at least one of fields matches value.
// A blank value disables a contains filter while keeping the joins; an equals filter
// always applies, so a blank value only matches a blank value.
func (q *groupQuery) Filter(value string, op filterOperator, fields ...models.MetadataField) *groupQuery {
	q.value = value
	q.operator = op
	q.queryFields = fields
	return q
}

// SortBy orders by the given metadata fields, then by column
func (q *groupQuery) SortBy(column string, fields ...models.MetadataField) *groupQuery {
	q.sortColumn = column
	q.sortFields = fields
	return q
}

// Page sets offset and limit. Negative values leave the bound unset.
func (q *groupQuery) Page(offset, limit int) *groupQuery {
	q.offset = offset
	q.limit = limit
	return q
}

// joinFields returns queryFields followed by sortFields, each field once, first occurrence wins
func (q *groupQuery) joinFields() []models.MetadataField {
	seen := make(map[uint]struct{}, len(q.queryFields)+len(q.sortFields))
	fields := make([]models.MetadataField, 0, len(q.queryFields)+len(q.sortFields))
	for _, list := range [][]models.MetadataField{q.queryFields, q.sortFields} {
		for _, f := range list {
			if _, ok := seen[f.ID]; ok {
				continue
			}
			seen[f.ID] = struct{}{}
			fields = append(fields, f)
		}
	}
	return fields
}

func (q *groupQuery) filtered() bool {
	if len(q.queryFields) == 0 {
		return false
	}
	return q.operator == operatorEquals || strings.TrimSpace(q.value) != ""
}

// Apply builds the query on db
func (q *groupQuery) Apply(db *gorm.DB) (*gorm.DB, error) {
	tx := db.Table("groups AS " + groupAlias)
	if q.count {
		tx = tx.Select("COUNT(DISTINCT " + groupAlias + ".id)")
	} else {
		tx = tx.Select(groupAlias + ".*")
	}

	joins := q.joinFields()
	for _, f := range joins {
		alias := metadataAlias(f)
		tx = tx.Joins(fmt.Sprintf(
			"LEFT JOIN metadata_values AS %[1]s ON %[1]s.dspace_object_id = %[2]s.id AND %[1]s.metadata_field_id = ?",
			alias, groupAlias), f.ID)
	}

	if q.filtered() {
		predicates := make([]string, 0, len(q.queryFields))
		for _, f := range q.queryFields {
			predicates = append(predicates, q.predicate(metadataAlias(f)))
		}
		tx = tx.Where("("+strings.Join(predicates, " OR ")+")", sql.Named("query", q.bindValue()))
	}

	if q.count {
		return tx, nil
	}

	if len(joins) > 0 {
		tx = tx.Group(groupAlias + ".id")
	}

	for _, f := range q.sortFields {
		tx = tx.Order("MIN(" + metadataAlias(f) + ".text_value)")
	}
	if q.sortColumn != "" {
		column, ok := sortColumns[q.sortColumn]
		if !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSortColumn, q.sortColumn)
		}
		tx = tx.Order(column)
	} else if len(q.sortFields) == 0 {
		tx = tx.Order(groupAlias + ".name")
	}
	tx = tx.Order(groupAlias + ".id")

	if q.offset >= 0 {
		tx = tx.Offset(q.offset)
	}
	if q.limit >= 0 {
		tx = tx.Limit(q.limit)
	}
	return tx, nil
}

func (q *groupQuery) predicate(alias string) string {
	if q.operator == operatorContains {
		return "LOWER(" + alias + `.text_value) LIKE LOWER(@query) ESCAPE '\'`
	}
	return alias + ".text_value = @query"
}

func (q *groupQuery) bindValue() string {
	if q.operator == operatorContains {
		return "%" + escapeLike(q.value) + "%"
	}
	return q.value
}

// metadataAlias names the join for one field; fields are deduplicated by ID so it is unique per query
func metadataAlias(f models.MetadataField) string {
	return fmt.Sprintf("mv_%d", f.ID)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
