package postgres_adapter

import (
	"fmt"
	"strings"

	"github.com/nasser0p/realestate/internal/core/port"
)

// queryBuilder accumulates optional equality predicates with positional
// placeholders so List queries stay injection-safe.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{argID: 1}
}

func (qb *queryBuilder) addEquals(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d", column, qb.argID))
	qb.args = append(qb.args, value)
	qb.argID++
}

func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// applyListOptions turns the store's exact-field-equality options into a
// WHERE clause.
func applyListOptions(opts port.ListOptions) (string, []interface{}) {
	qb := newQueryBuilder()

	if opts.Status != "" {
		qb.addEquals("status", string(opts.Status))
	}
	if opts.Type != "" {
		qb.addEquals("type", string(opts.Type))
	}
	if opts.City != "" {
		qb.addEquals("city", opts.City)
	}
	if opts.FeaturedOnly {
		qb.addEquals("is_featured", true)
	}

	return qb.build()
}
