package database

import (
	"fmt"
	"strings"
	"time"
)

// Search columns per entity. Only these names ever reach a WHERE clause.
var (
	clientSearchColumns  = []string{"company", "contact", "email", "phone", "status"}
	projectSearchColumns = []string{"name", "client", "manager", "status", "budget"}
	reportSearchColumns  = []string{"project", "manager", "status"}
	userSearchColumns    = []string{"full_name", "role", "email", "phone", "status"}
)

const dateLayout = "2006-01-02"

// QueryBuilder assembles a parameterized WHERE clause. Condition groups
// are AND-ed; the columns within a search group are OR-ed.
type QueryBuilder struct {
	conditions []string
	args       []interface{}
	argCount   int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		conditions: []string{},
		args:       []interface{}{},
		argCount:   1,
	}
}

// AddSearch adds a case-insensitive substring match across the given
// columns. An empty or whitespace-only term adds nothing, so the full
// list matches. A single placeholder is shared by all columns.
func (qb *QueryBuilder) AddSearch(term string, columns []string) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return
	}

	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, qb.argCount)
	}

	qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
	qb.args = append(qb.args, "%"+escapeLike(term)+"%")
	qb.argCount++
}

// AddDateRange bounds a timestamp column by inclusive calendar dates
// interpreted in the business timezone: from the start of the "from" day
// through 23:59:59 of the "to" day.
func (qb *QueryBuilder) AddDateRange(column, from, to string, loc *time.Location) error {
	if from != "" {
		day, err := time.ParseInLocation(dateLayout, from, loc)
		if err != nil {
			return fmt.Errorf("invalid from date: %w", ErrInvalidDate)
		}
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s >= $%d", column, qb.argCount))
		qb.args = append(qb.args, day)
		qb.argCount++
	}

	if to != "" {
		day, err := time.ParseInLocation(dateLayout, to, loc)
		if err != nil {
			return fmt.Errorf("invalid to date: %w", ErrInvalidDate)
		}
		// end of day from calendar components, not an absolute
		// duration: on DST-transition days the two differ by an hour
		endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, loc)
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s <= $%d", column, qb.argCount))
		qb.args = append(qb.args, endOfDay)
		qb.argCount++
	}

	return nil
}

func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}

func (qb *QueryBuilder) NextArgNum() int {
	return qb.argCount
}

// escapeLike neutralizes LIKE metacharacters so the term matches as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
