package repokit

import (
	"context"
	"fmt"
	"strings"

	"roster/internal/platform/store"
)

// Paging defaults and bounds shared by every list endpoint
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortMap maps external sort keys (folded to lower case) to SQL expressions.
// Every map must carry an "id" entry; it is the fallback sort
type SortMap map[string]string

// QuerySpec is the normalized list input shared by all list operations
type QuerySpec struct {
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

// Normalize clamps paging and resolves the sort key against allowed.
// Unknown or empty sort keys silently fall back to ascending id.
// Returns the normalized spec and the resolved SQL sort expression
func (s QuerySpec) Normalize(allowed SortMap) (QuerySpec, string) {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	if s.PageSize > MaxPageSize {
		s.PageSize = MaxPageSize
	}

	key := strings.ToLower(strings.TrimSpace(s.SortBy))
	expr, ok := allowed[key]
	if !ok {
		s.SortBy = "id"
		s.SortDesc = false
		expr = allowed["id"]
		if expr == "" {
			expr = "id"
		}
	} else {
		s.SortBy = key
	}
	return s, expr
}

// Offset converts page/size into the SQL offset
func (s QuerySpec) Offset() int { return (s.Page - 1) * s.PageSize }

// Cond accumulates WHERE clauses with numbered args.
// Clauses are always ANDed; each filter narrows the set
type Cond struct {
	clauses []string
	args    []any
}

// Arg registers a query argument and returns its placeholder
func (c *Cond) Arg(v any) string {
	c.args = append(c.args, v)
	return fmt.Sprintf("$%d", len(c.args))
}

// Contains adds a case-insensitive substring match on col
func (c *Cond) Contains(col, val string) {
	p := c.Arg("%" + escapeLike(val) + "%")
	c.clauses = append(c.clauses, fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, col, p))
}

// Eq adds an equality match on col
func (c *Cond) Eq(col string, v any) {
	c.clauses = append(c.clauses, fmt.Sprintf("%s = %s", col, c.Arg(v)))
}

// GTE adds an inclusive lower bound on col
func (c *Cond) GTE(col string, v any) {
	c.clauses = append(c.clauses, fmt.Sprintf("%s >= %s", col, c.Arg(v)))
}

// LTE adds an inclusive upper bound on col
func (c *Cond) LTE(col string, v any) {
	c.clauses = append(c.clauses, fmt.Sprintf("%s <= %s", col, c.Arg(v)))
}

// Where renders the accumulated clauses, empty string when none
func (c *Cond) Where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// Args returns the accumulated query arguments
func (c *Cond) Args() []any { return append([]any(nil), c.args...) }

// escapeLike neutralizes LIKE wildcards in user input
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// PagedResult is the uniform shape of every list response
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// ListArgs describes the SQL shape of one paged query
type ListArgs struct {
	// From is the table or join clause after FROM
	From string
	// Columns is the select list for the page query
	Columns string
	// IDCol is the stable tiebreak column, "id" when empty
	IDCol string
}

// List runs the shared two-query list protocol: count the filtered set,
// then fetch one sorted window of it. The count reflects filters only,
// never the window, so a page past the end returns an empty Items slice
// with the true TotalCount
func List[T any](
	ctx context.Context,
	q Queryer,
	a ListArgs,
	spec QuerySpec,
	allowed SortMap,
	c *Cond,
	scan func(Row) (T, error),
) (PagedResult[T], error) {
	var zero PagedResult[T]
	if c == nil {
		c = &Cond{}
	}
	spec, sortExpr := spec.Normalize(allowed)

	where := c.Where()
	total, err := store.Scalar[int64](ctx, q, "SELECT COUNT(*) FROM "+a.From+where, c.Args()...)
	if err != nil {
		return zero, err
	}

	idCol := a.IDCol
	if idCol == "" {
		idCol = "id"
	}
	dir := "ASC"
	if spec.SortDesc {
		dir = "DESC"
	}
	order := fmt.Sprintf(" ORDER BY %s %s", sortExpr, dir)
	if sortExpr != idCol {
		// deterministic paging for non-unique sort columns
		order += ", " + idCol + " ASC"
	}

	args := c.Args()
	args = append(args, spec.PageSize, spec.Offset())
	sql := fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT $%d OFFSET $%d",
		a.Columns, a.From, where, order, len(args)-1, len(args))

	items, err := store.Many(ctx, q, scan, sql, args...)
	if err != nil {
		return zero, err
	}
	if items == nil {
		items = []T{}
	}

	pages := int(total) / spec.PageSize
	if int(total)%spec.PageSize != 0 {
		pages++
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: total,
		Page:       spec.Page,
		PageSize:   spec.PageSize,
		TotalPages: pages,
	}, nil
}
