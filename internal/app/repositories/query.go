package repositories

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql builds statements with PostgreSQL positional placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// searchCondition expands a search term into an OR of case-insensitive
// substring matches over the resource's text columns.
func searchCondition(term string, columns ...string) squirrel.Sqlizer {
	term = "%" + strings.TrimSpace(term) + "%"
	or := squirrel.Or{}
	for _, col := range columns {
		or = append(or, squirrel.ILike{col: term})
	}
	return or
}

// orderClause resolves a requested sort field against the resource's
// whitelisted column map. An unrecognized or absent field falls back to the
// resource default; direction defaults to ascending.
func orderClause(sortBy, sortOrder string, columns map[string]string, fallback string) string {
	col, ok := columns[sortBy]
	if !ok {
		return fallback
	}

	dir := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}
