package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCondition(t *testing.T) {
	sql, args, err := searchCondition("go engineer", "title", "company").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "(title ILIKE ? OR company ILIKE ?)", sql)
	assert.Equal(t, []interface{}{"%go engineer%", "%go engineer%"}, args)
}

func TestSearchConditionTrimsTerm(t *testing.T) {
	_, args, err := searchCondition("  lahore ", "location").ToSql()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"%lahore%"}, args)
}

func TestOrderClause(t *testing.T) {
	columns := map[string]string{
		"title":     "title",
		"createdAt": "created_at",
	}

	assert.Equal(t, "title ASC", orderClause("title", "", columns, "created_at DESC"))
	assert.Equal(t, "title ASC", orderClause("title", "asc", columns, "created_at DESC"))
	assert.Equal(t, "title DESC", orderClause("title", "desc", columns, "created_at DESC"))
	assert.Equal(t, "title DESC", orderClause("title", "DESC", columns, "created_at DESC"))
	assert.Equal(t, "created_at ASC", orderClause("createdAt", "", columns, "created_at DESC"))
}

func TestOrderClauseFallsBackOnUnknownField(t *testing.T) {
	columns := map[string]string{"title": "title"}

	assert.Equal(t, "created_at DESC", orderClause("", "", columns, "created_at DESC"))
	assert.Equal(t, "created_at DESC", orderClause("views; DROP TABLE jobs", "desc", columns, "created_at DESC"))
}
