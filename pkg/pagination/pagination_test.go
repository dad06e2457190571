package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 0, p.Offset())

	p = &PaginationParams{Page: 3, PerPage: 15}
	p.Validate()
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	last := NewPagination(3, 15, 31)
	assert.False(t, last.HasNext)
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	params := &CursorParams{Cursor: EncodeCursor("cust-42", created)}
	params.Validate()
	assert.Equal(t, CursorDirectionNext, params.Direction)
	assert.Equal(t, 15, params.Limit)

	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "cust-42", cursor.ID)
	assert.True(t, created.Equal(cursor.CreatedAt))
}

func TestDecodeCursorEmpty(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursorMalformed(t *testing.T) {
	params := &CursorParams{Cursor: "not-base64!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

type cursorRow struct {
	id      string
	created time.Time
}

func TestNewCursorPaginationTrimsExtraRow(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []cursorRow{
		{"a", base},
		{"b", base.Add(time.Minute)},
		{"c", base.Add(2 * time.Minute)},
	}

	pag, page := NewCursorPagination(rows, 2,
		func(r cursorRow) string { return r.id },
		func(r cursorRow) time.Time { return r.created })

	require.Len(t, page, 2)
	assert.True(t, pag.HasNext)
	require.NotNil(t, pag.NextCursor)
	assert.Equal(t, EncodeCursor("b", rows[1].created), *pag.NextCursor)

	pag, page = NewCursorPagination(page, 2,
		func(r cursorRow) string { return r.id },
		func(r cursorRow) time.Time { return r.created })
	assert.False(t, pag.HasNext)
	assert.Len(t, page, 2)
}
