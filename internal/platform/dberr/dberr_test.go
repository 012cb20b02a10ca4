package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/apperr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/dberr"
)

func uniqueViolation() error {
	return &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "favorite_userid_placeid_key",
	}
}

/*
TestIsUniqueViolation verifies the SQLSTATE 23505 classification the
idempotent favorite insert relies on, including errors wrapped further up
the chain.
*/
func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, dberr.IsUniqueViolation(uniqueViolation()))
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("insert favorite: %w", uniqueViolation())))

	assert.False(t, dberr.IsUniqueViolation(nil))
	assert.False(t, dberr.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
}

/*
TestIsForeignKeyViolation verifies the SQLSTATE 23503 classification.
*/
func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, dberr.IsForeignKeyViolation(uniqueViolation()))
	assert.False(t, dberr.IsForeignKeyViolation(errors.New("connection refused")))
}

/*
TestWrap covers the driver-to-application error mapping: missing rows,
constraint violations and unknown failures each land on their own
[apperr.AppError] kind.
*/
func TestWrap(t *testing.T) {
	t.Parallel()

	assert.NoError(t, dberr.Wrap(nil, "noop"))

	testCases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound},
		{name: "unique violation", err: uniqueViolation(), wantCode: "CONFLICT", wantStatus: http.StatusConflict},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, wantCode: "UNPROCESSABLE", wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown failure", err: errors.New("connection refused"), wantCode: "INTERNAL_ERROR", wantStatus: http.StatusInternalServerError},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			wrapped := dberr.Wrap(testCase.err, "test_action")
			appError := apperr.As(wrapped)
			require.NotNil(t, appError)
			assert.Equal(t, testCase.wantCode, appError.Code)
			assert.Equal(t, testCase.wantStatus, appError.HTTPStatus)
		})
	}
}

/*
TestWrap_NoRowsMatchesSentinel verifies that missing rows wrap to the shared
[dberr.ErrNotFound], so callers can branch with errors.Is.
*/
func TestWrap_NoRowsMatchesSentinel(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, dberr.Wrap(pgx.ErrNoRows, "get_place"), dberr.ErrNotFound)
}
