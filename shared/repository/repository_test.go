package repository

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/shared/failure"
)

type guestRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func TestRepository_InsertError(t *testing.T) {
	repo := NewRepository[guestRow]("booking", "guest_bookings", "id", nil, otelMocks.NewOtel())

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := repo.insertError(&pq.Error{Code: "23505"})
		require.Error(t, err)

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, http.StatusConflict, fail.Code)
		assert.Equal(t, "booking already exists", fail.Message)
	})

	t.Run("other driver errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")

		err := repo.insertError(cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to insert data (booking)")
	})
}
