package queries_test

import (
	"testing"

	"courierdocs/internal/core/application/usecases/queries"
	"courierdocs/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryNoteQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDeliveryNoteQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetDeliveryNoteQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetDeliveryNoteQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetDeliveryNoteQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryNoteQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryNoteQueryIsNotConstructed)
}
