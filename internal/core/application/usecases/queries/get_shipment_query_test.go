package queries_test

import (
	"testing"

	"courierdocs/internal/core/application/usecases/queries"
	"courierdocs/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetShipmentQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
