package shipment_test

import (
	"testing"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParties(t *testing.T) (shipment.Party, shipment.Party) {
	t.Helper()
	sender, err := shipment.NewParty("Acme Ltd", "011 555 0101", "1 Factory Rd, Johannesburg")
	require.NoError(t, err)
	recipient, err := shipment.NewParty("B. Nkosi", "082 555 0102", "22 Oak Ave, Durban")
	require.NoError(t, err)
	return sender, recipient
}

func validElements(t *testing.T) []shipment.Element {
	t.Helper()
	e, err := shipment.NewElement("Spare pump housing", "2")
	require.NoError(t, err)
	return []shipment.Element{e}
}

func TestFormatTrackingNumber(t *testing.T) {
	assert.Equal(t, "T1001", shipment.FormatTrackingNumber(1001))
	assert.Equal(t, "T1100", shipment.FormatTrackingNumber(1100))
}

func TestNewShipment(t *testing.T) {
	t.Run("creates a valid shipment", func(t *testing.T) {
		sender, recipient := validParties(t)

		s, err := shipment.NewShipment(
			kernel.NewUUID(),
			shipment.FormatTrackingNumber(1001),
			sender, recipient,
			validElements(t),
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "T1001", s.TrackingNumber())
		assert.Equal(t, "Acme Ltd", s.Sender().Name())
		assert.Len(t, s.Elements(), 1)
		assert.Nil(t, s.JobNumber())
		assert.Nil(t, s.CourierCharge())
		assert.False(t, s.CreatedAt().IsZero())
	})

	t.Run("rejects an invalid tracking number", func(t *testing.T) {
		sender, recipient := validParties(t)

		_, err := shipment.NewShipment(kernel.NewUUID(), "1001", sender, recipient, validElements(t))

		require.ErrorIs(t, err, shipment.ErrTrackingNumberIsInvalid)
	})

	t.Run("rejects empty element list", func(t *testing.T) {
		sender, recipient := validParties(t)

		_, err := shipment.NewShipment(
			kernel.NewUUID(), "T1001", sender, recipient, nil)

		require.ErrorIs(t, err, shipment.ErrElementsAreRequired)
	})

	t.Run("rejects unconstructed parties", func(t *testing.T) {
		_, recipient := validParties(t)

		_, err := shipment.NewShipment(
			kernel.NewUUID(), "T1001", shipment.Party{}, recipient, validElements(t))

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_OptionalFields(t *testing.T) {
	sender, recipient := validParties(t)
	s, err := shipment.NewShipment(
		kernel.NewUUID(), "T1001", sender, recipient, validElements(t))
	require.NoError(t, err)

	t.Run("links job and CE numbers", func(t *testing.T) {
		require.NoError(t, s.LinkJob("J-2041"))
		require.NoError(t, s.SetCENumber("CE-77"))

		require.NotNil(t, s.JobNumber())
		assert.Equal(t, "J-2041", *s.JobNumber())
		require.NotNil(t, s.CENumber())
		assert.Equal(t, "CE-77", *s.CENumber())
	})

	t.Run("records courier charge", func(t *testing.T) {
		charge, moneyErr := kernel.MoneyFromString("149.90")
		require.NoError(t, moneyErr)

		require.NoError(t, s.SetCourierCharge(charge))
		require.NotNil(t, s.CourierCharge())
		assert.Equal(t, "R 149.90", s.CourierCharge().Format())
	})

	t.Run("rejects empty job number", func(t *testing.T) {
		require.Error(t, s.LinkJob(""))
	})
}

func TestShipment_ReplaceElements(t *testing.T) {
	sender, recipient := validParties(t)
	s, err := shipment.NewShipment(
		kernel.NewUUID(), "T1001", sender, recipient, validElements(t))
	require.NoError(t, err)

	t.Run("replaces the full list", func(t *testing.T) {
		first, elemErr := shipment.NewElement("Control panel", "1")
		require.NoError(t, elemErr)
		second, elemErr := shipment.NewElement("Mounting brackets", "1 box")
		require.NoError(t, elemErr)

		require.NoError(t, s.ReplaceElements([]shipment.Element{first, second}))

		require.Len(t, s.Elements(), 2)
		assert.Equal(t, "Control panel", s.Elements()[0].Description())
		assert.Equal(t, "1 box", s.Elements()[1].Quantity())
	})

	t.Run("rejects empty replacement", func(t *testing.T) {
		require.ErrorIs(t, s.ReplaceElements(nil), shipment.ErrElementsAreRequired)
	})

	t.Run("rejects unconstructed elements", func(t *testing.T) {
		require.Error(t, s.ReplaceElements([]shipment.Element{{}}))
	})
}

func TestShipment_MarkCollected(t *testing.T) {
	sender, recipient := validParties(t)
	s, err := shipment.NewShipment(
		kernel.NewUUID(), "T1001", sender, recipient, validElements(t))
	require.NoError(t, err)

	assert.False(t, s.IsCollected())
	assert.Nil(t, s.CollectedAt())

	at := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, s.MarkCollected(at))

	assert.True(t, s.IsCollected())
	require.NotNil(t, s.CollectedAt())
	assert.Equal(t, at, *s.CollectedAt())

	require.ErrorIs(t, s.MarkCollected(at.Add(time.Hour)), shipment.ErrShipmentAlreadyCollected)
}

func TestRestoreShipment(t *testing.T) {
	sender, recipient := validParties(t)
	jobNumber := "J-2041"
	createdAt := time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC)
	collectedAt := createdAt.Add(48 * time.Hour)

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), "T1001", sender, recipient, validElements(t),
		&jobNumber, nil, nil, createdAt, &collectedAt)
	require.NoError(t, err)

	assert.Equal(t, createdAt, s.CreatedAt())
	require.NotNil(t, s.CollectedAt())
	assert.Equal(t, collectedAt, *s.CollectedAt())
	require.NotNil(t, s.JobNumber())
	assert.Equal(t, "J-2041", *s.JobNumber())
}

func TestNewElement(t *testing.T) {
	t.Run("requires a description", func(t *testing.T) {
		_, err := shipment.NewElement("", "2")
		require.Error(t, err)
	})

	t.Run("quantity is free-form text", func(t *testing.T) {
		e, err := shipment.NewElement("Cable drums", "bundle of 6")
		require.NoError(t, err)
		assert.Equal(t, "bundle of 6", e.Quantity())
	})
}
