package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	PartID   uuid.UUID `json:"partId" validate:"required"`
	Quantity int       `json:"quantity" validate:"gt=0"`
}

type order struct {
	Status string `json:"status" validate:"required,oneof=confirm cancel"`
	Items  []line `json:"items" validate:"required,min=1,dive"`
	Note   string `json:"-" validate:"max=3"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&order{Status: "confirm", Items: []line{{PartID: uuid.New(), Quantity: 1}}}))

	err := v.Validate(&order{
		Status: "ship",
		Items:  []line{{Quantity: 0}},
	})

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, FieldErrors{
		"status":            "oneof=confirm cancel",
		"items[0].partId":   "required",
		"items[0].quantity": "gt=0",
	}, fields)
	assert.Equal(t, "invalid input: items[0].partId: required; items[0].quantity: gt=0; status: oneof=confirm cancel", err.Error())
}
