package validation

import (
	"errors"
	"strings"
	"testing"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestStruct_BidInput(t *testing.T) {
	valid := strings.Repeat("a", 50)

	tests := []struct {
		name    string
		input   models.BidInput
		wantErr string
	}{
		{name: "valid", input: models.BidInput{Amount: 500, DeliveryTime: 7, Proposal: valid}},
		{name: "proposal_upper_bound", input: models.BidInput{Amount: 1, DeliveryTime: 1, Proposal: strings.Repeat("x", 1000)}},
		{name: "zero_amount", input: models.BidInput{Amount: 0, DeliveryTime: 7, Proposal: valid}, wantErr: "amount is required"},
		{name: "negative_amount", input: models.BidInput{Amount: -1, DeliveryTime: 7, Proposal: valid}, wantErr: "amount must be greater than 0"},
		{name: "zero_delivery", input: models.BidInput{Amount: 10, DeliveryTime: 0, Proposal: valid}, wantErr: "deliveryTime is required"},
		{name: "negative_delivery", input: models.BidInput{Amount: 10, DeliveryTime: -3, Proposal: valid}, wantErr: "deliveryTime must be greater than 0"},
		{name: "short_proposal", input: models.BidInput{Amount: 10, DeliveryTime: 3, Proposal: strings.Repeat("a", 49)}, wantErr: "proposal must be at least 50 characters"},
		{name: "long_proposal", input: models.BidInput{Amount: 10, DeliveryTime: 3, Proposal: strings.Repeat("a", 1001)}, wantErr: "proposal must be at most 1000 characters"},
		// 50 runes but more than 50 bytes
		{name: "multibyte_proposal", input: models.BidInput{Amount: 10, DeliveryTime: 3, Proposal: strings.Repeat("é", 50)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(tc.input)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, biddingerrors.ErrValidation))
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestStruct_StatusUpdate(t *testing.T) {
	require.NoError(t, Struct(models.StatusUpdateInput{Status: models.BidAccepted}))
	require.NoError(t, Struct(models.StatusUpdateInput{Status: models.BidRejected}))

	err := Struct(models.StatusUpdateInput{Status: models.BidCountered})
	require.ErrorIs(t, err, biddingerrors.ErrValidation)
	require.Contains(t, err.Error(), "status must be one of [accepted rejected]")
}

func TestStruct_ReportsEveryField(t *testing.T) {
	err := Struct(models.CounterOfferInput{})
	require.ErrorIs(t, err, biddingerrors.ErrValidation)
	require.Contains(t, err.Error(), "amount is required")
	require.Contains(t, err.Error(), "message is required")
}

func TestExplain(t *testing.T) {
	msg, ok := Explain(errors.New("unexpected EOF"))
	require.False(t, ok)
	require.Empty(t, msg)

	v := validator.New()
	v.SetTagName("binding")
	UseJSONNames(v)

	msg, ok = Explain(v.Struct(models.ProjectInput{Title: strings.Repeat("t", 201), Description: "d", Budget: -1}))
	require.True(t, ok)
	require.Equal(t, "title must be at most 200 characters; budget must be greater than 0", msg)
}
