package realtime

import (
	"testing"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleBid() models.Bid {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Bid{
		ID:           "bid-1",
		ProjectID:    "project-1",
		FreelancerID: "freelancer-1",
		Amount:       500,
		DeliveryTime: 7,
		Proposal:     "proposal",
		Status:       models.BidCountered,
		CounterOffer: &models.CounterOffer{Amount: 450, Message: "Can you do 450?"},
		Revision:     2,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func TestEncodeDecode_AllInboundKinds(t *testing.T) {
	bid := sampleBid()
	sent := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []Event{
		NewBid{Bid: bid},
		BidStatusUpdated{Bid: bid},
		CounterOfferReceived{Bid: bid},
		CounterOfferAccepted{Bid: bid},
		MessageReceived{Message: models.Message{ID: "m1", SenderID: "a", RecipientID: "b", Body: "hi", SentAt: sent}},
		MessageRead{MessageID: "m1", ReaderID: "b", ReadAt: sent},
	}

	for _, ev := range events {
		ev := ev
		t.Run(string(ev.Kind()), func(t *testing.T) {
			t.Parallel()

			raw, err := Encode(ev)
			require.NoError(t, err)
			require.Contains(t, string(raw), `"event":"`+string(ev.Kind())+`"`)

			decoded, err := Decode(raw)
			require.NoError(t, err)
			require.Equal(t, ev, decoded)
		})
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"not_json":      `{nope`,
		"unknown_event": `{"event":"bid_withdrawn","data":{}}`,
		"bad_payload":   `{"event":"new_bid","data":"string"}`,
	}
	for name, raw := range cases {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(raw))
			require.ErrorIs(t, err, biddingerrors.ErrChannel)
		})
	}
}

func TestBidOf(t *testing.T) {
	bid, ok := BidOf(CounterOfferAccepted{Bid: sampleBid()})
	require.True(t, ok)
	require.Equal(t, "bid-1", bid.ID)

	_, ok = BidOf(MessageRead{MessageID: "m1"})
	require.False(t, ok)
}
