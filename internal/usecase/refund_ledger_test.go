package usecase_test

import (
	"context"
	"testing"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository/mocks"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerFixture struct {
	refunds       *mocks.MockRefundRepository
	flights       *mocks.MockFlightRepository
	notifications *mocks.MockNotificationRepository
	ledger        *usecase.RefundLedger
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	ctrl := gomock.NewController(t)
	f := &ledgerFixture{
		refunds:       mocks.NewMockRefundRepository(ctrl),
		flights:       mocks.NewMockFlightRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
	}
	f.ledger = usecase.NewRefundLedger(f.refunds, f.flights, f.notifications, entity.DefaultRefundAmount, newTestMetrics(), logger.NewNop())
	return f
}

func TestRefundLedger_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("empty amount takes the default", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.refunds.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.RefundRequest) error {
				assert.Equal(t, 5000, r.Amount)
				assert.Equal(t, "ABC123", r.PNR)
				assert.Equal(t, "ABC123", r.PassengerID)
				assert.Equal(t, entity.PayoutUPI, r.PayoutChannel)
				r.ID = 1
				r.Status = entity.RefundPending
				return nil
			})

		req, err := f.ledger.Submit(ctx, usecase.RefundSubmission{
			AirportCode: "DEL",
			FlightID:    "6E-213",
			PNR:         "abc123",
			Name:        "Aarav Sharma",
			UPIID:       "x@upi",
			Amount:      "",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), req.ID)
		assert.Equal(t, entity.RefundPending, req.Status)
	})

	tests := []struct {
		name       string
		submission usecase.RefundSubmission
		field      string
	}{
		{
			name:       "missing pnr",
			submission: usecase.RefundSubmission{AirportCode: "DEL", FlightID: "6E-213", Name: "A", UPIID: "x@upi"},
			field:      "pnr",
		},
		{
			name:       "missing name",
			submission: usecase.RefundSubmission{AirportCode: "DEL", FlightID: "6E-213", PNR: "ABC123", UPIID: "x@upi"},
			field:      "name",
		},
		{
			name:       "empty upi id",
			submission: usecase.RefundSubmission{AirportCode: "DEL", FlightID: "6E-213", PNR: "ABC123", Name: "A", UPIID: "  "},
			field:      "upi_id",
		},
		{
			name:       "negative amount",
			submission: usecase.RefundSubmission{AirportCode: "DEL", FlightID: "6E-213", PNR: "ABC123", Name: "A", UPIID: "x@upi", Amount: "-1"},
			field:      "amount",
		},
		{
			name:       "amount out of range",
			submission: usecase.RefundSubmission{AirportCode: "DEL", FlightID: "6E-213", PNR: "ABC123", Name: "A", UPIID: "x@upi", Amount: "1e30"},
			field:      "amount",
		},
		{
			name:       "unknown payout channel",
			submission: usecase.RefundSubmission{AirportCode: "DEL", FlightID: "6E-213", PNR: "ABC123", Name: "A", PayoutChannel: "cash"},
			field:      "payout_channel",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newLedgerFixture(t)

			_, err := f.ledger.Submit(ctx, tc.submission)
			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	t.Run("original payout needs no upi id", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.refunds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req, err := f.ledger.Submit(ctx, usecase.RefundSubmission{
			AirportCode: "DEL", FlightID: "6E-213", PNR: "ABC123", Name: "A", PayoutChannel: "ORIGINAL", Amount: "1200.75",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.PayoutOriginal, req.PayoutChannel)
		assert.Equal(t, 1200, req.Amount)
	})
}

func TestRefundLedger_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("completes the pending request", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.refunds.EXPECT().
			Resolve(gomock.Any(), "DEL", "6E-213", "P1", entity.RefundCompleted, gomock.Any()).
			Return(&entity.RefundRequest{ID: 7, Status: entity.RefundCompleted}, nil)

		req, err := f.ledger.Finalize(ctx, "del", "6E-213", "P1")
		require.NoError(t, err)
		assert.Equal(t, entity.RefundCompleted, req.Status)
	})

	t.Run("nothing pending leaves the ledger unchanged", func(t *testing.T) {
		f := newLedgerFixture(t)
		pending := []*entity.RefundRequest{{ID: 3, PassengerID: "P2", Status: entity.RefundPending}}

		f.refunds.EXPECT().ListPending(gomock.Any(), "DEL", "6E-213").Return(pending, nil).Times(2)
		f.refunds.EXPECT().
			Resolve(gomock.Any(), "DEL", "6E-213", "P1", entity.RefundCompleted, gomock.Any()).
			Return(nil, entity.ErrNotFound)

		before, err := f.ledger.ListPending(ctx, "DEL", "6E-213")
		require.NoError(t, err)

		_, err = f.ledger.Finalize(ctx, "DEL", "6E-213", "P1")
		assert.ErrorIs(t, err, entity.ErrNotFound)

		after, err := f.ledger.ListPending(ctx, "DEL", "6E-213")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("reject", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.refunds.EXPECT().
			Resolve(gomock.Any(), "DEL", "6E-213", "P1", entity.RefundRejected, gomock.Any()).
			Return(&entity.RefundRequest{ID: 8, Status: entity.RefundRejected}, nil)

		req, err := f.ledger.Reject(ctx, "DEL", "6E-213", "P1")
		require.NoError(t, err)
		assert.Equal(t, entity.RefundRejected, req.Status)
	})

	t.Run("passenger id is required", func(t *testing.T) {
		f := newLedgerFixture(t)

		_, err := f.ledger.Finalize(ctx, "DEL", "6E-213", " ")
		assert.True(t, entity.IsValidation(err))
	})
}

func TestRefundLedger_AssignResource(t *testing.T) {
	ctx := context.Background()

	t.Run("appends an INFO notification to the passenger PNR", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight6E213(entity.FlightCancelled), nil)
		f.notifications.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *entity.Notification) (string, error) {
				assert.Equal(t, "XYZ789", n.PNR)
				assert.Equal(t, entity.NotificationInfo, n.Type)
				assert.Equal(t, "Hotel assigned for flight 6E-213", n.Message)
				n.ID = "n9"
				return n.ID, nil
			})

		n, err := f.ledger.AssignResource(ctx, "DEL", "6E-213", "P3", "HOTEL")
		require.NoError(t, err)
		assert.Equal(t, "n9", n.ID)
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newLedgerFixture(t)

		_, err := f.ledger.AssignResource(ctx, "DEL", "6E-213", "P3", "spa")
		assert.True(t, entity.IsValidation(err))
	})

	t.Run("unknown passenger", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight6E213(entity.FlightCancelled), nil)

		_, err := f.ledger.AssignResource(ctx, "DEL", "6E-213", "P404", "meal")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestRefundLedger_ImpactSummary(t *testing.T) {
	f := newLedgerFixture(t)
	f.flights.EXPECT().
		List(gomock.Any(), entity.FlightFilter{AirportCode: "DEL", Status: entity.FlightCancelled}).
		Return([]*entity.Flight{flight6E213(entity.FlightCancelled)}, nil)

	impact, err := f.ledger.ImpactSummary(context.Background(), "del")
	require.NoError(t, err)
	assert.Equal(t, []entity.FlightImpact{{FlightID: "6E-213", Count: 3}}, impact)
}

func TestRefundLedger_AffectedManifest(t *testing.T) {
	f := newLedgerFixture(t)
	f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "AI-101").Return(&entity.Flight{AirportCode: "DEL", FlightID: "AI-101"}, nil)

	passengers, err := f.ledger.AffectedManifest(context.Background(), "DEL", "AI-101")
	require.NoError(t, err)
	assert.NotNil(t, passengers)
	assert.Empty(t, passengers)
}
