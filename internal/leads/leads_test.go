package leads_test

import (
	"bus2ride/internal/leads"
	mockcrm "bus2ride/pkg/crm/mock"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/storage"
	mockstorage "bus2ride/pkg/storage/mock"
	"bus2ride/pkg/upstream"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func expectWithTx(ctrl *gomock.Controller, m *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func validLead() domain.Lead {
	return domain.Lead{Kind: domain.LeadKindQuote, Name: " Ann ", Email: "Ann <ann@example.com>", Passengers: 20}
}

func TestLeads_Submit_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := leads.New(mockstorage.NewMockStorage(ctrl), nil, leads.Options{})

	tests := []struct {
		name   string
		mutate func(*domain.Lead)
		msg    string
	}{
		{"bad kind", func(l *domain.Lead) { l.Kind = "spam" }, "kind must be one of: quote, contact"},
		{"missing name", func(l *domain.Lead) { l.Name = " " }, "name is required"},
		{"long name", func(l *domain.Lead) { l.Name = strings.Repeat("a", 129) }, "name must be at most 128 characters"},
		{"no contact", func(l *domain.Lead) { l.Email = ""; l.Phone = "  " }, "email or phone is required"},
		{"bad email", func(l *domain.Lead) { l.Email = "not-an-email" }, "invalid email"},
		{"negative passengers", func(l *domain.Lead) { l.Passengers = -1 }, "passengers must be between 0 and 200"},
		{"too many passengers", func(l *domain.Lead) { l.Passengers = 201 }, "passengers must be between 0 and 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validLead()
			tt.mutate(&in)

			_, err := l.Submit(context.Background(), in)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.Equal(t, tt.msg, serrors.MessageOf(err))
		})
	}
}

func TestLeads_Submit_StoresAndQueuesDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	l := leads.New(st, mockcrm.NewMockClient(ctrl), leads.Options{MaxAttempts: 7})

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLead(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, lead domain.Lead) (*domain.Lead, error) {
				require.True(t, strings.HasPrefix(string(lead.ID), "lead_"))
				require.Equal(t, "Ann", lead.Name)
				require.Equal(t, "ann@example.com", lead.Email)
				require.Equal(t, domain.LeadStatusReceived, lead.Status)

				return &lead, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				job, ok := args.(leads.DeliverJobArgs)
				require.True(t, ok)
				require.Equal(t, "DeliverLeadJob", job.Kind())
				require.Equal(t, 7, job.InsertOpts().MaxAttempts)
				require.True(t, strings.HasPrefix(string(job.LeadID), "lead_"))

				return true, nil
			})
	})

	res, err := l.Submit(context.Background(), validLead())
	require.NoError(t, err)
	require.Equal(t, domain.LeadStatusReceived, res.Status)
}

func TestLeads_Submit_WithoutCRMOnlyStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	l := leads.New(st, nil, leads.Options{})

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLead(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, lead domain.Lead) (*domain.Lead, error) { return &lead, nil })
	})

	in := validLead()
	in.Email = ""
	in.Phone = "555-0100"
	_, err := l.Submit(context.Background(), in)
	require.NoError(t, err)
}

func TestLeads_Submit_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	l := leads.New(st, nil, leads.Options{})

	boom := errors.New("boom")
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLead(gomock.Any(), gomock.Any()).Return(nil, boom)
	})

	_, err := l.Submit(context.Background(), validLead())
	require.ErrorIs(t, err, boom)
}

func TestLeads_Recent_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	l := leads.New(st, nil, leads.Options{})

	st.EXPECT().RecentLeads(gomock.Any(), uint(leads.DefaultLimit)).Return(nil, nil)
	st.EXPECT().RecentLeads(gomock.Any(), uint(leads.MaxLimit)).Return([]domain.Lead{{ID: "lead_1"}}, nil)

	_, err := l.Recent(context.Background(), 0)
	require.NoError(t, err)
	res, err := l.Recent(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestLeads_Deliver(t *testing.T) {
	stored := &domain.Lead{ID: "lead_1", Kind: domain.LeadKindContact, Name: "Ann", Status: domain.LeadStatusReceived}

	t.Run("delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		c := mockcrm.NewMockClient(ctrl)
		l := leads.New(st, c, leads.Options{})

		st.EXPECT().LeadByID(gomock.Any(), stored.ID).Return(stored, nil)
		c.EXPECT().DeliverLead(gomock.Any(), *stored).Return(nil)
		st.EXPECT().UpdateLead(gomock.Any(), stored.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.LeadID, u storage.LeadUpdates) (*domain.Lead, error) {
				require.Equal(t, domain.LeadStatusDelivered, u.Status)
				require.Empty(t, *u.LastError)

				return stored, nil
			})

		require.NoError(t, l.Deliver(context.Background(), stored.ID))
	})

	t.Run("rejected marks failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		c := mockcrm.NewMockClient(ctrl)
		l := leads.New(st, c, leads.Options{})

		st.EXPECT().LeadByID(gomock.Any(), stored.ID).Return(stored, nil)
		c.EXPECT().DeliverLead(gomock.Any(), gomock.Any()).Return(
			serrors.Wrap(serrors.ErrUpstream, &upstream.StatusError{Op: "deliver lead", StatusCode: 422, Body: "bad"}, "upstream error"))
		st.EXPECT().UpdateLead(gomock.Any(), stored.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.LeadID, u storage.LeadUpdates) (*domain.Lead, error) {
				require.Equal(t, domain.LeadStatusFailed, u.Status)
				require.Contains(t, *u.LastError, "deliver lead failed: bad")

				return stored, nil
			})

		err := l.Deliver(context.Background(), stored.ID)
		require.ErrorIs(t, err, serrors.ErrConflict)
		require.Equal(t, 422, upstream.StatusCode(err))
	})

	t.Run("throttled stays received", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		c := mockcrm.NewMockClient(ctrl)
		l := leads.New(st, c, leads.Options{})

		st.EXPECT().LeadByID(gomock.Any(), stored.ID).Return(stored, nil)
		c.EXPECT().DeliverLead(gomock.Any(), gomock.Any()).Return(
			serrors.Wrap(serrors.ErrRateLimited, &upstream.StatusError{StatusCode: 429}, "rate limited"))
		st.EXPECT().UpdateLead(gomock.Any(), stored.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.LeadID, u storage.LeadUpdates) (*domain.Lead, error) {
				require.Equal(t, domain.LeadStatusReceived, u.Status)

				return stored, nil
			})

		err := l.Deliver(context.Background(), stored.ID)
		require.ErrorIs(t, err, serrors.ErrRateLimited)
		require.NotErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("unknown or done leads conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		l := leads.New(st, mockcrm.NewMockClient(ctrl), leads.Options{})

		st.EXPECT().LeadByID(gomock.Any(), domain.LeadID("lead_x")).Return(nil, nil)
		require.ErrorIs(t, l.Deliver(context.Background(), "lead_x"), serrors.ErrConflict)

		done := *stored
		done.Status = domain.LeadStatusDelivered
		st.EXPECT().LeadByID(gomock.Any(), stored.ID).Return(&done, nil)
		err := l.Deliver(context.Background(), stored.ID)
		require.ErrorIs(t, err, serrors.ErrConflict)
		require.Equal(t, "lead is already delivered", serrors.MessageOf(err))
	})

	t.Run("disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := leads.New(mockstorage.NewMockStorage(ctrl), nil, leads.Options{})
		require.ErrorIs(t, l.Deliver(context.Background(), stored.ID), serrors.ErrConflict)
	})
}
