package repository_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"tripseat/infras/otel/mocks"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/webhook/model"
	"tripseat/internal/domains/webhook/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertSQL = "INSERT INTO webhook_events (id, type, session_id, booking_id, kind, outcome, received_at) " +
	"VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING"

var normalizedEqual = sqlmock.QueryMatcherFunc(func(expected, actual string) error {
	if got := strings.Join(strings.Fields(actual), " "); got != expected {
		return fmt.Errorf("query mismatch:\n want %q\n  got %q", expected, got)
	}

	return nil
})

func newRepo(t *testing.T) (repository.Webhook, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(normalizedEqual))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestWebhookRepository_InsertIfAbsent(t *testing.T) {
	event := model.WebhookEvent{
		ID:         "evt_1",
		Type:       model.TypeSessionCompleted,
		SessionID:  "cs_1",
		BookingID:  "b-1",
		Kind:       "deposit",
		Outcome:    model.OutcomePending,
		ReceivedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "first delivery", affected: 1, want: true},
		{name: "redelivery", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectExec(insertSQL).
				WithArgs(event.ID, event.Type, event.SessionID, event.BookingID, event.Kind, event.Outcome, event.ReceivedAt).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			inserted, err := repo.InsertIfAbsent(context.Background(), event)

			require.NoError(t, err)
			assert.Equal(t, tt.want, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWebhookRepository_InsertIfAbsent_Error(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(insertSQL).WillReturnError(errors.New("connection reset"))

	inserted, err := repo.InsertIfAbsent(context.Background(), model.WebhookEvent{ID: "evt_1"})

	require.Error(t, err)
	assert.False(t, inserted)
}
