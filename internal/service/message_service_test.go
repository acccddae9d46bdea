package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/mocks"
	"github.com/phrazzld/social-api/internal/platform/memory"
	"github.com/phrazzld/social-api/internal/service"
	"github.com/phrazzld/social-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	svc      *service.MessageServiceImpl
	accounts *service.AccountServiceImpl
	author   *domain.Account
}

func newMessageFixture(t *testing.T) messageFixture {
	t.Helper()

	db := memory.New()
	accounts := service.NewAccountService(db.Accounts(), nil, nil)
	author, err := accounts.RegisterAccount(context.Background(),
		&domain.Account{Username: "author", Password: "secret"})
	require.NoError(t, err)

	return messageFixture{
		svc:      service.NewMessageService(db.Messages(), db.Accounts(), nil),
		accounts: accounts,
		author:   author,
	}
}

func TestCreateMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		postedBy func(author int64) int64
		wantErr  error
	}{
		{"single character", "a", nil, nil},
		{"exactly 255 characters", strings.Repeat("x", 255), nil, nil},
		{"255 multibyte characters", strings.Repeat("é", 255), nil, nil},
		{"empty text", "", nil, domain.ErrInvalidInput},
		{"whitespace text", " \t\n", nil, domain.ErrInvalidInput},
		{"256 characters", strings.Repeat("x", 256), nil, domain.ErrInvalidInput},
		{"unknown author", "hello", func(int64) int64 { return 9999 }, domain.ErrInvalidInput},
		{"missing author", "hello", func(int64) int64 { return 0 }, domain.ErrInvalidInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newMessageFixture(t)

			postedBy := f.author.ID
			if tc.postedBy != nil {
				postedBy = tc.postedBy(f.author.ID)
			}

			got, err := f.svc.CreateMessage(context.Background(), &domain.Message{
				PostedBy:        postedBy,
				MessageText:     tc.text,
				TimePostedEpoch: 1669947792,
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				all, listErr := f.svc.GetAllMessages(context.Background())
				require.NoError(t, listErr)
				assert.Empty(t, all, "nothing should be persisted")
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tc.text, got.MessageText)
			assert.Equal(t, int64(1669947792), got.TimePostedEpoch)
		})
	}
}

func TestCreateMessage_StampsTime(t *testing.T) {
	t.Parallel()
	f := newMessageFixture(t)
	fixed := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	f.svc.SetTimeFunc(func() time.Time { return fixed })

	got, err := f.svc.CreateMessage(context.Background(), &domain.Message{
		PostedBy:    f.author.ID,
		MessageText: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, fixed.Unix(), got.TimePostedEpoch)
}

func TestCreateMessage_IgnoresClientID(t *testing.T) {
	t.Parallel()
	f := newMessageFixture(t)

	got, err := f.svc.CreateMessage(context.Background(), &domain.Message{
		ID:          77,
		PostedBy:    f.author.ID,
		MessageText: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestCreateMessage_AuthorRemovedBeforeInsert(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountStore{
		ExistsByIDFn: func(context.Context, int64) (bool, error) { return true, nil },
	}
	messages := &mocks.MockMessageStore{
		SaveFn: func(context.Context, *domain.Message) (*domain.Message, error) {
			return nil, store.ErrInvalidEntity
		},
	}
	svc := service.NewMessageService(messages, accounts, nil)

	_, err := svc.CreateMessage(context.Background(), &domain.Message{PostedBy: 1, MessageText: "hello"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetMessages(t *testing.T) {
	t.Parallel()
	f := newMessageFixture(t)
	ctx := context.Background()

	other, err := f.accounts.RegisterAccount(ctx, &domain.Account{Username: "other", Password: "secret"})
	require.NoError(t, err)
	lonely, err := f.accounts.RegisterAccount(ctx, &domain.Account{Username: "lonely", Password: "secret"})
	require.NoError(t, err)

	var authored []int64
	for i, author := range []int64{f.author.ID, other.ID, f.author.ID} {
		msg, err := f.svc.CreateMessage(ctx, &domain.Message{
			PostedBy:        author,
			MessageText:     "message",
			TimePostedEpoch: int64(i + 1),
		})
		require.NoError(t, err)
		if author == f.author.ID {
			authored = append(authored, msg.ID)
		}
	}

	all, err := f.svc.GetAllMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := f.svc.GetMessagesByUserID(ctx, f.author.ID)
	require.NoError(t, err)
	var ids []int64
	for _, m := range mine {
		assert.Equal(t, f.author.ID, m.PostedBy)
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, authored, ids)

	none, err := f.svc.GetMessagesByUserID(ctx, lonely.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	found, err := f.svc.GetMessageByID(ctx, authored[0])
	require.NoError(t, err)
	assert.False(t, found.IsNone())

	missing, err := f.svc.GetMessageByID(ctx, 9999)
	require.NoError(t, err)
	assert.True(t, missing.IsNone())
}

func TestDeleteMessage(t *testing.T) {
	t.Parallel()
	f := newMessageFixture(t)
	ctx := context.Background()

	msg, err := f.svc.CreateMessage(ctx, &domain.Message{PostedBy: f.author.ID, MessageText: "bye"})
	require.NoError(t, err)

	n, err := f.svc.DeleteMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for i := 0; i < 3; i++ {
		n, err = f.svc.DeleteMessage(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}

	n, err = f.svc.DeleteMessage(ctx, 9999)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUpdateMessage(t *testing.T) {
	t.Parallel()
	f := newMessageFixture(t)
	ctx := context.Background()

	msg, err := f.svc.CreateMessage(ctx, &domain.Message{
		PostedBy:        f.author.ID,
		MessageText:     "original",
		TimePostedEpoch: 1669947792,
	})
	require.NoError(t, err)

	t.Run("invalid text leaves message unchanged", func(t *testing.T) {
		for _, text := range []string{"", "   ", strings.Repeat("x", 256)} {
			got, err := f.svc.UpdateMessage(ctx, msg.ID, text)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.True(t, got.IsNone())
		}

		current, err := f.svc.GetMessageByID(ctx, msg.ID)
		require.NoError(t, err)
		stored, _ := current.Get()
		assert.Equal(t, "original", stored.MessageText)
	})

	t.Run("missing message", func(t *testing.T) {
		got, err := f.svc.UpdateMessage(ctx, 9999, "new text")
		require.NoError(t, err)
		assert.True(t, got.IsNone())
	})

	t.Run("success", func(t *testing.T) {
		got, err := f.svc.UpdateMessage(ctx, msg.ID, "updated")
		require.NoError(t, err)
		updated, ok := got.Get()
		require.True(t, ok)
		assert.Equal(t, "updated", updated.MessageText)
		assert.Equal(t, msg.PostedBy, updated.PostedBy)
		assert.Equal(t, msg.TimePostedEpoch, updated.TimePostedEpoch)
	})
}

func TestMessageService_StoreFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("database unavailable")
	svc := service.NewMessageService(
		&mocks.MockMessageStore{Err: boom},
		&mocks.MockAccountStore{Err: boom},
		nil,
	)
	ctx := context.Background()

	_, err := svc.CreateMessage(ctx, &domain.Message{PostedBy: 1, MessageText: "hi"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetAllMessages(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetMessageByID(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetMessagesByUserID(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = svc.DeleteMessage(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = svc.UpdateMessage(ctx, 1, "hi")
	assert.ErrorIs(t, err, boom)
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	db := memory.New()
	accounts := service.NewAccountService(db.Accounts(), nil, nil)
	messages := service.NewMessageService(db.Messages(), db.Accounts(), nil)
	ctx := context.Background()

	bob, err := accounts.RegisterAccount(ctx, &domain.Account{Username: "bob", Password: "pass12345"})
	require.NoError(t, err)

	login, err := accounts.LoginAccount(ctx, "bob", "pass12345")
	require.NoError(t, err)
	require.False(t, login.IsNone())

	msg, err := messages.CreateMessage(ctx, &domain.Message{MessageText: "hi", PostedBy: bob.ID})
	require.NoError(t, err)

	byBob, err := messages.GetMessagesByUserID(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, byBob, 1)
	assert.Equal(t, msg.ID, byBob[0].ID)

	n, err := messages.DeleteMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	gone, err := messages.GetMessageByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, gone.IsNone())
}
