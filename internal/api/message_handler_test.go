package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMessageRouter mounts the handler on the same paths the server uses so
// that chi URL parameters resolve.
func newMessageRouter(svc *mocks.MockMessageService) http.Handler {
	h := NewMessageHandler(svc, nil)
	r := chi.NewRouter()
	r.Post("/messages", h.CreateMessage)
	r.Get("/messages", h.GetAllMessages)
	r.Get("/messages/{messageId}", h.GetMessage)
	r.Delete("/messages/{messageId}", h.DeleteMessage)
	r.Patch("/messages/{messageId}", h.UpdateMessage)
	r.Get("/accounts/{accountId}/messages", h.GetMessagesByAccount)
	return r
}

func serve(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateMessage(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			CreateMessageFn: func(ctx context.Context, m *domain.Message) (*domain.Message, error) {
				assert.Equal(t, int64(1), m.PostedBy)
				assert.Equal(t, "hello", m.MessageText)
				saved := *m
				saved.ID = 3
				return &saved, nil
			},
		}
		rec := serve(t, newMessageRouter(svc), http.MethodPost, "/messages",
			`{"postedBy":1,"messageText":"hello","timePostedEpoch":1669947792}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.Message{ID: 3, PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1669947792}, got)
	})

	t.Run("invalid message", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			CreateMessageFn: func(ctx context.Context, m *domain.Message) (*domain.Message, error) {
				return nil, domain.NewValidationError("messageText", "must not be blank", nil)
			},
		}
		rec := serve(t, newMessageRouter(svc), http.MethodPost, "/messages", `{"postedBy":1,"messageText":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "messageText must not be blank")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(t, newMessageRouter(&mocks.MockMessageService{}), http.MethodPost, "/messages", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAllMessages(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		rec := serve(t, newMessageRouter(&mocks.MockMessageService{}), http.MethodGet, "/messages", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			GetAllMessagesFn: func(ctx context.Context) ([]*domain.Message, error) {
				return nil, errors.New("db down")
			},
		}
		rec := serve(t, newMessageRouter(svc), http.MethodGet, "/messages", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
	})
}

func TestGetMessage(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockMessageService{
		GetMessageByIDFn: func(ctx context.Context, id int64) (domain.Option[*domain.Message], error) {
			if id == 1 {
				return domain.Some(&domain.Message{ID: 1, PostedBy: 1, MessageText: "hi", TimePostedEpoch: 10}), nil
			}
			return domain.None[*domain.Message](), nil
		},
	}
	router := newMessageRouter(svc)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"found", "/messages/1", http.StatusOK, `{"messageId":1,"postedBy":1,"messageText":"hi","timePostedEpoch":10}`},
		{"not found", "/messages/99", http.StatusOK, ""},
		{"non-integer id", "/messages/abc", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			switch {
			case tt.wantBody != "":
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			case tt.wantStatus == http.StatusOK:
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestDeleteMessage(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockMessageService{
		DeleteMessageFn: func(ctx context.Context, id int64) (int, error) {
			if id == 1 {
				return 1, nil
			}
			return 0, nil
		},
	}
	router := newMessageRouter(svc)

	rec := serve(t, router, http.MethodDelete, "/messages/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `1`, rec.Body.String())

	rec = serve(t, router, http.MethodDelete, "/messages/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(t, router, http.MethodDelete, "/messages/x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMessage(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockMessageService{
		UpdateMessageFn: func(ctx context.Context, id int64, text string) (domain.Option[*domain.Message], error) {
			if err := domain.ValidateMessageText(text); err != nil {
				return domain.None[*domain.Message](), err
			}
			if id != 1 {
				return domain.None[*domain.Message](), nil
			}
			return domain.Some(&domain.Message{ID: 1, PostedBy: 1, MessageText: text}), nil
		},
	}
	router := newMessageRouter(svc)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"updated", "/messages/1", `{"messageText":"edited"}`, http.StatusOK},
		{"missing message", "/messages/2", `{"messageText":"edited"}`, http.StatusBadRequest},
		{"blank text", "/messages/1", `{"messageText":""}`, http.StatusBadRequest},
		{"whitespace text", "/messages/1", `{"messageText":"   "}`, http.StatusBadRequest},
		{"malformed body", "/messages/1", `nope`, http.StatusBadRequest},
		{"non-integer id", "/messages/one", `{"messageText":"edited"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, http.MethodPatch, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `1`, rec.Body.String())
			}
		})
	}

	// Bodies rejected during decoding or validation never reach the service.
	assert.Equal(t, 3, svc.UpdateCalls.Count)
	assert.Equal(t, []int64{1, 2, 1}, svc.UpdateCalls.IDs)
}

func TestGetMessagesByAccount(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockMessageService{
		GetMessagesByUserIDFn: func(ctx context.Context, userID int64) ([]*domain.Message, error) {
			if userID == 1 {
				return []*domain.Message{{ID: 1, PostedBy: 1, MessageText: "a"}}, nil
			}
			return []*domain.Message{}, nil
		},
	}
	router := newMessageRouter(svc)

	rec := serve(t, router, http.MethodGet, "/accounts/1/messages", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"messageId":1,"postedBy":1,"messageText":"a","timePostedEpoch":0}]`, rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/accounts/5/messages", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/accounts/x/messages", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
