package http_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	handlers "github.com/rdinit/hackathonService/internal/adapter/handler/http"
	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/middleware/auth"
	"github.com/rdinit/hackathonService/internal/usecase"
)

func TestHackathonHandler_Upsert(t *testing.T) {
	user := &auth.AuthUser{UserID: uuid.New()}
	body := `{
		"name": "Spring AI",
		"task_description": "Build an assistant",
		"start_of_registration": "2024-06-01T00:00:00Z",
		"end_of_registration": "2024-06-08T00:00:00Z",
		"start_of_hack": "2024-06-10T09:00:00Z",
		"end_of_hack": "2024-06-12T18:00:00Z",
		"amount_money": "10000.00",
		"type": "online"
	}`

	t.Run("stored", func(t *testing.T) {
		svc := new(MockHackathonUsecase)
		e := newTestEcho(user)
		e.POST("/hackathon", handlers.NewHackathonHandler(svc, zap.NewNop()).Upsert)

		id := uuid.New()
		svc.On("Upsert", mock.Anything, mock.MatchedBy(func(in usecase.HackathonInput) bool {
			return in.Name == "Spring AI" && in.StartOfHack.Hour() == 9 && in.AmountMoney.StringFixed(2) == "10000.00"
		})).Return(id, nil)

		rec := serve(e, http.MethodPost, "/hackathon", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), id.String())
	})

	t.Run("window validation error", func(t *testing.T) {
		svc := new(MockHackathonUsecase)
		e := newTestEcho(user)
		e.POST("/hackathon", handlers.NewHackathonHandler(svc, zap.NewNop()).Upsert)

		svc.On("Upsert", mock.Anything, mock.Anything).Return(uuid.Nil, domainErrors.ErrInvalidHackathonWindow)

		rec := serve(e, http.MethodPost, "/hackathon", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing dates", func(t *testing.T) {
		e := newTestEcho(user)
		e.POST("/hackathon", handlers.NewHackathonHandler(new(MockHackathonUsecase), zap.NewNop()).Upsert)

		rec := serve(e, http.MethodPost, "/hackathon", `{"name":"x","type":"online"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "start_of_registration: is required")
	})
}
