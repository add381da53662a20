package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/models"
	stateRepo "github.com/KirkDiggler/lootwheel/internal/repositories/state"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/KirkDiggler/lootwheel/internal/shuffle"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

const testToken = "s3cret"

type APITestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	service rotationService.Service
	handler http.Handler
	base    string
}

func (s *APITestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo, err := stateRepo.NewRedis(&stateRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	msg, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	svc, err := rotationService.New(&rotationService.Config{
		StateRepo:     repo,
		Messaging:     msg,
		Clock:         clock.Fixed(time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)),
		UUIDGenerator: uuid.NewSequence("id"),
		Shuffler:      shuffle.Reverse{},
	})
	s.Require().NoError(err)
	s.service = svc

	server, err := New(&Config{RotationService: svc, AdminToken: testToken})
	s.Require().NoError(err)
	s.handler = server.Handler()
	s.base = "/api/v1/guilds/guild-1"
}

func (s *APITestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) do(method, path, token string, payload any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := payload.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) admin(method, path string, payload any) *httptest.ResponseRecorder {
	return s.do(method, s.base+path, testToken, payload)
}

func (s *APITestSuite) decode(rec *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

// seedTable adds Alice, Bob and Cara and an epic Crystal
func (s *APITestSuite) seedTable() {
	for _, name := range []string{"Alice", "Bob", "Cara"} {
		rec := s.admin(http.MethodPost, "/members", body{"name": name})
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	}
	rec := s.admin(http.MethodPost, "/items", body{"name": "Crystal", "rarity": "epic"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

type body map[string]any

type turnResponse struct {
	Entry        *models.HistoryEntry `json:"entry"`
	FromDeferral bool                 `json:"fromDeferral"`
	Announcement string               `json:"announcement"`
	View         *engine.View         `json:"view"`
}

func (s *APITestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", "", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APITestSuite) TestStateOfNewGuild() {
	rec := s.do(http.MethodGet, s.base+"/state", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var view engine.View
	s.decode(rec, &view)
	s.Equal("guild-1", view.GuildID)
	s.Empty(view.Items)
}

func (s *APITestSuite) TestMutationsRequireToken() {
	testCases := []struct {
		name  string
		token string
	}{
		{name: "no token"},
		{name: "wrong token", token: "guess"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, s.base+"/members", tc.token, body{"name": "Alice"})
			s.Equal(http.StatusForbidden, rec.Code)
		})
	}
}

func (s *APITestSuite) TestEmptyAdminTokenDisablesMutations() {
	server, err := New(&Config{RotationService: s.service})
	s.Require().NoError(err)
	s.handler = server.Handler()

	rec := s.do(http.MethodPost, s.base+"/members", "", body{"name": "Alice"})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, s.base+"/members", "Bearer ", body{"name": "Alice"})
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *APITestSuite) TestLootAndHistory() {
	s.seedTable()

	rec := s.admin(http.MethodPost, "/items/Crystal/loot", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var out turnResponse
	s.decode(rec, &out)
	s.Equal("Alice looted Crystal! Next: Bob", out.Announcement)
	s.Equal("Bob", out.View.Items[0].Holder.Name)
	s.Equal(models.HistoryKindLoot, out.Entry.Kind)

	rec = s.do(http.MethodGet, s.base+"/history?limit=5", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var history struct {
		Entries []*models.HistoryEntry `json:"entries"`
	}
	s.decode(rec, &history)
	s.Require().Len(history.Entries, 1)
	s.Equal("Alice", history.Entries[0].ParticipantName)

	rec = s.do(http.MethodGet, s.base+"/history?limit=many", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestSkipThenLootRevisitsDeferredTurn() {
	s.seedTable()

	rec := s.admin(http.MethodPost, "/items/Crystal/skip", body{"participant": "Alice"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.admin(http.MethodPost, "/items/Crystal/loot", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var out turnResponse
	s.decode(rec, &out)
	s.True(out.FromDeferral)
	s.Equal("Alice", out.View.Items[0].Holder.Name)
}

func (s *APITestSuite) TestTurnErrors() {
	s.seedTable()

	rec := s.admin(http.MethodPost, "/items/Crystal/loot", body{"participant": "Bob"})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.admin(http.MethodPost, "/items/Sword/loot", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.admin(http.MethodPost, "/items/Crystal/swap", body{"counterpart": "Alice"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.admin(http.MethodPost, "/items/Crystal/swap", body{})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.admin(http.MethodPost, "/items", body{"name": "crystal"})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *APITestSuite) TestSwap() {
	s.seedTable()

	rec := s.admin(http.MethodPost, "/items/Crystal/swap", body{"counterpart": "Cara"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var out turnResponse
	s.decode(rec, &out)
	s.Equal("Alice swapped Crystal to Cara! Next: Bob", out.Announcement)
	s.Equal(models.HistoryKindSwap, out.Entry.Kind)
}

func (s *APITestSuite) TestOrdering() {
	s.seedTable()

	rec := s.admin(http.MethodPost, "/items/Crystal/reorder", body{"index": 0, "direction": "down"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var order struct {
		Order []string `json:"order"`
	}
	s.decode(rec, &order)
	s.Equal([]string{"Bob", "Alice", "Cara"}, order.Order)

	rec = s.admin(http.MethodPost, "/items/Crystal/reorder", body{"index": 0, "direction": "sideways"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.admin(http.MethodPost, "/items/Crystal/reorder", body{"index": 2, "direction": "down"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.admin(http.MethodPost, "/items/Crystal/order", body{"participants": []string{"Cara", "Bob", "Alice"}})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &order)
	s.Equal([]string{"Cara", "Bob", "Alice"}, order.Order)

	rec = s.admin(http.MethodPost, "/items/Crystal/randomize", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &order)
	s.ElementsMatch([]string{"Alice", "Bob", "Cara"}, order.Order)
}

func (s *APITestSuite) TestAdvanceAndReset() {
	s.seedTable()

	rec := s.admin(http.MethodPost, "/items/Crystal/advance", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var advance struct {
		Advanced bool   `json:"advanced"`
		Holder   string `json:"holder"`
	}
	s.decode(rec, &advance)
	s.True(advance.Advanced)
	s.Equal("Bob", advance.Holder)

	rec = s.admin(http.MethodPost, "/advance", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.admin(http.MethodPost, "/items/Crystal/reset", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var reset struct {
		Items int          `json:"items"`
		View  *engine.View `json:"view"`
	}
	s.decode(rec, &reset)
	s.Equal(1, reset.Items)
	s.Equal("Alice", reset.View.Items[0].Holder.Name)

	rec = s.admin(http.MethodPost, "/reset", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *APITestSuite) TestPendingQueue() {
	s.seedTable()

	rec := s.admin(http.MethodPost, "/pending", body{"name": "Feather", "rarity": "rare"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	rec = s.admin(http.MethodPost, "/pending", body{"name": "Flame", "priority": "urgent"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var queued struct {
		Position int `json:"position"`
	}
	s.decode(rec, &queued)
	s.Equal(0, queued.Position)

	rec = s.admin(http.MethodPost, "/pending", body{"name": "Orb", "priority": "someday"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.admin(http.MethodPost, "/pending/Flame/promote", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.admin(http.MethodDelete, "/pending/Feather", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var view struct {
		View *engine.View `json:"view"`
	}
	s.decode(rec, &view)
	s.Empty(view.View.Pending)
	s.Len(view.View.Items, 2)
}

func (s *APITestSuite) TestMembersAndItems() {
	s.seedTable()

	rec := s.admin(http.MethodPatch, "/members/Cara", body{"name": "Carol"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.admin(http.MethodDelete, "/members/Bob", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.admin(http.MethodPost, "/members", body{})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.admin(http.MethodDelete, "/items/Crystal", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, s.base+"/state", "", nil)
	var view engine.View
	s.decode(rec, &view)
	s.Empty(view.Items)
	s.Require().Len(view.Roster, 2)
	s.Equal("Carol", view.Roster[1].Name)
}

func (s *APITestSuite) TestExportImport() {
	s.seedTable()

	rec := s.do(http.MethodGet, s.base+"/export", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	snapshot := rec.Body.Bytes()

	rec = s.do(http.MethodPut, "/api/v1/guilds/guild-2/import", "", snapshot)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, "/api/v1/guilds/guild-2/import", testToken, snapshot)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var view engine.View
	s.decode(rec, &view)
	s.Equal("guild-2", view.GuildID)
	s.Len(view.Items, 1)

	rec = s.do(http.MethodPut, "/api/v1/guilds/guild-2/import", testToken, []byte("not json"))
	s.Equal(http.StatusBadRequest, rec.Code)
}
