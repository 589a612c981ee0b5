package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/smashcrew/teambalance/internal/assign"
	"github.com/smashcrew/teambalance/internal/models"
	"github.com/smashcrew/teambalance/internal/services/tournament"
	"github.com/smashcrew/teambalance/internal/services/tournament/mocks"
)

const (
	testAdminPassword = "test-admin-password"
	testSessionSecret = "test-session-secret"
)

type WebHandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *mocks.MockService
	server      *httptest.Server

	testTime time.Time
}

func (s *WebHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.mockCtrl)
	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	handler, err := New(&Config{
		Service:       s.mockService,
		AdminPassword: testAdminPassword,
		SessionSecret: testSessionSecret,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(Routes(handler))
}

func (s *WebHandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestWebHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebHandlerTestSuite))
}

// request performs an HTTP call against the test server, attaching the
// given cookies and decoding the JSON response into dst when non-nil.
func (s *WebHandlerTestSuite) request(method, path, body string, cookies []*http.Cookie, dst any) *http.Response {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)

	if dst != nil {
		defer resp.Body.Close()
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(dst))
	} else {
		resp.Body.Close()
	}

	return resp
}

// login authenticates as admin and returns the session cookies
func (s *WebHandlerTestSuite) login() []*http.Cookie {
	resp := s.request(http.MethodPost, "/api/admin/login", `{"password":"`+testAdminPassword+`"}`, nil, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NotEmpty(resp.Cookies())
	return resp.Cookies()
}

// Session tests

func (s *WebHandlerTestSuite) TestLogin_WrongPassword() {
	var body errorResponse
	resp := s.request(http.MethodPost, "/api/admin/login", `{"password":"nope"}`, nil, &body)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("invalid password", body.Error)
	s.Empty(resp.Cookies())
}

func (s *WebHandlerTestSuite) TestAdminRoutes_RequireSession() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/assign"},
		{http.MethodPost, "/api/admin/assign"},
		{http.MethodDelete, "/api/admin/assign"},
		{http.MethodGet, "/api/admin/publish"},
		{http.MethodPost, "/api/admin/publish"},
		{http.MethodGet, "/api/admin/teams"},
		{http.MethodPut, "/api/admin/teams"},
		{http.MethodGet, "/api/admin/players"},
		{http.MethodDelete, "/api/admin/players"},
	}

	for _, p := range paths {
		var body errorResponse
		resp := s.request(p.method, p.path, "", nil, &body)

		s.Equal(http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
		s.Equal("authentication required", body.Error)
	}
}

func (s *WebHandlerTestSuite) TestLogout_InvalidatesSession() {
	cookies := s.login()

	resp := s.request(http.MethodDelete, "/api/admin/login", "", cookies, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// The logout response carries the expired cookie
	expired := resp.Cookies()
	resp = s.request(http.MethodGet, "/api/admin/players", "", expired, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

// Registration tests

func (s *WebHandlerTestSuite) TestRegister_HappyPath() {
	s.mockService.EXPECT().
		RegisterParticipant(gomock.Any(), &tournament.RegisterParticipantInput{
			Name:  "Alice",
			Level: 3,
		}).
		Return(&tournament.RegisterParticipantOutput{
			ParticipantID: "p1",
			Token:         "abc123",
		}, nil)

	var body registerResponse
	resp := s.request(http.MethodPost, "/api/register", `{"name":"Alice","level":3}`, nil, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.Success)
	s.Equal("abc123", body.Token)
}

func (s *WebHandlerTestSuite) TestRegister_ValidationErrors() {
	s.mockService.EXPECT().
		RegisterParticipant(gomock.Any(), gomock.Any()).
		Return(nil, tournament.ErrInvalidName)

	var body errorResponse
	resp := s.request(http.MethodPost, "/api/register", `{"name":"","level":3}`, nil, &body)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("name is required", body.Error)

	s.mockService.EXPECT().
		RegisterParticipant(gomock.Any(), gomock.Any()).
		Return(nil, tournament.ErrInvalidLevel)

	resp = s.request(http.MethodPost, "/api/register", `{"name":"Alice","level":9}`, nil, &body)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("level must be between 1 and 5", body.Error)
}

func (s *WebHandlerTestSuite) TestRegister_MalformedBody() {
	var body errorResponse
	resp := s.request(http.MethodPost, "/api/register", `{not json`, nil, &body)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("invalid request body", body.Error)
}

// Result tests

func (s *WebHandlerTestSuite) TestResult_MissingToken() {
	var body errorResponse
	resp := s.request(http.MethodGet, "/api/result", "", nil, &body)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("token is required", body.Error)
}

func (s *WebHandlerTestSuite) TestResult_UnknownToken() {
	s.mockService.EXPECT().
		GetResultForToken(gomock.Any(), &tournament.GetResultForTokenInput{Token: "nope"}).
		Return(nil, tournament.ErrParticipantNotFound)

	var body errorResponse
	resp := s.request(http.MethodGet, "/api/result?t=nope", "", nil, &body)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("participant not found", body.Error)
}

func (s *WebHandlerTestSuite) TestResult_Published() {
	p := &models.Participant{
		ID:        "p1",
		Name:      "Alice",
		Level:     3,
		Token:     "abc123",
		TeamID:    "team-a",
		CreatedAt: s.testTime,
	}
	myTeam := &assign.TeamPreview{
		ID:          "team-a",
		Name:        "Team A",
		Members:     []*models.Participant{p},
		Score:       3,
		MemberCount: 1,
	}

	s.mockService.EXPECT().
		GetResultForToken(gomock.Any(), &tournament.GetResultForTokenInput{Token: "abc123"}).
		Return(&tournament.GetResultForTokenOutput{
			Participant: p,
			MyTeam:      myTeam,
			AllTeams:    []*assign.TeamPreview{myTeam},
			IsPublished: true,
		}, nil)

	var body resultResponse
	resp := s.request(http.MethodGet, "/api/result?t=abc123", "", nil, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.IsPublished)
	s.Equal("abc123", body.Participant.Token)
	s.Require().NotNil(body.MyTeam)
	s.Equal("Team A", body.MyTeam.Name)
	s.Require().Len(body.AllTeams, 1)
	s.Equal(3, body.AllTeams[0].Score)
}

func (s *WebHandlerTestSuite) TestResult_Unpublished() {
	p := &models.Participant{
		ID:        "p1",
		Name:      "Alice",
		Level:     3,
		Token:     "abc123",
		CreatedAt: s.testTime,
	}

	s.mockService.EXPECT().
		GetResultForToken(gomock.Any(), &tournament.GetResultForTokenInput{Token: "abc123"}).
		Return(&tournament.GetResultForTokenOutput{
			Participant: p,
			AllTeams:    []*assign.TeamPreview{},
		}, nil)

	var body resultResponse
	resp := s.request(http.MethodGet, "/api/result?t=abc123", "", nil, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.False(body.IsPublished)
	s.Nil(body.MyTeam)
	s.Empty(body.AllTeams)
}

// Assignment tests

func (s *WebHandlerTestSuite) TestGetAssignment_InsufficientLeaders() {
	cookies := s.login()

	s.mockService.EXPECT().
		GetAssignment(gomock.Any(), &tournament.GetAssignmentInput{}).
		Return(nil, &tournament.InsufficientLeadersError{LeadersCount: 2})

	var body assignResponse
	resp := s.request(http.MethodGet, "/api/admin/assign", "", cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("four team leaders must be configured", body.Error)
	s.Require().NotNil(body.LeadersCount)
	s.Equal(2, *body.LeadersCount)
	s.Empty(body.Teams)
}

func (s *WebHandlerTestSuite) TestGetAssignment_Preview() {
	cookies := s.login()

	previews := []*assign.TeamPreview{
		{ID: "team-a", Name: "Team A", Members: []*models.Participant{}, Score: 11, MemberCount: 3},
		{ID: "team-b", Name: "Team B", Members: []*models.Participant{}, Score: 11, MemberCount: 3},
	}

	s.mockService.EXPECT().
		GetAssignment(gomock.Any(), &tournament.GetAssignmentInput{}).
		Return(&tournament.GetAssignmentOutput{
			Teams: previews,
			Stats: &assign.Stats{
				TotalParticipants: 6,
				MaxScore:          11,
				MinScore:          11,
				MaxMembers:        3,
				MinMembers:        3,
			},
		}, nil)

	var body assignResponse
	resp := s.request(http.MethodGet, "/api/admin/assign", "", cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.False(body.IsAssigned)
	s.Require().Len(body.Teams, 2)
	s.Equal(11, body.Teams[0].Score)
	s.Require().NotNil(body.Stats)
	s.Equal(6, body.Stats.TotalParticipants)
	s.Equal(0, body.Stats.ScoreDiff)
}

func (s *WebHandlerTestSuite) TestCommitAssignment_HappyPath() {
	cookies := s.login()

	s.mockService.EXPECT().
		CommitAssignment(gomock.Any(), &tournament.CommitAssignmentInput{}).
		Return(&tournament.CommitAssignmentOutput{AssignedAt: s.testTime}, nil)

	var body successResponse
	resp := s.request(http.MethodPost, "/api/admin/assign", "", cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.Success)
}

func (s *WebHandlerTestSuite) TestCommitAssignment_AlreadyAssigned() {
	cookies := s.login()

	s.mockService.EXPECT().
		CommitAssignment(gomock.Any(), &tournament.CommitAssignmentInput{}).
		Return(nil, tournament.ErrAlreadyAssigned)

	var body errorResponse
	resp := s.request(http.MethodPost, "/api/admin/assign", "", cookies, &body)

	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("assignment already committed", body.Error)
}

func (s *WebHandlerTestSuite) TestCommitAssignment_InsufficientLeaders() {
	cookies := s.login()

	s.mockService.EXPECT().
		CommitAssignment(gomock.Any(), &tournament.CommitAssignmentInput{}).
		Return(nil, &tournament.InsufficientLeadersError{LeadersCount: 1})

	var body errorResponse
	resp := s.request(http.MethodPost, "/api/admin/assign", "", cookies, &body)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("four team leaders must be configured", body.Error)
}

func (s *WebHandlerTestSuite) TestResetAssignment() {
	cookies := s.login()

	s.mockService.EXPECT().
		ResetAssignment(gomock.Any(), &tournament.ResetAssignmentInput{}).
		Return(&tournament.ResetAssignmentOutput{}, nil)

	var body successResponse
	resp := s.request(http.MethodDelete, "/api/admin/assign", "", cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.Success)
}

// Publish tests

func (s *WebHandlerTestSuite) TestSetPublished_BeforeAssignment() {
	cookies := s.login()

	s.mockService.EXPECT().
		SetPublished(gomock.Any(), &tournament.SetPublishedInput{Published: true}).
		Return(nil, tournament.ErrNotAssigned)

	var body errorResponse
	resp := s.request(http.MethodPost, "/api/admin/publish", `{"publish":true}`, cookies, &body)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("assignment has not been committed", body.Error)
}

func (s *WebHandlerTestSuite) TestSetPublished_HappyPath() {
	cookies := s.login()

	s.mockService.EXPECT().
		SetPublished(gomock.Any(), &tournament.SetPublishedInput{Published: true}).
		Return(&tournament.SetPublishedOutput{IsPublished: true}, nil)

	var body publishResponse
	resp := s.request(http.MethodPost, "/api/admin/publish", `{"publish":true}`, cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.Success)
	s.True(body.IsPublished)
}

func (s *WebHandlerTestSuite) TestGetPublishState() {
	cookies := s.login()

	s.mockService.EXPECT().
		GetPublishState(gomock.Any(), &tournament.GetPublishStateInput{}).
		Return(&tournament.GetPublishStateOutput{IsAssigned: true}, nil)

	var body publishStateResponse
	resp := s.request(http.MethodGet, "/api/admin/publish", "", cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.IsAssigned)
	s.False(body.IsPublished)
}

// Team admin tests

func (s *WebHandlerTestSuite) TestListTeams() {
	cookies := s.login()

	leader := &models.Participant{
		ID:        "leader-a",
		Name:      "Zoe",
		Level:     5,
		TeamID:    "team-a",
		IsLeader:  true,
		CreatedAt: s.testTime,
	}
	other := &models.Participant{
		ID:        "p1",
		Name:      "Alice",
		Level:     3,
		CreatedAt: s.testTime.Add(time.Minute),
	}

	s.mockService.EXPECT().
		ListTeams(gomock.Any(), &tournament.ListTeamsInput{}).
		Return(&tournament.ListTeamsOutput{
			Teams: []*tournament.TeamWithLeader{
				{
					Team:   &models.Team{ID: "team-a", Name: "Team A", LeaderID: "leader-a", CreatedAt: s.testTime},
					Leader: leader,
				},
				{
					Team: &models.Team{ID: "team-b", Name: "Team B", CreatedAt: s.testTime},
				},
			},
		}, nil)

	s.mockService.EXPECT().
		ListParticipants(gomock.Any(), &tournament.ListParticipantsInput{}).
		Return(&tournament.ListParticipantsOutput{
			Participants: []*models.Participant{leader, other},
		}, nil)

	var body teamsResponse
	resp := s.request(http.MethodGet, "/api/admin/teams", "", cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(body.Teams, 2)
	s.Require().NotNil(body.Teams[0].Leader)
	s.Equal("Zoe", body.Teams[0].Leader.Name)
	s.Nil(body.Teams[1].Leader)

	// Participants come back alphabetically for the selection list
	s.Require().Len(body.Participants, 2)
	s.Equal("Alice", body.Participants[0].Name)
	s.Equal("Zoe", body.Participants[1].Name)
}

func (s *WebHandlerTestSuite) TestUpdateTeam_MissingTeamID() {
	cookies := s.login()

	var body errorResponse
	resp := s.request(http.MethodPut, "/api/admin/teams", `{"teamName":"Renamed"}`, cookies, &body)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("team ID is required", body.Error)
}

func (s *WebHandlerTestSuite) TestUpdateTeam_HappyPath() {
	cookies := s.login()

	s.mockService.EXPECT().
		SetTeamLeader(gomock.Any(), &tournament.SetTeamLeaderInput{
			TeamID:   "team-a",
			TeamName: "Renamed",
			LeaderID: "p1",
		}).
		Return(&tournament.SetTeamLeaderOutput{}, nil)

	var body successResponse
	resp := s.request(http.MethodPut, "/api/admin/teams", `{"teamId":"team-a","teamName":"Renamed","leaderId":"p1"}`, cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.Success)
}

func (s *WebHandlerTestSuite) TestUpdateTeam_TeamNotFound() {
	cookies := s.login()

	s.mockService.EXPECT().
		SetTeamLeader(gomock.Any(), gomock.Any()).
		Return(nil, tournament.ErrTeamNotFound)

	var body errorResponse
	resp := s.request(http.MethodPut, "/api/admin/teams", `{"teamId":"missing"}`, cookies, &body)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("team not found", body.Error)
}

// Player admin tests

func (s *WebHandlerTestSuite) TestListPlayers_OmitsTokens() {
	cookies := s.login()

	s.mockService.EXPECT().
		ListParticipants(gomock.Any(), &tournament.ListParticipantsInput{}).
		Return(&tournament.ListParticipantsOutput{
			Participants: []*models.Participant{
				{ID: "p1", Name: "Alice", Level: 3, Token: "secret", CreatedAt: s.testTime},
			},
		}, nil)

	var raw map[string]any
	resp := s.request(http.MethodGet, "/api/admin/players", "", cookies, &raw)

	s.Equal(http.StatusOK, resp.StatusCode)

	participants := raw["participants"].([]any)
	s.Require().Len(participants, 1)
	s.NotContains(participants[0].(map[string]any), "token")
}

func (s *WebHandlerTestSuite) TestDeletePlayer_HappyPath() {
	cookies := s.login()

	s.mockService.EXPECT().
		DeleteParticipant(gomock.Any(), &tournament.DeleteParticipantInput{ParticipantID: "p1"}).
		Return(&tournament.DeleteParticipantOutput{}, nil)

	var body successResponse
	resp := s.request(http.MethodDelete, "/api/admin/players", `{"id":"p1"}`, cookies, &body)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(body.Success)
}

func (s *WebHandlerTestSuite) TestDeletePlayer_RefusesLeader() {
	cookies := s.login()

	s.mockService.EXPECT().
		DeleteParticipant(gomock.Any(), &tournament.DeleteParticipantInput{ParticipantID: "leader-a"}).
		Return(nil, tournament.ErrLeaderDelete)

	var body errorResponse
	resp := s.request(http.MethodDelete, "/api/admin/players", `{"id":"leader-a"}`, cookies, &body)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("team leaders cannot be deleted", body.Error)
}
