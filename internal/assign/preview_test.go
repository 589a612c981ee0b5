package assign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/smashcrew/teambalance/internal/models"
)

type PreviewTestSuite struct {
	suite.Suite

	teams        []*models.Team
	participants []*models.Participant
	testNow      time.Time
}

func (s *PreviewTestSuite) SetupTest() {
	s.testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	s.teams = []*models.Team{
		{ID: "team-a", Name: "Team A", CreatedAt: s.testNow},
		{ID: "team-b", Name: "Team B", CreatedAt: s.testNow},
	}
	s.participants = []*models.Participant{
		{ID: "leader-a", Name: "Alice", Level: 2, TeamID: "team-a", IsLeader: true, CreatedAt: s.testNow},
		{ID: "leader-b", Name: "Bob", Level: 5, TeamID: "team-b", IsLeader: true, CreatedAt: s.testNow},
		{ID: "p1", Name: "Carol", Level: 4, TeamID: "team-a", CreatedAt: s.testNow},
		{ID: "p2", Name: "Dan", Level: 5, TeamID: "team-a", CreatedAt: s.testNow},
		{ID: "p3", Name: "Eve", Level: 1, TeamID: "team-b", CreatedAt: s.testNow},
	}
}

func TestPreviewTestSuite(t *testing.T) {
	suite.Run(t, new(PreviewTestSuite))
}

func (s *PreviewTestSuite) TestBuildPreview_SortsLeaderFirstThenLevel() {
	assignment := map[string][]string{
		"team-a": {"p1", "p2", "leader-a"},
		"team-b": {"p3", "leader-b"},
	}

	preview := BuildPreview(s.teams, s.participants, assignment)
	s.Require().Len(preview.Teams, 2)

	teamA := preview.Teams[0]
	s.Equal("team-a", teamA.ID)
	s.Require().Len(teamA.Members, 3)
	// Leader leads even at a lower level than the members
	s.Equal("leader-a", teamA.Members[0].ID)
	s.Equal("p2", teamA.Members[1].ID)
	s.Equal("p1", teamA.Members[2].ID)
}

func (s *PreviewTestSuite) TestBuildPreview_ScoresAndStats() {
	assignment := map[string][]string{
		"team-a": {"leader-a", "p1", "p2"},
		"team-b": {"leader-b", "p3"},
	}

	preview := BuildPreview(s.teams, s.participants, assignment)

	s.Equal(11, preview.Teams[0].Score)
	s.Equal(3, preview.Teams[0].MemberCount)
	s.Equal(6, preview.Teams[1].Score)
	s.Equal(2, preview.Teams[1].MemberCount)

	stats := preview.Stats
	s.Equal(5, stats.TotalParticipants)
	s.Equal(11, stats.MaxScore)
	s.Equal(6, stats.MinScore)
	s.Equal(stats.MaxScore-stats.MinScore, stats.ScoreDiff)
	s.Equal(3, stats.MaxMembers)
	s.Equal(2, stats.MinMembers)
	s.Equal(stats.MaxMembers-stats.MinMembers, stats.MemberDiff)
}

func (s *PreviewTestSuite) TestBuildPreview_SkipsUnknownMemberIDs() {
	assignment := map[string][]string{
		"team-a": {"leader-a", "ghost"},
		"team-b": {"leader-b"},
	}

	preview := BuildPreview(s.teams, s.participants, assignment)

	s.Equal(1, preview.Teams[0].MemberCount)
	s.Equal(2, preview.Stats.TotalParticipants)
}

func (s *PreviewTestSuite) TestAssignmentFromStored_MatchesFreshProjection() {
	// Rendering from persisted team IDs must equal rendering the assignment
	// they were persisted from
	assignment := map[string][]string{
		"team-a": {"leader-a", "p1", "p2"},
		"team-b": {"leader-b", "p3"},
	}

	fresh := BuildPreview(s.teams, s.participants, assignment)
	stored := BuildPreview(s.teams, s.participants, AssignmentFromStored(s.teams, s.participants))

	s.Require().Len(stored.Teams, len(fresh.Teams))
	for i := range fresh.Teams {
		s.Equal(fresh.Teams[i].Score, stored.Teams[i].Score)
		s.Equal(fresh.Teams[i].MemberCount, stored.Teams[i].MemberCount)
	}
	s.Equal(fresh.Stats, stored.Stats)
}

func (s *PreviewTestSuite) TestAssignmentFromStored_IgnoresUnassigned() {
	participants := append(s.participants, &models.Participant{
		ID: "late", Name: "Late", Level: 3, CreatedAt: s.testNow,
	})

	assignment := AssignmentFromStored(s.teams, participants)

	for _, memberIDs := range assignment {
		s.NotContains(memberIDs, "late")
	}
}

func (s *PreviewTestSuite) TestBuildPreview_NoTeams() {
	preview := BuildPreview(nil, s.participants, map[string][]string{})

	s.Empty(preview.Teams)
	s.Equal(0, preview.Stats.TotalParticipants)
	s.Equal(0, preview.Stats.ScoreDiff)
}
