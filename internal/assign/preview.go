package assign

import (
	"sort"

	"github.com/smashcrew/teambalance/internal/models"
)

// TeamPreview is the display-ready roster for a single team
type TeamPreview struct {
	// ID is the team's unique identifier
	ID string

	// Name is the team's display name
	Name string

	// Members are the team's participants, leaders first, then by level descending
	Members []*models.Participant

	// Score is the sum of the members' levels
	Score int

	// MemberCount is the number of members
	MemberCount int
}

// Stats aggregates the balance spread across all teams
type Stats struct {
	TotalParticipants int
	MaxScore          int
	MinScore          int
	ScoreDiff         int
	MaxMembers        int
	MinMembers        int
	MemberDiff        int
}

// Preview is the full display shape for an assignment
type Preview struct {
	Teams []*TeamPreview
	Stats *Stats
}

// BuildPreview projects an assignment into per-team rosters and spread stats.
// It behaves the same whether the assignment came from a fresh Assign run or
// from AssignmentFromStored.
func BuildPreview(teams []*models.Team, participants []*models.Participant, assignment map[string][]string) *Preview {
	byID := make(map[string]*models.Participant, len(participants))
	for _, participant := range participants {
		byID[participant.ID] = participant
	}

	previews := make([]*TeamPreview, 0, len(teams))
	for _, team := range teams {
		members := make([]*models.Participant, 0, len(assignment[team.ID]))
		for _, memberID := range assignment[team.ID] {
			if member, ok := byID[memberID]; ok {
				members = append(members, member)
			}
		}

		sortMembers(members)

		score := 0
		for _, member := range members {
			score += member.Level
		}

		previews = append(previews, &TeamPreview{
			ID:          team.ID,
			Name:        team.Name,
			Members:     members,
			Score:       score,
			MemberCount: len(members),
		})
	}

	return &Preview{
		Teams: previews,
		Stats: buildStats(previews),
	}
}

// AssignmentFromStored derives an assignment from persisted TeamID fields so
// a committed state renders through the same projection as a fresh run.
func AssignmentFromStored(teams []*models.Team, participants []*models.Participant) map[string][]string {
	assignment := make(map[string][]string, len(teams))
	for _, team := range teams {
		assignment[team.ID] = []string{}
	}

	for _, participant := range participants {
		if _, ok := assignment[participant.TeamID]; ok {
			assignment[participant.TeamID] = append(assignment[participant.TeamID], participant.ID)
		}
	}

	return assignment
}

// sortMembers orders a roster leaders first, then by level descending,
// keeping input order among equals
func sortMembers(members []*models.Participant) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].IsLeader != members[j].IsLeader {
			return members[i].IsLeader
		}
		return members[i].Level > members[j].Level
	})
}

func buildStats(previews []*TeamPreview) *Stats {
	stats := &Stats{}
	if len(previews) == 0 {
		return stats
	}

	stats.MaxScore = previews[0].Score
	stats.MinScore = previews[0].Score
	stats.MaxMembers = previews[0].MemberCount
	stats.MinMembers = previews[0].MemberCount

	for _, preview := range previews {
		stats.TotalParticipants += preview.MemberCount

		if preview.Score > stats.MaxScore {
			stats.MaxScore = preview.Score
		}
		if preview.Score < stats.MinScore {
			stats.MinScore = preview.Score
		}
		if preview.MemberCount > stats.MaxMembers {
			stats.MaxMembers = preview.MemberCount
		}
		if preview.MemberCount < stats.MinMembers {
			stats.MinMembers = preview.MemberCount
		}
	}

	stats.ScoreDiff = stats.MaxScore - stats.MinScore
	stats.MemberDiff = stats.MaxMembers - stats.MinMembers

	return stats
}
