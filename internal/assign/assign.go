package assign

import (
	"errors"
	"fmt"
	"sort"

	"github.com/smashcrew/teambalance/internal/models"
	"github.com/smashcrew/teambalance/internal/random"
)

// ErrInvalidLeaderAssignment is returned when a leader's team does not match any provided team
var ErrInvalidLeaderAssignment = errors.New("leader team does not match any team")

// teamState tracks one team's roster while participants are being placed
type teamState struct {
	id        string
	memberIDs []string
	score     int
}

// Assign distributes participants across the given teams and returns the
// member IDs per team ID, leaders first in each list.
//
// Leaders are fixed to the team their TeamID names and never move. The
// remaining participants are placed highest level first, each into the team
// with the fewest members, breaking ties by lowest total score and then by a
// draw from src. Placing into a minimum-count team every step keeps member
// counts within 1 of each other.
func Assign(teams []*models.Team, participants []*models.Participant, src random.Source) (map[string][]string, error) {
	states := make([]*teamState, 0, len(teams))
	byTeamID := make(map[string]*teamState, len(teams))
	for _, team := range teams {
		state := &teamState{id: team.ID, memberIDs: []string{}}
		states = append(states, state)
		byTeamID[team.ID] = state
	}

	// Seed leaders into their fixed teams
	nonLeaders := make([]*models.Participant, 0, len(participants))
	for _, participant := range participants {
		if !participant.IsLeader {
			nonLeaders = append(nonLeaders, participant)
			continue
		}

		state, ok := byTeamID[participant.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: leader %s references team %q", ErrInvalidLeaderAssignment, participant.ID, participant.TeamID)
		}

		state.memberIDs = append(state.memberIDs, participant.ID)
		state.score += participant.Level
	}

	// Highest level first, ties keep registration order
	sort.SliceStable(nonLeaders, func(i, j int) bool {
		return nonLeaders[i].Level > nonLeaders[j].Level
	})

	for _, participant := range nonLeaders {
		best := selectBestTeam(states, src)
		best.memberIDs = append(best.memberIDs, participant.ID)
		best.score += participant.Level
	}

	result := make(map[string][]string, len(states))
	for _, state := range states {
		result[state.id] = state.memberIDs
	}

	return result, nil
}

// selectBestTeam picks the team with the fewest members, then the lowest
// score, then a uniform random choice among the remaining ties.
func selectBestTeam(states []*teamState, src random.Source) *teamState {
	candidates := minimumBy(states, func(state *teamState) int {
		return len(state.memberIDs)
	})
	if len(candidates) == 1 {
		return candidates[0]
	}

	candidates = minimumBy(candidates, func(state *teamState) int {
		return state.score
	})
	if len(candidates) == 1 {
		return candidates[0]
	}

	return candidates[src.Intn(len(candidates))]
}

// minimumBy returns every state whose key equals the minimum key
func minimumBy(states []*teamState, key func(*teamState) int) []*teamState {
	min := key(states[0])
	for _, state := range states[1:] {
		if k := key(state); k < min {
			min = k
		}
	}

	result := make([]*teamState, 0, len(states))
	for _, state := range states {
		if key(state) == min {
			result = append(result, state)
		}
	}

	return result
}
