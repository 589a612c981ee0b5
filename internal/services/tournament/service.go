package tournament

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/smashcrew/teambalance/internal/assign"
	"github.com/smashcrew/teambalance/internal/common/clock"
	"github.com/smashcrew/teambalance/internal/common/uuid"
	"github.com/smashcrew/teambalance/internal/models"
	"github.com/smashcrew/teambalance/internal/random"
	appStateRepo "github.com/smashcrew/teambalance/internal/repositories/appstate"
	participantRepo "github.com/smashcrew/teambalance/internal/repositories/participant"
	teamRepo "github.com/smashcrew/teambalance/internal/repositories/team"
)

// service implements the Service interface
type service struct {
	participantRepo participantRepo.Repository
	teamRepo        teamRepo.Repository
	appStateRepo    appStateRepo.Repository
	random          random.Source
	clock           clock.Clock
	uuidGenerator   uuid.Generator
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}
	if cfg.AppStateRepo == nil {
		return nil, ErrNilAppStateRepo
	}
	if cfg.Random == nil {
		return nil, ErrNilRandomSource
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		participantRepo: cfg.ParticipantRepo,
		teamRepo:        cfg.TeamRepo,
		appStateRepo:    cfg.AppStateRepo,
		random:          cfg.Random,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// RegisterParticipant adds a new participant and returns their lookup token
func (s *service) RegisterParticipant(ctx context.Context, input *RegisterParticipantInput) (*RegisterParticipantOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if input.Level < models.MinLevel || input.Level > models.MaxLevel {
		return nil, ErrInvalidLevel
	}

	p := &models.Participant{
		ID:        s.uuidGenerator.NewID(),
		Name:      name,
		Level:     input.Level,
		Token:     s.uuidGenerator.NewToken(),
		CreatedAt: s.clock.Now(),
	}

	err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterParticipantOutput{
		ParticipantID: p.ID,
		Token:         p.Token,
	}, nil
}

// ListParticipants returns all participants, newest first
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	participants, err := s.listParticipants(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].CreatedAt.After(participants[j].CreatedAt)
	})

	return &ListParticipantsOutput{Participants: participants}, nil
}

// DeleteParticipant removes a participant; leaders cannot be removed
func (s *service) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) (*DeleteParticipantOutput, error) {
	err := s.participantRepo.DeleteParticipant(ctx, &participantRepo.DeleteParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		if errors.Is(err, participantRepo.ErrParticipantIsLeader) {
			return nil, ErrLeaderDelete
		}
		return nil, err
	}

	return &DeleteParticipantOutput{}, nil
}

// ListTeams returns the four teams with their resolved leaders, in name order
func (s *service) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	teams, err := s.listTeams(ctx)
	if err != nil {
		return nil, err
	}

	participants, err := s.listParticipants(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	result := make([]*TeamWithLeader, 0, len(teams))
	for _, t := range teams {
		result = append(result, &TeamWithLeader{
			Team:   t,
			Leader: byID[t.LeaderID],
		})
	}

	return &ListTeamsOutput{Teams: result}, nil
}

// SetTeamLeader renames a team and moves its leader slot to another
// participant. The previous leader is demoted and unanchored from the team;
// the new leader is promoted and anchored to it.
func (s *service) SetTeamLeader(ctx context.Context, input *SetTeamLeaderInput) (*SetTeamLeaderOutput, error) {
	t, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: input.TeamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	// Demote the previous leader
	if t.LeaderID != "" {
		previous, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
			ParticipantID: t.LeaderID,
		})
		if err != nil && !errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, err
		}

		if previous != nil {
			previous.IsLeader = false
			previous.TeamID = ""

			err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
				Participant: previous,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	// Promote the new leader
	if input.LeaderID != "" {
		next, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
			ParticipantID: input.LeaderID,
		})
		if err != nil {
			if errors.Is(err, participantRepo.ErrParticipantNotFound) {
				return nil, ErrParticipantNotFound
			}
			return nil, err
		}

		next.IsLeader = true
		next.TeamID = t.ID

		err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
			Participant: next,
		})
		if err != nil {
			return nil, err
		}
	}

	if input.TeamName != "" {
		t.Name = input.TeamName
	}
	t.LeaderID = input.LeaderID

	err = s.teamRepo.SaveTeam(ctx, &teamRepo.SaveTeamInput{
		Team: t,
	})
	if err != nil {
		return nil, err
	}

	return &SetTeamLeaderOutput{}, nil
}

// GetAssignment returns the committed rosters when assigned, otherwise a
// fresh ephemeral preview. Previews mutate nothing; two calls over the same
// roster may differ when a tie reaches the random branch.
func (s *service) GetAssignment(ctx context.Context, input *GetAssignmentInput) (*GetAssignmentOutput, error) {
	teams, participants, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}

	if count := countLeaders(participants); count != models.TeamCount {
		return nil, &InsufficientLeadersError{LeadersCount: count}
	}

	state, err := s.appStateRepo.GetAppState(ctx, &appStateRepo.GetAppStateInput{})
	if err != nil {
		return nil, err
	}

	var assignment map[string][]string
	if state.IsAssigned {
		assignment = assign.AssignmentFromStored(teams, participants)
	} else {
		assignment, err = assign.Assign(teams, participants, s.random)
		if err != nil {
			return nil, err
		}
	}

	preview := assign.BuildPreview(teams, participants, assignment)

	return &GetAssignmentOutput{
		Teams:       preview.Teams,
		Stats:       preview.Stats,
		IsAssigned:  state.IsAssigned,
		IsPublished: state.IsAssigned && state.IsPublished,
	}, nil
}

// CommitAssignment runs the balancing engine and persists the result
func (s *service) CommitAssignment(ctx context.Context, input *CommitAssignmentInput) (*CommitAssignmentOutput, error) {
	teams, participants, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}

	if count := countLeaders(participants); count != models.TeamCount {
		return nil, &InsufficientLeadersError{LeadersCount: count}
	}

	state, err := s.appStateRepo.GetAppState(ctx, &appStateRepo.GetAppStateInput{})
	if err != nil {
		return nil, err
	}

	if state.Phase() != models.PhaseUnassigned {
		return nil, ErrAlreadyAssigned
	}

	assignment, err := assign.Assign(teams, participants, s.random)
	if err != nil {
		return nil, err
	}

	// Walk teams in name order so the bulk update is deterministic
	updates := make([]participantRepo.TeamAssignment, 0, len(participants))
	for _, t := range teams {
		for _, memberID := range assignment[t.ID] {
			updates = append(updates, participantRepo.TeamAssignment{
				ParticipantID: memberID,
				TeamID:        t.ID,
			})
		}
	}

	err = s.participantRepo.BulkSetTeamID(ctx, &participantRepo.BulkSetTeamIDInput{
		Assignments: updates,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	state.IsAssigned = true
	state.AssignedAt = &now

	err = s.appStateRepo.SaveAppState(ctx, &appStateRepo.SaveAppStateInput{
		AppState: state,
	})
	if err != nil {
		return nil, err
	}

	return &CommitAssignmentOutput{AssignedAt: now}, nil
}

// ResetAssignment clears every non-leader's team and the assignment flags.
// Leaders keep their team anchor. Safe to call from any phase.
func (s *service) ResetAssignment(ctx context.Context, input *ResetAssignmentInput) (*ResetAssignmentOutput, error) {
	participants, err := s.listParticipants(ctx)
	if err != nil {
		return nil, err
	}

	updates := make([]participantRepo.TeamAssignment, 0, len(participants))
	for _, p := range participants {
		if p.IsLeader {
			continue
		}
		updates = append(updates, participantRepo.TeamAssignment{
			ParticipantID: p.ID,
		})
	}

	err = s.participantRepo.BulkSetTeamID(ctx, &participantRepo.BulkSetTeamIDInput{
		Assignments: updates,
	})
	if err != nil {
		return nil, err
	}

	err = s.appStateRepo.SaveAppState(ctx, &appStateRepo.SaveAppStateInput{
		AppState: &models.AppState{},
	})
	if err != nil {
		return nil, err
	}

	return &ResetAssignmentOutput{}, nil
}

// SetPublished toggles whether participants can see the committed rosters
func (s *service) SetPublished(ctx context.Context, input *SetPublishedInput) (*SetPublishedOutput, error) {
	state, err := s.appStateRepo.GetAppState(ctx, &appStateRepo.GetAppStateInput{})
	if err != nil {
		return nil, err
	}

	if input.Published && state.Phase() == models.PhaseUnassigned {
		return nil, ErrNotAssigned
	}

	state.IsPublished = input.Published

	err = s.appStateRepo.SaveAppState(ctx, &appStateRepo.SaveAppStateInput{
		AppState: state,
	})
	if err != nil {
		return nil, err
	}

	return &SetPublishedOutput{IsPublished: input.Published}, nil
}

// GetPublishState reports the current lifecycle flags
func (s *service) GetPublishState(ctx context.Context, input *GetPublishStateInput) (*GetPublishStateOutput, error) {
	state, err := s.appStateRepo.GetAppState(ctx, &appStateRepo.GetAppStateInput{})
	if err != nil {
		return nil, err
	}

	return &GetPublishStateOutput{
		IsAssigned:  state.IsAssigned,
		IsPublished: state.Phase() == models.PhasePublished,
	}, nil
}

// GetResultForToken returns a participant's own view. Rosters stay hidden
// until the assignment is published.
func (s *service) GetResultForToken(ctx context.Context, input *GetResultForTokenInput) (*GetResultForTokenOutput, error) {
	p, err := s.participantRepo.GetParticipantByToken(ctx, &participantRepo.GetParticipantByTokenInput{
		Token: input.Token,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	state, err := s.appStateRepo.GetAppState(ctx, &appStateRepo.GetAppStateInput{})
	if err != nil {
		return nil, err
	}

	if state.Phase() != models.PhasePublished {
		return &GetResultForTokenOutput{
			Participant: p,
			AllTeams:    []*assign.TeamPreview{},
		}, nil
	}

	teams, participants, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}

	assignment := assign.AssignmentFromStored(teams, participants)
	preview := assign.BuildPreview(teams, participants, assignment)

	var myTeam *assign.TeamPreview
	for _, teamPreview := range preview.Teams {
		for _, member := range teamPreview.Members {
			if member.ID == p.ID {
				myTeam = teamPreview
				break
			}
		}
	}

	return &GetResultForTokenOutput{
		Participant: p,
		MyTeam:      myTeam,
		AllTeams:    preview.Teams,
		IsPublished: true,
	}, nil
}

// loadRoster returns the teams in name order along with all participants
func (s *service) loadRoster(ctx context.Context) ([]*models.Team, []*models.Participant, error) {
	teams, err := s.listTeams(ctx)
	if err != nil {
		return nil, nil, err
	}

	participants, err := s.listParticipants(ctx)
	if err != nil {
		return nil, nil, err
	}

	return teams, participants, nil
}

// listTeams returns all teams sorted by name
func (s *service) listTeams(ctx context.Context) ([]*models.Team, error) {
	output, err := s.teamRepo.ListTeams(ctx, &teamRepo.ListTeamsInput{})
	if err != nil {
		return nil, err
	}

	teams := output.Teams
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	return teams, nil
}

// listParticipants returns all participants in stable registration order
func (s *service) listParticipants(ctx context.Context) ([]*models.Participant, error) {
	output, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	// Storage order is arbitrary; pin it to registration order so level ties
	// resolve the same way on every run over the same roster
	participants := output.Participants
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].CreatedAt.Before(participants[j].CreatedAt)
	})

	return participants, nil
}

// countLeaders returns the number of participants flagged as leaders
func countLeaders(participants []*models.Participant) int {
	count := 0
	for _, p := range participants {
		if p.IsLeader {
			count++
		}
	}
	return count
}
