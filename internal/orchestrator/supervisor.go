package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Team names and the routing sentinel, part of the supervisor prompt
// contract.
const (
	TeamResearch  = "Research team"
	TeamAuthoring = "Response team"
	RouteFinish   = "FINISH"
)

const defaultMaxTurns = 20

const supervisorPromptFormat = "You are a supervisor tasked with managing a conversation between the" +
	" following teams: %s. Given the following user request," +
	" respond with the worker to act next. Each worker will perform a" +
	" task and respond with their results and status. When all workers are finished," +
	" you must respond with FINISH."

// Team is one worker the supervisor can route to. Run reads the conversation
// so far and returns the team's contribution.
type Team interface {
	Name() string
	Run(ctx context.Context, transcript []Message) (Message, error)
}

// Supervisor routes a user request between teams until the work is declared
// finished.
type Supervisor struct {
	oracle   ReasoningOracle
	teams    map[string]Team
	order    []string
	maxTurns int
	logger   *slog.Logger
}

// NewSupervisor creates a supervisor over the given teams. Routing options
// are offered in the order the teams are passed.
func NewSupervisor(oracle ReasoningOracle, logger *slog.Logger, teams ...Team) *Supervisor {
	s := &Supervisor{
		oracle:   oracle,
		teams:    make(map[string]Team, len(teams)),
		maxTurns: defaultMaxTurns,
		logger:   logger,
	}
	for _, t := range teams {
		s.teams[t.Name()] = t
		s.order = append(s.order, t.Name())
	}
	return s
}

// Run drives the conversation for one user request and returns the full
// transcript. The turn cap guards against a supervisor that never routes to
// FINISH.
func (s *Supervisor) Run(ctx context.Context, request string) ([]Message, error) {
	system := fmt.Sprintf(supervisorPromptFormat, strings.Join(s.order, ", "))
	options := append([]string{RouteFinish}, s.order...)

	transcript := []Message{{Role: RoleUser, Content: request}}

	for turn := 0; turn < s.maxTurns; turn++ {
		next, err := s.oracle.Route(ctx, system, transcript, options)
		if err != nil {
			return transcript, fmt.Errorf("routing turn %d: %w", turn, err)
		}
		s.logger.Info("supervisor routed", "turn", turn, "next", next)

		if next == RouteFinish {
			return transcript, nil
		}

		team, ok := s.teams[next]
		if !ok {
			return transcript, fmt.Errorf("supervisor routed to unknown team %q", next)
		}
		msg, err := team.Run(ctx, transcript)
		if err != nil {
			return transcript, fmt.Errorf("%s: %w", next, err)
		}
		transcript = append(transcript, msg)
	}

	return transcript, fmt.Errorf("supervisor stopped after %d turns without FINISH", s.maxTurns)
}
