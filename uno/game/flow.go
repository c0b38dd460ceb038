package game

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
)

type Phase int

const (
	PhaseInit Phase = iota
	PhaseTurnStart
	PhaseGetAction
	PhaseExecuteAction
	PhaseChooseColor
	PhaseEndTurn
	PhaseEndGame
	PhaseEnd
)

var phaseNames = map[Phase]string{
	PhaseInit:          "Init",
	PhaseTurnStart:     "TurnStart",
	PhaseGetAction:     "GetAction",
	PhaseExecuteAction: "ExecuteAction",
	PhaseChooseColor:   "ChooseColor",
	PhaseEndTurn:       "EndTurn",
	PhaseEndGame:       "EndGame",
	PhaseEnd:           "End",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Flow drives a game through its turns one phase at a time. The EndTurn
// phase is the only place the turn cursor moves.
type Flow struct {
	game    *Game
	actors  Actors
	phase   Phase
	pending GameAction
	winner  int
	decided bool
}

func NewFlow(game *Game, actors Actors) *Flow {
	return &Flow{
		game:   game,
		actors: actors,
		phase:  PhaseInit,
		winner: -1,
	}
}

func (f *Flow) Game() *Game {
	return f.game
}

func (f *Flow) Phase() Phase {
	return f.phase
}

// Pending is the validated action waiting in PhaseExecuteAction.
func (f *Flow) Pending() GameAction {
	return f.pending
}

func (f *Flow) Winner() (int, bool) {
	return f.winner, f.decided
}

// Run steps the flow until the game ends or a fatal error occurs.
func (f *Flow) Run() error {
	for f.phase != PhaseEnd {
		if err := f.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step performs a single phase transition. On error the phase is left
// unchanged.
func (f *Flow) Step() error {
	var (
		next Phase
		err  error
	)
	switch f.phase {
	case PhaseInit:
		next, err = f.handleInit()
	case PhaseTurnStart:
		next, err = f.handleTurnStart()
	case PhaseGetAction:
		next, err = f.handleGetAction()
	case PhaseExecuteAction:
		next, err = f.handleExecuteAction()
	case PhaseChooseColor:
		next, err = f.handleChooseColor()
	case PhaseEndTurn:
		next, err = f.handleEndTurn()
	case PhaseEndGame:
		next, err = f.handleEndGame()
	default:
		return nil
	}
	if err != nil {
		return err
	}
	f.phase = next
	return nil
}

func (f *Flow) handleInit() (Phase, error) {
	if err := f.game.DealInitialHands(); err != nil {
		return PhaseInit, err
	}
	f.game.AnnounceFirstCard()
	return PhaseTurnStart, nil
}

func (f *Flow) handleTurnStart() (Phase, error) {
	seat, actor, err := f.currentActor()
	if err != nil {
		return PhaseTurnStart, err
	}
	actor.BeforeTurn(f.game.State(seat))
	return PhaseGetAction, nil
}

func (f *Flow) handleGetAction() (Phase, error) {
	seat, actor, err := f.currentActor()
	if err != nil {
		return PhaseGetAction, err
	}
	raw, err := actor.ChooseTurnAction(f.game.State(seat))
	if err != nil {
		return PhaseGetAction, fmt.Errorf("player %d chooses action: %w", seat, err)
	}
	validated, err := f.game.ValidateAction(seat, raw)
	if err != nil {
		if consts.Recoverable(err) {
			return PhaseGetAction, nil
		}
		return PhaseGetAction, err
	}
	f.pending = validated
	return PhaseExecuteAction, nil
}

func (f *Flow) handleExecuteAction() (Phase, error) {
	seat := f.game.Current()
	result, err := f.game.ExecuteAction(seat, f.pending)
	if err != nil {
		if consts.Recoverable(err) {
			log.Infof("game %s: player %d ends the turn: %v\n", f.game.ID(), seat, err)
			f.pending = GameAction{}
			return PhaseEndTurn, nil
		}
		return PhaseExecuteAction, err
	}
	f.pending = GameAction{}
	if result.Kind == ChooseColor {
		return PhaseChooseColor, nil
	}
	return PhaseEndTurn, nil
}

func (f *Flow) handleChooseColor() (Phase, error) {
	seat, actor, err := f.currentActor()
	if err != nil {
		return PhaseChooseColor, err
	}
	chosen, err := actor.ChooseWildColor(f.game.State(seat))
	if err != nil {
		return PhaseChooseColor, fmt.Errorf("player %d chooses color: %w", seat, err)
	}
	if err := f.game.ChangeActiveColor(seat, chosen); err != nil {
		if consts.Recoverable(err) {
			return PhaseChooseColor, nil
		}
		return PhaseChooseColor, err
	}
	return PhaseEndTurn, nil
}

func (f *Flow) handleEndTurn() (Phase, error) {
	seat, actor, err := f.currentActor()
	if err != nil {
		return PhaseEndTurn, err
	}
	if f.game.HasWon(seat) {
		f.winner, f.decided = seat, true
		return PhaseEndGame, nil
	}
	actor.AfterTurn(f.game.State(seat))
	f.game.AdvanceTurn()
	return PhaseTurnStart, nil
}

func (f *Flow) handleEndGame() (Phase, error) {
	f.game.AnnounceWinner(f.winner)
	return PhaseEnd, nil
}

func (f *Flow) currentActor() (int, Actor, error) {
	seat := f.game.Current()
	actor, ok := f.actors.Actor(seat)
	if !ok {
		return seat, nil, fmt.Errorf("%w: %d", consts.ErrorsActorMissing, seat)
	}
	return seat, actor, nil
}
