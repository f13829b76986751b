package tebex

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tebexkit/client-go/internal/api"
	"github.com/tebexkit/client-go/internal/apierrors"
)

// Queue is the command queue API used by game server plugins.
type Queue struct {
	api *api.Client
}

// DuePlayers lists the players with commands waiting to run.
type DuePlayers struct {
	Meta    QueueMeta   `json:"meta"`
	Players []PlayerRef `json:"players"`
}

// QueueMeta tells the caller how to poll the queue.
type QueueMeta struct {
	// ExecuteOffline reports whether offline commands are pending.
	ExecuteOffline bool `json:"executeOffline"`
	// NextCheck is how long to wait before polling again.
	NextCheck time.Duration `json:"nextCheck"`
	// More reports whether the player list was truncated.
	More bool `json:"more"`
}

// QueuedCommand is a command waiting to be executed.
type QueuedCommand struct {
	ID      int    `json:"id"`
	Command string `json:"command"`
	Payment int    `json:"payment"`
	Package int    `json:"package"`
	// Delay is how long to wait after the player joins before executing.
	Delay time.Duration `json:"delay"`
	// Slots is the number of free inventory slots the command requires.
	Slots int `json:"slots"`
	// Player is only set for offline commands.
	Player *PlayerRef `json:"player,omitempty"`
}

// OfflineCommands are commands that run regardless of whether the player
// is online.
type OfflineCommands struct {
	// Limited reports whether more commands remain after this batch.
	Limited  bool            `json:"limited"`
	Commands []QueuedCommand `json:"commands"`
}

// OnlineCommands are commands for a player that must be online.
type OnlineCommands struct {
	Player   PlayerRef       `json:"player"`
	Commands []QueuedCommand `json:"commands"`
}

// DuePlayers returns the players with queued commands.
func (q *Queue) DuePlayers(ctx context.Context) (*DuePlayers, error) {
	due, err := api.Execute(ctx, q.api, api.Request{Path: api.Queue.Path()}, single(func(w api.DuePlayersDTO) DuePlayers {
		return DuePlayers{
			Meta: QueueMeta{
				ExecuteOffline: bool(w.Meta.ExecuteOffline),
				NextCheck:      time.Duration(w.Meta.NextCheck) * time.Second,
				More:           bool(w.Meta.More),
			},
			Players: mapSlice(w.Players, shapePlayerRef),
		}
	}))
	if err != nil {
		return nil, err
	}
	return &due, nil
}

// OfflineCommands returns the pending offline commands.
func (q *Queue) OfflineCommands(ctx context.Context) (*OfflineCommands, error) {
	cmds, err := api.Execute(ctx, q.api, api.Request{Path: api.OfflineCommands.Path()}, single(func(w api.OfflineCommandsDTO) OfflineCommands {
		return OfflineCommands{
			Limited:  bool(w.Meta.Limited),
			Commands: mapSlice(w.Commands, shapeCommand),
		}
	}))
	if err != nil {
		return nil, err
	}
	return &cmds, nil
}

// OnlineCommands returns the pending commands for a player. playerID is
// the id from DuePlayers, not the player's UUID.
func (q *Queue) OnlineCommands(ctx context.Context, playerID int) (*OnlineCommands, error) {
	if err := requireID("player id", playerID); err != nil {
		return nil, err
	}
	cmds, err := api.Execute(ctx, q.api, api.Request{Path: api.OnlineCommands.Path(playerID)}, single(func(w api.OnlineCommandsDTO) OnlineCommands {
		return OnlineCommands{
			Player:   shapePlayerRef(w.Player),
			Commands: mapSlice(w.Commands, shapeCommand),
		}
	}))
	if err != nil {
		return nil, err
	}
	return &cmds, nil
}

// DeleteCommands acknowledges executed commands so they are not returned again.
func (q *Queue) DeleteCommands(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return apierrors.MissingParameter("command ids")
	}
	query := url.Values{}
	for _, id := range ids {
		query.Add("ids[]", strconv.Itoa(id))
	}
	_, err := api.Execute(ctx, q.api, api.Request{
		Method: http.MethodDelete,
		Path:   api.DeleteCommands.Path(),
		Query:  query,
	}, api.Discard)
	return err
}

func shapeCommand(w api.CommandDTO) QueuedCommand {
	cmd := QueuedCommand{
		ID:      int(w.ID),
		Command: w.Command,
		Payment: int(w.Payment),
		Package: int(w.Package),
		Delay:   time.Duration(w.Conditions.Delay) * time.Second,
		Slots:   int(w.Conditions.Slots),
	}
	if w.Player != nil {
		p := shapePlayerRef(*w.Player)
		cmd.Player = &p
	}
	return cmd
}
