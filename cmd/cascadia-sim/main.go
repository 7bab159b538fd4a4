package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"cascadia/internal/autoplay"
	"cascadia/internal/config"
	"cascadia/internal/game"
	"cascadia/internal/protocol"

	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML rules file")
	variant := flag.String("variant", "", "Scoring variant: 1/family, 2/intermediate, 3/standard")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	games := flag.Int("games", 1, "Number of games to simulate")
	showGrids := flag.Bool("grids", false, "Print each final grid")
	jsonOut := flag.Bool("json", false, "Write a JSON message stream instead of tables")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *variant != "" {
		cfg.Variant = *variant
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	settings, err := cfg.Settings()
	if err == nil {
		err = settings.Validate()
	}
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	personalities, err := cfg.Personalities()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger.Info("cascadia simulation",
		"variant", settings.Variant,
		"topology", settings.Topology,
		"players", len(cfg.Players),
		"seed", cfg.Seed,
		"games", *games,
	)

	rng := rand.New(rand.NewSource(cfg.Seed))
	wins := newTally(cfg.Players)

	var stream *messageStream
	if *jsonOut {
		stream = &messageStream{enc: json.NewEncoder(os.Stdout), logger: logger}
	}

	for i := 0; i < *games; i++ {
		state, err := run(settings, cfg.Players, personalities, rng, logger, stream)
		if err != nil {
			logger.Error("simulation failed", "game", i+1, "err", err)
			stream.emit(protocol.TypeError, protocol.NewErrorPayload(err))
			os.Exit(1)
		}
		if stream != nil {
			stream.emit(protocol.TypeGameEnded, protocol.NewGameEnded(state))
		} else {
			printScores(os.Stdout, state)
		}
		if *showGrids && stream == nil {
			for _, id := range state.PlayerOrder {
				fmt.Fprintf(os.Stdout, "%s\n%s\n", state.Players[id].Name, state.GridFor(id).Debug())
			}
		}
		wins.record(state)
	}

	if *games > 1 && stream == nil {
		wins.print(os.Stdout)
	}
}

// tally counts wins per seat. Seats follow the configured player order,
// so players sharing a name are still counted apart.
type tally struct {
	names []string
	wins  []int
	ties  int
}

func newTally(names []string) *tally {
	return &tally{names: names, wins: make([]int, len(names))}
}

func (t *tally) record(state *game.GameState) {
	w := state.DetermineWinner()
	if w == nil {
		t.ties++
		return
	}
	for seat, id := range state.PlayerOrder {
		if id == w.ID {
			t.wins[seat]++
			return
		}
	}
}

func (t *tally) print(out io.Writer) {
	fmt.Fprintln(out, "Wins:")
	for seat, name := range t.names {
		fmt.Fprintf(out, "  %-12s %d\n", name, t.wins[seat])
	}
	fmt.Fprintf(out, "  %-12s %d\n", "ties", t.ties)
}

// run sets up one game with a bot per player and plays it to the end.
func run(settings game.Settings, names []string, personalities []game.AIPersonality, rng *rand.Rand, logger *slog.Logger, stream *messageStream) (*game.GameState, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	players := make([]*game.Player, len(names))
	bots := make(map[string]autoplay.Bot, len(names))
	for i, name := range names {
		p := game.NewAIPlayer(uuid.New().String(), name, personalities[i])
		players[i] = p
		bots[p.ID] = autoplay.NewBot(p.AIPersonality, rng)
	}

	state, err := game.InitializeGame(players, settings, game.NewDeck(settings.DeckSize, rng))
	if err != nil {
		return nil, fmt.Errorf("initialize game: %w", err)
	}
	runner := autoplay.NewRunner(bots, logger)
	if stream != nil {
		stream.emit(protocol.TypeGameStarted, protocol.NewGameStarted(state))
		runner.OnTurn = func(t autoplay.Turn) {
			stream.emit(protocol.TypeTurnPlayed, protocol.TurnPlayedPayload{
				GameID:   state.ID,
				Round:    t.Round,
				PlayerID: t.PlayerID,
				Tile:     t.Tile,
				TileAt:   t.Move.Tile,
				Wildlife: t.Wildlife.String(),
				MarkerAt: t.Move.Marker,
			})
		}
	}
	if err := runner.Play(state); err != nil {
		return nil, err
	}
	return state, nil
}

// messageStream writes protocol messages as JSON lines. A nil stream
// drops everything.
type messageStream struct {
	enc    *json.Encoder
	logger *slog.Logger
}

func (s *messageStream) emit(t protocol.MessageType, payload any) {
	if s == nil {
		return
	}
	msg, err := protocol.NewMessage(t, payload)
	if err == nil {
		err = s.enc.Encode(msg)
	}
	if err != nil {
		s.logger.Warn("failed to write message", "type", t, "err", err)
	}
}

func printScores(out io.Writer, state *game.GameState) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYER\tBOT\tWILDLIFE\tHABITAT\tBONUS\tTOTAL")
	for _, id := range state.PlayerOrder {
		p := state.Players[id]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n",
			p.Name, p.AIPersonality, p.Score.Wildlife, p.Score.Habitat, p.Score.Bonus, p.Score.Total())
	}
	tw.Flush()

	if w := state.DetermineWinner(); w != nil {
		fmt.Fprintf(out, "Winner: %s\n\n", w.Name)
	} else {
		fmt.Fprint(out, "Result: tie\n\n")
	}
}
