// Package session implements the scored-game state machine every
// mini-game shares: play runs to a terminal outcome, a score is computed
// once from the session's own counters, a name is captured, and the
// record is appended to the leaderboard.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/pkg/logger"
	"github.com/okian/fiesta/pkg/metrics"
)

// State enumerates the shared machine states.
type State int

// Machine states. Concrete games specialize what Running means, but the
// shape is identical for all of them.
const (
	Idle State = iota
	Selecting
	Running
	Won
	Lost
	Completed
	NameCapture
	Saved
)

var stateNames = map[State]string{
	Idle:        "idle",
	Selecting:   "selecting",
	Running:     "running",
	Won:         "won",
	Lost:        "lost",
	Completed:   "completed",
	NameCapture: "name_capture",
	Saved:       "saved",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Counters is the per-session scratchpad the games accumulate into. The
// score formula reads a settled snapshot of it exactly once, at the
// transition into Completed.
type Counters struct {
	Moves          int    // memory: board flips counted in pairs
	CorrectAnswers int    // trivia
	Questions      int    // trivia: total asked
	WrongGuesses   int    // word: misses on the current word
	Sequences      int    // simon: sequences echoed back
	Lines          int    // tetris: total cleared lines
	Level          int    // tetris
	Points         int    // incrementally accumulated game points
	BestMillis     int    // reaction: best attempt
	Attempts       int    // reaction
	Lives          int    // pacman
	PrizesWon      int    // gift wheel
	BoardCleared   bool   // pacman: every pellet eaten
	TimeRemaining  int    // seconds left on a countdown, when armed
	Mode           string // selected sub-mode, e.g. the word category
}

// Rules parameterize the generic controller for one game.
type Rules struct {
	Game model.GameID

	// NeedsSelection gates Running behind a pre-play choice.
	NeedsSelection bool

	// Rounds is how many Won/Lost cycles make a full session; zero means
	// the session is a single round.
	Rounds int

	// Score folds the final counter snapshot into the session score.
	Score func(c Counters) int

	// Details renders the human-readable summary stored with the record.
	// It is display-only and never parsed.
	Details func(c Counters) string

	// Difficulty is an optional display-only tag.
	Difficulty string
}

// Saver is the slice of the repository the controller needs.
type Saver interface {
	Append(ctx context.Context, record model.ScoreRecord)
}

// Controller drives one session of one game. A single mutex serializes
// user events and deferred timer callbacks, so transitions observe
// event-delivery order and the score never races a counter update.
type Controller struct {
	mu sync.Mutex

	id    string
	rules Rules
	repo  Saver
	clock func() time.Time
	log   logger.Logger

	state          State
	counters       Counters
	round          int
	finalScore     int
	scored         bool
	countdownArmed bool

	// epoch identifies the current session incarnation. Reset bumps it;
	// deferred callbacks carrying an older epoch are stale and ignored.
	epoch uint64
}

// New creates a controller in Idle for the given rules.
func New(rules Rules, repo Saver, opts ...Option) *Controller {
	c := &Controller{
		id:    uuid.NewString(),
		rules: rules,
		repo:  repo,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get()
	}
	return c
}

// ID returns the opaque session identity, also usable by presentation
// code for its own stale-callback guards.
func (c *Controller) ID() string {
	return c.id
}

// State returns the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the session counters.
func (c *Controller) Snapshot() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters
}

// Score returns the final score and whether it has been computed yet.
func (c *Controller) Score() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finalScore, c.scored
}

// Start leaves Idle: into Selecting when the game has a pre-play choice,
// straight into Running otherwise. Elsewhere it is a no-op.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Idle {
		return
	}
	if c.rules.NeedsSelection {
		c.state = Selecting
		return
	}
	c.beginLocked(ctx)
}

// Select records the chosen sub-mode and enters Running.
func (c *Controller) Select(ctx context.Context, mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Selecting {
		return
	}
	c.counters.Mode = mode
	c.beginLocked(ctx)
}

func (c *Controller) beginLocked(ctx context.Context) {
	c.state = Running
	c.round = 1
	metrics.RecordSessionStarted(string(c.rules.Game))
	c.log.Debug(ctx, "session running",
		logger.String("game", string(c.rules.Game)),
		logger.String("session", c.id),
	)
}

// Update applies a gameplay progress mutation. Input outside Running,
// such as a click after the countdown expired, is a silent no-op rather
// than an error.
func (c *Controller) Update(fn func(*Counters)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return
	}
	fn(&c.counters)
}

// Win marks the current round won. When all rounds are exhausted the
// session escalates to Completed.
func (c *Controller) Win(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return
	}
	c.state = Won
	c.advanceLocked(ctx)
}

// Lose marks the current round lost, escalating like Win does.
func (c *Controller) Lose(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return
	}
	c.state = Lost
	c.advanceLocked(ctx)
}

// NextRound loops a Won or Lost round back into Running. Round-local
// counters are the caller's to reset via Update once Running again.
func (c *Controller) NextRound() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Won && c.state != Lost {
		return
	}
	c.round++
	c.state = Running
}

// Complete ends the whole session from Running, Won, or Lost, computing
// the final score exactly once from the settled counter snapshot.
func (c *Controller) Complete(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running && c.state != Won && c.state != Lost {
		return
	}
	c.completeLocked(ctx)
}

func (c *Controller) completeLocked(ctx context.Context) {
	if !c.scored {
		c.finalScore = c.rules.Score(c.counters)
		c.scored = true
	}
	c.state = Completed
	metrics.RecordSessionCompleted(string(c.rules.Game))
	c.log.Debug(ctx, "session completed",
		logger.String("game", string(c.rules.Game)),
		logger.String("session", c.id),
		logger.Int("score", c.finalScore),
	)
}

// advanceLocked escalates a terminal round outcome to Completed once the
// configured rounds are exhausted; otherwise it stays in Won/Lost for
// the presentation to either loop or abandon.
func (c *Controller) advanceLocked(ctx context.Context) {
	if c.rules.Rounds == 0 || c.round >= c.rules.Rounds {
		c.completeLocked(ctx)
	}
}

// CaptureName opens the name gate. Only game-over state is affected; no
// game logic runs past Completed.
func (c *Controller) CaptureName() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Completed {
		return
	}
	c.state = NameCapture
}

// SubmitName validates the player name and commits the score record.
// Saving straight from Completed is allowed: NameCapture exists for
// presentations that render the name prompt as its own state, and a
// caller that already has the name may collapse the hop. A blank name
// keeps the gate open and reports ErrNameRequired.
func (c *Controller) SubmitName(ctx context.Context, rawName string) (model.ScoreRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Completed && c.state != NameCapture {
		return model.ScoreRecord{}, ErrNotCompleted
	}
	name := model.NormalizePlayerName(rawName)
	if name == "" {
		return model.ScoreRecord{}, ErrNameRequired
	}

	now := c.clock()
	record := model.ScoreRecord{
		ID:         model.NewRecordID(now),
		PlayerName: name,
		Game:       c.rules.Game,
		Score:      c.finalScore,
		Details:    c.rules.Details(c.counters),
		Timestamp:  now.UnixMilli(),
		Difficulty: c.rules.Difficulty,
	}
	c.repo.Append(ctx, record)
	c.state = Saved
	return record, nil
}

// Reset abandons the session from any state: counters, round progress,
// and the computed score all return to their Idle defaults, and pending
// deferred callbacks are orphaned by the epoch bump.
func (c *Controller) Reset(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.state = Idle
	c.counters = Counters{}
	c.round = 0
	c.finalScore = 0
	c.scored = false
	c.countdownArmed = false
	metrics.RecordSessionReset(string(c.rules.Game))
	c.log.Debug(ctx, "session reset",
		logger.String("game", string(c.rules.Game)),
		logger.String("session", c.id),
	)
}

// After schedules fn to re-enter the machine after d. The callback
// captures the current epoch; if the session was reset in the meantime
// the callback is stale and does nothing.
func (c *Controller) After(d time.Duration, fn func(*Controller)) *time.Timer {
	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	return time.AfterFunc(d, func() {
		c.mu.Lock()
		stale := c.epoch != epoch
		c.mu.Unlock()
		if stale {
			metrics.RecordStaleCallback(string(c.rules.Game))
			return
		}
		fn(c)
	})
}

// StartCountdown arms a losing countdown of the given length. The session
// transitions to Lost exactly when it reaches zero, mid-input or not, and
// accepts no scoring input afterwards. Reset cancels it via the epoch.
// Arming while a countdown already runs is a no-op; a second tick chain
// would decrement twice per second.
func (c *Controller) StartCountdown(ctx context.Context, seconds int) {
	c.mu.Lock()
	if c.state != Running || c.countdownArmed {
		c.mu.Unlock()
		return
	}
	c.countdownArmed = true
	c.counters.TimeRemaining = seconds
	c.mu.Unlock()

	c.tickCountdown(ctx)
}

func (c *Controller) tickCountdown(ctx context.Context) {
	c.After(time.Second, func(ctl *Controller) {
		ctl.mu.Lock()
		if ctl.state != Running {
			ctl.countdownArmed = false
			ctl.mu.Unlock()
			return
		}
		ctl.counters.TimeRemaining--
		expired := ctl.counters.TimeRemaining <= 0
		if expired {
			ctl.countdownArmed = false
			ctl.state = Lost
			ctl.advanceLocked(ctx)
			ctl.mu.Unlock()
			return
		}
		ctl.mu.Unlock()
		ctl.tickCountdown(ctx)
	})
}
