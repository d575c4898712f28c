package memory

import (
	"context"
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/looplab/fsm"

	"github.com/vovakirdan/memory-arcade/internal/sched"
)

// Phase is the controller's lifecycle state.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePlaying    Phase = "playing"
	PhaseTransition Phase = "level_transition"
	PhaseGameOver   Phase = "game_over"
)

// Phase machine events.
const (
	eventStart  = "start"
	eventClear  = "clear"
	eventNext   = "next"
	eventExpire = "expire"
	eventAbort  = "abort"
)

// GameOverText replaces the countdown once time runs out.
const GameOverText = "Game Over"

// Half is the side of a tile a click landed on.
type Half int

const (
	HalfLeft Half = iota
	HalfRight
)

// direction returns the flip direction: -1 from the left half, +1 from the right.
func (h Half) direction() int {
	if h == HalfLeft {
		return -1
	}
	return 1
}

// Outcome reports what a tile click did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeFlipped
	OutcomeMatched
	OutcomeMismatched
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeFlipped:
		return "flipped"
	case OutcomeMatched:
		return "matched"
	case OutcomeMismatched:
		return "mismatched"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// EventKind classifies controller notifications.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventMatched
	EventMismatched
	EventLevelCleared
	EventGameOver
)

// Event is a notable state change, queued for the platform to log or persist.
type Event struct {
	Kind  EventKind
	Level int
	Time  int // Seconds remaining after the change
}

// Stats counts what happened in the current session.
type Stats struct {
	Pairs      int // Pairs matched across all levels
	Mismatches int
	Flips      int
}

// Display is everything the HUD shows.
type Display struct {
	LevelText string
	TimerText string
	Bonuses   []int // Amounts of the "+N" indicators currently visible
}

type bonus struct {
	amount int
	handle sched.Handle
}

// Controller owns one game session. It is driven by ClickTile, Start and the
// callbacks of its scheduler, all on the same goroutine.
type Controller struct {
	rules   Rules
	rng     *rand.Rand
	clock   *sched.Scheduler
	machine *fsm.FSM

	board     *Board
	selection []Pos
	level     int
	time      int // Seconds remaining
	count     int // Unmatched tiles left on the board

	countdown  sched.Handle
	transition sched.Handle
	bonuses    []*bonus
	peeks      map[Pos]sched.Handle

	stats     Stats
	startedAt time.Duration
	endedAt   time.Duration
	events    []Event
	err       error
}

// NewController creates an idle controller.
func NewController(rules Rules, rng *rand.Rand, clock *sched.Scheduler) *Controller {
	return &Controller{
		rules:   rules,
		rng:     rng,
		clock:   clock,
		machine: newPhaseMachine(),
		peeks:   make(map[Pos]sched.Handle),
	}
}

func newPhaseMachine() *fsm.FSM {
	return fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(PhaseIdle), string(PhaseGameOver)}, Dst: string(PhasePlaying)},
			{Name: eventClear, Src: []string{string(PhasePlaying)}, Dst: string(PhaseTransition)},
			{Name: eventNext, Src: []string{string(PhaseTransition)}, Dst: string(PhasePlaying)},
			{Name: eventExpire, Src: []string{string(PhasePlaying)}, Dst: string(PhaseGameOver)},
			{Name: eventAbort, Src: []string{string(PhaseTransition)}, Dst: string(PhaseGameOver)},
		},
		fsm.Callbacks{},
	)
}

// fire moves the phase machine. Events are only fired from states that
// allow them, so a failure means a programming error upstream.
func (c *Controller) fire(event string) {
	if err := c.machine.Event(context.Background(), event); err != nil {
		panic("memory: phase machine: " + err.Error())
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return Phase(c.machine.Current())
}

// Start begins a new session from level 0. It reports false while a
// session is already running, or if the first board could not be dealt
// (see Err).
func (c *Controller) Start() bool {
	if !c.machine.Can(eventStart) {
		return false
	}
	c.stopTimers()

	spec := c.rules.Levels.Level(0)
	board, err := NewBoard(c.rng, spec)
	if err != nil {
		c.err = err
		return false
	}

	c.err = nil
	c.level = 0
	c.time = 0
	c.stats = Stats{}
	c.startedAt = c.clock.Now()
	c.endedAt = 0
	c.events = c.events[:0]

	c.install(board)
	c.fire(eventStart)
	c.addTime(spec.Bonus)
	c.startCountdown()
	c.emit(EventLevelStarted)
	return true
}

// Stop cancels every pending timer. The phase is left as is.
func (c *Controller) Stop() {
	c.stopTimers()
}

// ClickTile flips the tile at pos. Clicks outside play, on the blank cell,
// off the board or on a face-up tile are ignored without any state change.
func (c *Controller) ClickTile(pos Pos, half Half) Outcome {
	if !c.machine.Is(string(PhasePlaying)) || c.board == nil {
		return OutcomeIgnored
	}
	t := c.board.Tile(pos)
	if t == nil || t.Exposed {
		return OutcomeIgnored
	}

	c.cancelPeek(pos)
	t.Exposed = true
	t.Angle += half.direction() * 180
	c.stats.Flips++
	c.selection = append(c.selection, pos)
	if len(c.selection) < 2 {
		return OutcomeFlipped
	}

	first, second := c.board.Tile(c.selection[0]), c.board.Tile(c.selection[1])
	firstPos, secondPos := c.selection[0], c.selection[1]
	c.selection = c.selection[:0]

	if first.Color != second.Color {
		c.turnBack(firstPos, first)
		c.turnBack(secondPos, second)
		c.stats.Mismatches++
		c.emit(EventMismatched)
		return OutcomeMismatched
	}

	c.count -= 2
	c.stats.Pairs++
	c.addTime(c.rules.MatchBonus)
	c.emit(EventMatched)

	if c.count == 0 {
		c.clearLevel()
		return OutcomeCleared
	}
	return OutcomeMatched
}

// turnBack flips a mismatched tile face down, reversing the rotation.
func (c *Controller) turnBack(pos Pos, t *Tile) {
	if t.Angle < 0 {
		t.Angle += 180
	} else {
		t.Angle -= 180
	}
	t.Exposed = false

	if c.rules.Peek <= 0 {
		return
	}
	t.Peeking = true
	c.peeks[pos] = c.clock.After(c.rules.Peek, func() {
		delete(c.peeks, pos)
		if tile := c.board.Tile(pos); tile != nil {
			tile.Peeking = false
		}
	})
}

func (c *Controller) cancelPeek(pos Pos) {
	if h, ok := c.peeks[pos]; ok {
		c.clock.Cancel(h)
		delete(c.peeks, pos)
	}
	if t := c.board.Tile(pos); t != nil {
		t.Peeking = false
	}
}

// clearLevel stops the countdown and schedules the next board.
func (c *Controller) clearLevel() {
	c.clock.Cancel(c.countdown)
	c.countdown = 0
	c.fire(eventClear)
	c.emit(EventLevelCleared)
	c.transition = c.clock.After(c.rules.TransitionDelay, c.nextLevel)
}

func (c *Controller) nextLevel() {
	c.transition = 0

	spec := c.rules.Levels.Level(c.level + 1)
	board, err := NewBoard(c.rng, spec)
	if err != nil {
		c.err = err
		c.fire(eventAbort)
		c.endedAt = c.clock.Now()
		c.emit(EventGameOver)
		return
	}

	c.level++
	c.install(board)
	c.fire(eventNext)
	c.addTime(spec.Bonus)
	c.startCountdown()
	c.emit(EventLevelStarted)
}

func (c *Controller) install(b *Board) {
	for pos, h := range c.peeks {
		c.clock.Cancel(h)
		delete(c.peeks, pos)
	}
	c.board = b
	c.count = b.TileCount()
	c.selection = c.selection[:0]
}

func (c *Controller) startCountdown() {
	c.clock.Cancel(c.countdown)
	c.countdown = c.clock.Every(c.rules.Countdown, c.tick)
}

// tick is the countdown callback.
func (c *Controller) tick() {
	if !c.machine.Is(string(PhasePlaying)) {
		return
	}
	c.time--
	if c.time > 0 {
		return
	}
	c.time = 0
	c.clock.Cancel(c.countdown)
	c.countdown = 0
	c.fire(eventExpire)
	c.endedAt = c.clock.Now()
	c.emit(EventGameOver)
}

// addTime adds seconds to the clock and shows a transient "+N" indicator.
func (c *Controller) addTime(amount int) {
	c.time += amount
	if amount <= 0 {
		return
	}
	b := &bonus{amount: amount}
	b.handle = c.clock.After(c.rules.BonusDisplay, func() {
		c.bonuses = slices.DeleteFunc(c.bonuses, func(x *bonus) bool { return x == b })
	})
	c.bonuses = append(c.bonuses, b)
}

func (c *Controller) stopTimers() {
	c.clock.Cancel(c.countdown)
	c.clock.Cancel(c.transition)
	c.countdown, c.transition = 0, 0
	for _, b := range c.bonuses {
		c.clock.Cancel(b.handle)
	}
	c.bonuses = nil
	for pos, h := range c.peeks {
		c.clock.Cancel(h)
		delete(c.peeks, pos)
	}
}

func (c *Controller) emit(kind EventKind) {
	c.events = append(c.events, Event{Kind: kind, Level: c.level, Time: c.time})
}

// Events returns and clears the queued events.
func (c *Controller) Events() []Event {
	if len(c.events) == 0 {
		return nil
	}
	out := slices.Clone(c.events)
	c.events = c.events[:0]
	return out
}

// Display returns the HUD texts.
func (c *Controller) Display() Display {
	d := Display{
		LevelText: strconv.Itoa(c.level),
		TimerText: strconv.Itoa(c.time),
	}
	if c.Phase() == PhaseGameOver {
		d.TimerText = GameOverText
	}
	for _, b := range c.bonuses {
		d.Bonuses = append(d.Bonuses, b.amount)
	}
	return d
}

// Board returns the current board, nil before the first Start.
func (c *Controller) Board() *Board { return c.board }

// Level returns the current level (0-based).
func (c *Controller) Level() int { return c.level }

// TimeLeft returns the seconds remaining.
func (c *Controller) TimeLeft() int { return c.time }

// Remaining returns the number of unmatched tiles on the board.
func (c *Controller) Remaining() int { return c.count }

// Selection returns the flipped, unresolved positions.
func (c *Controller) Selection() []Pos { return slices.Clone(c.selection) }

// Stats returns the session counters.
func (c *Controller) Stats() Stats { return c.stats }

// Played returns the virtual time since Start, frozen at game over.
func (c *Controller) Played() time.Duration {
	if c.Phase() == PhaseIdle {
		return 0
	}
	if c.Phase() == PhaseGameOver {
		return c.endedAt - c.startedAt
	}
	return c.clock.Now() - c.startedAt
}

// Err returns the last board dealing failure, if any.
func (c *Controller) Err() error { return c.err }
