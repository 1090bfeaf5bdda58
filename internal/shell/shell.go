// Package shell is the view shell behind the dashboard: tab navigation,
// starting and completing lessons, and the learner's recommendations.
// It holds no rendering code; the TUI drives it from its update loop.
package shell

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/lesson"
	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/mechdyane/mechdyane/internal/store"
	"go.uber.org/zap"
)

var (
	ErrNoActiveLesson = errors.New("no active lesson")
	ErrUnknownDomain  = errors.New("unknown domain")
)

// EventLog is the part of the store the shell writes completions to and
// reads activity from. store.EventRepo satisfies it.
type EventLog interface {
	AppendLessonEvent(ctx context.Context, data store.LessonEventData) error
	DailyXP(ctx context.Context, from time.Time, days int) ([]store.DayXP, error)
}

// Options configures a Controller. Provider and Ledger are required.
type Options struct {
	Provider content.Provider
	Ledger   *progress.Ledger
	Events   EventLog // optional
	Profile  Profile
	Logger   *zap.Logger

	// Context bounds every fetch the controller starts.
	Context context.Context
}

// Controller owns the shell state. Its methods must be called from a
// single goroutine; the fetch closures it hands out are the only part
// that runs elsewhere, and they touch no controller state.
type Controller struct {
	provider content.Provider
	ledger   *progress.Ledger
	events   EventLog
	log      *zap.Logger
	ctx      context.Context

	tab     Tab
	profile Profile

	session   *lesson.Session
	lessonGen uint64
	cancel    context.CancelFunc

	recs    []catalog.Recommendation
	recGen  uint64
	recBusy bool
	notice  string
}

// New creates a controller showing the dashboard.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := opts.Profile
	p.Interests = slices.Clone(opts.Profile.Interests)

	return &Controller{
		provider: opts.Provider,
		ledger:   opts.Ledger,
		events:   opts.Events,
		log:      logger.Named("shell"),
		ctx:      ctx,
		tab:      TabDashboard,
		profile:  p,
		recs:     catalog.Recommendations(catalog.DefaultTopics),
	}
}

// Tab is the current view.
func (c *Controller) Tab() Tab { return c.tab }

// Navigate switches to a sidebar tab. Leaving the learning view discards
// the lesson and abandons any fetch still in flight.
func (c *Controller) Navigate(id string) error {
	tab, err := ParseTab(id)
	if err != nil {
		return err
	}
	if c.tab == TabLearning {
		c.discardLesson()
	}
	c.tab = tab
	return nil
}

// Progress returns the current ledger snapshot.
func (c *Controller) Progress() progress.Progress {
	return c.ledger.Snapshot()
}

// Session is the active lesson session, or nil.
func (c *Controller) Session() *lesson.Session { return c.session }

// CompleteLesson applies xp to the ledger. The active lesson's topic is
// added to the completed list; without one only the points move.
// Each finished quiz must be applied once.
func (c *Controller) CompleteLesson(xp int) progress.Progress {
	topic := ""
	if c.session != nil {
		topic = c.session.Topic
	}
	before := c.ledger.Snapshot().Level
	p := c.ledger.ApplyCompletion(xp, topic)

	fields := []zap.Field{zap.Int("xp", xp), zap.Int("points", p.Points), zap.Int("level", p.Level)}
	if p.Level > before {
		c.log.Info("level up", fields...)
	} else {
		c.log.Debug("lesson completed", fields...)
	}
	return p
}

// Leaderboard ranks the learner against the static board.
func (c *Controller) Leaderboard() []progress.Entry {
	return progress.Leaderboard(c.profile.Name, c.ledger.Snapshot())
}

// Activity returns XP per day for the last days days, ending today.
// Without an event log it returns nil.
func (c *Controller) Activity(ctx context.Context, days int) ([]store.DayXP, error) {
	if c.events == nil {
		return nil, nil
	}
	return c.events.DailyXP(ctx, time.Now().AddDate(0, 0, -(days-1)), days)
}

// Close abandons any in-flight fetch.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) discardLesson() {
	c.Close()
	c.session = nil
	c.lessonGen++
}

// Notice is a one-line message for the learner, cleared once read.
func (c *Controller) Notice() string {
	n := c.notice
	c.notice = ""
	return n
}
