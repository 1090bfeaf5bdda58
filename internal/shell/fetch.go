package shell

import (
	"context"
	"errors"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/lesson"
	"github.com/mechdyane/mechdyane/internal/store"
	"go.uber.org/zap"
)

// LessonLoaded is the outcome of a lesson fetch, tagged with the
// generation that issued it.
type LessonLoaded struct {
	Gen    uint64
	Lesson *content.Lesson
	Err    error
}

// LessonFetch performs a lesson request. It is safe to run on any
// goroutine.
type LessonFetch func() LessonLoaded

// RecommendLoaded is the outcome of a recommendation fetch.
type RecommendLoaded struct {
	Gen    uint64
	Topics []string
	Err    error
}

// RecommendFetch performs a recommendation request.
type RecommendFetch func() RecommendLoaded

// StartLesson opens the learning view on a new Loading session for topic
// and returns the fetch to run. Any earlier fetch is cancelled and its
// result will be ignored by DeliverLesson.
func (c *Controller) StartLesson(topic, domain string) LessonFetch {
	c.discardLesson()
	c.tab = TabLearning

	c.session = lesson.New(domain, topic, c.onSessionComplete(domain, topic))
	c.log.Info("lesson started",
		zap.String("session_id", c.session.ID),
		zap.String("domain", domain),
		zap.String("topic", topic),
	)
	return c.fetchLesson()
}

// RetryLesson re-issues the fetch for an Unavailable session under a new
// generation.
func (c *Controller) RetryLesson() (LessonFetch, error) {
	if c.session == nil {
		return nil, ErrNoActiveLesson
	}
	if err := c.session.Retry(); err != nil {
		return nil, err
	}
	c.Close()
	c.lessonGen++
	return c.fetchLesson(), nil
}

func (c *Controller) fetchLesson() LessonFetch {
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel

	gen := c.lessonGen
	provider := c.provider
	domain, topic := c.session.Domain, c.session.Topic
	level := c.ledger.Snapshot().Level

	return func() LessonLoaded {
		l, err := provider.GenerateLessonContent(ctx, domain, topic, level)
		return LessonLoaded{Gen: gen, Lesson: l, Err: err}
	}
}

// DeliverLesson hands a fetch result to the active session. It reports
// false when the result belongs to an older generation and was dropped.
func (c *Controller) DeliverLesson(msg LessonLoaded) bool {
	if c.session == nil || msg.Gen != c.lessonGen {
		c.log.Debug("stale lesson result dropped", zap.Uint64("gen", msg.Gen), zap.Uint64("current", c.lessonGen))
		return false
	}
	c.Close()

	if msg.Err != nil {
		c.log.Warn("lesson unavailable",
			zap.String("session_id", c.session.ID),
			zap.String("topic", c.session.Topic),
			zap.Error(msg.Err),
		)
		_ = c.session.Fail(msg.Err)
		return true
	}
	if err := c.session.Load(msg.Lesson); err != nil {
		c.log.Warn("lesson rejected",
			zap.String("session_id", c.session.ID),
			zap.Error(err),
		)
	}
	return true
}

// onSessionComplete wires a session's completion to the ledger and the
// event log.
func (c *Controller) onSessionComplete(domain, topic string) func(lesson.Result) {
	return func(r lesson.Result) {
		c.CompleteLesson(r.XP)
		c.recordCompletion(domain, topic, r)
	}
}

func (c *Controller) recordCompletion(domain, topic string, r lesson.Result) {
	if c.events == nil || c.session == nil {
		return
	}
	data := store.LessonEventData{
		SessionID: c.session.ID,
		Domain:    domain,
		Topic:     topic,
		Score:     r.Score,
		Total:     r.Total,
		XP:        r.XP,
	}
	if l := c.session.Lesson(); l != nil {
		data.LessonID = l.ID
		data.Title = l.Title
		data.Difficulty = string(l.Difficulty)
	}
	if err := c.events.AppendLessonEvent(context.WithoutCancel(c.ctx), data); err != nil {
		c.log.Warn("failed to record lesson event", zap.Error(err))
	}
}

// Recommendations are the current suggestion cards.
func (c *Controller) Recommendations() []catalog.Recommendation {
	return append([]catalog.Recommendation(nil), c.recs...)
}

// RecommendBusy reports whether a refresh is outstanding.
func (c *Controller) RecommendBusy() bool { return c.recBusy }

// RefreshRecommendations asks the provider for new suggestions from the
// learner's interests and completed lessons.
func (c *Controller) RefreshRecommendations() RecommendFetch {
	c.recGen++
	c.recBusy = true

	gen := c.recGen
	provider := c.provider
	ctx := c.ctx
	interests := c.Profile().Interests
	completed := c.ledger.Snapshot().CompletedLessons

	return func() RecommendLoaded {
		topics, err := provider.Recommend(ctx, interests, completed)
		return RecommendLoaded{Gen: gen, Topics: topics, Err: err}
	}
}

// DeliverRecommendations replaces the cards with fresh topics. On failure
// or an empty answer the current cards stay and a notice is set.
func (c *Controller) DeliverRecommendations(msg RecommendLoaded) bool {
	if msg.Gen != c.recGen {
		return false
	}
	c.recBusy = false

	switch {
	case msg.Err != nil:
		c.log.Warn("recommendation refresh failed", zap.Error(msg.Err))
		c.notice = recommendFailureNotice(msg.Err)
	case len(msg.Topics) == 0:
		c.notice = "No new suggestions right now."
	default:
		c.recs = catalog.Recommendations(msg.Topics)
	}
	return true
}

func recommendFailureNotice(err error) string {
	var timeout *content.ProviderTimeoutError
	switch {
	case errors.As(err, &timeout):
		return "Recommendations timed out. Showing your current paths."
	case errors.Is(err, content.ErrNotConfigured):
		return "No AI provider configured. Showing default paths."
	}
	return "Couldn't refresh recommendations. Showing your current paths."
}
