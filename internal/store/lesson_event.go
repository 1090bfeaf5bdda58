package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO lesson_events (
			sequence, timestamp, session_id, lesson_id, domain, topic,
			title, difficulty, score, total, xp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.SessionID, data.LessonID, data.Domain, data.Topic,
		data.Title, data.Difficulty, data.Score, data.Total, data.XP,
	)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessonEvents(ctx context.Context, opts QueryOpts) ([]LessonEvent, error) {
	where, args := opts.rangeClause()
	q := `SELECT id, sequence, timestamp, session_id, lesson_id, domain, topic,
		title, difficulty, score, total, xp
		FROM lesson_events` + where + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}
	defer rows.Close()

	var out []LessonEvent
	for rows.Next() {
		var (
			e  LessonEvent
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.LessonID, &e.Domain, &e.Topic,
			&e.Title, &e.Difficulty, &e.Score, &e.Total, &e.XP); err != nil {
			return nil, fmt.Errorf("scan lesson event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) DailyXP(ctx context.Context, from time.Time, days int) ([]DayXP, error) {
	if days <= 0 {
		return nil, nil
	}

	start := startOfDay(from)
	out := make([]DayXP, days)
	for i := range out {
		out[i].Day = start.AddDate(0, 0, i)
	}
	end := start.AddDate(0, 0, days)

	events, err := r.QueryLessonEvents(ctx, QueryOpts{
		From: start,
		To:   end.Add(-time.Millisecond),
	})
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		day := startOfDay(e.Timestamp.In(from.Location()))
		for i := range out {
			if out[i].Day.Equal(day) {
				out[i].XP += e.XP
				break
			}
		}
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
