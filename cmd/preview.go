package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/lesson"
)

const previewWidth = 80

var errInputClosed = errors.New("input closed")

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate a lesson and take its quiz in plain text (no database)",
	Long: `Generate a lesson for a topic, read it, and answer its quiz on stdin.

This is a stateless developer tool: no database, no ledger, no events.
Useful for evaluating lesson quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("domain", "Computer Studies", "Domain the lesson belongs to")
	previewCmd.Flags().String("topic", "", "Lesson topic (default: the domain's introduction)")
	previewCmd.Flags().Int("level", 1, "Learner level the lesson is pitched at")
}

func runPreview(cmd *cobra.Command, args []string) error {
	domainVal, _ := cmd.Flags().GetString("domain")
	topic, _ := cmd.Flags().GetString("topic")
	level, _ := cmd.Flags().GetInt("level")

	d, ok := catalog.Lookup(domainVal)
	if !ok {
		return fmt.Errorf("unknown domain %q: must be one of %s", domainVal, strings.Join(catalog.DomainNames(), ", "))
	}
	if strings.TrimSpace(topic) == "" {
		topic = catalog.IntroTopic(d.Name)
	}
	if level < 1 {
		return fmt.Errorf("invalid level %d: must be at least 1", level)
	}

	_ = godotenv.Load()

	// No event recorder here: nothing is logged to the database.
	ctx := cmd.Context()
	provider, _, err := newContentProvider(ctx, nil, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	_, err = previewLesson(ctx, provider, os.Stdin, cmd.OutOrStdout(), d.Name, topic, level)
	if errors.Is(err, errInputClosed) {
		fmt.Fprintln(cmd.OutOrStdout(), "\n(input closed)")
		return nil
	}
	return err
}

// previewLesson runs one lesson session against provider, reading answers
// from in.
func previewLesson(ctx context.Context, provider content.Provider, in io.Reader, out io.Writer, domain, topic string, level int) (lesson.Result, error) {
	scanner := bufio.NewScanner(in)
	sess := lesson.New(domain, topic, nil)

	fmt.Fprintf(out, "Generating a lesson on %s (%s, level %d)...\n\n", topic, domain, level)
	l, err := provider.GenerateLessonContent(ctx, domain, topic, level)
	if err != nil {
		_ = sess.Fail(err)
		return lesson.Result{}, fmt.Errorf("generate lesson: %w", err)
	}
	if err := sess.Load(l); err != nil {
		return lesson.Result{}, err
	}

	fmt.Fprintf(out, "══ %s ══  [%s]\n", l.Title, l.Difficulty)
	if l.Description != "" {
		fmt.Fprintln(out, wordwrap.WrapString(l.Description, previewWidth))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, wordwrap.WrapString(l.Content, previewWidth))
	fmt.Fprint(out, "\nPress Enter to start the quiz...")
	if !scanner.Scan() {
		return lesson.Result{}, errInputClosed
	}
	if err := sess.StartQuiz(); err != nil {
		return lesson.Result{}, err
	}

	for i, q := range l.Quiz {
		fmt.Fprintf(out, "\n── Question %d/%d ──\n%s\n", i+1, len(l.Quiz), wordwrap.WrapString(q.Text, previewWidth))
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}
		for {
			fmt.Fprint(out, "Your answer: ")
			if !scanner.Scan() {
				return lesson.Result{}, errInputClosed
			}
			opt, ok := parseOption(scanner.Text(), len(q.Options))
			if !ok {
				fmt.Fprintf(out, "Enter a number from 1 to %d.\n", len(q.Options))
				continue
			}
			if err := sess.Answer(q.ID, opt); err != nil {
				return lesson.Result{}, err
			}
			break
		}
	}

	r, err := sess.Submit()
	if err != nil {
		return lesson.Result{}, err
	}

	fmt.Fprintln(out)
	for _, item := range sess.ReviewItems() {
		if item.Correct {
			fmt.Fprintf(out, "\033[32m✓\033[0m %s\n", item.Question.Text)
		} else {
			fmt.Fprintf(out, "\033[31m✗\033[0m %s\n    Answer: %s\n", item.Question.Text, item.Question.Options[item.Question.CorrectIndex])
		}
		if item.Question.Explanation != "" {
			fmt.Fprintf(out, "    %s\n", item.Question.Explanation)
		}
	}
	fmt.Fprintf(out, "\n── Score: %d/%d  +%d XP ──\n", r.Score, r.Total, r.XP)
	return r, nil
}

// parseOption accepts a 1-based number or a letter.
func parseOption(s string, n int) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i - 1, i >= 1 && i <= n
	}
	if len(s) == 1 && s[0] >= 'a' && int(s[0]-'a') < n {
		return int(s[0] - 'a'), true
	}
	return 0, false
}
