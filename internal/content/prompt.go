package content

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are an upbeat instructor writing short self-study lessons for adult beginners. Write clear markdown with headings and short paragraphs.`

func buildLessonUserMessage(domain, topic string, level int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a beginner-friendly lesson for %s on the topic of %q.\n", domain, topic)
	fmt.Fprintf(&b, "The user is currently at level %d.\n", level)
	b.WriteString("Make it engaging, use analogies, and include 3 multiple-choice questions for a quiz.\n")
	b.WriteString(`
Quiz rules:
- Give each question a short unique id ("q1", "q2", ...).
- Each question has 3 or 4 options and exactly one correct answer.
- correctIndex is the zero-based position of the correct option.
- The explanation says why the correct option is right.`)
	return b.String()
}

const recommendSystemPrompt = `You are a learning advisor on a multi-domain learning platform.`

func buildRecommendUserMessage(interests, completedTopics []string) string {
	return fmt.Sprintf(
		"Based on the user's interests: %s and completed topics: %s, suggest 3 next topics they should learn. Return just a simple list of topics.",
		listOrNone(interests), listOrNone(completedTopics),
	)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
