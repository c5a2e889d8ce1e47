package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/quiz"
)

// TakeQuiz asks every question of the bank and stores the score. A
// non-numeric answer abandons the quiz without saving anything.
func (a *App) TakeQuiz(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { a.finish(ctx, "quiz", start, err) }()

	questions := quiz.Questions()
	answers := make([]int, 0, len(questions))

	for _, q := range questions {
		printlnFn(a.out, "\n"+q.Text)
		for i, c := range q.Choices {
			printlnFn(a.out, fmt.Sprintf("%d. %s", i+1, c))
		}
		n, err := getNumber(a.reader, "Your answer (number):", a.out)
		if err != nil {
			return err
		}
		answers = append(answers, n-1)
	}

	var score int
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		score, err = a.quiz.Submit(ctx, a.session, answers)
		return err
	})
	if err != nil {
		return err
	}

	a.metrics.QuizScored(score)
	printlnFn(a.out, fmt.Sprintf("Quiz finished. Your score: %d/%d", score, quiz.MaxScore()))
	return nil
}
