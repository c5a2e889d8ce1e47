package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/models"
)

func (a *App) Profile(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { a.finish(ctx, "profile", start, err) }()

	var u models.User
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		u, err = a.accounts.Lookup(ctx, a.session)
		return err
	})
	if err != nil {
		return err
	}

	courses := "none"
	if len(u.Courses) > 0 {
		courses = strings.Join(u.Courses, ", ")
	}
	score := "not taken"
	if u.QuizScore != nil {
		score = strconv.Itoa(*u.QuizScore)
	}

	printlnFn(a.out, "Username:  ", u.Username)
	printlnFn(a.out, "Email:     ", u.Email)
	printlnFn(a.out, "Birth year:", u.BirthYear)
	printlnFn(a.out, "Courses:   ", courses)
	printlnFn(a.out, "Quiz score:", score)
	return nil
}
