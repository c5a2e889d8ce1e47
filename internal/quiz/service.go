package quiz

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quizdesk/internal/common"
	"github.com/dmitrijs2005/quizdesk/internal/logging"
	"github.com/dmitrijs2005/quizdesk/internal/models"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
)

type Service struct {
	users *storage.Collection[models.User]
	log   logging.Logger
}

func NewService(b storage.Backend, log logging.Logger) *Service {
	return &Service{users: storage.NewCollection[models.User](b, storage.Users), log: log}
}

// Submit scores answers and overwrites the user's stored quiz score.
func (s *Service) Submit(ctx context.Context, username string, answers []int) (int, error) {
	score := Score(answers)

	users, err := s.users.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}
	i := models.FindUser(users, username)
	if i < 0 {
		s.log.Warn(ctx, "quiz rejected", "op", "quiz", "username", username, "reason", "not found")
		return 0, common.ErrUserNotFound
	}

	users[i].QuizScore = &score
	if err := s.users.Save(ctx, users); err != nil {
		return 0, fmt.Errorf("save users: %w", err)
	}

	s.log.Info(ctx, "quiz scored", "op", "quiz", "username", username, "score", score)
	return score, nil
}
