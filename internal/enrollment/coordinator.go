package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/common"
	"github.com/dmitrijs2005/quizdesk/internal/logging"
	"github.com/dmitrijs2005/quizdesk/internal/models"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
)

const dateLayout = "2006-01-02"

// Receipt describes a completed enrollment.
type Receipt struct {
	Username string
	Course   string
	Date     string
}

type Coordinator struct {
	backend storage.Backend
	users   *storage.Collection[models.User]
	courses *storage.Collection[models.Course]
	log     logging.Logger
	now     func() time.Time
}

func NewCoordinator(b storage.Backend, log logging.Logger) *Coordinator {
	return &Coordinator{
		backend: b,
		users:   storage.NewCollection[models.User](b, storage.Users),
		courses: storage.NewCollection[models.Course](b, storage.Courses),
		log:     log,
		now:     time.Now,
	}
}

// Enroll appends course to the user's list and username to the course
// roster, creating the course record on first use. Repeat enrollment appends
// again on both sides.
//
// Users are committed before courses. On backends without batch support a
// failure between the two writes leaves the user side updated and the roster
// unchanged; Reconcile repairs that state.
func (c *Coordinator) Enroll(ctx context.Context, username, course string) (Receipt, error) {
	users, err := c.users.Load(ctx)
	if err != nil {
		return Receipt{}, fmt.Errorf("load users: %w", err)
	}
	courses, err := c.courses.Load(ctx)
	if err != nil {
		return Receipt{}, fmt.Errorf("load courses: %w", err)
	}

	ui := models.FindUser(users, username)
	if ui < 0 {
		c.log.Warn(ctx, "enroll rejected", "op", "enroll", "username", username, "reason", "not found")
		return Receipt{}, common.ErrUserNotFound
	}
	users[ui].Courses = append(users[ui].Courses, course)

	if ci := models.FindCourse(courses, course); ci >= 0 {
		courses[ci].Students = append(courses[ci].Students, username)
	} else {
		courses = append(courses, models.Course{Name: course, Students: []string{username}})
	}

	if err := c.commit(ctx, users, courses); err != nil {
		c.log.Error(ctx, "enroll failed", "op", "enroll", "username", username, "course", course, "error", err)
		return Receipt{}, err
	}

	r := Receipt{Username: username, Course: course, Date: c.now().Format(dateLayout)}
	c.log.Info(ctx, "enrolled", "op", "enroll", "username", username, "course", course)
	return r, nil
}

func (c *Coordinator) commit(ctx context.Context, users []models.User, courses []models.Course) error {
	ue, err := c.users.Stage(users)
	if err != nil {
		return err
	}
	ce, err := c.courses.Stage(courses)
	if err != nil {
		return err
	}
	return storage.Commit(ctx, c.backend, ue, ce)
}
