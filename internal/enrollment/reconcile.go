package enrollment

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quizdesk/internal/models"
)

// Report summarises what Reconcile changed.
type Report struct {
	// RosterLinksAdded counts usernames appended to course rosters.
	RosterLinksAdded int
	// UserLinksAdded counts course names appended to user records.
	UserLinksAdded int
	CoursesCreated []string
	// UnknownStudents lists roster entries naming no user, as "course/username".
	UnknownStudents []string
}

func (r Report) Changed() bool {
	return r.RosterLinksAdded > 0 || r.UserLinksAdded > 0
}

type link struct {
	user   string
	course string
}

// Reconcile restores agreement between user course lists and course rosters.
// For every (user, course) pair the number of occurrences on each side is
// raised to the larger of the two. Nothing is removed. Roster entries for
// unknown users are reported and left in place. Nothing is written when both
// sides already agree.
func (c *Coordinator) Reconcile(ctx context.Context) (Report, error) {
	var rep Report

	users, err := c.users.Load(ctx)
	if err != nil {
		return rep, fmt.Errorf("load users: %w", err)
	}
	courses, err := c.courses.Load(ctx)
	if err != nil {
		return rep, fmt.Errorf("load courses: %w", err)
	}

	onUser := make(map[link]int)
	for _, u := range users {
		for _, name := range u.Courses {
			onUser[link{u.Username, name}]++
		}
	}
	onRoster := make(map[link]int)
	for _, cr := range courses {
		for _, s := range cr.Students {
			onRoster[link{s, cr.Name}]++
		}
	}

	for _, u := range users {
		seen := make(map[string]bool)
		for _, name := range u.Courses {
			if seen[name] {
				continue
			}
			seen[name] = true

			l := link{u.Username, name}
			missing := onUser[l] - onRoster[l]
			if missing <= 0 {
				continue
			}

			ci := models.FindCourse(courses, name)
			if ci < 0 {
				courses = append(courses, models.Course{Name: name, Students: []string{}})
				ci = len(courses) - 1
				rep.CoursesCreated = append(rep.CoursesCreated, name)
			}
			for range missing {
				courses[ci].Students = append(courses[ci].Students, u.Username)
			}
			rep.RosterLinksAdded += missing
		}
	}

	for _, cr := range courses {
		seen := make(map[string]bool)
		for _, s := range cr.Students {
			if seen[s] {
				continue
			}
			seen[s] = true

			ui := models.FindUser(users, s)
			if ui < 0 {
				rep.UnknownStudents = append(rep.UnknownStudents, cr.Name+"/"+s)
				continue
			}

			l := link{s, cr.Name}
			missing := onRoster[l] - onUser[l]
			for range missing {
				users[ui].Courses = append(users[ui].Courses, cr.Name)
			}
			if missing > 0 {
				rep.UserLinksAdded += missing
			}
		}
	}

	if !rep.Changed() {
		c.log.Info(ctx, "reconcile found nothing to repair", "op", "reconcile", "unknown_students", len(rep.UnknownStudents))
		return rep, nil
	}

	if err := c.commit(ctx, users, courses); err != nil {
		c.log.Error(ctx, "reconcile failed", "op", "reconcile", "error", err)
		return Report{}, err
	}

	c.log.Info(ctx, "reconcile repaired links", "op", "reconcile",
		"roster_links", rep.RosterLinksAdded, "user_links", rep.UserLinksAdded,
		"courses_created", len(rep.CoursesCreated), "unknown_students", len(rep.UnknownStudents))
	return rep, nil
}
