package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/enrollment"
)

// Enroll lists the catalog and enrolls the session user in the chosen course.
func (a *App) Enroll(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { a.finish(ctx, "enroll", start, err) }()

	printlnFn(a.out, "Available courses:")
	for i, c := range enrollment.Catalog {
		printlnFn(a.out, fmt.Sprintf("%d. %s", i+1, c))
	}

	n, err := getNumber(a.reader, "Enter course number:", a.out)
	if err != nil {
		return err
	}
	course, err := enrollment.CourseByNumber(n)
	if err != nil {
		return err
	}

	var r enrollment.Receipt
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		r, err = a.enrollment.Enroll(ctx, a.session, course)
		return err
	})
	if err != nil {
		return err
	}

	printlnFn(a.out, fmt.Sprintf("Successfully enrolled in '%s'. Date: %s", r.Course, r.Date))
	return nil
}

// Repair reconciles user course lists with course rosters.
func (a *App) Repair(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { a.finish(ctx, "repair", start, err) }()

	var rep enrollment.Report
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		rep, err = a.enrollment.Reconcile(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if !rep.Changed() {
		printlnFn(a.out, "Enrollments are consistent.")
	} else {
		printlnFn(a.out, fmt.Sprintf("Repaired: %d roster entries and %d user course entries added.",
			rep.RosterLinksAdded, rep.UserLinksAdded))
	}
	for _, c := range rep.CoursesCreated {
		printlnFn(a.out, "Created course:", c)
	}
	for _, s := range rep.UnknownStudents {
		printlnFn(a.out, "Roster names unknown user:", s)
	}
	return nil
}
