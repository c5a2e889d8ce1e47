package enrollment

import "github.com/dmitrijs2005/quizdesk/internal/common"

// Catalog lists the courses offered in the enrollment menu, in menu order.
var Catalog = []string{"Python Basics", "Web Development", "Data Analysis"}

// CourseByNumber maps a 1-based menu choice to a course name.
func CourseByNumber(n int) (string, error) {
	if n < 1 || n > len(Catalog) {
		return "", common.ErrUnknownCourse
	}
	return Catalog[n-1], nil
}
