package models

// Course is one course record with its roster of usernames.
type Course struct {
	Name     string   `json:"name"`
	Students []string `json:"students"`
}

func FindCourse(courses []Course, name string) int {
	for i := range courses {
		if courses[i].Name == name {
			return i
		}
	}
	return -1
}
