// Package models contains the persisted record shapes. Field names in the
// JSON tags match the on-disk users.json / courses.json files.
package models

// User is one account record.
//
// Password holds whatever the configured credential scheme stores; with the
// default scheme that is the plaintext password.
type User struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	BirthYear int      `json:"birth_year"`
	SecQ1     string   `json:"sec_q1"`
	SecQ2     string   `json:"sec_q2"`
	Courses   []string `json:"courses"`
	QuizScore *int     `json:"quiz_score"`
}

// FindUser returns the index of the user with the given username, or -1.
func FindUser(users []User, username string) int {
	for i := range users {
		if users[i].Username == username {
			return i
		}
	}
	return -1
}
