package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONFieldNames(t *testing.T) {
	u := User{Username: "alice", Email: "a@x", Password: "abc123", BirthYear: 1990, SecQ1: "q1", SecQ2: "q2", Courses: []string{}}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"username":"alice","email":"a@x","password":"abc123","birth_year":1990,
		"sec_q1":"q1","sec_q2":"q2","courses":[],"quiz_score":null
	}`, string(b))
}

func TestUser_ReadsOriginalFileShape(t *testing.T) {
	raw := `{"username":"bob","email":"b@x","password":"pw1234","birth_year":2000,
		"sec_q1":"Smith","sec_q2":"Nokia","courses":["Python Basics"],"quiz_score":4}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	require.NotNil(t, u.QuizScore)
	assert.Equal(t, 4, *u.QuizScore)
	assert.Equal(t, []string{"Python Basics"}, u.Courses)
}

func TestFind(t *testing.T) {
	users := []User{{Username: "a"}, {Username: "b"}}
	assert.Equal(t, 1, FindUser(users, "b"))
	assert.Equal(t, -1, FindUser(users, "B"))

	courses := []Course{{Name: "Web Development"}}
	assert.Equal(t, 0, FindCourse(courses, "Web Development"))
	assert.Equal(t, -1, FindCourse(nil, "x"))
}
