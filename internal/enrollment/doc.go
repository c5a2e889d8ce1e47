// Package enrollment links users to courses. Every enrollment updates both
// the user's course list and the course roster.
package enrollment
