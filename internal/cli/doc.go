// Package cli implements the interactive QuizDesk console.
//
// The main menu offers sign up, log in and exit, plus a "repair" command
// that reconciles course rosters with user records. After a successful
// login (or password recovery) the user menu offers enrollment, the quiz,
// a profile view and logout.
//
// Prompts go to the App's writer; logs go to stderr through the configured
// logger, tagged with a per-run session ID.
package cli
