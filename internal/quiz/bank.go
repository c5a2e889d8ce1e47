// Package quiz holds the fixed question bank and records quiz scores.
package quiz

// Question is one multiple-choice question. Answer is the 0-based index of
// the correct choice.
type Question struct {
	Text    string
	Choices []string
	Answer  int
}

var bank = []Question{
	{Text: "What type of language is Python?", Choices: []string{"Interpreted", "Compiled", "Machine", "None"}, Answer: 0},
	{Text: "Which conditional structure exists in Python?", Choices: []string{"if", "when", "case", "select"}, Answer: 0},
	{Text: "Which function is used to get input from user?", Choices: []string{"print", "input", "scan", "read"}, Answer: 1},
	{Text: "How do we define a list?", Choices: []string{"()", "{}", "[]", "<>"}, Answer: 2},
	{Text: "Which is used to store data permanently?", Choices: []string{"RAM", "Cache", "File", "Clipboard"}, Answer: 2},
}

// Questions returns a copy of the bank in presentation order.
func Questions() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// MaxScore is the score for a fully correct submission.
func MaxScore() int { return len(bank) }

// Score counts answers matching the key at the same position. Answers past
// the end of the bank are ignored and missing ones count as wrong.
func Score(answers []int) int {
	n := 0
	for i, q := range bank {
		if i < len(answers) && answers[i] == q.Answer {
			n++
		}
	}
	return n
}
