// Package quiz holds the server-side topic lists. Questions themselves are
// served to the browser as static scripts.
package quiz

import (
	"strings"
	"sync"
)

// Exam identifiers accepted in the "exam" query parameter.
const (
	Exam1 = "1"
	Exam2 = "2"
	// AllExams selects both lists, exam 1 first.
	AllExams = "all"
)

// QuestionBank lists practice topics per exam. Returned slices are copies.
type QuestionBank interface {
	Exam1Topics() []string
	Exam2Topics() []string
	AllTopics() []string
}

// StaticBank is a QuestionBank over fixed lists.
type StaticBank struct {
	exam1 []string
	exam2 []string
}

// NewStaticBank copies the given lists.
func NewStaticBank(exam1, exam2 []string) *StaticBank {
	return &StaticBank{exam1: cloneStrings(exam1), exam2: cloneStrings(exam2)}
}

var (
	defaultBankOnce sync.Once
	defaultBank     *StaticBank
)

// Default returns the built-in statistics course topics.
func Default() *StaticBank {
	defaultBankOnce.Do(func() {
		defaultBank = NewStaticBank(
			[]string{
				"Variable Types",
				"Descriptive Stats",
				"Regression",
				"Empirical Rule",
				"Counting",
				"Mean Correction",
				"Z-Score",
				"Formulas",
				"Empirical Rule Concepts",
				"Conceptual Questions",
				"True/False",
			},
			[]string{
				"Assignment 7: Basic Probability",
				"Assignment 8: Conditional Probability",
				"Assignment 9: Binomial Distribution",
				"Assignment 10: Normal Distribution",
				"Assignment 11: Sampling Distributions",
			},
		)
	})
	return defaultBank
}

func (b *StaticBank) Exam1Topics() []string { return cloneStrings(b.exam1) }
func (b *StaticBank) Exam2Topics() []string { return cloneStrings(b.exam2) }

func (b *StaticBank) AllTopics() []string {
	out := make([]string, 0, len(b.exam1)+len(b.exam2))
	out = append(out, b.exam1...)
	return append(out, b.exam2...)
}

// TopicsFor returns the topics of one exam. exam is matched after trimming
// spaces; unknown exams report false.
func TopicsFor(bank QuestionBank, exam string) ([]string, bool) {
	switch strings.TrimSpace(exam) {
	case Exam1:
		return bank.Exam1Topics(), true
	case Exam2:
		return bank.Exam2Topics(), true
	case AllExams:
		return bank.AllTopics(), true
	}
	return nil, false
}

func cloneStrings(input []string) []string {
	if len(input) == 0 {
		return nil
	}
	out := make([]string, len(input))
	copy(out, input)
	return out
}
