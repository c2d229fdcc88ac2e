package game

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Question is one arithmetic challenge. The answer is never serialized to
// the client; it is revealed per submission in the submit response.
type Question struct {
	Text     string `json:"text"`
	Answer   string `json:"-"`
	Category string `json:"category"`
}

// Category names, matching the five techniques the lessons teach.
const (
	CategoryAddition       = "addition"
	CategorySubtraction    = "subtraction"
	CategoryMultiplication = "multiplication"
	CategorySquaring       = "squaring"
	CategoryNearBase       = "near_base"
)

// Generators produce questions whose operands suit Vedic shortcuts. Each is
// a pure function of the supplied RNG.

func generateAddition(r *rand.Rand) Question {
	num1 := r.Intn(900) + 100 // 3-digit number
	num2 := r.Intn(900) + 100
	return Question{
		Text:     fmt.Sprintf("%d + %d", num1, num2),
		Answer:   strconv.Itoa(num1 + num2),
		Category: CategoryAddition,
	}
}

func generateSubtraction(r *rand.Rand) Question {
	num2 := r.Intn(900) + 100
	num1 := num2 + r.Intn(900) + 100 // first operand always larger
	return Question{
		Text:     fmt.Sprintf("%d - %d", num1, num2),
		Answer:   strconv.Itoa(num1 - num2),
		Category: CategorySubtraction,
	}
}

func generateMultiplication(r *rand.Rand) Question {
	var num1, num2 int
	switch r.Intn(3) {
	case 0: // both operands just under 100 (nikhilam territory)
		num1 = 100 - r.Intn(15) - 1
		num2 = 100 - r.Intn(15) - 1
	case 1: // both operands ending in 5
		num1 = r.Intn(20)*10 + 5
		num2 = r.Intn(20)*10 + 5
	default: // generic two-digit cross multiplication
		num1 = r.Intn(90) + 10
		num2 = r.Intn(90) + 10
	}
	return Question{
		Text:     fmt.Sprintf("%d × %d", num1, num2),
		Answer:   strconv.Itoa(num1 * num2),
		Category: CategoryMultiplication,
	}
}

func generateSquaring(r *rand.Rand) Question {
	var num int
	switch r.Intn(3) {
	case 0: // ends in 5
		num = r.Intn(20)*10 + 5
	case 1: // just under 100
		num = 100 - r.Intn(15) - 1
	default: // generic two-digit
		num = r.Intn(90) + 10
	}
	return Question{
		Text:     fmt.Sprintf("%d²", num),
		Answer:   strconv.Itoa(num * num),
		Category: CategorySquaring,
	}
}

func generateNearBase(r *rand.Rand) Question {
	bases := []int{10, 100, 1000}
	base := bases[r.Intn(len(bases))]

	maxDeviation := base * 15 / 100
	num1 := base + deviation(r, maxDeviation)
	num2 := base + deviation(r, maxDeviation)

	// A deviation of zero would make a trivial ×base problem.
	if num1 == base || num2 == base {
		return generateMultiplication(r)
	}
	return Question{
		Text:     fmt.Sprintf("%d × %d", num1, num2),
		Answer:   strconv.Itoa(num1 * num2),
		Category: CategoryNearBase,
	}
}

func deviation(r *rand.Rand, max int) int {
	if max <= 0 {
		return 0
	}
	d := r.Intn(max)
	if r.Intn(2) == 0 {
		return -d
	}
	return d
}

var generators = []func(*rand.Rand) Question{
	generateAddition,
	generateSubtraction,
	generateMultiplication,
	generateSquaring,
	generateNearBase,
}

// GenerateQuestions draws n distinct questions across the generator pool.
// Distinctness is keyed on text plus answer; colliding draws are retried.
func GenerateQuestions(r *rand.Rand, n int) []Question {
	out := make([]Question, 0, n)
	used := map[string]bool{}
	for len(out) < n {
		q := generators[r.Intn(len(generators))](r)
		key := q.Text + "-" + q.Answer
		if used[key] {
			continue
		}
		used[key] = true
		out = append(out, q)
	}
	return out
}
