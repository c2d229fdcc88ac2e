package lesson

// Step identifiers for the four-part lesson walkthrough.
const (
	StepIntro    = "intro"
	StepMethod   = "method"
	StepExample  = "example"
	StepPractice = "practice"
)

var Steps = []string{StepIntro, StepMethod, StepExample, StepPractice}

type PracticeProblem struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer,omitempty"` // stripped when served to learners
	Explanation string   `json:"explanation,omitempty"`
}

type Definition struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Steps       []string          `json:"steps"`
	Practice    []PracticeProblem `json:"practice"`
}

// FirstLesson and LastLesson bound the fixed course sequence.
const (
	FirstLesson = 1
	LastLesson  = 5
)

// ByID returns the lesson definition, ok=false for ids outside 1..5.
func ByID(id int) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// All returns the course sequence in order.
func All() []Definition { return catalog }

var catalog = []Definition{
	{
		ID:          1,
		Title:       "Addition Made Easy",
		Description: "Learn quick addition techniques",
		Steps:       Steps,
		Practice: []PracticeProblem{
			{
				ID:          1,
				Question:    "Using complementary numbers, calculate: 97 + 64",
				Options:     []string{"151", "161", "171", "181"},
				Answer:      "161",
				Explanation: "97 is 3 away from 100, so: (100 - 3) + 64 = 100 + 64 - 3 = 164 - 3 = 161",
			},
			{
				ID:          2,
				Question:    "Apply the Vedic addition technique: 78 + 83",
				Options:     []string{"161", "151", "171", "141"},
				Answer:      "161",
				Explanation: "78 is 22 away from 100, so: (100 - 22) + 83 = 100 + 83 - 22 = 183 - 22 = 161",
			},
			{
				ID:          3,
				Question:    "Calculate using Vedic method: 996 + 427",
				Options:     []string{"1423", "1413", "1433", "1443"},
				Answer:      "1423",
				Explanation: "996 is 4 away from 1000, so: (1000 - 4) + 427 = 1000 + 427 - 4 = 1427 - 4 = 1423",
			},
		},
	},
	{
		ID:          2,
		Title:       "Subtraction Simplified",
		Description: "Master mental subtraction",
		Steps:       Steps,
		Practice: []PracticeProblem{
			{
				ID:          1,
				Question:    "Using the Vedic subtraction method, calculate: 1000 - 387",
				Options:     []string{"613", "603", "713", "723"},
				Answer:      "613",
				Explanation: "Using the nikhilam method: 1000 - 387 = 999 - 387 + 1 = (999-387) + 1 = 612 + 1 = 613",
			},
			{
				ID:          2,
				Question:    "Apply the vinculum method to calculate: 802 - 356",
				Options:     []string{"446", "456", "546", "556"},
				Answer:      "446",
				Explanation: "802 - 356 = 800 - 356 + 2 = (800-356) + 2 = 444 + 2 = 446",
			},
			{
				ID:          3,
				Question:    "Using Vedic subtraction, calculate: 2001 - 765",
				Options:     []string{"1236", "1246", "1336", "1346"},
				Answer:      "1236",
				Explanation: "2001 - 765 = 2000 - 765 + 1 = (2000-765) + 1 = 1235 + 1 = 1236",
			},
		},
	},
	{
		ID:          3,
		Title:       "Multiplication Magic",
		Description: "Multiply large numbers rapidly",
		Steps:       Steps,
		Practice: []PracticeProblem{
			{
				ID:          1,
				Question:    "Using the Vertically and Crosswise method, calculate: 98 × 97",
				Options:     []string{"9506", "9466", "9526", "9406"},
				Answer:      "9506",
				Explanation: "Using Vertically and Crosswise: (98 × 97) = (100 - 2)(100 - 3) = 100² - 3×100 - 2×100 + 2×3 = 10000 - 500 + 6 = 9506",
			},
			{
				ID:          2,
				Question:    "Apply Vedic multiplication to calculate: 88 × 86",
				Options:     []string{"7568", "7658", "7468", "7558"},
				Answer:      "7568",
				Explanation: "Using the base of 100: 88×86 = (100-12)(100-14) = 100² - 12×100 - 14×100 + 12×14 = 10000 - 2600 + 168 = 7568",
			},
			{
				ID:          3,
				Question:    "Calculate using Nikhilam method: 104 × 98",
				Options:     []string{"10192", "10292", "10186", "10392"},
				Answer:      "10192",
				Explanation: "Using Nikhilam: (100+4)(100-2) = 100² + 4×100 - 2×100 - 4×2 = 10000 + 200 - 8 = 10192",
			},
		},
	},
	{
		ID:          4,
		Title:       "Division Decoded",
		Description: "Approach division differently",
		Steps:       Steps,
		Practice: []PracticeProblem{
			{
				ID:          1,
				Question:    "Using the flag division method, calculate: 4256 ÷ 8",
				Options:     []string{"532", "542", "552", "562"},
				Answer:      "532",
				Explanation: "Using flag division: 4/8 = 0 remainder 4, 42/8 = 5 remainder 2, 25/8 = 3 remainder 1, 16/8 = 2 remainder 0. Result: 532",
			},
			{
				ID:          2,
				Question:    "Apply the Nikhilam division technique to calculate: 8245 ÷ 5",
				Options:     []string{"1649", "1650", "1659", "1669"},
				Answer:      "1649",
				Explanation: "Using the Nikhilam method: 8/5 = 1 remainder 3, 32/5 = 6 remainder 2, 24/5 = 4 remainder 4, 45/5 = 9 remainder 0. Result: 1649",
			},
			{
				ID:          3,
				Question:    "Calculate using Vedic division: 3724 ÷ 4",
				Options:     []string{"921", "931", "941", "951"},
				Answer:      "931",
				Explanation: "3/4 = 0 remainder 3, 37/4 = 9 remainder 1, 12/4 = 3 remainder 0, 4/4 = 1 remainder 0. Result: 931",
			},
		},
	},
	{
		ID:          5,
		Title:       "Squaring Numbers",
		Description: "Learn to square numbers instantly",
		Steps:       Steps,
		Practice: []PracticeProblem{
			{
				ID:          1,
				Question:    "Using the base method, calculate the square of 95",
				Options:     []string{"9025", "9075", "8925", "9125"},
				Answer:      "9025",
				Explanation: "Using base 100: 95² = (100-5)² = 100² - 2×100×5 + 5² = 10000 - 1000 + 25 = 9025",
			},
			{
				ID:          2,
				Question:    "Apply the Vedic squaring method to calculate: 105²",
				Options:     []string{"10925", "11025", "11125", "11225"},
				Answer:      "11025",
				Explanation: "Using base 100: 105² = (100+5)² = 100² + 2×100×5 + 5² = 10000 + 1000 + 25 = 11025",
			},
			{
				ID:          3,
				Question:    "Calculate the square of 996 using Vedic mathematics",
				Options:     []string{"992016", "991216", "992036", "992000"},
				Answer:      "992016",
				Explanation: "Using base 1000: 996² = (1000-4)² = 1000² - 2×1000×4 + 4² = 1000000 - 8000 + 16 = 992016",
			},
		},
	},
}
