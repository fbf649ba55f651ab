package domain

// FixReport is the outcome of a fix-mode run with the names of the rules that fired.
type FixReport struct {
	Output  string        `json:"output"`
	Applied []AppliedRule `json:"applied"`
}

// AppliedRule names one rule that matched and how often.
type AppliedRule struct {
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
	Matches     int    `json:"matches"`
}
