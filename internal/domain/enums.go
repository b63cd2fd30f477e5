package domain

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty normalizes user input ("easy", "MEDIUM", ...) into a
// Difficulty constant.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected Easy, Medium, or Hard)", s)
	}
}

type UserBehavior string

const (
	BehaviorCompleted UserBehavior = "completed"
	BehaviorSkipped   UserBehavior = "skipped"
)
