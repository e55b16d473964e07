// Package quizdata ships the built-in question bank.
package quizdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"millionaire-service/internal/domain"
)

// ClassicID is the id of the built-in fifteen question game.
const ClassicID = "classic"

//go:embed classic.yaml
var classicYAML []byte

// Parse decodes and validates a YAML question bank.
func Parse(data []byte) (domain.Quiz, error) {
	var quiz domain.Quiz
	if err := yaml.Unmarshal(data, &quiz); err != nil {
		return domain.Quiz{}, fmt.Errorf("decode quiz: %w", err)
	}
	if err := quiz.Validate(); err != nil {
		return domain.Quiz{}, err
	}
	return quiz, nil
}

// Classic returns the built-in question bank.
func Classic() domain.Quiz {
	quiz, err := Parse(classicYAML)
	if err != nil {
		panic(fmt.Sprintf("quizdata: embedded classic quiz: %v", err))
	}
	return quiz
}

// Builtin returns every embedded quiz keyed by id.
func Builtin() map[string]domain.Quiz {
	return map[string]domain.Quiz{ClassicID: Classic()}
}
