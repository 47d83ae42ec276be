package models

import "fmt"

// Package is one batch entry as received from a sensor: a workout type code
// and the ordered readings for that type.
type Package struct {
	Type   string    `yaml:"type" json:"type"`
	Values []float64 `yaml:"values" json:"values"`
}

// InfoMessage is the summary of a completed workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary line shown to the user.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
