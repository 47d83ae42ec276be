// Package training computes distance, speed and calories for the supported
// workout types.
package training

import (
	"fmt"
	"math"

	"github.com/claude/ftracker/internal/models"
)

const (
	metersInKm    = 1000
	minutesInHour = 60

	lenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is a workout with known readings. The set of implementations is
// closed: Running, SportsWalking and Swimming.
type Training interface {
	// Name is the workout type name shown in the summary.
	Name() string
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned kilocalories.
	SpentCalories() float64

	base() Base
}

// Base holds the readings every workout type has.
type Base struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (b Base) base() Base { return b }

func (b Base) distance(step float64) float64 {
	return float64(b.Action) * step / metersInKm
}

// Running is a run.
type Running struct {
	Base
}

func (Running) Name() string { return "Running" }

func (r Running) Distance() float64 { return r.distance(lenStep) }

func (r Running) MeanSpeed() float64 { return r.Distance() / r.Duration }

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / metersInKm * r.Duration * minutesInHour
}

// SportsWalking is a race walk.
type SportsWalking struct {
	Base
	Height float64 // cm
}

func (SportsWalking) Name() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 { return w.distance(lenStep) }

func (w SportsWalking) MeanSpeed() float64 { return w.Distance() / w.Duration }

// SpentCalories floors speed²/height before applying the coefficient.
func (w SportsWalking) SpentCalories() float64 {
	speedHeight := floorDiv(math.Pow(w.MeanSpeed(), 2), w.Height)
	return (walkingCaloriesWeightMultiplier*w.Weight +
		speedHeight*walkingSpeedHeightMultiplier*w.Weight) * w.Duration * minutesInHour
}

// Swimming is a pool swim. Action counts strokes.
type Swimming struct {
	Base
	LengthPool float64 // m
	CountPool  int
}

func (Swimming) Name() string { return "Swimming" }

func (s Swimming) Distance() float64 { return s.distance(swimmingLenStep) }

// MeanSpeed is derived from the pool length and lap count, not from strokes.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / metersInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}

// ShowTrainingInfo computes the metrics of t and returns its summary.
func ShowTrainingInfo(t Training) models.InfoMessage {
	return models.InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.base().Duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// Summary is ShowTrainingInfo for readings that may overflow: it fails with
// ErrInvalidValue when any metric is not a finite number.
func Summary(t Training) (models.InfoMessage, error) {
	msg := ShowTrainingInfo(t)
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"distance", msg.Distance},
		{"speed", msg.Speed},
		{"calories", msg.Calories},
	} {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
			return models.InfoMessage{}, fmt.Errorf("%w: %s = %v", ErrInvalidValue, m.name, m.value)
		}
	}
	return msg, nil
}

// floorDiv is floor division computed through the remainder, so that
// floorDiv(1, 0.1) is 9 like a // b on floats, not floor(1/0.1) = 10.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
