package view

import (
	"github.com/zoomie/transations/internal/models"
)

type Kind int

const (
	// Empty is the initial state: the placeholder control is shown.
	Empty Kind = iota
	// Chart holds the points received from the API.
	Chart
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Chart:
		return "chart"
	}
	return "unknown"
}

// State is the displayed content of a View. The zero value is Empty.
type State struct {
	kind   Kind
	points []models.TransactionPoint
}

func (s State) Kind() Kind { return s.kind }

// Points returns a copy of the chart points; nil for Empty.
func (s State) Points() []models.TransactionPoint {
	if s.kind != Chart {
		return nil
	}
	out := make([]models.TransactionPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Apply returns the state after receiving resp. Only Empty moves, and only to
// Chart when the user has data; every other combination returns s unchanged.
func (s State) Apply(resp *models.APIResponse) State {
	if s.kind != Empty || resp == nil || !resp.UserHasData {
		return s
	}
	points := make([]models.TransactionPoint, len(resp.Transactions))
	copy(points, resp.Transactions)
	return State{kind: Chart, points: points}
}
