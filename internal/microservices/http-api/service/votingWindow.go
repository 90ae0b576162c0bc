package service

import (
	"time"

	"hostelhub/internal/microservices/http-api/models"
)

// WindowState is the lifecycle of a hostel's voting window.
type WindowState int

const (
	WindowNone WindowState = iota
	WindowOpen
	WindowClosed
)

func (s WindowState) String() string {
	switch s {
	case WindowOpen:
		return "OPEN"
	case WindowClosed:
		return "CLOSED"
	default:
		return "NONE"
	}
}

// WindowStatus is the evaluated state of a window at a point in time.
// NeedsExpiry is set when the stored window is still active but its end has
// passed, so the caller must persist it as closed.
type WindowStatus struct {
	State       WindowState
	NeedsExpiry bool
}

func (s WindowStatus) IsOpen() bool {
	return s.State == WindowOpen
}

// EvaluateWindow computes the state of w at now. A nil window is NONE.
// Open means active and startsAt <= now <= endsAt.
func EvaluateWindow(w *models.VotingWindow, now time.Time) WindowStatus {
	if w == nil {
		return WindowStatus{State: WindowNone}
	}
	if !w.IsActive {
		return WindowStatus{State: WindowClosed}
	}
	if now.After(w.EndsAt) {
		return WindowStatus{State: WindowClosed, NeedsExpiry: true}
	}
	if now.Before(w.StartsAt) {
		return WindowStatus{State: WindowClosed}
	}
	return WindowStatus{State: WindowOpen}
}

// NewWindow builds the window opened by an admin at now.
func NewWindow(hostelID string, week, durationDays int, adminID string, now time.Time) (*models.VotingWindow, error) {
	if week <= 0 || durationDays <= 0 {
		return nil, ErrInvalidWindow
	}
	return &models.VotingWindow{
		HostelID:  hostelID,
		Week:      week,
		StartsAt:  now,
		EndsAt:    now.Add(time.Duration(durationDays) * 24 * time.Hour),
		IsActive:  true,
		CreatedBy: adminID,
	}, nil
}
