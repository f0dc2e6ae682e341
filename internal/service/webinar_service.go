package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"eduforms/internal/model"
	"eduforms/internal/repository"
	"eduforms/internal/webinar"
)

var ErrWebinarNotFound = errors.New("webinar not found")

// Countdown push message types
const (
	MsgCountdownTick  = "countdown_tick"
	MsgWebinarStarted = "webinar_started"
)

// WebinarService handles webinar CRUD and drives the live countdown
// clocks. One ticker runs per watched webinar; it broadcasts every
// second and retires itself when the webinar starts.
type WebinarService struct {
	webinarRepo repository.WebinarRepo
	broadcaster Broadcaster

	mu      sync.Mutex
	tickers map[string]*webinar.Ticker
}

// NewWebinarService creates a new webinar service
func NewWebinarService(webinarRepo repository.WebinarRepo) *WebinarService {
	return &WebinarService{
		webinarRepo: webinarRepo,
		tickers:     make(map[string]*webinar.Ticker),
	}
}

// SetBroadcaster injects the WebSocket hub
func (s *WebinarService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create creates a new webinar after checking the schedule parses
func (s *WebinarService) Create(ctx context.Context, w *model.Webinar) (string, error) {
	if _, err := webinar.ParseSchedule(w.ScheduledDate, w.ScheduledTime); err != nil {
		return "", err
	}
	return s.webinarRepo.Create(ctx, w)
}

// GetByID retrieves a webinar by ID
func (s *WebinarService) GetByID(ctx context.Context, id string) (*model.Webinar, error) {
	w, err := s.webinarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWebinarNotFound
	}
	return w, nil
}

// List retrieves all webinars
func (s *WebinarService) List(ctx context.Context) ([]*model.Webinar, error) {
	return s.webinarRepo.List(ctx)
}

// Update updates an existing webinar
func (s *WebinarService) Update(ctx context.Context, w *model.Webinar) error {
	if _, err := webinar.ParseSchedule(w.ScheduledDate, w.ScheduledTime); err != nil {
		return err
	}
	return s.webinarRepo.Update(ctx, w)
}

// Delete deletes a webinar and stops its countdown if one is running
func (s *WebinarService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if t, ok := s.tickers[id]; ok {
		t.Stop()
		delete(s.tickers, id)
	}
	s.mu.Unlock()
	return s.webinarRepo.Delete(ctx, id)
}

// Countdown returns the current countdown snapshot for a webinar
func (s *WebinarService) Countdown(ctx context.Context, id string) (webinar.Countdown, error) {
	w, err := s.GetByID(ctx, id)
	if err != nil {
		return webinar.Countdown{}, err
	}
	scheduled, err := webinar.ParseSchedule(w.ScheduledDate, w.ScheduledTime)
	if err != nil {
		return webinar.Countdown{}, err
	}
	return webinar.Remaining(scheduled, time.Now()), nil
}

// WatchCountdown starts the per-second countdown broadcast for a webinar
// if it isn't running already. Called when the first WebSocket watcher
// connects; subsequent watchers share the same ticker.
func (s *WebinarService) WatchCountdown(ctx context.Context, id string) error {
	w, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	scheduled, err := webinar.ParseSchedule(w.ScheduledDate, w.ScheduledTime)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.tickers[id]; running {
		return nil
	}

	s.tickers[id] = webinar.StartTicker(scheduled, time.Second, func(c webinar.Countdown) {
		if s.broadcaster == nil {
			return
		}
		if c.State == webinar.StateStarted {
			s.broadcaster.BroadcastToWebinar(id, MsgWebinarStarted, c)
			s.mu.Lock()
			delete(s.tickers, id)
			s.mu.Unlock()
			return
		}
		s.broadcaster.BroadcastToWebinar(id, MsgCountdownTick, c)
	})
	log.Printf("countdown started for webinar %s (scheduled %s %s MSK)", id, w.ScheduledDate, w.ScheduledTime)
	return nil
}

// StopAll cancels every running countdown; used on shutdown
func (s *WebinarService) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tickers {
		t.Stop()
		delete(s.tickers, id)
	}
}
