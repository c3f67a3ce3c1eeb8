package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/parameter"
)

// Service manages the tcell screen lifecycle and input polling
type Service struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	logger  *zap.Logger

	mu       sync.Mutex
	running  bool
	finiOnce sync.Once

	removeCrashCleanup func()
}

// NewService wraps screen; a nil screen opens the real terminal in Init
func NewService(screen tcell.Screen, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		screen:  screen,
		eventCh: make(chan tcell.Event, parameter.EventChannelSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		logger:  logger,
	}
}

// Init initializes the screen with mouse motion and focus reporting
func (s *Service) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: new screen: %w", err)
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}

	s.removeCrashCleanup = core.PushCrashCleanup(s.screen.Fini)

	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.EnableFocus()
	s.screen.HideCursor()

	w, h := s.screen.Size()
	s.logger.Info("terminal initialized", zap.Int("width", w), zap.Int("height", h))
	return nil
}

// Start launches the input polling goroutine
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	core.Go(s.pollLoop)
}

// pollLoop forwards screen events until stopped or the screen is finalized
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends polling and restores the terminal, safe to call more than once
func (s *Service) Stop() {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	if wasRunning {
		close(s.stopCh)
		// Wake PollEvent so the loop observes the stop signal
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}

	s.finiOnce.Do(func() {
		if s.removeCrashCleanup != nil {
			s.removeCrashCleanup()
		}
		if s.screen != nil {
			s.screen.Fini()
			s.logger.Info("terminal stopped")
		}
	})
}

// Screen returns the wrapped screen
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
