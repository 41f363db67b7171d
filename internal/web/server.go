// Package web serves the quiz to a browser. One Controller is shared by
// every request; handlers hold the server lock for the whole event.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/quizzy/internal/config"
	"github.com/abhisek/quizzy/internal/content"
	"github.com/abhisek/quizzy/internal/quiz"
)

const shutdownTimeout = 5 * time.Second

// Server wraps the fiber app and the single quiz session it plays.
type Server struct {
	app  *fiber.App
	cfg  config.ServerConfig
	log  *zap.Logger
	page *template.Template

	mu       sync.Mutex
	ctrl     *quiz.Controller
	last     quiz.Instruction
	question quiz.ShowQuestion
	feedback *quiz.ShowAnswerFeedback
}

// New builds a Server for catalog. The session starts on the home page.
func New(catalog *content.Catalog, cfg config.ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:  cfg,
		log:  log,
		page: pageTemplate,
	}
	s.ctrl = quiz.New(catalog, quiz.RendererFunc(s.render), quiz.WithLogger(log))
	s.ctrl.GoHome()

	s.app = fiber.New(fiber.Config{
		AppName:               "quizzy",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          ErrorHandler(log),
		DisableStartupMessage: true,
	})
	// requestLogger wraps recover so a panicking request is still logged.
	s.app.Use(requestLogger(log))
	s.app.Use(recover.New())
	s.routes()
	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) routes() {
	s.app.Get("/", s.index)

	s.app.Post("/topics/:id", s.selectTopic)
	s.app.Post("/answers/:index", s.submitAnswer)
	s.app.Post("/next", s.event(func(c *quiz.Controller) { c.Advance() }))
	s.app.Post("/restart", s.event(func(c *quiz.Controller) { c.Restart() }))
	s.app.Post("/home", s.event(func(c *quiz.Controller) { c.GoHome() }))

	api := s.app.Group("/api")
	api.Get("/state", s.state)
	api.Get("/topics", s.topics)
}

// render is the Controller's Renderer. It runs with s.mu held.
func (s *Server) render(in quiz.Instruction) {
	switch in := in.(type) {
	case quiz.ShowQuestion:
		s.question = in
		s.feedback = nil
	case quiz.ShowAnswerFeedback:
		s.feedback = &in
	case quiz.ShowResults, quiz.ShowHome:
		s.feedback = nil
	}
	s.last = in
}

// Run listens on the configured address until ctx is cancelled, then shuts
// the app down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("Starting server", zap.String("addr", s.cfg.Addr))
		if err := s.app.Listen(s.cfg.Addr); err != nil {
			return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.log.Info("Shutting down server")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
