// Package router keeps the stack of screens shown by the terminal quiz.
// Home sits at the bottom while a topic is played; the question and
// results screens take turns on top of it.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/screen"
)

type Router struct {
	stack []screen.Screen
}

// New returns a router showing initial.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push shows s above the current screen and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Replace swaps the top screen for s, keeping the depth.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Reset discards every screen and starts over with s.
func (r *Router) Reset(s screen.Screen) tea.Cmd {
	r.stack = []screen.Screen{s}
	return s.Init()
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update hands msg to the top screen only.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	top := len(r.stack) - 1
	updated, cmd := r.stack[top].Update(msg)
	r.stack[top] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
