package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/km-arc/go-inject/app"
	"github.com/km-arc/go-inject/config"
	"github.com/km-arc/go-inject/container"
)

// ── Demo services ─────────────────────────────────────────────────────────────

// RequestScratch is per-request working state; registered as a prototype so
// every lookup gets a fresh one.
type RequestScratch struct {
	notes []string
}

func NewRequestScratch() *RequestScratch { return &RequestScratch{} }

func (s *RequestScratch) Note(msg string) { s.notes = append(s.notes, msg) }

// GreetingService renders greetings using the application config.
type GreetingService struct {
	cfg *config.Config
}

func NewGreetingService(cfg *config.Config) *GreetingService {
	return &GreetingService{cfg: cfg}
}

func (s *GreetingService) Greet(name string) string {
	return fmt.Sprintf("%s says: hello, %s!", s.cfg.App.Name, name)
}

// GreetingController depends on the service and on the container itself,
// showing both styles of requirement.
type GreetingController struct {
	svc *GreetingService
	c   *container.Container
}

func NewGreetingController(svc *GreetingService, c *container.Container) *GreetingController {
	return &GreetingController{svc: svc, c: c}
}

func (g *GreetingController) Hello(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "world"
	}

	scratch := container.MustResolve[*RequestScratch](g.c, container.ByName("request_scratch"))
	scratch.Note("hello served")

	fmt.Fprintln(w, g.svc.Greet(name))
}

// ── Bootstrap ─────────────────────────────────────────────────────────────────

func main() {
	application, err := app.New() // loads .env automatically
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	// Register demo components; names are derived from the produced types
	// (GreetingService → greeting_service, …).
	if err := application.RegisterTypes(NewGreetingService, NewGreetingController); err != nil {
		log.Fatalf("register: %v", err)
	}
	if err := application.RegisterType(NewRequestScratch, container.AsPrototype()); err != nil {
		log.Fatalf("register: %v", err)
	}

	// Wire the dependency graph.
	if err := application.Boot(); err != nil {
		log.Fatalf("boot: %v", err)
	}

	controller := container.MustResolve[*GreetingController](
		application.Container, container.ByName("greeting_controller"))

	router := application.Router()
	router.Get("/hello", controller.Hello)
	router.Get("/components", func(w http.ResponseWriter, r *http.Request) {
		for _, f := range application.Repository().Factories() {
			fmt.Fprintf(w, "%s\t%s\n", f.ComponentName(), f.ComponentType())
		}
	})

	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}
