package main

import (
	"net/http"

	"github.com/jonboulle/clockwork"
)

func main() {
	config := MustLoadConfig()

	hub := NewHub()
	registry := NewRegistry(hub)
	store := NewSubmissionStore()
	timers := NewTurnTimerService(clockwork.NewRealClock(), hub)
	gateway := NewGateway(registry, store, timers, hub)

	handler := NewHTTPServer(registry, store, gateway)
	LogStartedServer(config.Port)
	http.ListenAndServe(":"+config.Port, handler)
}
