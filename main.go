package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"wayfind/internal/config"
	"wayfind/internal/eventbus"
	"wayfind/internal/mapdata"
	"wayfind/internal/nav"
	"wayfind/internal/selection"
	"wayfind/internal/ui"
)

func main() {
	var configPath, venueID string
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&configPath, "c", "", "Path to a config file (shorthand)")
	flag.StringVar(&venueID, "venue", "", "Venue ID, overrides the config")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("wayfind.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if venueID != "" {
		cfg.Venue.VenueID = venueID
	}

	// The demo provider ships a built-in venue; SDK credentials in the
	// config select a real mapping backend when one is compiled in.
	if cfg.Venue.Key != "" {
		log.Printf("Venue credentials present for %q, no SDK backend compiled in, using demo venue", cfg.Venue.VenueID)
	}
	provider := mapdata.NewDemoProvider()
	presenter := mapdata.NewLogPresenter()

	// Initialize services
	mapSvc := mapdata.NewService(provider, bus)
	selector := selection.New(presenter, bus.Publish)
	session := nav.NewSession(mapSvc, presenter, bus.Publish)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, configSvc, mapSvc, presenter, selector, session)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	go func() {
		<-sigChan
		p.Quit()
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventRouteFailed, forward)
	bus.Subscribe(eventbus.EventNavigationArrived, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}
