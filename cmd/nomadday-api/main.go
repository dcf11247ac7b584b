// README: Entry point; loads config, wires the planner and stores, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ldecaneva/NomadDay/internal/ai"
	"github.com/ldecaneva/NomadDay/internal/booking"
	"github.com/ldecaneva/NomadDay/internal/config"
	httptransport "github.com/ldecaneva/NomadDay/internal/http"
	"github.com/ldecaneva/NomadDay/internal/infra"
	"github.com/ldecaneva/NomadDay/internal/itinerary"
	"github.com/ldecaneva/NomadDay/internal/places"
	"github.com/ldecaneva/NomadDay/internal/session"
	"github.com/ldecaneva/NomadDay/internal/trip"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider ai.Provider
	switch cfg.LLM.Provider {
	case "openai":
		provider = ai.NewOpenAIProvider(cfg.LLM.OpenAIKey)
	default:
		provider, err = ai.NewGeminiProvider(ctx, cfg.LLM.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
	}

	var (
		placesSvc *places.Service
		resolver  places.Resolver
		searcher  places.Searcher
		hotels    *booking.HotelService
	)
	if cfg.Places.Key != "" {
		placesSvc, err = places.NewService(cfg.Places.Key)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
		resolver = placesSvc
		searcher = placesSvc
		hotels = booking.NewHotelService(placesSvc)
	} else {
		log.Println("GOOGLE_PLACES_API_KEY not set, place enhancement and hotel search disabled")
	}

	planner := trip.NewPlanner(provider, itinerary.NewEnhancer(resolver), searcher)

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	sessions := session.NewStore(redisClient, cfg.Session.TTL)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:  planner,
		Sessions: sessions,
		Hotels:   hotels,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
