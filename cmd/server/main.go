package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"solar_geometry/internal/api"
	"solar_geometry/internal/config"
	"solar_geometry/internal/optimizer"
	"solar_geometry/internal/solar"
	"solar_geometry/internal/ws"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath(), "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m := solar.New()
	m.Albedo = cfg.GetAlbedo()
	m.AltitudeKm = cfg.GetAltitudeKm()

	hub := ws.NewHub()
	bridge := ws.NewBridge(hub)

	opt := optimizer.New(m,
		optimizer.WithWorkers(cfg.GetWorkers()),
		optimizer.WithSteps(cfg.GetTiltStepDeg(), cfg.GetAzimuthStepDeg()),
		optimizer.WithCallback(bridge),
	)

	handler := api.NewHandler(opt)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	handler.Register(mux)
	mux.Handle("/ws", ws.NewHandler(hub))

	listen := cfg.GetAddr()
	if *addr != "" {
		listen = *addr
	}

	log.Printf("Starting server on %s (workers=%d, albedo=%.2f)", listen, cfg.GetWorkers(), cfg.GetAlbedo())
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Fatal(err)
	}
}
