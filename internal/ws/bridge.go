package ws

import (
	"log"

	"solar_geometry/internal/model"
	"solar_geometry/internal/optimizer"
)

// Bridge implements optimizer.Callback and broadcasts search events to the
// WebSocket hub, so connected clients can watch a grid search advance.
type Bridge struct {
	hub *Hub
}

func NewBridge(hub *Hub) *Bridge {
	return &Bridge{hub: hub}
}

func (b *Bridge) OnProgress(p optimizer.Progress) {
	msg, err := NewEnvelope(TypeOptimizeProgress, ProgressFromOptimizer(p))
	if err != nil {
		log.Printf("Error marshaling progress: %v", err)
		return
	}
	b.hub.Broadcast(msg)
}

func (b *Bridge) OnResult(r model.OptimizationResult) {
	msg, err := NewEnvelope(TypeOptimizeResult, ResultFromOptimizer(r))
	if err != nil {
		log.Printf("Error marshaling result: %v", err)
		return
	}
	b.hub.Broadcast(msg)
}
