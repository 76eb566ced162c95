package router

import (
	"sync"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"
)

// ChannelRouter routes deliveries to the sender registered for their channel
type ChannelRouter struct {
	mu      sync.RWMutex
	senders map[entity.Channel]usecase.ChannelSender
	logger  logger.Logger
}

// NewChannelRouter creates a new channel router
func NewChannelRouter(logger logger.Logger) *ChannelRouter {
	return &ChannelRouter{
		senders: make(map[entity.Channel]usecase.ChannelSender),
		logger:  logger,
	}
}

// Register registers a sender; a later registration for the same channel replaces it
func (r *ChannelRouter) Register(sender usecase.ChannelSender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.senders[sender.Channel()] = sender
	r.logger.Info("Registered sender", "channel", sender.Channel())
}

// GetSender returns the sender for a channel, or nil
func (r *ChannelRouter) GetSender(channel entity.Channel) usecase.ChannelSender {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.senders[channel]
}
