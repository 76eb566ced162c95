//go:generate mockgen -source=channel_sender.go -destination=mocks/channel_sender.go -package=mocks
package usecase

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// ChannelSender delivers a queued passenger message over one channel
type ChannelSender interface {
	// Channel identifies the channel this sender serves
	Channel() entity.Channel

	// Send delivers the message and returns the provider reference
	Send(ctx context.Context, delivery *entity.Delivery) (string, error)
}

// ChannelRouter routes deliveries to the sender registered for their channel
type ChannelRouter interface {
	// Register registers a sender for its channel
	Register(sender ChannelSender)

	// GetSender returns the sender for a channel, or nil
	GetSender(channel entity.Channel) ChannelSender
}
