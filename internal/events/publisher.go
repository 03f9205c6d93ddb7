package events

import (
	"github.com/cedarbrook-wellness/content-service/internal/types"
	"github.com/cedarbrook-wellness/content-service/internal/upload"
	"github.com/cedarbrook-wellness/content-service/internal/upload/store"
)

// Publisher interface for publishing upload lifecycle events
type Publisher interface {
	PublishUploadProgress(sessionKey string, received, total int)
	PublishUploadCompleted(sessionKey string, asset *store.Asset)
	PublishUploadFailed(sessionKey string, err error)
}

// EventPublisher implements the Publisher interface
type EventPublisher struct {
	hub WebSocketHub
}

// WebSocketHub interface for the WebSocket hub
type WebSocketHub interface {
	BroadcastToAll(event *types.Event)
	GetClientCount() int
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(hub WebSocketHub) *EventPublisher {
	return &EventPublisher{
		hub: hub,
	}
}

// PublishUploadProgress reports chunk arrival to connected dashboards
func (p *EventPublisher) PublishUploadProgress(sessionKey string, received, total int) {
	// Nothing to do when no dashboard is watching
	if p.hub.GetClientCount() == 0 {
		return
	}

	eventData := &types.UploadProgressEvent{
		SessionKey:     sessionKey,
		ReceivedChunks: received,
		TotalChunks:    total,
	}

	p.hub.BroadcastToAll(types.NewEvent(types.EventUploadProgress, eventData))
}

// PublishUploadCompleted reports a finished upload and where it landed
func (p *EventPublisher) PublishUploadCompleted(sessionKey string, asset *store.Asset) {
	if p.hub.GetClientCount() == 0 {
		return
	}

	eventData := &types.UploadCompletedEvent{
		SessionKey: sessionKey,
		Filename:   asset.Filename,
		PublicPath: asset.PublicPath,
		Size:       asset.Size,
	}

	p.hub.BroadcastToAll(types.NewEvent(types.EventUploadCompleted, eventData))
}

// PublishUploadFailed reports a terminal failure with its classification
func (p *EventPublisher) PublishUploadFailed(sessionKey string, err error) {
	if p.hub.GetClientCount() == 0 {
		return
	}

	code := upload.CodeIOFailure
	message := "upload failed"
	if ue, ok := upload.AsError(err); ok {
		code = ue.Code
		message = ue.Message
	}

	eventData := &types.UploadFailedEvent{
		SessionKey: sessionKey,
		Code:       string(code),
		Message:    message,
	}

	p.hub.BroadcastToAll(types.NewEvent(types.EventUploadFailed, eventData))
}

// NopPublisher drops all events. Used where no hub is wired.
type NopPublisher struct{}

func (NopPublisher) PublishUploadProgress(string, int, int) {}

func (NopPublisher) PublishUploadCompleted(string, *store.Asset) {}

func (NopPublisher) PublishUploadFailed(string, error) {}
