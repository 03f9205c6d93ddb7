package types

import "time"

// EventType represents the type of real-time event
type EventType string

const (
	EventUploadProgress  EventType = "upload.progress"
	EventUploadCompleted EventType = "upload.completed"
	EventUploadFailed    EventType = "upload.failed"
)

// Event represents a real-time event that can be sent over WebSocket
type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// UploadProgressEvent reports chunk arrival for an in-flight upload session
type UploadProgressEvent struct {
	SessionKey     string `json:"session_key"`
	ReceivedChunks int    `json:"received_chunks"`
	TotalChunks    int    `json:"total_chunks"`
}

// UploadCompletedEvent reports a finished upload and its stored location
type UploadCompletedEvent struct {
	SessionKey string `json:"session_key"`
	Filename   string `json:"filename"`
	PublicPath string `json:"public_path"`
	Size       int64  `json:"size"`
}

// UploadFailedEvent reports a terminal upload failure
type UploadFailedEvent struct {
	SessionKey string `json:"session_key"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// NewEvent creates a new event with the current timestamp
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
