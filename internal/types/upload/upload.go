package upload

// StoredAsset is a persisted uploaded file: generated filename, the
// public path it is served from, and what the pipeline learned about it.
type StoredAsset struct {
	Filename     string `json:"filename"`
	PublicPath   string `json:"path"`
	Size         int64  `json:"size"`
	DetectedType string `json:"detectedType,omitempty"`
}

// ChunkData identifies one fragment of a chunked JSON upload.
type ChunkData struct {
	ChunkIndex  int  `json:"chunkIndex"`
	TotalChunks int  `json:"totalChunks"`
	IsLastChunk bool `json:"isLastChunk"`
}

// ChunkedCSVRequest is the body of POST /api/csv-import/csv-json.
type ChunkedCSVRequest struct {
	Filename    string     `json:"filename" validate:"required"`
	FileContent string     `json:"fileContent" validate:"required"`
	ContentType string     `json:"contentType"`
	WeekOf      string     `json:"weekOf" validate:"required"`
	ChunkData   *ChunkData `json:"chunkData"`
}

// ChunkAck is the intermediate response while a session is still
// collecting chunks.
type ChunkAck struct {
	Status         string `json:"status"`
	ReceivedChunks int    `json:"receivedChunks"`
	TotalChunks    int    `json:"totalChunks"`
}

// CSVImportResult is the final response for both CSV import variants.
type CSVImportResult struct {
	ImportID       string `json:"importId"`
	ProcessedItems int    `json:"processedItems"`
	AnalyzedItems  int    `json:"analyzedItems"`
}

// RawUploadResponse is returned by the raw-body image endpoints.
type RawUploadResponse struct {
	Success bool        `json:"success"`
	File    StoredAsset `json:"file"`
}

// VideoSettings describes the single managed video slot.
type VideoSettings struct {
	Filename   string `json:"filename,omitempty"`
	PublicPath string `json:"path,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Present    bool   `json:"present"`
}
