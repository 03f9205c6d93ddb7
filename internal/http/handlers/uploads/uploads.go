package uploads

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cedarbrook-wellness/content-service/internal/csvimport"
	"github.com/cedarbrook-wellness/content-service/internal/events"
	"github.com/cedarbrook-wellness/content-service/internal/storage"
	uploadtypes "github.com/cedarbrook-wellness/content-service/internal/types/upload"
	"github.com/cedarbrook-wellness/content-service/internal/upload"
	"github.com/cedarbrook-wellness/content-service/internal/upload/pipeline"
	"github.com/cedarbrook-wellness/content-service/internal/upload/session"
	"github.com/cedarbrook-wellness/content-service/internal/upload/store"
	"github.com/cedarbrook-wellness/content-service/internal/utils/response"
)

// memory threshold for multipart parsing; larger file parts spool to
// disk and are streamed from there
const multipartMemory = 32 * 1024 * 1024

type Handlers struct {
	content  storage.Storage
	assets   store.AssetStore
	sessions *session.Store
	importer *csvimport.Processor
	events   events.Publisher
}

// NewHandlers creates the upload handler set
func NewHandlers(content storage.Storage, assets store.AssetStore, sessions *session.Store, importer *csvimport.Processor, publisher events.Publisher) *Handlers {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Handlers{
		content:  content,
		assets:   assets,
		sessions: sessions,
		importer: importer,
		events:   publisher,
	}
}

// VideoUpload handles a multipart video upload for a content record
// @Summary Upload a video for a site content block
// @Description Accepts a multipart video upload and points the (section, key) content record at it
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param video formData file true "Video file"
// @Param section formData string true "Content section"
// @Param key formData string true "Content key"
// @Param title formData string false "Display title"
// @Param content formData string false "Body text"
// @Success 201 {object} response.Response "Content record updated"
// @Failure 400 {object} response.UploadError "Validation failure"
// @Failure 413 {object} response.UploadError "Payload too large"
// @Failure 500 {object} response.UploadError "Persistence failure"
// @Router /center/video-upload [post]
func (h *Handlers) VideoUpload(opts pipeline.Options) http.HandlerFunc {
	p := pipeline.New(h.assets, opts)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := p.Context(r.Context())
		defer cancel()

		// Fail on the declared size before touching the body.
		if err := p.CheckDeclaredSize(r.ContentLength); err != nil {
			response.WriteUploadError(w, err)
			return
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			response.WriteUploadError(w, upload.WrapError(upload.CodeMalformedMultipart,
				"failed to parse multipart form", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		section := r.FormValue("section")
		key := r.FormValue("key")
		if section == "" || key == "" {
			response.WriteUploadError(w, upload.NewError(upload.CodeMissingRequiredField,
				"section and key are required"))
			return
		}

		file, header, err := r.FormFile("video")
		if err != nil {
			response.WriteUploadError(w, upload.WrapError(upload.CodeMissingFile,
				"no video file in request", err))
			return
		}
		defer file.Close()

		sessionKey := session.Key(header.Filename, section+":"+key)

		asset, err := p.StoreStream(ctx, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.events.PublishUploadFailed(sessionKey, err)
			response.WriteUploadError(w, err)
			return
		}

		record, err := h.content.UpsertContentAsset(section, key,
			r.FormValue("title"), r.FormValue("content"),
			storage.AssetFieldVideo, asset.PublicPath)
		if err != nil {
			// The file is already on disk; the record never moved. Left
			// as-is and reported, matching the observed behavior.
			slog.Error("Content record update failed after file write",
				slog.String("section", section),
				slog.String("key", key),
				slog.String("filename", asset.Filename),
				slog.String("error", err.Error()))
			dbErr := upload.WrapError(upload.CodeDatabaseFailure, "failed to update content record", err)
			h.events.PublishUploadFailed(sessionKey, dbErr)
			response.WriteUploadError(w, dbErr)
			return
		}

		h.events.PublishUploadCompleted(sessionKey, asset)
		response.WriteJSON(w, http.StatusCreated, response.RequestOK("Video uploaded successfully", record))
	}
}

// ImageUpload handles a raw-body image upload
// @Summary Upload an image from a raw request body
// @Description Accepts the request body as-is, detects the type from magic bytes, and stores it
// @Tags uploads
// @Accept octet-stream
// @Produce json
// @Param filename query string false "Original filename"
// @Success 200 {object} uploadtypes.RawUploadResponse "Stored asset"
// @Failure 400 {object} response.UploadError "Validation failure"
// @Failure 413 {object} response.UploadError "Payload too large"
// @Router /raw-upload/image [post]
func (h *Handlers) ImageUpload(opts pipeline.Options) http.HandlerFunc {
	p := pipeline.New(h.assets, opts)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := p.Context(r.Context())
		defer cancel()

		if err := p.CheckDeclaredSize(r.ContentLength); err != nil {
			response.WriteUploadError(w, err)
			return
		}

		filename := r.URL.Query().Get("filename")
		if filename == "" {
			filename = r.Header.Get("X-File-Name")
		}
		if filename == "" {
			filename = "image.bin"
		}

		// Image ceilings are small; buffering is fine and the magic
		// check needs the leading bytes anyway.
		data, err := io.ReadAll(io.LimitReader(r.Body, opts.MaxBytes+1))
		if err != nil {
			response.WriteUploadError(w, upload.WrapError(upload.CodeIOFailure,
				"failed to read request body", err))
			return
		}

		asset, detected, err := p.StoreBytes(ctx, filename, data)
		if err != nil {
			response.WriteUploadError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, uploadtypes.RawUploadResponse{
			Success: true,
			File: uploadtypes.StoredAsset{
				Filename:     asset.Filename,
				PublicPath:   asset.PublicPath,
				Size:         asset.Size,
				DetectedType: detected,
			},
		})
	}
}

// CSVImport handles a multipart CSV upload
// @Summary Import a weekly sales CSV
// @Tags csv-import
// @Accept multipart/form-data
// @Produce json
// @Param csvFile formData file true "CSV file"
// @Param weekOf formData string true "Week the data covers"
// @Success 201 {object} uploadtypes.CSVImportResult "Import recorded"
// @Failure 400 {object} response.UploadError "Validation failure"
// @Failure 413 {object} response.UploadError "Payload too large"
// @Router /csv-import/csv [post]
func (h *Handlers) CSVImport(opts pipeline.Options) http.HandlerFunc {
	p := pipeline.New(h.assets, opts)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := p.Context(r.Context())
		defer cancel()

		if err := p.CheckDeclaredSize(r.ContentLength); err != nil {
			response.WriteUploadError(w, err)
			return
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			response.WriteUploadError(w, upload.WrapError(upload.CodeMalformedMultipart,
				"failed to parse multipart form", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		weekOf := r.FormValue("weekOf")
		if weekOf == "" {
			response.WriteUploadError(w, upload.NewError(upload.CodeMissingRequiredField,
				"weekOf is required"))
			return
		}

		file, header, err := r.FormFile("csvFile")
		if err != nil {
			response.WriteUploadError(w, upload.WrapError(upload.CodeMissingFile,
				"no csvFile in request", err))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, opts.MaxBytes+1))
		if err != nil {
			response.WriteUploadError(w, upload.WrapError(upload.CodeIOFailure,
				"failed to read CSV payload", err))
			return
		}
		if int64(len(data)) > opts.MaxBytes {
			response.WriteUploadError(w, upload.NewError(upload.CodePayloadTooLarge,
				"CSV payload exceeds the size limit"))
			return
		}

		result, err := h.importer.Import(ctx, header.Filename, weekOf, data)
		if err != nil {
			response.WriteUploadError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, result)
	}
}

// CSVImportChunked handles the JSON chunk-envelope CSV upload
// @Summary Import a weekly sales CSV in JSON chunks
// @Description Each request carries one chunk; the final response matches the multipart variant
// @Tags csv-import
// @Accept json
// @Produce json
// @Param request body uploadtypes.ChunkedCSVRequest true "One chunk of the CSV"
// @Success 200 {object} uploadtypes.ChunkAck "Chunk received"
// @Success 201 {object} uploadtypes.CSVImportResult "Import recorded"
// @Failure 400 {object} response.UploadError "Validation failure"
// @Failure 413 {object} response.UploadError "Payload too large"
// @Router /csv-import/csv-json [post]
func (h *Handlers) CSVImportChunked(opts pipeline.Options) http.HandlerFunc {
	p := pipeline.New(h.assets, opts)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := p.Context(r.Context())
		defer cancel()

		// A single chunk envelope can never legitimately outweigh the
		// whole upload's ceiling; reject it before decoding.
		if err := p.CheckDeclaredSize(r.ContentLength); err != nil {
			response.WriteUploadError(w, err)
			return
		}

		var req uploadtypes.ChunkedCSVRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteUploadError(w, upload.NewError(upload.CodeMissingRequiredField,
				"request body cannot be empty"))
			return
		} else if err != nil {
			response.WriteUploadError(w, upload.WrapError(upload.CodeMalformedMultipart,
				"invalid request body", err))
			return
		}

		// Validate request
		validate := validator.New()
		if err := validate.Struct(req); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteUploadError(w, upload.WrapError(upload.CodeMissingRequiredField,
				"invalid request", err))
			return
		}

		// The weekOf must parse before any chunk is buffered.
		if _, err := csvimport.ParseWeekOf(req.WeekOf); err != nil {
			response.WriteUploadError(w, err)
			return
		}

		// A request without chunk metadata is a complete single-part
		// upload.
		chunk := req.ChunkData
		if chunk == nil {
			chunk = &uploadtypes.ChunkData{ChunkIndex: 0, TotalChunks: 1, IsLastChunk: true}
		}

		sessionKey := session.Key(req.Filename, req.WeekOf)

		res, err := h.sessions.Put(req.Filename, req.WeekOf, req.ContentType,
			chunk.ChunkIndex, chunk.TotalChunks, chunk.IsLastChunk, []byte(req.FileContent))
		if err != nil {
			if ue, ok := upload.AsError(err); ok && ue.Code == upload.CodePayloadTooLarge {
				// The session cannot complete within the ceiling; free
				// what it already buffered.
				h.sessions.Drop(req.Filename, req.WeekOf)
				h.events.PublishUploadFailed(sessionKey, err)
			}
			response.WriteUploadError(w, err)
			return
		}
		h.events.PublishUploadProgress(sessionKey, res.Received, res.Total)

		if !res.Complete {
			response.WriteJSON(w, http.StatusOK, uploadtypes.ChunkAck{
				Status:         "chunk-received",
				ReceivedChunks: res.Received,
				TotalChunks:    res.Total,
			})
			return
		}

		// Assembled size gets the same ceiling as the multipart route.
		if opts.MaxBytes > 0 && int64(len(res.Payload)) > opts.MaxBytes {
			tooLarge := upload.NewError(upload.CodePayloadTooLarge,
				"assembled CSV payload exceeds the size limit")
			h.events.PublishUploadFailed(sessionKey, tooLarge)
			response.WriteUploadError(w, tooLarge)
			return
		}

		result, err := h.importer.Import(ctx, req.Filename, req.WeekOf, res.Payload)
		if err != nil {
			h.events.PublishUploadFailed(sessionKey, err)
			response.WriteUploadError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, result)
	}
}

// ImportStatus reports a recorded CSV import
// @Summary Get one CSV import record
// @Tags csv-import
// @Produce json
// @Param importId path string true "Import ID"
// @Success 200 {object} response.Response "Import record"
// @Failure 404 {object} response.Response "Unknown import"
// @Router /csv-import/{importId} [get]
func (h *Handlers) ImportStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		importID := r.PathValue("importId")

		record, err := h.content.GetImport(importID)
		if errors.Is(err, sql.ErrNoRows) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("import not found")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Import fetched successfully", record))
	}
}

// VideoSettings reports the single managed video slot
// @Summary Get the current video slot
// @Tags file
// @Produce json
// @Success 200 {object} response.Response "Current slot state"
// @Router /file/video-settings [get]
func (h *Handlers) VideoSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets, err := h.assets.List(r.Context(), store.CategoryVideos)
		if err != nil {
			response.WriteUploadError(w, err)
			return
		}

		settings := uploadtypes.VideoSettings{}
		if len(assets) > 0 {
			// The slot holds the most recently written file; generated
			// names sort by timestamp.
			latest := assets[0]
			for _, a := range assets[1:] {
				if a.Filename > latest.Filename {
					latest = a
				}
			}
			settings = uploadtypes.VideoSettings{
				Filename:   latest.Filename,
				PublicPath: latest.PublicPath,
				Size:       latest.Size,
				Present:    true,
			}
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Video settings retrieved", settings))
	}
}

// DeleteVideo clears the single managed video slot
// @Summary Delete the current video slot
// @Tags file
// @Produce json
// @Success 200 {object} response.Response "Deleted filenames"
// @Security BearerAuth
// @Router /file/delete-video [delete]
func (h *Handlers) DeleteVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets, err := h.assets.List(r.Context(), store.CategoryVideos)
		if err != nil {
			response.WriteUploadError(w, err)
			return
		}

		deleted := make([]string, 0, len(assets))
		for _, a := range assets {
			if err := h.assets.Delete(r.Context(), store.CategoryVideos, a.Filename); err != nil {
				response.WriteUploadError(w, err)
				return
			}
			deleted = append(deleted, a.Filename)
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Video slot cleared",
			map[string]interface{}{"deleted": deleted}))
	}
}
