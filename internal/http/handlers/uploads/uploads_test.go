package uploads

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cedarbrook-wellness/content-service/internal/csvimport"
	"github.com/cedarbrook-wellness/content-service/internal/types"
	uploadtypes "github.com/cedarbrook-wellness/content-service/internal/types/upload"
	"github.com/cedarbrook-wellness/content-service/internal/upload/pipeline"
	"github.com/cedarbrook-wellness/content-service/internal/upload/session"
	"github.com/cedarbrook-wellness/content-service/internal/upload/store"
)

type fakeStorage struct {
	upserts      []string
	lastField    string
	lastURL      string
	imports      int
	importRows   int
	importRecord *types.CSVImport
	upsertError  error
}

func (f *fakeStorage) GetContentByKey(section, key string) (types.SiteContent, error) {
	return types.SiteContent{}, nil
}

func (f *fakeStorage) GetContentBySection(section string) ([]types.SiteContent, error) {
	return nil, nil
}

func (f *fakeStorage) UpdateContentText(section, key string, req types.ContentUpdateRequest) (types.SiteContent, error) {
	return types.SiteContent{}, nil
}

func (f *fakeStorage) UpsertContentAsset(section, key, title, content, field, assetURL string) (types.SiteContent, error) {
	if f.upsertError != nil {
		return types.SiteContent{}, f.upsertError
	}
	f.upserts = append(f.upserts, section+"/"+key)
	f.lastField = field
	f.lastURL = assetURL
	return types.SiteContent{Section: section, Key: key, VideoURL: assetURL}, nil
}

func (f *fakeStorage) CreateImport(importID, filename string, weekOf time.Time, processed, analyzed int) error {
	f.imports++
	return nil
}

func (f *fakeStorage) CreateImportRows(importID string, rows []types.SalesRecord) error {
	f.importRows += len(rows)
	return nil
}

func (f *fakeStorage) GetImport(importID string) (types.CSVImport, error) {
	if f.importRecord != nil && f.importRecord.ImportID == importID {
		return *f.importRecord, nil
	}
	return types.CSVImport{}, sql.ErrNoRows
}

func (f *fakeStorage) CreateAdmin(email, password string) (string, error) {
	return "", nil
}

func (f *fakeStorage) GetAdminByEmail(email string) (string, string, error) {
	return "", "", nil
}

func newTestHandlers(t *testing.T) (*Handlers, *fakeStorage, string) {
	t.Helper()

	dir := t.TempDir()
	assets, err := store.NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	st := &fakeStorage{}
	h := NewHandlers(st, assets, session.NewStore(time.Minute, 1<<20), csvimport.NewProcessor(st), nil)
	return h, st, dir
}

func multipartVideoRequest(t *testing.T, fields map[string]string, filename string, payload []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%q) error = %v", k, err)
		}
	}
	fw, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="video"; filename=%q`, filename)},
		"Content-Type":        {"video/mp4"},
	})
	if err != nil {
		t.Fatalf("CreatePart() error = %v", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("writing file part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/center/video-upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestVideoUpload_StoresFileAndUpdatesRecord(t *testing.T) {
	h, st, dir := newTestHandlers(t)
	handler := h.VideoUpload(pipeline.Options{
		MaxBytes:    1 << 20,
		Category:    store.CategoryVideos,
		Timeout:     time.Minute,
		StrictVideo: true,
	})

	req := multipartVideoRequest(t, map[string]string{
		"section": "homepage",
		"key":     "hero",
		"title":   "Welcome",
	}, "intro.mp4", []byte("mp4-bytes"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(st.upserts) != 1 || st.upserts[0] != "homepage/hero" {
		t.Errorf("upserts = %v, want [homepage/hero]", st.upserts)
	}
	if st.lastField != "video" {
		t.Errorf("asset field = %q, want video", st.lastField)
	}

	entries, err := os.ReadDir(filepath.Join(dir, store.CategoryVideos))
	if err != nil {
		t.Fatalf("reading videos dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("videos dir has %d files, want 1", len(entries))
	}
}

func TestVideoUpload_DeclaredSizeRejectedBeforeWrite(t *testing.T) {
	h, _, dir := newTestHandlers(t)
	handler := h.VideoUpload(pipeline.Options{
		MaxBytes: 64,
		Category: store.CategoryVideos,
		Timeout:  time.Minute,
	})

	req := multipartVideoRequest(t, map[string]string{
		"section": "homepage",
		"key":     "hero",
	}, "big.mp4", bytes.Repeat([]byte("v"), 512))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}

	// Nothing may reach disk when the declared size already fails.
	if entries, err := os.ReadDir(filepath.Join(dir, store.CategoryVideos)); err == nil && len(entries) != 0 {
		t.Errorf("videos dir has %d files, want none", len(entries))
	}
}

func TestVideoUpload_MissingSectionAndKey(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	handler := h.VideoUpload(pipeline.Options{
		MaxBytes: 1 << 20,
		Category: store.CategoryVideos,
		Timeout:  time.Minute,
	})

	req := multipartVideoRequest(t, nil, "intro.mp4", []byte("mp4"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestVideoUpload_RejectsUnsupportedContentType(t *testing.T) {
	h, st, _ := newTestHandlers(t)
	handler := h.VideoUpload(pipeline.Options{
		MaxBytes:    1 << 20,
		Category:    store.CategoryVideos,
		Timeout:     time.Minute,
		StrictVideo: true,
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("section", "homepage")
	mw.WriteField("key", "hero")
	part, _ := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="video"; filename="notes.txt"`},
		"Content-Type":        {"text/plain"},
	})
	part.Write([]byte("not a video"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/center/video-upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if len(st.upserts) != 0 {
		t.Errorf("content record updated for a rejected upload")
	}
}

func TestImageUpload_DetectsTypeFromMagicBytes(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	handler := h.ImageUpload(pipeline.Options{
		MaxBytes: 1 << 20,
		Category: store.CategoryRawImages,
		Timeout:  time.Minute,
	})

	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, []byte("pixels")...)
	req := httptest.NewRequest(http.MethodPost, "/api/raw-upload/image?filename=logo.png", bytes.NewReader(png))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp uploadtypes.RawUploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.File.DetectedType != "image/png" {
		t.Errorf("DetectedType = %q, want image/png", resp.File.DetectedType)
	}
}

func TestImageUpload_EmptyBody(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	handler := h.ImageUpload(pipeline.Options{
		MaxBytes: 1 << 20,
		Category: store.CategoryRawImages,
		Timeout:  time.Minute,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/raw-upload/image", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func csvChunkRequest(t *testing.T, body uploadtypes.ChunkedCSVRequest) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling chunk request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/csv-import/csv-json", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCSVImportChunked_TwoChunkFlow(t *testing.T) {
	h, st, _ := newTestHandlers(t)
	handler := h.CSVImportChunked(pipeline.Options{MaxBytes: 1 << 20})

	first := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: "item,quantity,revenue\nyoga mat,",
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 0, TotalChunks: 2},
	})
	rec := httptest.NewRecorder()
	handler(rec, first)

	if rec.Code != http.StatusOK {
		t.Fatalf("first chunk status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var ack uploadtypes.ChunkAck
	if err := json.Unmarshal(rec.Body.Bytes(), &ack); err != nil {
		t.Fatalf("decoding ack: %v", err)
	}
	if ack.Status != "chunk-received" || ack.ReceivedChunks != 1 || ack.TotalChunks != 2 {
		t.Errorf("ack = %+v, want chunk-received 1/2", ack)
	}
	if st.imports != 0 {
		t.Fatal("import ran before the final chunk")
	}

	second := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: "4,120.00\n",
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 1, TotalChunks: 2, IsLastChunk: true},
	})
	rec = httptest.NewRecorder()
	handler(rec, second)

	if rec.Code != http.StatusCreated {
		t.Fatalf("final chunk status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var result uploadtypes.CSVImportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if result.ProcessedItems != 1 || result.AnalyzedItems != 1 {
		t.Errorf("result = %+v, want 1 processed / 1 analyzed", result)
	}
	if st.imports != 1 {
		t.Errorf("imports recorded = %d, want 1", st.imports)
	}
}

func TestCSVImportChunked_SingleShotWithoutChunkData(t *testing.T) {
	h, st, _ := newTestHandlers(t)
	handler := h.CSVImportChunked(pipeline.Options{MaxBytes: 1 << 20})

	req := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: "item,quantity,revenue\ntowels,12,96.00\n",
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
	})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if st.imports != 1 {
		t.Errorf("imports recorded = %d, want 1", st.imports)
	}
}

func TestCSVImportChunked_InvalidWeekOfRejectedBeforeBuffering(t *testing.T) {
	h, st, _ := newTestHandlers(t)
	handler := h.CSVImportChunked(pipeline.Options{MaxBytes: 1 << 20})

	req := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: "item,quantity,revenue\n",
		ContentType: "text/csv",
		WeekOf:      "not-a-date",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 0, TotalChunks: 2},
	})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if st.imports != 0 {
		t.Error("import recorded despite invalid weekOf")
	}
}

func TestCSVImportChunked_DeclaredSizeRejectedBeforeBuffering(t *testing.T) {
	h, st, _ := newTestHandlers(t)
	small := h.CSVImportChunked(pipeline.Options{MaxBytes: 64})

	// A non-final chunk whose declared length dwarfs the ceiling must
	// fail up front, not park bytes in the session store.
	req := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: strings.Repeat("x", 10*1024),
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 0, TotalChunks: 2},
	})
	rec := httptest.NewRecorder()
	small(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusRequestEntityTooLarge, rec.Body.String())
	}
	if st.imports != 0 {
		t.Error("import recorded for a rejected chunk")
	}

	// The session holds nothing for this upload: a later chunk through
	// a roomier route starts the count at one.
	roomy := h.CSVImportChunked(pipeline.Options{MaxBytes: 1 << 20})
	followUp := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: "item,quantity,revenue\n",
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 1, TotalChunks: 2, IsLastChunk: true},
	})
	rec = httptest.NewRecorder()
	roomy(rec, followUp)

	if rec.Code != http.StatusOK {
		t.Fatalf("follow-up status = %d: %s", rec.Code, rec.Body.String())
	}
	var ack uploadtypes.ChunkAck
	if err := json.Unmarshal(rec.Body.Bytes(), &ack); err != nil {
		t.Fatalf("decoding ack: %v", err)
	}
	if ack.ReceivedChunks != 1 {
		t.Errorf("ReceivedChunks = %d, want 1: rejected chunk was buffered", ack.ReceivedChunks)
	}
}

func TestCSVImportChunked_SessionByteCapFreesSession(t *testing.T) {
	dir := t.TempDir()
	assets, err := store.NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	st := &fakeStorage{}
	h := NewHandlers(st, assets, session.NewStore(time.Minute, 32), csvimport.NewProcessor(st), nil)
	handler := h.CSVImportChunked(pipeline.Options{MaxBytes: 1 << 20})

	first := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: strings.Repeat("a", 30),
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 0, TotalChunks: 3},
	})
	rec := httptest.NewRecorder()
	handler(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first chunk status = %d: %s", rec.Code, rec.Body.String())
	}

	over := csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: strings.Repeat("b", 30),
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 1, TotalChunks: 3},
	})
	rec = httptest.NewRecorder()
	handler(rec, over)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("over-cap chunk status = %d, want %d: %s", rec.Code, http.StatusRequestEntityTooLarge, rec.Body.String())
	}

	// The whole session was dropped with it; a retry starts fresh.
	rec = httptest.NewRecorder()
	handler(rec, csvChunkRequest(t, uploadtypes.ChunkedCSVRequest{
		Filename:    "week.csv",
		FileContent: "retry",
		ContentType: "text/csv",
		WeekOf:      "2026-08-24",
		ChunkData:   &uploadtypes.ChunkData{ChunkIndex: 1, TotalChunks: 3},
	}))
	var ack uploadtypes.ChunkAck
	if err := json.Unmarshal(rec.Body.Bytes(), &ack); err != nil {
		t.Fatalf("decoding ack: %v", err)
	}
	if ack.ReceivedChunks != 1 {
		t.Errorf("ReceivedChunks = %d after drop, want 1", ack.ReceivedChunks)
	}
}

func TestImportStatus(t *testing.T) {
	h, st, _ := newTestHandlers(t)
	st.importRecord = &types.CSVImport{ImportID: "imp-1", Filename: "week.csv", ProcessedRows: 3}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/csv-import/{importId}", h.ImportStatus())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/csv-import/imp-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("week.csv")) {
		t.Errorf("response = %s, want the import record", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/csv-import/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown import status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCSVImport_MultipartFlow(t *testing.T) {
	h, st, _ := newTestHandlers(t)
	handler := h.CSVImport(pipeline.Options{MaxBytes: 1 << 20})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("weekOf", "2026-08-24")
	fw, err := mw.CreateFormFile("csvFile", "week.csv")
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	fmt.Fprint(fw, "item,quantity,revenue\nmats,3,45.00\ncandles,n/a,n/a\n")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/csv-import/csv", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var result uploadtypes.CSVImportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if result.ProcessedItems != 2 {
		t.Errorf("ProcessedItems = %d, want 2", result.ProcessedItems)
	}
	if result.AnalyzedItems != 1 {
		t.Errorf("AnalyzedItems = %d, want 1", result.AnalyzedItems)
	}
	if st.imports != 1 || st.importRows != 2 {
		t.Errorf("stored imports = %d rows = %d, want 1 / 2", st.imports, st.importRows)
	}
}

func TestCSVImport_MissingWeekOf(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	handler := h.CSVImport(pipeline.Options{MaxBytes: 1 << 20})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("csvFile", "week.csv")
	fmt.Fprint(fw, "item,quantity,revenue\n")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/csv-import/csv", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestVideoSettings_EmptyThenPopulated(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.VideoSettings()(rec, httptest.NewRequest(http.MethodGet, "/api/file/video-settings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"present":false`)) {
		t.Errorf("empty slot response = %s, want present=false", rec.Body.String())
	}

	upload := h.VideoUpload(pipeline.Options{
		MaxBytes: 1 << 20,
		Category: store.CategoryVideos,
		Timeout:  time.Minute,
	})
	req := multipartVideoRequest(t, map[string]string{"section": "homepage", "key": "hero"}, "intro.mp4", []byte("mp4"))
	rec = httptest.NewRecorder()
	upload(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.VideoSettings()(rec, httptest.NewRequest(http.MethodGet, "/api/file/video-settings", nil))
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"present":true`)) {
		t.Errorf("populated slot response = %s, want present=true", rec.Body.String())
	}
}

func TestDeleteVideo_ClearsSlot(t *testing.T) {
	h, _, dir := newTestHandlers(t)

	upload := h.VideoUpload(pipeline.Options{
		MaxBytes: 1 << 20,
		Category: store.CategoryVideos,
		Timeout:  time.Minute,
	})
	req := multipartVideoRequest(t, map[string]string{"section": "homepage", "key": "hero"}, "intro.mp4", []byte("mp4"))
	rec := httptest.NewRecorder()
	upload(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.DeleteVideo()(rec, httptest.NewRequest(http.MethodDelete, "/api/file/delete-video", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}

	entries, err := os.ReadDir(filepath.Join(dir, store.CategoryVideos))
	if err != nil {
		t.Fatalf("reading videos dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("videos dir has %d files after delete, want none", len(entries))
	}
}
