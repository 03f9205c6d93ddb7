package storage

import (
	"time"

	"github.com/cedarbrook-wellness/content-service/internal/types"
)

type Storage interface {
	GetContentByKey(section, key string) (types.SiteContent, error)
	GetContentBySection(section string) ([]types.SiteContent, error)
	UpdateContentText(section, key string, req types.ContentUpdateRequest) (types.SiteContent, error)

	// UpsertContentAsset points the (section, key) record at a freshly
	// stored asset, creating the record if it does not exist. The field
	// argument selects which pointer is replaced ("video" or "image").
	UpsertContentAsset(section, key, title, content, field, assetURL string) (types.SiteContent, error)

	CreateImport(importID, filename string, weekOf time.Time, processed, analyzed int) error
	CreateImportRows(importID string, rows []types.SalesRecord) error
	GetImport(importID string) (types.CSVImport, error)

	CreateAdmin(email, password string) (string, error)
	GetAdminByEmail(email string) (string, string, error)
}

// Asset pointer fields accepted by UpsertContentAsset.
const (
	AssetFieldVideo = "video"
	AssetFieldImage = "image"
)
