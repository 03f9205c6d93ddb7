package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/cedarbrook-wellness/content-service/internal/config"
	"github.com/cedarbrook-wellness/content-service/internal/storage"
	"github.com/cedarbrook-wellness/content-service/internal/types"
)

type Postgres struct {
	Db *sql.DB
}

func NewPostgres(cfg *config.Config) (*Postgres, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.PGSQL.Host, cfg.PGSQL.Port, cfg.PGSQL.User, cfg.PGSQL.Password, cfg.PGSQL.DBName, cfg.PGSQL.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		log.Fatal(err)
		return nil, err
	}

	log.Println("Connected to Postgres database")

	// Create tables if they don't exist
	pg := &Postgres{Db: db}
	err = pg.CreateTables()
	if err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	return pg, nil
}

func (p *Postgres) CreateTables() error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS site_content (
			id SERIAL PRIMARY KEY,
			section VARCHAR(100) NOT NULL,
			key VARCHAR(100) NOT NULL,
			title TEXT,
			content TEXT,
			video_url VARCHAR(500),
			image_url VARCHAR(500),
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (section, key)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS csv_imports (
			import_id VARCHAR(36) PRIMARY KEY,
			filename VARCHAR(255) NOT NULL,
			week_of DATE NOT NULL,
			processed_rows INTEGER NOT NULL DEFAULT 0,
			analyzed_rows INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS csv_import_rows (
			id SERIAL PRIMARY KEY,
			import_id VARCHAR(36) NOT NULL REFERENCES csv_imports(import_id) ON DELETE CASCADE,
			item_name VARCHAR(255) NOT NULL,
			category VARCHAR(100),
			quantity INTEGER NOT NULL DEFAULT 0,
			revenue NUMERIC(12,2) NOT NULL DEFAULT 0
		);
		`,
	}

	for _, q := range queries {
		if _, err := p.Db.Exec(q); err != nil {
			return err
		}
	}

	return nil
}

func scanContent(row *sql.Row) (types.SiteContent, error) {
	var c types.SiteContent
	var title, content, videoURL, imageURL sql.NullString
	err := row.Scan(&c.ID, &c.Section, &c.Key, &title, &content, &videoURL, &imageURL, &c.UpdatedAt)
	if err != nil {
		return types.SiteContent{}, err
	}
	c.Title = title.String
	c.Content = content.String
	c.VideoURL = videoURL.String
	c.ImageURL = imageURL.String
	return c, nil
}

func (p *Postgres) GetContentByKey(section, key string) (types.SiteContent, error) {
	query := `
	SELECT id, section, key, title, content, video_url, image_url, updated_at
	FROM site_content WHERE section = $1 AND key = $2
	`
	return scanContent(p.Db.QueryRow(query, section, key))
}

func (p *Postgres) GetContentBySection(section string) ([]types.SiteContent, error) {
	query := `
	SELECT id, section, key, title, content, video_url, image_url, updated_at
	FROM site_content WHERE section = $1 ORDER BY key
	`
	rows, err := p.Db.Query(query, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.SiteContent
	for rows.Next() {
		var c types.SiteContent
		var title, content, videoURL, imageURL sql.NullString
		if err := rows.Scan(&c.ID, &c.Section, &c.Key, &title, &content, &videoURL, &imageURL, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Title = title.String
		c.Content = content.String
		c.VideoURL = videoURL.String
		c.ImageURL = imageURL.String
		result = append(result, c)
	}
	return result, rows.Err()
}

func (p *Postgres) UpdateContentText(section, key string, req types.ContentUpdateRequest) (types.SiteContent, error) {
	query := `
	UPDATE site_content SET title = $3, content = $4, updated_at = CURRENT_TIMESTAMP
	WHERE section = $1 AND key = $2
	RETURNING id, section, key, title, content, video_url, image_url, updated_at
	`
	return scanContent(p.Db.QueryRow(query, section, key, req.Title, req.Content))
}

// UpsertContentAsset is a read-then-write upsert, not transactional: a
// concurrent upload to the same key can race, last writer wins.
func (p *Postgres) UpsertContentAsset(section, key, title, content, field, assetURL string) (types.SiteContent, error) {
	column := "video_url"
	if field == storage.AssetFieldImage {
		column = "image_url"
	}

	_, err := p.GetContentByKey(section, key)
	if err == sql.ErrNoRows {
		insert := fmt.Sprintf(`
		INSERT INTO site_content (section, key, title, content, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, section, key, title, content, video_url, image_url, updated_at
		`, column)
		return scanContent(p.Db.QueryRow(insert, section, key, title, content, assetURL))
	}
	if err != nil {
		return types.SiteContent{}, err
	}

	update := fmt.Sprintf(`
	UPDATE site_content
	SET %s = $3,
	    title = COALESCE(NULLIF($4, ''), title),
	    content = COALESCE(NULLIF($5, ''), content),
	    updated_at = CURRENT_TIMESTAMP
	WHERE section = $1 AND key = $2
	RETURNING id, section, key, title, content, video_url, image_url, updated_at
	`, column)
	return scanContent(p.Db.QueryRow(update, section, key, assetURL, title, content))
}

func (p *Postgres) CreateImport(importID, filename string, weekOf time.Time, processed, analyzed int) error {
	query := `
	INSERT INTO csv_imports (import_id, filename, week_of, processed_rows, analyzed_rows)
	VALUES ($1, $2, $3, $4, $5)
	`
	_, err := p.Db.Exec(query, importID, filename, weekOf, processed, analyzed)
	return err
}

func (p *Postgres) CreateImportRows(importID string, records []types.SalesRecord) error {
	query := `
	INSERT INTO csv_import_rows (import_id, item_name, category, quantity, revenue)
	VALUES ($1, $2, $3, $4, $5)
	`
	for _, r := range records {
		if _, err := p.Db.Exec(query, importID, r.ItemName, r.Category, r.Quantity, r.Revenue); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) GetImport(importID string) (types.CSVImport, error) {
	var imp types.CSVImport
	query := `
	SELECT import_id, filename, week_of, processed_rows, analyzed_rows, created_at
	FROM csv_imports WHERE import_id = $1
	`
	err := p.Db.QueryRow(query, importID).Scan(
		&imp.ImportID, &imp.Filename, &imp.WeekOf, &imp.ProcessedRows, &imp.AnalyzedRows, &imp.CreatedAt)
	return imp, err
}

func (p *Postgres) CreateAdmin(email, password string) (string, error) {
	var adminID int
	query := `
	INSERT INTO admins (email, password)
	VALUES ($1, $2)
	RETURNING id
	`

	err := p.Db.QueryRow(query, email, password).Scan(&adminID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d", adminID), nil
}

func (p *Postgres) GetAdminByEmail(email string) (string, string, error) {
	var adminID int
	var hashedPassword string
	query := `
	SELECT id, password FROM admins WHERE email = $1
	`

	err := p.Db.QueryRow(query, email).Scan(&adminID, &hashedPassword)
	if err != nil {
		return "", "", err
	}

	return fmt.Sprintf("%d", adminID), hashedPassword, nil
}
