package database

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the venues, artists and shows tables.  It is safe
// to call on every start: each statement uses IF NOT EXISTS.
//
// Shows reference both sides.  Removing a venue cascades to its shows;
// removing an artist that still has shows is rejected by the RESTRICT
// rule.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
    id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name                VARCHAR(255)    NOT NULL,
    city                VARCHAR(120)    NOT NULL,
    state               CHAR(2)         NOT NULL,
    address             VARCHAR(120)    NOT NULL,
    phone               VARCHAR(120)    NOT NULL DEFAULT '',
    image_link          VARCHAR(500)    NOT NULL DEFAULT '',
    facebook_link       VARCHAR(120)    NOT NULL DEFAULT '',
    website             VARCHAR(120)    NOT NULL DEFAULT '',
    genres              JSON            NOT NULL,
    seeking_talent      BOOLEAN         NOT NULL DEFAULT FALSE,
    seeking_description TEXT            NOT NULL,
    created_at          DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at          DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    INDEX idx_venues_area (state, city)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS artists (
    id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name                VARCHAR(255)    NOT NULL,
    city                VARCHAR(120)    NOT NULL,
    state               CHAR(2)         NOT NULL,
    phone               VARCHAR(120)    NOT NULL DEFAULT '',
    image_link          VARCHAR(500)    NOT NULL DEFAULT '',
    facebook_link       VARCHAR(120)    NOT NULL DEFAULT '',
    website             VARCHAR(120)    NOT NULL DEFAULT '',
    genres              JSON            NOT NULL,
    seeking_venue       BOOLEAN         NOT NULL DEFAULT FALSE,
    seeking_description TEXT            NOT NULL,
    created_at          DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at          DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shows (
    id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
    venue_id   BIGINT UNSIGNED NOT NULL,
    artist_id  BIGINT UNSIGNED NOT NULL,
    start_time DATETIME        NOT NULL,
    created_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_shows_venue_time (venue_id, start_time),
    INDEX idx_shows_artist_time (artist_id, start_time),
    CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id) ON DELETE CASCADE,
    CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE RESTRICT
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}
