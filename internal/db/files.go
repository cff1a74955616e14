package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FileInput holds the fields for storing an uploaded file
type FileInput struct {
	FileName      string
	OriginalName  string
	FileType      string
	FileSize      int64
	FileData      []byte
	FileHash      string
	UploadPurpose string
	ExtractedText *string
}

// InsertFile stores an uploaded file and returns its ID. Returns
// ErrDuplicate when the user already uploaded a file with the same hash.
func (db *DB) InsertFile(ctx context.Context, userID uuid.UUID, in FileInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO uploaded_files
		 (user_id, file_name, original_name, file_type, file_size, file_data, file_hash, upload_purpose, extracted_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		userID, in.FileName, in.OriginalName, in.FileType, in.FileSize,
		in.FileData, in.FileHash, in.UploadPurpose, in.ExtractedText,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("file already uploaded: %w", ErrDuplicate)
		}
		return uuid.Nil, fmt.Errorf("failed to insert file: %w", err)
	}
	return id, nil
}

// FindFileByHash returns the name of the user's existing file with the
// given hash, or "" when none exists
func (db *DB) FindFileByHash(ctx context.Context, userID uuid.UUID, hash string) (string, error) {
	var name string
	err := db.pool.QueryRow(ctx,
		`SELECT file_name FROM uploaded_files WHERE user_id = $1 AND file_hash = $2`,
		userID, hash,
	).Scan(&name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up file hash: %w", err)
	}
	return name, nil
}

// ListFiles retrieves file summaries for a user, newest first. An empty
// purpose returns all files.
func (db *DB) ListFiles(ctx context.Context, userID uuid.UUID, purpose string) ([]FileSummary, error) {
	query := `SELECT id, file_name, original_name, file_type, file_size, upload_purpose,
	                 processing_status, extracted_text IS NOT NULL, upload_date, last_accessed
	          FROM uploaded_files WHERE user_id = $1`
	args := []any{userID}
	if purpose != "" {
		query += ` AND upload_purpose = $2`
		args = append(args, purpose)
	}
	query += ` ORDER BY upload_date DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	var files []FileSummary
	for rows.Next() {
		var f FileSummary
		err := rows.Scan(&f.ID, &f.FileName, &f.OriginalName, &f.FileType, &f.FileSize,
			&f.UploadPurpose, &f.ProcessingStatus, &f.HasExtractedText, &f.UploadDate, &f.LastAccessed)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// GetFile retrieves an uploaded file with its bytes, nil when absent
func (db *DB) GetFile(ctx context.Context, fileID uuid.UUID) (*UploadedFile, error) {
	var f UploadedFile
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, original_name, file_type, file_size, file_data,
		        file_hash, upload_purpose, extracted_text, processing_status, upload_date, last_accessed
		 FROM uploaded_files WHERE id = $1`,
		fileID,
	).Scan(&f.ID, &f.UserID, &f.FileName, &f.OriginalName, &f.FileType, &f.FileSize, &f.FileData,
		&f.FileHash, &f.UploadPurpose, &f.ExtractedText, &f.ProcessingStatus, &f.UploadDate, &f.LastAccessed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return &f, nil
}

// GetFileMeta retrieves an uploaded file without its bytes, nil when
// absent
func (db *DB) GetFileMeta(ctx context.Context, fileID uuid.UUID) (*UploadedFile, error) {
	var f UploadedFile
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, original_name, file_type, file_size,
		        file_hash, upload_purpose, extracted_text, processing_status, upload_date, last_accessed
		 FROM uploaded_files WHERE id = $1`,
		fileID,
	).Scan(&f.ID, &f.UserID, &f.FileName, &f.OriginalName, &f.FileType, &f.FileSize,
		&f.FileHash, &f.UploadPurpose, &f.ExtractedText, &f.ProcessingStatus, &f.UploadDate, &f.LastAccessed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return &f, nil
}

// TouchFileAccess stamps the file's last access time
func (db *DB) TouchFileAccess(ctx context.Context, fileID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE uploaded_files SET last_accessed = NOW() WHERE id = $1`, fileID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch file: %w", err)
	}
	return nil
}

// DeleteFile removes a file owned by the user; reports whether a row
// was deleted
func (db *DB) DeleteFile(ctx context.Context, userID, fileID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM uploaded_files WHERE id = $1 AND user_id = $2`,
		fileID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete file: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
