package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/studenthub/internal/db"
	"github.com/jonathan/studenthub/internal/document"
	"github.com/jonathan/studenthub/internal/resume"
	"github.com/jonathan/studenthub/internal/server/middleware"
)

// maxUploadSize caps uploads at 10 MiB
const maxUploadSize = 10 << 20

var validUploadPurposes = map[string]bool{
	"resume":        true,
	"profile_photo": true,
	"other":         true,
}

// handleUploadFile stores a multipart upload in the database. Uploads
// are deduplicated per user by content hash.
func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "File size exceeds the maximum allowed limit", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Please select a file to upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	purpose := r.FormValue("purpose")
	if purpose == "" {
		purpose = "other"
	}
	if !validUploadPurposes[purpose] {
		http.Error(w, "Purpose must be one of: resume, profile_photo, other", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if !document.AllowedMimeTypes[mimeType] {
		http.Error(w, "Invalid file type. Only PDF, DOCX, DOC, JPEG, PNG, and GIF files are allowed.", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	hash := sha256.Sum256(data)
	fileHash := hex.EncodeToString(hash[:])

	existing, err := s.db.FindFileByHash(r.Context(), userID, fileHash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if existing != "" {
		http.Error(w, fmt.Sprintf("This file has already been uploaded as: %s", existing), http.StatusConflict)
		return
	}

	var extractedText *string
	if document.ShouldExtract(purpose, mimeType) {
		text := document.ExtractText(data, mimeType, header.Filename)
		extractedText = &text
	}

	fileName := uniqueFileName(purpose, userID, header.Filename)
	fileID, err := s.db.InsertFile(r.Context(), userID, db.FileInput{
		FileName:      fileName,
		OriginalName:  header.Filename,
		FileType:      mimeType,
		FileSize:      int64(len(data)),
		FileData:      data,
		FileHash:      fileHash,
		UploadPurpose: purpose,
		ExtractedText: extractedText,
	})
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "File uploaded successfully",
		"file": map[string]any{
			"id":               fileID,
			"fileName":         fileName,
			"originalName":     header.Filename,
			"fileType":         mimeType,
			"fileSize":         len(data),
			"purpose":          purpose,
			"hasExtractedText": extractedText != nil,
		},
	})
}

// uniqueFileName builds a stored name that never collides across
// uploads of the same original file
func uniqueFileName(purpose string, userID uuid.UUID, originalName string) string {
	randBytes := make([]byte, 8)
	_, _ = rand.Read(randBytes)
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	return fmt.Sprintf("%s_%s_%d_%s.%s", purpose, userID, time.Now().UnixMilli(), hex.EncodeToString(randBytes), ext)
}

// handleListFiles lists the authenticated user's files without their
// bytes
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	purpose := r.URL.Query().Get("purpose")
	if purpose != "" && !validUploadPurposes[purpose] {
		http.Error(w, "Invalid purpose filter", http.StatusBadRequest)
		return
	}

	files, err := s.db.ListFiles(r.Context(), userID, purpose)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

// ownedFile loads a file and enforces that it belongs to the caller.
// A foreign file is reported as not found rather than forbidden.
func (s *Server) ownedFile(w http.ResponseWriter, r *http.Request, userID uuid.UUID, withData bool) *db.UploadedFile {
	fileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid file ID", http.StatusBadRequest)
		return nil
	}

	var file *db.UploadedFile
	if withData {
		file, err = s.db.GetFile(r.Context(), fileID)
	} else {
		file, err = s.db.GetFileMeta(r.Context(), fileID)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if file == nil || file.UserID != userID {
		http.Error(w, "File not found", http.StatusNotFound)
		return nil
	}
	return file
}

// handleDownloadFile streams a stored file back to its owner
func (s *Server) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	file := s.ownedFile(w, r, userID, true)
	if file == nil {
		return
	}

	if err := s.db.TouchFileAccess(r.Context(), file.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", file.FileType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.FileSize))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.OriginalName))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	_, _ = w.Write(file.FileData)
}

// handleFileText returns the extracted text of a stored file
func (s *Server) handleFileText(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	file := s.ownedFile(w, r, userID, false)
	if file == nil {
		return
	}

	if file.ExtractedText == nil {
		http.Error(w, "No extracted text is available for this file", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"file": map[string]any{
			"id":            file.ID,
			"originalName":  file.OriginalName,
			"purpose":       file.UploadPurpose,
			"extractedText": *file.ExtractedText,
		},
	})
}

// handleDeleteFile removes a file owned by the authenticated user
func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	file := s.ownedFile(w, r, userID, false)
	if file == nil {
		return
	}

	deleted, err := s.db.DeleteFile(r.Context(), userID, file.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "File deleted successfully",
		"deletedFile": map[string]any{
			"id":           file.ID,
			"originalName": file.OriginalName,
			"purpose":      file.UploadPurpose,
		},
	})
}

// handleParseResume parses a stored resume's extracted text and
// optionally merges the result into the user's profile
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	file := s.ownedFile(w, r, userID, false)
	if file == nil {
		return
	}
	if file.UploadPurpose != "resume" {
		http.Error(w, "The requested resume file does not exist", http.StatusNotFound)
		return
	}
	if file.ExtractedText == nil || *file.ExtractedText == "" {
		http.Error(w, "No extracted text is available for this resume", http.StatusBadRequest)
		return
	}

	autoPopulate := true
	if r.Body != nil {
		var req ParseResumeRequest
		// An empty body keeps the default
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.AutoPopulate != nil {
			autoPopulate = *req.AutoPopulate
		}
	}

	parsed, err := resume.ParseResume(*file.ExtractedText)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	response := map[string]any{
		"message": "Resume parsed successfully",
		"file": map[string]any{
			"id":           file.ID,
			"originalName": file.OriginalName,
		},
		"parsedData": parsed,
	}

	if autoPopulate {
		population, err := s.populator.AutoPopulateProfile(r.Context(), userID, parsed)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		response["autoPopulation"] = population
	}

	writeJSON(w, http.StatusOK, response)
}
