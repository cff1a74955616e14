//go:build integration

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/studenthub/internal/db"
)

// These tests require a running PostgreSQL database.
// Set TEST_DATABASE_URL environment variable to run them.

func startTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	t.Setenv("JWT_SECRET", "integration-test-secret")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{Port: 0, DatabaseURL: dsn})
	require.NoError(t, err)
	require.NoError(t, s.db.Migrate(context.Background()))

	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(func() {
		ts.Close()
		s.db.Close()
	})
	return s, ts
}

func registerTestUser(t *testing.T, ts *httptest.Server) (uuid.UUID, string) {
	t.Helper()

	payload := map[string]string{
		"email":     fmt.Sprintf("it-%s@example.com", uuid.New()),
		"password":  "integration-pass",
		"firstName": "Integration",
		"lastName":  "Test",
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(ts.URL+"/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var auth AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	return auth.User.ID, auth.Token
}

func doAuthed(t *testing.T, method, url, token string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

const integrationResumeText = `John Doe
john.doe@university.edu
(555) 123-4567

Junior studying Computer Science.

Objective: Become a full-stack developer at a product company

Skills: JavaScript, Python, React, communication

Interests: Robotics, Gaming`

func TestIntegration_ParseResumeFlow(t *testing.T) {
	s, ts := startTestServer(t)
	userID, token := registerTestUser(t, ts)

	text := integrationResumeText
	fileID, err := s.db.InsertFile(context.Background(), userID, db.FileInput{
		FileName:      "resume_it.pdf",
		OriginalName:  "resume.pdf",
		FileType:      "application/pdf",
		FileSize:      int64(len(text)),
		FileData:      []byte(text),
		FileHash:      "it-hash-" + uuid.New().String(),
		UploadPurpose: "resume",
		ExtractedText: &text,
	})
	require.NoError(t, err)

	t.Run("requires auth", func(t *testing.T) {
		resp, err := http.Post(fmt.Sprintf("%s/files/%s/parse-resume", ts.URL, fileID), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("parse and populate", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPost, fmt.Sprintf("%s/files/%s/parse-resume", ts.URL, fileID), token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Message    string `json:"message"`
			ParsedData struct {
				Profile struct {
					YearLevel    string `json:"yearLevel"`
					MajorProgram string `json:"majorProgram"`
				} `json:"profile"`
				Skills []struct {
					Name string `json:"name"`
				} `json:"skills"`
				Contact struct {
					Email string `json:"email"`
				} `json:"contact"`
			} `json:"parsedData"`
			AutoPopulation struct {
				ProfileUpdated bool `json:"profileUpdated"`
				SkillsAdded    int  `json:"skillsAdded"`
				GoalsAdded     int  `json:"goalsAdded"`
				InterestsAdded int  `json:"interestsAdded"`
			} `json:"autoPopulation"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

		assert.Equal(t, "Resume parsed successfully", result.Message)
		assert.Equal(t, "junior", result.ParsedData.Profile.YearLevel)
		assert.Equal(t, "Computer Science", result.ParsedData.Profile.MajorProgram)
		assert.Equal(t, "john.doe@university.edu", result.ParsedData.Contact.Email)
		assert.NotEmpty(t, result.ParsedData.Skills)
		assert.True(t, result.AutoPopulation.ProfileUpdated)
		assert.Greater(t, result.AutoPopulation.SkillsAdded, 0)
		assert.Equal(t, 1, result.AutoPopulation.GoalsAdded)
		assert.Greater(t, result.AutoPopulation.InterestsAdded, 0)
	})

	t.Run("second parse adds nothing", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPost, fmt.Sprintf("%s/files/%s/parse-resume", ts.URL, fileID), token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			AutoPopulation struct {
				SkillsAdded    int `json:"skillsAdded"`
				GoalsAdded     int `json:"goalsAdded"`
				InterestsAdded int `json:"interestsAdded"`
			} `json:"autoPopulation"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Zero(t, result.AutoPopulation.SkillsAdded)
		assert.Zero(t, result.AutoPopulation.GoalsAdded)
		assert.Zero(t, result.AutoPopulation.InterestsAdded)
	})

	t.Run("autoPopulate false skips the merge", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPost, fmt.Sprintf("%s/files/%s/parse-resume", ts.URL, fileID), token,
			[]byte(`{"autoPopulate": false}`))
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(body), "autoPopulation")
	})

	t.Run("profile reflects population", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL+"/profile", token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Profile struct {
				YearLevel *string `json:"yearLevel"`
			} `json:"profile"`
			Counts struct {
				Skills int `json:"skills"`
			} `json:"counts"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.NotNil(t, result.Profile.YearLevel)
		assert.Equal(t, "junior", *result.Profile.YearLevel)
		assert.Greater(t, result.Counts.Skills, 0)
	})

	t.Run("non-resume file is rejected", func(t *testing.T) {
		photoID, err := s.db.InsertFile(context.Background(), userID, db.FileInput{
			FileName:      "photo_it.png",
			OriginalName:  "photo.png",
			FileType:      "image/png",
			FileSize:      1,
			FileData:      []byte{0x89},
			FileHash:      "it-hash-" + uuid.New().String(),
			UploadPurpose: "profile_photo",
		})
		require.NoError(t, err)

		resp := doAuthed(t, http.MethodPost, fmt.Sprintf("%s/files/%s/parse-resume", ts.URL, photoID), token, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("another user's resume is invisible", func(t *testing.T) {
		_, otherToken := registerTestUser(t, ts)
		resp := doAuthed(t, http.MethodPost, fmt.Sprintf("%s/files/%s/parse-resume", ts.URL, fileID), otherToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestIntegration_FileText(t *testing.T) {
	s, ts := startTestServer(t)
	userID, token := registerTestUser(t, ts)

	text := "plain extracted text for download"
	fileID, err := s.db.InsertFile(context.Background(), userID, db.FileInput{
		FileName:      "doc_it.pdf",
		OriginalName:  "doc.pdf",
		FileType:      "application/pdf",
		FileSize:      int64(len(text)),
		FileData:      []byte(text),
		FileHash:      "it-hash-" + uuid.New().String(),
		UploadPurpose: "other",
		ExtractedText: &text,
	})
	require.NoError(t, err)

	resp := doAuthed(t, http.MethodGet, fmt.Sprintf("%s/files/%s/text", ts.URL, fileID), token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		File struct {
			ExtractedText string `json:"extractedText"`
		} `json:"file"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, text, result.File.ExtractedText)
}

func TestIntegration_SkillsEndpoint(t *testing.T) {
	_, ts := startTestServer(t)
	_, token := registerTestUser(t, ts)

	create := []byte(`{"skillName":"go","category":"technical","proficiencyLevel":"advanced"}`)
	resp := doAuthed(t, http.MethodPost, ts.URL+"/skills", token, create)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate name collides
	resp = doAuthed(t, http.MethodPost, ts.URL+"/skills", token, create)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Bad category is rejected before the database sees it
	resp = doAuthed(t, http.MethodPost, ts.URL+"/skills", token,
		[]byte(`{"skillName":"x","category":"bogus","proficiencyLevel":"advanced"}`))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntegration_InterestUpdate(t *testing.T) {
	_, ts := startTestServer(t)
	_, token := registerTestUser(t, ts)

	createInterest := func(body string) (uuid.UUID, int) {
		resp := doAuthed(t, http.MethodPost, ts.URL+"/interests", token, []byte(body))
		defer resp.Body.Close()
		var result struct {
			Interest struct {
				ID uuid.UUID `json:"id"`
			} `json:"interest"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&result)
		return result.Interest.ID, resp.StatusCode
	}

	roboticsID, status := createInterest(`{"interestName":"Robotics","category":"academic","levelOfInterest":"high"}`)
	require.Equal(t, http.StatusCreated, status)
	gamingID, status := createInterest(`{"interestName":"Gaming","category":"hobby","levelOfInterest":"low"}`)
	require.Equal(t, http.StatusCreated, status)

	t.Run("update fields", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPut, fmt.Sprintf("%s/interests/%s", ts.URL, roboticsID), token,
			[]byte(`{"interestName":"Competitive Robotics","category":"extracurricular","levelOfInterest":"medium"}`))
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Interest struct {
				InterestName    string `json:"interestName"`
				Category        string `json:"category"`
				LevelOfInterest string `json:"levelOfInterest"`
			} `json:"interest"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Competitive Robotics", result.Interest.InterestName)
		assert.Equal(t, "extracurricular", result.Interest.Category)
		assert.Equal(t, "medium", result.Interest.LevelOfInterest)
	})

	t.Run("rename onto existing name conflicts", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPut, fmt.Sprintf("%s/interests/%s", ts.URL, gamingID), token,
			[]byte(`{"interestName":"Competitive Robotics","category":"hobby","levelOfInterest":"low"}`))
		resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPut, fmt.Sprintf("%s/interests/%s", ts.URL, uuid.New()), token,
			[]byte(`{"interestName":"Anything","category":"hobby","levelOfInterest":"low"}`))
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad level is rejected", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPut, fmt.Sprintf("%s/interests/%s", ts.URL, roboticsID), token,
			[]byte(`{"interestName":"Robotics","category":"academic","levelOfInterest":"extreme"}`))
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("another user's interest is invisible", func(t *testing.T) {
		_, otherToken := registerTestUser(t, ts)
		resp := doAuthed(t, http.MethodPut, fmt.Sprintf("%s/interests/%s", ts.URL, roboticsID), otherToken,
			[]byte(`{"interestName":"Hijacked","category":"hobby","levelOfInterest":"low"}`))
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
