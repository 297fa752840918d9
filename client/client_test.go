package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerAttachedWhenSet(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("abc123"))
	_, err := c.ListSections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestBearerOmittedWhenUnset(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListSections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestLoginRemembersToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.c", body["email"])
			w.Write([]byte(`{"token":"issued-token","user":{"id":1,"email":"a@b.c"}}`))
		case "/verify":
			assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"user":{"id":1,"email":"a@b.c"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", result.Token)

	user, err := c.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)
}

func TestNon2xxSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"missing required field","field":"name","status":"error"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateSection(context.Background(), "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "missing required field", apiErr.Message)
	assert.Equal(t, "name", apiErr.Field)
	assert.Equal(t, "missing required field", err.Error())
}

func TestNon2xxWithoutBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteSection(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCreateProjectSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Robot Arm", r.FormValue("title"))
		assert.Equal(t, "hardware", r.FormValue("category"))
		assert.Equal(t, "7", r.FormValue("section_id"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "arm.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"title":"Robot Arm"}`))
	}))
	defer srv.Close()

	project, err := New(srv.URL, WithToken("t")).CreateProject(context.Background(), ProjectUpload{
		Title:     "Robot Arm",
		Category:  "hardware",
		SectionID: 7,
		Image:     &FileUpload{Name: "arm.png", Reader: strings.NewReader("png-bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Robot Arm", project.Title)
}

func TestUpdateProjectOmitsAbsentFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, []string{"New title"}, r.MultipartForm.Value["title"])
		// Unsupplied fields must not appear at all, empty or otherwise.
		_, hasCategory := r.MultipartForm.Value["category"]
		assert.False(t, hasCategory)
		_, hasImage := r.MultipartForm.Value["image"]
		assert.False(t, hasImage)

		w.Write([]byte(`{"id":3,"title":"New title"}`))
	}))
	defer srv.Close()

	title := "New title"
	project, err := New(srv.URL, WithToken("t")).UpdateProject(context.Background(), 3, ProjectUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", project.Title)
}

func TestUploadProjectFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "cover.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"fileUrl":"/uploads/images/123-abc.png"}`))
	}))
	defer srv.Close()

	path, err := New(srv.URL, WithToken("t")).UploadProjectFile(context.Background(),
		FileUpload{Name: "cover.png", Reader: strings.NewReader("png")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/123-abc.png", path)
}

func TestCreateAdvantageFlattensIcon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// Whatever shape the caller held, only a string crosses the wire.
		assert.Equal(t, "bolt", body["icon"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"title":"Fast"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithToken("t")).CreateAdvantage(context.Background(), 1, AdvantageInput{
		Title:       "Fast",
		Description: "d",
		Icon:        map[string]any{"name": "bolt", "render": map[string]any{"type": "svg"}},
		Stat:        "2x",
	})
	require.NoError(t, err)
}

func TestIconString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "bolt", "bolt"},
		{"object with name", map[string]any{"name": "bolt"}, "bolt"},
		{"object with key", map[string]any{"key": "zap"}, "zap"},
		{"opaque object", map[string]any{"weight": 2}, `{"weight":2}`},
		{"number", 42, "42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, iconString(tc.in))
		})
	}
}
