package gsuite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func TestExtractFolderID(t *testing.T) {
	tests := []struct {
		link    string
		want    string
		wantErr bool
	}{
		{link: "https://drive.google.com/drive/folders/1AbC-d_9?usp=sharing", want: "1AbC-d_9"},
		{link: "https://drive.google.com/open?id=XyZ_123", want: "XyZ_123"},
		{link: "plainFolderId-42", want: "plainFolderId-42"},
		{link: "https://example.org/nothing here", wantErr: true},
		{link: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got, err := ExtractFolderID(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLink)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDriveFolderDownload(t *testing.T) {
	contents := map[string]string{
		"f1": "resume one",
		"f2": "resume two",
		"f3": "duplicate name",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/files":
			assert.Contains(t, r.URL.Query().Get("q"), "'folder-1' in parents")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"files": []map[string]string{
					{"id": "f1", "name": "a.docx"},
					{"id": "f2", "name": "b.txt"},
					{"id": "f3", "name": "a.docx"},
					{"id": "f4", "name": "photo.png"},
				},
			})
		case strings.HasPrefix(r.URL.Path, "/files/"):
			assert.Equal(t, "media", r.URL.Query().Get("alt"))
			id := strings.TrimPrefix(r.URL.Path, "/files/")
			_, _ = w.Write([]byte(contents[id]))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	service, err := drive.NewService(context.Background(), option.WithHTTPClient(srv.Client()), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	folder := NewDriveFolder(service, t.TempDir())
	dir, err := folder.Download(context.Background(), "https://drive.google.com/drive/folders/folder-1")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.docx", "b.txt"}, names)

	data, err := os.ReadFile(filepath.Join(dir, "a.docx"))
	require.NoError(t, err)
	assert.Equal(t, "resume one", string(data))
}

func TestDriveFolderDownloadInvalidLink(t *testing.T) {
	folder := NewDriveFolder(nil, t.TempDir())
	_, err := folder.Download(context.Background(), "not a link!")
	assert.ErrorIs(t, err, ErrInvalidLink)
}
