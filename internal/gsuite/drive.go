package gsuite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"recruiter-assistant/internal/cv"
)

// ErrInvalidLink is returned when no folder id can be found in a link.
var ErrInvalidLink = errors.New("invalid Google Drive link")

var folderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]+)$`),
}

// ExtractFolderID pulls the folder id out of a share link, an open?id= link
// or a bare id.
func ExtractFolderID(link string) (string, error) {
	for _, p := range folderIDPatterns {
		if m := p.FindStringSubmatch(link); m != nil && m[1] != "" {
			return m[1], nil
		}
	}
	return "", ErrInvalidLink
}

// DriveFolder downloads resume folders from Google Drive.
type DriveFolder struct {
	service *drive.Service
	tmpRoot string
}

// NewDriveService creates a Drive client from the given options.
func NewDriveService(ctx context.Context, opts ...option.ClientOption) (*drive.Service, error) {
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return service, nil
}

// NewDriveFolder downloads into fresh directories under tmpRoot ("" for the
// system temp dir).
func NewDriveFolder(service *drive.Service, tmpRoot string) *DriveFolder {
	return &DriveFolder{service: service, tmpRoot: tmpRoot}
}

// Download copies every supported resume in the linked folder into a new
// temporary directory and returns it. The caller removes the directory.
// Files are stored under their Drive name; later files with a name already
// taken are skipped so each name maps to one document.
func (d *DriveFolder) Download(ctx context.Context, link string) (string, error) {
	folderID, err := ExtractFolderID(link)
	if err != nil {
		return "", err
	}

	files, err := d.listFiles(ctx, folderID)
	if err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp(d.tmpRoot, "recruiter-resumes-")
	if err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	taken := make(map[string]struct{}, len(files))
	for _, f := range files {
		name := filepath.Base(f.Name)
		if name == "." || name == ".." || name != f.Name || !cv.IsSupported(name) {
			log.Printf("[Drive] Skipping %q", f.Name)
			continue
		}
		if _, dup := taken[name]; dup {
			log.Printf("[Drive] Skipping duplicate file name %q (id %s)", name, f.Id)
			continue
		}
		taken[name] = struct{}{}

		if err := d.downloadFile(ctx, f.Id, filepath.Join(dir, name)); err != nil {
			os.RemoveAll(dir)
			return "", err
		}
	}

	log.Printf("[Drive] Downloaded %d files from folder %s", len(taken), folderID)
	return dir, nil
}

func (d *DriveFolder) listFiles(ctx context.Context, folderID string) ([]*drive.File, error) {
	var files []*drive.File
	err := d.service.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed = false", folderID)).
		Fields("nextPageToken, files(id, name)").
		Spaces("drive").
		OrderBy("name").
		Pages(ctx, func(page *drive.FileList) error {
			files = append(files, page.Files...)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", folderID, err)
	}
	return files, nil
}

func (d *DriveFolder) downloadFile(ctx context.Context, fileID, dest string) error {
	resp, err := d.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to save %s: %w", dest, err)
	}
	return out.Close()
}
