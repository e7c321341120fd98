package fitbod

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// FileExport reads the export from a local path.
type FileExport struct {
	path string
}

func NewFileExport(path string) *FileExport {
	return &FileExport{
		path: path,
	}
}

func (e *FileExport) Open(_ context.Context) (io.ReadCloser, error) {
	exists, err := pkg.PathExists(e.path, false)
	if err != nil {
		return nil, fmt.Errorf("export path [%s]: %w", e.path, err)
	}
	if !exists {
		return nil, fmt.Errorf("export path [%s] does not exist", e.path)
	}
	return os.Open(e.path)
}

func (e *FileExport) String() string {
	return "file:" + e.path
}

// DriveExport downloads the most recently modified Drive file with the given name.
type DriveExport struct {
	service  *drive.Service
	fileName string
}

func NewDriveExport(ctx context.Context, fileName string, opts ...option.ClientOption) (*DriveExport, error) {
	// https://github.com/googleapis/google-api-go-client/blob/master/drive/v3/drive-gen.go
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create drive client: %w", err)
	}
	return &DriveExport{
		service:  driveService,
		fileName: fileName,
	}, nil
}

func (e *DriveExport) Open(ctx context.Context) (io.ReadCloser, error) {
	query := fmt.Sprintf("trashed = false and name = '%s'", strings.ReplaceAll(e.fileName, "'", `\'`))
	fileList, err := e.service.
		Files.List().
		Q(query).
		OrderBy("modifiedTime desc").
		Fields("files(id, name, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list drive files: %w", err)
	}
	if len(fileList.Files) == 0 {
		return nil, fmt.Errorf("drive file [%s] not found", e.fileName)
	}

	file := fileList.Files[0]
	if len(fileList.Files) > 1 {
		log.Warnf("found %d drive files named [%s], taking the latest: %s", len(fileList.Files), e.fileName, file.Id)
	}
	log.Debugf("downloading fitbod export %s (%s, modified %s)", file.Name, file.Id, file.ModifiedTime)

	resp, err := e.service.Files.Get(file.Id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download drive file %s: %w", file.Id, err)
	}
	return resp.Body, nil
}

func (e *DriveExport) String() string {
	return "drive:" + e.fileName
}
