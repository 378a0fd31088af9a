package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"tokensmith.app/forge/internal/model"
)

// Bundle packs an export result into a zip archive with an index page
// linking every file.
func Bundle(result *model.ExportResult) ([]byte, error) {
	if result == nil || len(result.Files) == 0 {
		return nil, fmt.Errorf("bundle: no files to pack")
	}

	modified, err := time.Parse(time.RFC3339, result.Metadata.GeneratedAt)
	if err != nil {
		modified = time.Now()
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	write := func(name, content string) error {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(content))
		return err
	}

	for _, f := range result.Files {
		if err := write(f.Filename, f.Content); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", f.Filename, err)
		}
	}
	if _, exists := result.File("index.html"); !exists {
		index, err := bundleIndex(result)
		if err != nil {
			return nil, fmt.Errorf("render bundle index: %w", err)
		}
		if err := write("index.html", index); err != nil {
			return nil, fmt.Errorf("bundle index: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("bundle: %w", err)
	}
	return buf.Bytes(), nil
}

type indexView struct {
	*model.ExportResult
	Title string
}

func bundleIndex(result *model.ExportResult) (string, error) {
	return render("index", indexView{
		ExportResult: result,
		Title:        result.Metadata.BrandName + " " + result.Format + " export",
	})
}
