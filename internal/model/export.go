package model

type FileType string

const (
	FileTypeHTML FileType = "html"
	FileTypeCSS  FileType = "css"
	FileTypeJSON FileType = "json"
	FileTypeJS   FileType = "js"
)

// ExportFile is one generated artifact.
type ExportFile struct {
	Filename string   `json:"filename"`
	Content  string   `json:"content"`
	Type     FileType `json:"type"`
}

type ExportMetadata struct {
	GeneratedAt string `json:"generatedAt"`
	BrandName   string `json:"brandName"`
	Version     string `json:"version"`
}

// ExportResult is produced per export request and never persisted.
type ExportResult struct {
	Format   string         `json:"format"`
	Files    []ExportFile   `json:"files"`
	Metadata ExportMetadata `json:"metadata"`
}

// File returns the file with the given name.
func (r *ExportResult) File(name string) (ExportFile, bool) {
	for _, f := range r.Files {
		if f.Filename == name {
			return f, true
		}
	}
	return ExportFile{}, false
}
