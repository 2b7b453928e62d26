package domain

// FileType represents the allowed document types for review.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOC  FileType = "doc"
	FileTypeDOCX FileType = "docx"
	FileTypeRTF  FileType = "rtf"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"doc":  FileTypeDOC,
	"docx": FileTypeDOCX,
	"rtf":  FileTypeRTF,
}

// RiskLevel is the severity assigned to a flagged contract clause.
type RiskLevel string

const (
	RiskLow  RiskLevel = "Low"
	RiskMed  RiskLevel = "Med"
	RiskHigh RiskLevel = "High"
)
