package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 简历上传相关常量
const (
	MimePDF         = "application/pdf"
	MimeText        = "text/plain"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedCVExtensions = []string{".pdf", ".doc", ".docx", ".txt"}
)
