package contracts

import "context"

// ReportStorage stores generated report documents and hands back a
// time-limited presigned URL.
type ReportStorage interface {
	UploadJSON(ctx context.Context, objectName string, data []byte) (string, error)
}
