package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/iamNilotpal/crc/internal/core/domain"
)

// Record is the JSON form of a FileResult.
type Record struct {
	Path      string `json:"path"`
	Checksum  string `json:"checksum,omitempty"`
	Size      int64  `json:"size"`
	Format    string `json:"format,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
	Error     string `json:"error,omitempty"`
}

// NewRecord converts r. The checksum is rendered as 8 lowercase hex digits
// and omitted when r failed.
func NewRecord(r domain.FileResult) Record {
	rec := Record{
		Path:      r.Path,
		Size:      r.Size,
		Format:    string(r.Format),
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
	if r.OK() {
		rec.Checksum = fmt.Sprintf("%08x", r.Checksum)
	} else {
		rec.Error = r.Err.Error()
	}
	return rec
}

func MarshalJSON(data any) ([]byte, error) {
	return json.Marshal(data)
}

func UnMarshalJSON(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}
