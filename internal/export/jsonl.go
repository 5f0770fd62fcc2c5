package export

import (
	"bytes"
	"encoding/json"
	"os"

	"reddit-leads/internal/reddit"
)

// WriteRawJSONL archives crawled posts, one JSON object per line.
func WriteRawJSONL(path string, posts []reddit.RawPost) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, p := range posts {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
