package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes the run result as indented JSON at path.
func WriteJSON(path string, info RunInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
