package animal

import (
	"encoding/json"
	"fmt"
)

// Decode parses a JSON array of animal records. The element shape is not
// validated beyond being a JSON object; field access stays tolerant through
// the Record accessors.
func Decode(data []byte) ([]Record, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("animal: empty payload")
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("animal: decode records: %w", err)
	}
	return records, nil
}
