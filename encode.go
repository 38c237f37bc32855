package belanja

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeItems writes the collection as JSONL, one item per line, in
// collection order.
func EncodeItems(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return fmt.Errorf("could not encode item %q: %w", it.ID, err)
		}
	}
	return nil
}

// DecodeItems reads a JSONL stream produced by EncodeItems and returns
// the items in stored order. Any undecodable line invalidates the whole
// stream: callers fall back to the empty default.
func DecodeItems(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var it Item
		if err := json.Unmarshal(line, &it); err != nil {
			return nil, fmt.Errorf("could not decode item line %q: %w", line, err)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read item stream: %w", err)
	}
	return items, nil
}
