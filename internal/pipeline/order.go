package pipeline

import "fmt"

// ReorderedIndexes maps each phase id to its new order index given the
// desired sequence. The sequence must cover exactly the existing phase ids,
// otherwise a drag-and-drop against a stale phase list would silently drop
// columns.
func ReorderedIndexes(existing, desired []string) (map[string]int, error) {
	if len(desired) != len(existing) {
		return nil, fmt.Errorf("expected %d phase ids, got %d", len(existing), len(desired))
	}

	known := make(map[string]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}

	indexes := make(map[string]int, len(desired))
	for i, id := range desired {
		if !known[id] {
			return nil, fmt.Errorf("phase %s does not belong to this pipeline", id)
		}
		if _, dup := indexes[id]; dup {
			return nil, fmt.Errorf("phase %s appears twice", id)
		}
		indexes[id] = i
	}

	return indexes, nil
}
