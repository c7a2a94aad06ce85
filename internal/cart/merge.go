package cart

// mergeLines reconciles cart state arriving from another screen into the
// current cart. Per-id policy is last write wins: an incoming line replaces
// the existing line with the same id outright, quantities are never summed.
// Lines the incoming batch does not mention are preserved unchanged, and ids
// seen for the first time are appended in the incoming batch's order, so the
// result keeps first-seen ordering. Lines whose replacement quantity is below
// one drop out of the cart instead of being persisted at zero.
func mergeLines(current, incoming []Line) []Line {
	replacements := make(map[string]Line, len(incoming))
	for _, line := range incoming {
		replacements[line.ID] = line
	}

	merged := make([]Line, 0, len(current)+len(incoming))
	seen := make(map[string]struct{}, len(current))
	for _, line := range current {
		if _, ok := seen[line.ID]; ok {
			continue
		}
		seen[line.ID] = struct{}{}
		if replacement, ok := replacements[line.ID]; ok {
			line = replacement
		}
		if line.Quantity < 1 {
			continue
		}
		merged = append(merged, line)
	}

	for _, line := range incoming {
		if _, ok := seen[line.ID]; ok {
			continue
		}
		seen[line.ID] = struct{}{}
		if line.Quantity < 1 {
			continue
		}
		merged = append(merged, line)
	}

	return merged
}

// adjustLine applies a quantity delta to the line with the given id, clamping
// at zero. A line that reaches zero is removed entirely. Unknown ids are a
// no-op.
func adjustLine(lines []Line, id string, delta int) []Line {
	adjusted := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ID == id {
			qty := line.Quantity + delta
			if qty < 0 {
				qty = 0
			}
			if qty == 0 {
				continue
			}
			line.Quantity = qty
		}
		adjusted = append(adjusted, line)
	}
	return adjusted
}

// removeLine drops the line with the given id if present.
func removeLine(lines []Line, id string) []Line {
	kept := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ID == id {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
