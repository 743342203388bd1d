package outline

// Filter returns the subsequence of records surviving the level constraints
// in opts, preserving input order and Position values. Filtering happens
// strictly before tree construction, so a surviving heading whose ancestor
// level was filtered out is later promoted to a root.
func Filter(records []HeadingRecord, opts Options) []HeadingRecord {
	var allowed map[int]bool
	if len(opts.SpecificLevels) > 0 {
		allowed = make(map[int]bool, len(opts.SpecificLevels))
		for _, lvl := range opts.SpecificLevels {
			allowed[lvl] = true
		}
	}

	out := make([]HeadingRecord, 0, len(records))
	for _, rec := range records {
		if rec.Level < 1 || rec.Level > 9 {
			continue
		}
		if opts.MaxDepth > 0 && rec.Level > opts.MaxDepth {
			continue
		}
		if allowed != nil && !allowed[rec.Level] {
			continue
		}
		out = append(out, rec)
	}
	return out
}
