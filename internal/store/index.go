package store

// snapRange is the [start, end) byte range of one snapshot in the JSONL file.
// start is the offset of the RecordStart line; end is the offset of the first
// byte after the RecordEnd line.
type snapRange struct {
	start int64
	end   int64
}

// fileIndex keeps byte-offset bookmarks per completed snapshot. It is
// updated by onAppend as each Record is written or replayed and serves
// Snapshot reads via file.ReadAt. A name recorded twice points to the latest
// snapshot.
type fileIndex struct {
	summaries []Summary            // ordered by completion
	ranges    map[string]snapRange // snapshot name → byte range
	pending   *pendingSnap         // open snapshot being built (nil if none)
}

// pendingSnap accumulates state for the snapshot currently being written.
type pendingSnap struct {
	startOffset int64
	summary     Summary
}

func newFileIndex() *fileIndex {
	return &fileIndex{ranges: make(map[string]snapRange)}
}

// onAppend updates the index when a Record line has been appended.
// lineOffset is the byte offset of the first byte of the line; lineLen is
// the total bytes of the line including the trailing newline.
func (idx *fileIndex) onAppend(r Record, lineOffset, lineLen int64) {
	switch r.Kind {
	case RecordStart:
		idx.pending = &pendingSnap{
			startOffset: lineOffset,
			summary: Summary{
				Name:    r.Snapshot,
				Layout:  r.Layout,
				StartAt: r.Timestamp,
			},
		}
	case RecordItem:
		if idx.pending != nil && idx.pending.summary.Name == r.Snapshot {
			idx.pending.summary.Items++
		}
	case RecordEnd:
		if idx.pending == nil || idx.pending.summary.Name != r.Snapshot {
			return
		}
		s := idx.pending.summary
		s.EndAt = r.Timestamp
		idx.ranges[s.Name] = snapRange{
			start: idx.pending.startOffset,
			end:   lineOffset + lineLen,
		}
		idx.summaries = append(idx.summaries, s)
		idx.pending = nil
	}
}
