package pngdec

// ChunkInfo is a lightweight record of one chunk seen while walking the
// stream, kept for diagnostics and decode metrics.
type ChunkInfo struct {
	Type     string
	Length   uint32
	Critical bool
}

// GatherIDAT re-walks the chunk stream from its start on an independent
// demuxer and concatenates every IDAT payload, in encounter order, into one
// owned buffer. All other chunk types are skipped without interpretation.
//
// A chunk parse failure during this pass is treated as end of stream rather
// than an error: trailing or ancillary garbage after the image data is not
// semantically required here. The caller's demuxer position is not disturbed.
//
// The returned inventory lists every chunk seen, in file order.
func GatherIDAT(d *Demuxer) (compressed []byte, inventory []ChunkInfo) {
	walk := d.Replay()
	for !walk.Done() {
		chunk, err := walk.Next()
		if err != nil {
			break
		}
		inventory = append(inventory, ChunkInfo{
			Type:     chunk.TypeString(),
			Length:   chunk.Length,
			Critical: chunk.Critical(),
		})
		if chunk.TypeString() == TypeIDAT {
			compressed = append(compressed, chunk.Data...)
		}
	}
	return compressed, inventory
}
