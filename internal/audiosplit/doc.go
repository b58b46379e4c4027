// Package audiosplit slices long audio recordings into transcription-sized
// chunks by shelling out to ffmpeg. Chunk boundaries come from detected
// silence when possible, falling back to fixed time windows.
package audiosplit
