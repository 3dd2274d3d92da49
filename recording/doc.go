// Package recording captures collide debug drawing as typed commands.
//
// A Recorder implements collide.Surface. Instead of rasterizing, every call
// is stored as a Command. FinishRecording returns an immutable Recording
// that can be inspected, dumped as text, or replayed onto any other
// collide.Surface (for example a surface.ImageSurface).
//
// # Example
//
//	rec := recording.NewRecorder()
//	ls.Render(rec, collide.Zero)
//	r := rec.FinishRecording()
//
//	fmt.Println(r.Count(recording.CmdStroke)) // 2: body and bounding box
//	r.Playback(imageSurface)
package recording
