// Package marquee slides a viewport across a rasterized message and renders
// each position as a frame of colored block cells.
//
// A Sequencer yields frames in order, one per column offset. A FrameBuffer
// renders the whole sequence into one contiguous buffer up front. Player
// drives either strategy against an io.Writer, redrawing in place with
// cursor-up sequences.
package marquee
