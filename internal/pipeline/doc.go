// Package pipeline sequences one prediction request: resize the decoded
// image to processing resolution, invoke the mask generator, filter and
// deduplicate its candidates, and remap the survivors to original-image
// coordinates.
//
// A run is a pure function of (image, options); the pipeline keeps no state
// between requests, so concurrent invocations are independent as long as the
// generator itself tolerates concurrent calls. There are no internal
// cancellation points: callers that need timeouts wrap the whole Run in a
// context deadline, which bounds the generator call.
package pipeline
