package api

const (
	// HeaderPipelineID is header for PipelineID
	HeaderPipelineID = "x-pipeline-id"
	// HeaderCorrelationID is header for CorrelationID
	HeaderCorrelationID = "x-correlation-id"
	// HeaderStale is set to "true" when the returned view is the last known one and not a fresh snapshot
	HeaderStale = "x-stale"
)
