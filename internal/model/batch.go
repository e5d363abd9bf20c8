package model

// BatchMetadata describes a remote batch job as returned by the service.
type BatchMetadata struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	State       string `json:"state"`

	// OutputFileName is the file reference the batch wrote its results to.
	// Empty when the destination carries no file-name field.
	OutputFileName string `json:"output_file_name,omitempty"`

	// Dest is a rendering of the raw destination descriptor, kept for the
	// warning printed when OutputFileName is absent.
	Dest string `json:"dest,omitempty"`
}

// HasOutputFile reports whether the destination named an output file.
func (b *BatchMetadata) HasOutputFile() bool {
	return b.OutputFileName != ""
}
