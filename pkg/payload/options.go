package payload

// Options wraps an arbitrary options mapping under the "options" key.
// The contents are passed through verbatim; the target service owns their
// interpretation, so no validation is performed here.
func Options(options map[string]interface{}) Payload {
	return Payload{"options": options}
}
