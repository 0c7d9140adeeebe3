package encode

type EncodeOption func(*EncState)

// TrimDocument trims surrounding blank space and ends the document with a
// single newline, the canonical on-disk form.
func TrimDocument(v bool) EncodeOption {
	return func(es *EncState) { es.trim = v }
}
