package format

// Options configures a formatting run. It is passed explicitly through
// every formatting call; nil indexes rank nothing.
type Options struct {
	// Keys ranks priority keys in regular tables.
	Keys *Index
	// InlineKeys ranks priority keys in inline tables.
	InlineKeys *Index
	// SortStringArrays moves string elements of arrays to the front in
	// ascending content order; other elements keep their relative order.
	SortStringArrays bool
}

// NewOptions builds Options from raw priority key lists.
func NewOptions(keys, inlineKeys []string, sortStringArrays bool) *Options {
	return &Options{
		Keys:             NewIndex(keys),
		InlineKeys:       NewIndex(inlineKeys),
		SortStringArrays: sortStringArrays,
	}
}
