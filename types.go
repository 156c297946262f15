package schemadrift

// DataType is one of the canonical generalized type categories used for
// cross-format comparison.
type DataType string

const (
	TypeString       DataType = "string"
	TypeInteger      DataType = "integer"
	TypeNumber       DataType = "number"
	TypeBoolean      DataType = "boolean"
	TypeCategory     DataType = "category"
	TypeDatetime     DataType = "datetime"
	TypeBytes        DataType = "bytes"
	TypeNull         DataType = "null"
	TypeUnknownArray DataType = "unknown-array"
)

const (
	// DefaultSampleRows bounds how many rows from the top of the table
	// feed sample-value collection.
	DefaultSampleRows = 100
	// DefaultMaxUniqueValues bounds how many unique stringified values a
	// field descriptor lists before collapsing to TooManyValues.
	DefaultMaxUniqueValues = 100
)

// TooManyValues is the sentinel stored as the sole sample value when a
// field's unique-value count exceeds the configured cap.
const TooManyValues = "(too many unique values to list)"

// Options bundle the inference caps. The zero value means "use defaults";
// pass Options explicitly rather than relying on ambient state.
type Options struct {
	SampleRows      int
	MaxUniqueValues int
}

func DefaultOptions() Options {
	return Options{SampleRows: DefaultSampleRows, MaxUniqueValues: DefaultMaxUniqueValues}
}

func (o Options) withDefaults() Options {
	if o.SampleRows <= 0 {
		o.SampleRows = DefaultSampleRows
	}
	if o.MaxUniqueValues <= 0 {
		o.MaxUniqueValues = DefaultMaxUniqueValues
	}
	return o
}
