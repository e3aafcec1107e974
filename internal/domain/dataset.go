package domain

// Dataset is the immutable collection of records produced by one load.
// The loop that owns it holds at most one; aggregation takes it as input.
type Dataset struct {
	source  string
	records []ProjectRecord
}

// NewDataset copies records so later mutation of the input cannot leak in.
func NewDataset(source string, records []ProjectRecord) *Dataset {
	cp := make([]ProjectRecord, len(records))
	copy(cp, records)
	return &Dataset{source: source, records: cp}
}

// Source is the path or label the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// Len returns the number of kept records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns the records in arrival order. Callers must treat the
// slice as read-only.
func (d *Dataset) Records() []ProjectRecord {
	if d == nil {
		return nil
	}
	return d.records
}
