package catalog

import "fmt"

// DataFormatError reports a structural problem in a card or set feed: the
// catalog refuses to load rather than serve a partial or inconsistent view.
type DataFormatError struct {
	Source string
	Detail string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("malformed catalog data in %s: %s", e.Source, e.Detail)
}

// NotFoundError reports a lookup that matched nothing.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found for %q", e.Kind, e.Key)
}
