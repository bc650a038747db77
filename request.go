package kudu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// request describes one dispatch: verb, endpoint relative to the api root,
// and at most one payload. Descriptors are built by an operation wrapper,
// dispatched once, and discarded.
type request struct {
	method   string
	endpoint string
	payload  payload // nil means no request body
}

// payload is the closed set of request body shapes. A request holds at most
// one variant, which keeps "in-memory body and upload file at once" (a caller
// contract violation upstream) unrepresentable here.
type payload interface {
	// open returns the body stream and its length. The caller owns the
	// returned ReadCloser.
	open(fs afero.Fs) (body io.ReadCloser, length int64, err error)
}

// rawPayload sends already-serialized bytes.
type rawPayload []byte

func (p rawPayload) open(afero.Fs) (io.ReadCloser, int64, error) {
	return io.NopCloser(bytes.NewReader(p)), int64(len(p)), nil
}

// jsonPayload marshals v at dispatch time.
type jsonPayload struct{ v any }

func (p jsonPayload) open(afero.Fs) (io.ReadCloser, int64, error) {
	data, err := json.Marshal(p.v)
	if err != nil {
		return nil, 0, fmt.Errorf("kudu: encode request body: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

// filePayload streams a local file as the request body so uploads are never
// buffered whole.
type filePayload struct{ path string }

func (p filePayload) open(fs afero.Fs) (io.ReadCloser, int64, error) {
	f, err := fs.Open(p.path)
	if err != nil {
		return nil, 0, fmt.Errorf("kudu: open upload file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("kudu: stat upload file: %w", err)
	}
	return f, info.Size(), nil
}
