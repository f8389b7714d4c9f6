package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// decodeJSONBody decodes the request body into dst. An empty body is not an
// error; fields keep their zero values.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
