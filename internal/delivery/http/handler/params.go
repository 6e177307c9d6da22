package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// maxJSONBody bounds request bodies. Photo uploads carry base64 images.
const maxJSONBody = 12 << 20

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
