package templates

import (
	"net/http"
	"strconv"
)

func statusHeading(status int) string {
	return strconv.Itoa(status) + " " + http.StatusText(status)
}
