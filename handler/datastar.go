package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStarRequestHeader is sent with every request made by the DataStar client.
const DataStarRequestHeader = "Datastar-Request"

// IsDataStar reports whether the request was made by the DataStar client.
// Accept headers and query parameters are ignored.
func IsDataStar(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(DataStarRequestHeader), "true")
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

type signalsResponse struct {
	signals any
}

// Signals patches v into the DataStar signal store of the client.
// v must marshal to a JSON object.
func Signals(v any) Response {
	return signalsResponse{signals: v}
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}
	return NewSSE(w, r).PatchSignals(data)
}
