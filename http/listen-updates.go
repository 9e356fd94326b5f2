package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"
)

func (httpserver *HttpServer) listenToFeedUpdates(w http.ResponseWriter, r *http.Request) {
	compID, ok := httpserver.parseCompID(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported!", http.StatusInternalServerError)
		return
	}

	updates, unsubscribe, err := httpserver.compSrvc.SubscribeFeed(r.Context(), compID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer unsubscribe()

	type feedUpdateMsg struct {
		SubmCreated *SubmView `json:"subm_created,omitempty"`
		SubmUpdated *SubmView `json:"subm_updated,omitempty"`
	}

	write := func(data string) {
		io.WriteString(w, data)
		flusher.Flush()
	}

	keepAliveTicker := time.NewTicker(15 * time.Second)
	defer keepAliveTicker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAliveTicker.C:
			write(": keep-alive\n\n")
		case update, ok := <-updates:
			if !ok {
				return
			}
			var message feedUpdateMsg
			if update.Created != nil {
				view := mapSubm(*update.Created)
				message.SubmCreated = &view
			}
			if update.Updated != nil {
				view := mapSubm(*update.Updated)
				message.SubmUpdated = &view
			}
			marshalled, err := json.Marshal(message)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			write("data: " + string(marshalled) + "\n\n")
		}
	}
}
