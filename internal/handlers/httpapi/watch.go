package httpapi

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/lverdier/defiparty/internal/services/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// watchSession upgrades to WebSocket and streams session snapshots. The
// first frame is always the current state; afterwards one frame per
// accepted write.
func (h *Handler) watchSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.WatchSession(r.Context(), &game.WatchSessionInput{
		SessionID: ps.ByName("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	sub := out.Subscription

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		_ = sub.Close()
		return
	}
	defer func() {
		_ = sub.Close()
		_ = conn.Close()
	}()

	// Clients never send frames; the read pump only notices disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// joinQR renders a PNG QR code for the session URL so new devices can join
// by scanning.
func (h *Handler) joinQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == "" {
		writeBadRequest(w, "missing session id")
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	joinURL := scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/qr")

	const qrSize = 320
	png, err := qrcode.Encode(joinURL, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
