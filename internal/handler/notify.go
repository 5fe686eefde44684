package handler

import (
	"net/http"

	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/notify"
)

type NotifyHandler struct {
	notifier notify.Notifier
}

func NewNotifyHandler(notifier notify.Notifier) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

// HandleSendNotification posts an event to the configured Discord channel
func (h *NotifyHandler) HandleSendNotification(w http.ResponseWriter, r *http.Request) {
	var event notify.Event
	if err := DecodeAndValidateRequest(r, w, &event, "Send notification"); err != nil {
		return
	}

	if err := h.notifier.Send(r.Context(), event); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgSendNotificationFailed,
			"event_type", event.Type, "error", err)
		respondError(w, http.StatusBadGateway, ErrMsgSendNotificationFailed)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNotificationQueued})
}
