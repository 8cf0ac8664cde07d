package httpapi

import (
	"net/http"
)

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	req := headToHeadRequest{
		PlayerOne: r.PathValue("player1"),
		PlayerTwo: r.PathValue("player2"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.headToHeadService.Compare(ctx, req.PlayerOne, req.PlayerTwo)
	if err != nil {
		h.logger.WarnContext(ctx, "head-to-head lookup failed",
			"player1", req.PlayerOne,
			"player2", req.PlayerTwo,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(ctx, result))
}
