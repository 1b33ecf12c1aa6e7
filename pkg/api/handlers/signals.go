package handlers

import (
	"net/http"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/pkg/emails/actions"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/relations"
	"github.com/labstack/echo/v4"
)

// SignalHandler exposes strategy evaluation over HTTP. The CRM calls the
// evaluate endpoint after every domain mutation that can affect a signal.
type SignalHandler struct {
	runner   *actions.Runner
	registry actions.Registry
}

// NewSignalHandler creates a new signal handler.
func NewSignalHandler(runner *actions.Runner) *SignalHandler {
	return &SignalHandler{runner: runner, registry: actions.DefaultRegistry()}
}

// EvaluateRequest names the domain object to evaluate a signal against
type EvaluateRequest struct {
	RelatedTo string `json:"related_to" validate:"required"`
	RelatedID int    `json:"related_id" validate:"required,min=1"`
}

// EvaluateResponse reports the decision taken for one evaluation and what
// actually happened, so the caller can show the user a flash message when a
// create was skipped for a missing template or missing recipients.
type EvaluateResponse struct {
	Signal    string `json:"signal"`
	RelatedTo string `json:"related_to"`
	RelatedID int    `json:"related_id"`
	Decision  string `json:"decision"`
	Outcome   string `json:"outcome"`
}

// List godoc
// @Summary List known signals
// @Tags Signals
// @Produce json
// @Success 200 {object} map[string]interface{} "Signal names with their target kinds"
// @Router /signals [get]
func (h *SignalHandler) List(c echo.Context) error {
	type signalInfo struct {
		Signal string `json:"signal"`
		Target string `json:"target"`
	}
	infos := make([]signalInfo, 0, len(h.registry))
	for _, signal := range signals.All() {
		handler, ok := h.registry[signal]
		if !ok {
			continue
		}
		infos = append(infos, signalInfo{
			Signal: signal,
			Target: string(handler.Target()),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"signals": infos,
		"total":   len(infos),
	})
}

// Evaluate godoc
// @Summary Evaluate a signal for a domain object
// @Description Re-runs the signal's condition against current data and creates, updates or cancels the matching scheduled email
// @Tags Signals
// @Accept json
// @Produce json
// @Param signal path string true "Signal name"
// @Param request body EvaluateRequest true "Target object"
// @Success 200 {object} EvaluateResponse "Decision taken"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Unknown signal or target"
// @Router /signals/{signal}/evaluate [post]
func (h *SignalHandler) Evaluate(c echo.Context) error {
	signal := c.Param("signal")
	handler, ok := h.registry[signal]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{
			"error": "unknown signal",
		})
	}

	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "invalid request",
			"message": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if relations.Kind(req.RelatedTo) != handler.Target() {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "wrong target kind",
			"message": "signal " + signal + " targets " + string(handler.Target()) + " objects",
		})
	}

	ref := relations.Ref{Kind: handler.Target(), ID: req.RelatedID}
	decision, outcome, err := h.runner.Evaluate(c.Request().Context(), signal, ref)
	if err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]string{
				"error": "target object not found",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to evaluate signal",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, EvaluateResponse{
		Signal:    signal,
		RelatedTo: req.RelatedTo,
		RelatedID: req.RelatedID,
		Decision:  decision.String(),
		Outcome:   outcome.String(),
	})
}
