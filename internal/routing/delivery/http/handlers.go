package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"multilingual-tool-router/internal/routing"
	"multilingual-tool-router/pkg/response"
)

// Route godoc
// @Summary     Route an utterance
// @Description Detects the language, runs the hybrid classifier/semantic policy and returns the routing decision.
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Utterance to route"
// @Success     200 {object} decisionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	decision, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDecisionResp(decision))
}

// Dispatch godoc
// @Summary     Route and execute
// @Description Routes the utterance and executes the selected tool, or returns a bilingual clarification prompt.
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Utterance to route and execute"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/route/dispatch [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	decision, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		h.respondError(c, err)
		return
	}

	result, err := h.dispatcher.Dispatch(ctx, req.Text, decision)
	if err != nil {
		h.l.Errorf(ctx, "dispatcher.Dispatch: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, result)
}

// Evaluate godoc
// @Summary     Run the evaluation suite
// @Description Replays labeled test cases through the router and returns accuracy metrics. An empty body runs the builtin dataset.
// @Tags        Evaluation
// @Accept      json
// @Produce     json
// @Param       body body evaluateReq false "Custom test cases (optional)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/evaluate [POST]
func (h *handler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()

	cases, err := h.processEvaluateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	metrics, err := h.uc.Evaluate(ctx, cases)
	if err != nil {
		h.l.Errorf(ctx, "uc.Evaluate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, metrics)
}

// ListDecisions godoc
// @Summary     List routing decisions
// @Description Returns the most recent routing decisions, newest last.
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       limit query int false "Maximum decisions to return (default: all)"
// @Success     200 {object} decisionsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/decisions [GET]
func (h *handler) ListDecisions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListDecisionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	decisions, err := h.uc.Decisions(ctx, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.Decisions: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newDecisionsResp(decisions))
}

// respondError maps use-case errors onto HTTP responses. An embedding
// oracle failure is the only 500 the routing path produces.
func (h *handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, routing.ErrEmbeddingOracle) {
		response.InternalError(c, err)
		return
	}
	response.Error(c, err, nil)
}
