package http

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing"
)

// processRouteReq binds and validates the route request body.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return req, fmt.Errorf("text must not be blank")
	}
	return req, nil
}

// processEvaluateReq binds the optional evaluation body. An empty body
// or an empty case list selects the builtin dataset.
func (h *handler) processEvaluateReq(c *gin.Context) ([]routing.AccuracyTestCase, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return routing.BuiltinDataset(), nil
	}

	var req evaluateReq
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	if len(req.Cases) == 0 {
		return routing.BuiltinDataset(), nil
	}

	cases := make([]routing.AccuracyTestCase, len(req.Cases))
	for i, cr := range req.Cases {
		tc := cr.toCase()
		if !validTool(tc.ExpectedTool) {
			return nil, fmt.Errorf("case %d: unknown expected_tool %q", i, cr.ExpectedTool)
		}
		if !tc.Language.Valid() {
			return nil, fmt.Errorf("case %d: unknown language %q", i, cr.Language)
		}
		cases[i] = tc
	}
	return cases, nil
}

// processListDecisionsReq binds the list query parameters.
func (h *handler) processListDecisionsReq(c *gin.Context) (listDecisionsReq, error) {
	var req listDecisionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Limit < 0 {
		req.Limit = 0
	}
	return req, nil
}

func validTool(id model.ToolID) bool {
	for _, known := range model.ToolIDs() {
		if id == known {
			return true
		}
	}
	return false
}
