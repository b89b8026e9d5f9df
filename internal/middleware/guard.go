package middleware

import (
	"github.com/gin-gonic/gin"

	"pawconnect/internal/flow"
	"pawconnect/internal/pkg/response"
)

const ctxFlowState = "flow_state"

// RequirePage checks the page's flow preconditions before the handler runs. On failure the
// visitor is redirected to the fallback page and the handler never executes.
func RequirePage(page flow.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := flow.LoadState(c.Request.Context(), Gateway(c))
		if err != nil {
			if !response.FlowError(c, err) {
				response.Internal(c, err, "Failed to load session state")
				c.Abort()
			}
			return
		}

		if perr := flow.Check(page, st); perr != nil {
			response.FlowError(c, perr)
			return
		}

		c.Set(ctxFlowState, st)
		c.Next()
	}
}

// FlowState returns the state RequirePage loaded for this request.
func FlowState(c *gin.Context) (flow.State, bool) {
	v, ok := c.Get(ctxFlowState)
	if !ok {
		return flow.State{}, false
	}
	st, ok := v.(flow.State)
	return st, ok
}
