package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/scorecast/internal/prediction"
	"github.com/abhisek/scorecast/internal/student"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type healthBody struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

type batchRequest struct {
	Inputs []student.Candidate `json:"inputs"`
}

type batchEntry struct {
	Result *prediction.Result `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
	Field  string             `json:"field,omitempty"`
}

type batchResponse struct {
	Results []batchEntry `json:"results"`
}

type handlers struct {
	svc              *prediction.Service
	batchConcurrency int
	maxBatch         int
}

func (h *handlers) health(c *gin.Context) {
	mode := "oracle"
	if h.svc.Offline() {
		mode = "offline"
	}
	c.JSON(http.StatusOK, healthBody{Status: "ok", Mode: mode})
}

func (h *handlers) predict(c *gin.Context) {
	var cand student.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: fmt.Sprintf("invalid JSON body: %v", err)})
		return
	}

	in, err := cand.Normalize()
	if err != nil {
		c.JSON(http.StatusBadRequest, validationBody(err))
		return
	}

	res, err := h.svc.Predict(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, validationBody(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handlers) predictBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: fmt.Sprintf("invalid JSON body: %v", err)})
		return
	}
	switch {
	case len(req.Inputs) == 0:
		c.JSON(http.StatusBadRequest, errorBody{Error: "inputs must not be empty", Field: "inputs"})
		return
	case len(req.Inputs) > h.maxBatch:
		c.JSON(http.StatusBadRequest, errorBody{
			Error: fmt.Sprintf("at most %d inputs per batch", h.maxBatch),
			Field: "inputs",
		})
		return
	}

	items := h.svc.PredictBatch(c.Request.Context(), req.Inputs, h.batchConcurrency)
	resp := batchResponse{Results: make([]batchEntry, len(items))}
	for i, item := range items {
		if item.Err != nil {
			body := validationBody(item.Err)
			resp.Results[i] = batchEntry{Error: body.Error, Field: body.Field}
			continue
		}
		resp.Results[i] = batchEntry{Result: item.Result}
	}
	c.JSON(http.StatusOK, resp)
}

func validationBody(err error) errorBody {
	var verr *student.ValidationError
	if errors.As(err, &verr) {
		return errorBody{Error: verr.Error(), Field: verr.Field}
	}
	return errorBody{Error: err.Error()}
}
