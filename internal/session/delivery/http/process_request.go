package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-therapist/pkg/errors"
	"ai-therapist/pkg/response"
)

// processCreateReq binds the optional create body. An empty body is a valid request.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSessionID reads the :id path parameter.
func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingSessionID
	}
	return id, nil
}

// writeReqError reports a request that failed binding or validation.
func (h *handler) writeReqError(c *gin.Context, err error) {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		response.Error(c, err)
		return
	}
	response.ValidationError(c, err)
}
