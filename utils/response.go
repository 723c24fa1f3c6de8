package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the problem-details style response shape used for every
// success and error response in the API.
type Envelope struct {
	Type     string      `json:"type"`
	Title    string      `json:"title"`
	Status   int         `json:"status"`
	Detail   interface{} `json:"detail"`
	Instance string      `json:"instance"`
	Data     interface{} `json:"data,omitempty"`
}

// WriteEnvelope sends an envelope with its own status code
func WriteEnvelope(c *gin.Context, envelope Envelope) {
	c.JSON(envelope.Status, envelope)
}

// Success sends a 200 envelope with an empty type tag
func Success(c *gin.Context, title string, detail interface{}, instance string) {
	WriteEnvelope(c, Envelope{
		Type:     "",
		Title:    title,
		Status:   200,
		Detail:   detail,
		Instance: instance,
	})
}

// SuccessWithData sends a 200 envelope carrying serialized records
func SuccessWithData(c *gin.Context, title string, detail interface{}, instance string, data interface{}) {
	WriteEnvelope(c, Envelope{
		Type:     "",
		Title:    title,
		Status:   200,
		Detail:   detail,
		Instance: instance,
		Data:     data,
	})
}

// Problem sends an error envelope with a slash-prefixed machine tag
func Problem(c *gin.Context, errType, title string, status int, detail interface{}, instance string) {
	WriteEnvelope(c, Envelope{
		Type:     errType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: instance,
	})
}
